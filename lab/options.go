package lab

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// Precondition errors. They leave the lab untouched.
var (
	// ErrNoGraph is returned when a traversal is requested before Build.
	ErrNoGraph = errors.New("lab: no graph built")

	// ErrNoSequence is returned when a sort is requested before Load.
	ErrNoSequence = errors.New("lab: no sequence loaded")

	// ErrUnknownAlgorithm is returned for an unregistered algorithm key.
	ErrUnknownAlgorithm = errors.New("lab: unknown algorithm")

	// ErrBusy is returned when a sort is requested while one is active.
	ErrBusy = errors.New("lab: a run is already active")
)

// Option configures a lab.
type Option func(*settings)

type settings struct {
	sink    viz.Sink
	cue     viz.Cue
	logger  *slog.Logger
	metrics *metrics.Metrics
	runOpts []run.Option

	delay       time.Duration
	delaySet    bool
	destination int
	speed       float64
	maxHeight   float64
}

func newSettings(opts []Option) settings {
	s := settings{
		sink:        viz.Nop,
		cue:         viz.NopCue,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		destination: -1,
		speed:       1,
	}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// delayOr returns the configured delay, or def when none was set.
func (s settings) delayOr(def time.Duration) time.Duration {
	if s.delaySet {
		return s.delay
	}

	return def
}

func (s settings) controller() *run.Controller {
	opts := []run.Option{run.WithLogger(s.logger), run.WithObserver(s.metrics.Observer())}

	return run.NewController(append(opts, s.runOpts...)...)
}

// WithSink routes every event of the lab to sink.
func WithSink(sink viz.Sink) Option {
	return func(s *settings) { s.sink = viz.OrNop(sink) }
}

// WithCue sets the swap notification of sort runs.
func WithCue(c viz.Cue) Option {
	return func(s *settings) {
		if c != nil {
			s.cue = c
		}
	}
}

// WithLogger configures the structured logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics counts runs, events, cues and control commands on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

// WithRunOptions passes opts to the lab's run controller.
func WithRunOptions(opts ...run.Option) Option {
	return func(s *settings) { s.runOpts = append(s.runOpts, opts...) }
}

// WithDelay sets the pacing of traversals and Hanoi moves. Negative values mean zero.
func WithDelay(d time.Duration) Option {
	return func(s *settings) {
		s.delay = max(d, 0)
		s.delaySet = true
	}
}

// WithDestination selects the node whose shortest path Dijkstra replays.
// Negative selects the last node.
func WithDestination(node int) Option {
	return func(s *settings) { s.destination = node }
}

// WithSpeed sets the sort speed, see sorting.DelayForSpeed.
func WithSpeed(speed float64) Option {
	return func(s *settings) {
		if speed > 0 {
			s.speed = speed
		}
	}
}

// WithMaxHeight sets the height of the tallest sort bar.
func WithMaxHeight(h float64) Option {
	return func(s *settings) { s.maxHeight = h }
}

// Report summarizes one run.
type Report struct {
	ID        uuid.UUID
	Lab       string
	Algorithm string

	// Outcome is one of metrics.OutcomeCompleted, OutcomeAbandoned or OutcomeFailed.
	Outcome   string
	Abandoned bool
	Elapsed   time.Duration

	// Traversal results.
	Order  []int
	Parent []int
	Depth  []int
	Dist   []int64
	Path   []int

	// Sort results.
	Values []int
	Steps  int
}

func newReport(lab, algorithm string) *Report {
	return &Report{ID: uuid.New(), Lab: lab, Algorithm: algorithm}
}

// controls is the pause/resume surface shared by the labs.
type controls struct {
	ctl *run.Controller
}

// Controller returns the lab's run controller.
func (c controls) Controller() *run.Controller { return c.ctl }

// Pause suspends the active run.
func (c controls) Pause() bool { return c.ctl.Pause() }

// Resume lifts a pause.
func (c controls) Resume() bool { return c.ctl.Resume() }

// Toggle flips between paused and running and returns the new paused flag.
func (c controls) Toggle() bool { return c.ctl.Toggle() }

// State returns the controller flags.
func (c controls) State() run.State { return c.ctl.Snapshot() }

// conclude fills in the outcome, logs it and updates metrics. A run that
// stopped on its context while still current is cancelled so the lab does
// not stay busy.
func conclude(s settings, ctl *run.Controller, tok run.Token, rep *Report, err error, began time.Time) {
	rep.Elapsed = time.Since(began)
	log := s.logger.With("run_id", rep.ID.String(), "lab", rep.Lab, "algorithm", rep.Algorithm)

	switch {
	case rep.Abandoned:
		rep.Outcome = metrics.OutcomeAbandoned
		if ctl.Active(tok) {
			ctl.Cancel()
		}
		log.Debug("run abandoned", "elapsed", rep.Elapsed, "error", err)
	case err != nil:
		rep.Outcome = metrics.OutcomeFailed
		if ctl.Active(tok) {
			ctl.Cancel()
		}
		log.Warn("run failed", "elapsed", rep.Elapsed, "error", err)
	default:
		rep.Outcome = metrics.OutcomeCompleted
		log.Info("run finished", "elapsed", rep.Elapsed, "steps", rep.Steps, "visited", len(rep.Order))
	}
	s.metrics.RunFinished(rep.Lab, rep.Outcome, rep.Elapsed)
}
