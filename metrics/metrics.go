// Package metrics exposes Prometheus counters for lab runs, emitted events,
// swap cues and run-control commands.
//
// All methods are safe on a nil *Metrics, so callers can leave metrics off
// without branching.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeCompleted = "completed"
	OutcomeAbandoned = "abandoned"
	OutcomeFailed    = "failed"
)

// Metrics groups the algoviz collectors of one registry.
type Metrics struct {
	runsStarted  *prometheus.CounterVec
	runsFinished *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	events       *prometheus.CounterVec
	swapCues     prometheus.Counter
	controls     *prometheus.CounterVec
}

// New registers the collectors on reg. A nil reg uses a private registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		// runsStarted counts runs by lab and algorithm.
		runsStarted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algoviz",
			Name:      "runs_started_total",
			Help:      "Total runs started",
		}, []string{"lab", "algorithm"}),

		// runsFinished counts runs by lab and outcome (completed, abandoned, failed).
		runsFinished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algoviz",
			Name:      "runs_finished_total",
			Help:      "Total runs finished by outcome",
		}, []string{"lab", "outcome"}),

		runDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "algoviz",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of runs, pauses included",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		}, []string{"lab"}),

		events: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algoviz",
			Name:      "events_total",
			Help:      "Total presentation events by kind",
		}, []string{"kind"}),

		swapCues: f.NewCounter(prometheus.CounterOpts{
			Namespace: "algoviz",
			Name:      "swap_cues_total",
			Help:      "Total audio cues played on swaps",
		}),

		// controls counts run-control transitions (start, pause, resume, cancel).
		controls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algoviz",
			Name:      "controls_total",
			Help:      "Total run-control transitions by action",
		}, []string{"action"}),
	}
}

// RunStarted records the start of a run.
func (m *Metrics) RunStarted(lab, algorithm string) {
	if m == nil {
		return
	}
	m.runsStarted.WithLabelValues(lab, algorithm).Inc()
}

// RunFinished records the end of a run and its duration.
func (m *Metrics) RunFinished(lab, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.runsFinished.WithLabelValues(lab, outcome).Inc()
	m.runDuration.WithLabelValues(lab).Observe(d.Seconds())
}

// Sink counts every event by kind and forwards it to next.
func (m *Metrics) Sink(next viz.Sink) viz.Sink {
	next = viz.OrNop(next)
	if m == nil {
		return next
	}

	return viz.SinkFunc(func(e viz.Event) {
		m.events.WithLabelValues(e.Kind.String()).Inc()
		next.Emit(e)
	})
}

// Cue counts swap cues and forwards them to next.
func (m *Metrics) Cue(next viz.Cue) viz.Cue {
	if next == nil {
		next = viz.NopCue
	}
	if m == nil {
		return next
	}

	return viz.CueFunc(func() {
		m.swapCues.Inc()
		next.Swap()
	})
}

// Observer returns a run.Observer counting controller transitions.
func (m *Metrics) Observer() run.Observer {
	if m == nil {
		return run.ObserverFuncs{}
	}
	inc := func(action string) func(run.Token) {
		return func(run.Token) { m.controls.WithLabelValues(action).Inc() }
	}

	return run.ObserverFuncs{
		Start:  inc("start"),
		Pause:  inc("pause"),
		Resume: inc("resume"),
		Cancel: inc("cancel"),
	}
}
