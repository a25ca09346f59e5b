package lab

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/katalvlaran/algoviz/input"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/viz"
)

// SortLab sorts one loaded sequence in place, one sort at a time.
type SortLab struct {
	controls
	s    settings
	sink viz.Sink
	cue  viz.Cue

	mu     sync.Mutex
	seq    *sorting.Sequence
	helper *sorting.Helper
	speed  float64
}

// NewSortLab returns a lab with no sequence.
func NewSortLab(opts ...Option) *SortLab {
	s := newSettings(opts)

	return &SortLab{
		controls: controls{ctl: s.controller()},
		s:        s,
		sink:     s.metrics.Sink(s.sink),
		cue:      s.metrics.Cue(s.cue),
		speed:    s.speed,
	}
}

// Load validates in and replaces the sequence. A positive in.Speed also
// becomes the lab speed. Loading while a sort is active fails with ErrBusy.
func (l *SortLab) Load(in input.SortInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	if l.ctl.Running() {
		l.mu.Unlock()
		return ErrBusy
	}
	l.seq = sorting.NewSequence(in.Values)
	l.helper = nil
	if in.Speed > 0 {
		l.speed = in.Speed
	}
	l.mu.Unlock()

	l.sink.Emit(viz.Event{Kind: viz.RunReset})

	return nil
}

// LoadRandom loads size random values.
func (l *SortLab) LoadRandom(size int, rng *rand.Rand) error {
	values, err := input.RandomValues(size, rng)
	if err != nil {
		return err
	}

	return l.Load(input.SortInput{Values: values})
}

// SetSpeed changes the speed of the next sort.
func (l *SortLab) SetSpeed(speed float64) {
	l.mu.Lock()
	l.speed = input.Speed(speed)
	l.mu.Unlock()
}

// Values returns the current sequence values, or nil before Load.
func (l *SortLab) Values() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seq == nil {
		return nil
	}

	return l.seq.Values()
}

// Steps returns the step counter of the latest sort.
func (l *SortLab) Steps() int {
	l.mu.Lock()
	h := l.helper
	l.mu.Unlock()
	if h == nil {
		return 0
	}

	return h.Steps()
}

// Run sorts the loaded sequence in place with the algorithm registered
// under key and blocks until the sort ends.
func (l *SortLab) Run(ctx context.Context, key string) (*Report, error) {
	algo, ok := sorting.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, key)
	}

	l.mu.Lock()
	if l.seq == nil {
		l.mu.Unlock()
		return nil, ErrNoSequence
	}
	if l.ctl.Running() {
		l.mu.Unlock()
		return nil, ErrBusy
	}
	tok := l.ctl.Start()
	h, err := sorting.NewHelper(l.seq,
		sorting.WithContext(ctx),
		sorting.WithRun(l.ctl, tok),
		sorting.WithSpeed(l.speed),
		sorting.WithSink(l.sink),
		sorting.WithCue(l.cue),
		sorting.WithScale(l.s.maxHeight, 0),
	)
	if err != nil {
		l.mu.Unlock()
		l.ctl.Cancel()
		return nil, err
	}
	l.helper = h
	l.mu.Unlock()

	rep := newReport("sort", algo.Key)
	l.s.metrics.RunStarted(rep.Lab, algo.Key)
	l.s.logger.Debug("run started", "run_id", rep.ID.String(), "algorithm", algo.Key, "token", tok)
	began := time.Now()

	completed := algo.Run(h)
	rep.Values = h.Values()
	rep.Steps = h.Steps()
	rep.Abandoned = !completed
	if !completed {
		err = h.Err()
	}
	conclude(l.s, l.ctl, tok, rep, err, began)

	return rep, err
}

// Cancel stops the active sort. The sequence keeps its current order.
func (l *SortLab) Cancel() { l.ctl.Cancel() }

// Reset cancels the active sort and unloads the sequence.
func (l *SortLab) Reset() {
	l.ctl.Cancel()
	l.mu.Lock()
	l.seq = nil
	l.helper = nil
	l.mu.Unlock()
	l.sink.Emit(viz.Event{Kind: viz.RunReset})
}
