package sorting

import (
	"sync"

	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// Helper is the instrumentation engine every sort algorithm goes through.
// It owns all mutation of its Sequence and turns each primitive into paced,
// counted, cancel-aware events.
//
// Compare, Swap, Write and Tick stop working once the run is stale: they
// return false and change nothing. Mark, MarkSpecial, Unmark and Done are
// cosmetic and keep emitting after a cancel, but go quiet once a newer run
// has started on the same controller.
type Helper struct {
	seq   *Sequence
	opts  Options
	scope run.Scope

	mu    sync.Mutex
	steps int
	tags  map[int]Tag
}

// NewHelper binds seq to a run. Without WithRun it starts a fresh run on a
// private controller.
func NewHelper(seq *Sequence, opts ...Option) (*Helper, error) {
	if seq == nil {
		return nil, ErrEmptySequence
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	ctl, tok := o.Run, o.Token
	if ctl == nil {
		ctl = run.NewController()
		tok = ctl.Start()
	}

	return &Helper{
		seq:   seq,
		opts:  o,
		scope: ctl.Bind(o.Ctx, tok),
		tags:  make(map[int]Tag),
	}, nil
}

// Len returns the sequence length.
func (h *Helper) Len() int { return h.seq.Len() }

// Value returns the current value at i, or 0 when out of range.
func (h *Helper) Value(i int) int {
	e, _ := h.seq.At(i)

	return e.Value
}

// At returns the current element at i.
func (h *Helper) At(i int) (Element, bool) { return h.seq.At(i) }

// Values returns a copy of the current values.
func (h *Helper) Values() []int { return h.seq.Values() }

// Heights returns the current bar heights.
func (h *Helper) Heights() []float64 {
	return h.seq.Heights(h.opts.MaxHeight, h.opts.MinHeight)
}

// Steps returns the step counter.
func (h *Helper) Steps() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.steps
}

// Stopped reports whether the run is no longer active.
func (h *Helper) Stopped() bool { return !h.scope.Live() }

// Err returns the context error once the run was stopped by its context.
func (h *Helper) Err() error { return h.scope.Err() }

// Finish marks the run complete when it is still active.
func (h *Helper) Finish() bool { return h.scope.Finish() }

// Tag returns the cosmetic tag of cell i.
func (h *Helper) Tag(i int) Tag {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.tags[i]
}

// Compare paces, counts a step and reports value[i] > value[j].
// A stale run or an index out of range yields false.
func (h *Helper) Compare(i, j int) bool {
	if h.Stopped() || !h.seq.inRange(i, j) {
		return false
	}
	if !h.scope.Wait(h.opts.Delay) {
		return false
	}

	var greater bool
	ok := h.scope.Do(func() {
		h.step()
		greater = h.Value(i) > h.Value(j)
	})

	return ok && greater
}

// Swap paces, counts a step, rings the cue once and exchanges i and j.
// Heights are recomputed for every cell since the maximum may move.
func (h *Helper) Swap(i, j int) bool {
	if h.Stopped() || !h.seq.inRange(i, j) {
		return false
	}
	if !h.scope.Wait(h.opts.Delay) {
		return false
	}

	return h.scope.Do(func() {
		h.step()
		h.opts.Cue.Swap()

		h.seq.mu.Lock()
		h.seq.elems[i], h.seq.elems[j] = h.seq.elems[j], h.seq.elems[i]
		hs := heights(h.seq.elems, h.opts.MaxHeight, h.opts.MinHeight)
		h.seq.mu.Unlock()

		h.opts.Sink.Emit(viz.Event{Kind: viz.CellSwapped, Index: i, Other: j, Heights: hs})
	})
}

// Write paces, counts a step and assigns e at i. It never rings the cue.
func (h *Helper) Write(i int, e Element) bool {
	if h.Stopped() || !h.seq.inRange(i) {
		return false
	}
	if !h.scope.Wait(h.opts.Delay) {
		return false
	}

	return h.scope.Do(func() {
		h.step()

		h.seq.mu.Lock()
		h.seq.elems[i] = e
		hs := heights(h.seq.elems, h.opts.MaxHeight, h.opts.MinHeight)
		h.seq.mu.Unlock()

		h.opts.Sink.Emit(viz.Event{Kind: viz.CellWritten, Index: i, Value: e.Value, Height: hs[i], Heights: hs})
	})
}

// Tick counts a step without pacing, for comparisons an algorithm makes by
// reading values directly.
func (h *Helper) Tick() bool {
	return h.scope.Do(h.step)
}

// Mark tags i as the scan cursor.
func (h *Helper) Mark(i int) { h.tag(i, TagMarked, viz.CellMarked) }

// MarkSpecial tags i as a pivot or tentative minimum.
func (h *Helper) MarkSpecial(i int) { h.tag(i, TagSpecial, viz.CellSpecial) }

// Unmark clears the tag of i.
func (h *Helper) Unmark(i int) { h.tag(i, TagNone, viz.CellUnmarked) }

// Done tags i as settled in its final position.
func (h *Helper) Done(i int) { h.tag(i, TagDone, viz.CellDone) }

func (h *Helper) tag(i int, t Tag, k viz.Kind) {
	if !h.seq.inRange(i) || !h.scope.Controller().IsCurrent(h.scope.Token()) {
		return
	}
	h.mu.Lock()
	if t == TagNone {
		delete(h.tags, i)
	} else {
		h.tags[i] = t
	}
	h.mu.Unlock()
	h.opts.Sink.Emit(viz.Event{Kind: k, Index: i})
}

// step must run inside a commit.
func (h *Helper) step() {
	h.mu.Lock()
	h.steps++
	n := h.steps
	h.mu.Unlock()
	h.opts.Sink.Emit(viz.Event{Kind: viz.StepCounted, Steps: n})
}

// Header emits the run header for key while the run is live.
func (h *Helper) Header(key string) bool {
	return h.scope.Do(func() { h.opts.Sink.Emit(viz.HeaderEvent(key)) })
}
