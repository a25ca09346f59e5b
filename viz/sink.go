package viz

import (
	"context"
	"log/slog"
	"sync"
)

// Sink receives presentation events. Engines call Emit from their run
// goroutine, in the logical order of the algorithm; implementations must not
// call back into the engine or its run controller.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) { f(e) }

// Nop discards every event.
var Nop Sink = SinkFunc(func(Event) {})

// OrNop returns s, or Nop when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop
	}

	return s
}

// Multi fans each event out to every non-nil sink, in order.
func Multi(sinks ...Sink) Sink {
	out := make([]Sink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}

	return SinkFunc(func(e Event) {
		for _, s := range out {
			s.Emit(e)
		}
	})
}

// Recorder keeps every event in memory. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit appends e.
func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

// Kinds returns the recorded kinds, optionally restricted to the given set.
func (r *Recorder) Kinds(only ...Kind) []Kind {
	keep := make(map[Kind]bool, len(only))
	for _, k := range only {
		keep[k] = true
	}
	var out []Kind
	for _, e := range r.Events() {
		if len(keep) == 0 || keep[e.Kind] {
			out = append(out, e.Kind)
		}
	}

	return out
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k Kind) int {
	n := 0
	for _, e := range r.Events() {
		if e.Kind == k {
			n++
		}
	}

	return n
}

// Nodes returns the Node field of every event of kind k, in order.
func (r *Recorder) Nodes(k Kind) []int {
	var out []int
	for _, e := range r.Events() {
		if e.Kind == k {
			out = append(out, e.Node)
		}
	}

	return out
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.events = nil
	r.mu.Unlock()
}

// LogSink writes each event to logger at debug level.
func LogSink(logger *slog.Logger) Sink {
	return SinkFunc(func(e Event) {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "event",
			slog.String("kind", e.Kind.String()),
			slog.String("detail", e.String()),
		)
	})
}

// Cue is the fire-and-forget audio notification played on successful swaps.
type Cue interface {
	Swap()
}

// CueFunc adapts a function to Cue.
type CueFunc func()

// Swap calls f.
func (f CueFunc) Swap() { f() }

// NopCue is a silent Cue.
var NopCue Cue = CueFunc(func() {})
