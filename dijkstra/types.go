package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// Unreachable is the distance reported for nodes not reachable from the source.
const Unreachable int64 = math.MaxInt64

// DefaultDelay paces both node visits and path-highlight segments.
const DefaultDelay = 600 * time.Millisecond

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartOutOfRange indicates a source node outside [0, N).
	ErrStartOutOfRange = errors.New("dijkstra: start node out of range")

	// ErrDestinationOutOfRange indicates a destination outside [0, N).
	ErrDestinationOutOfRange = errors.New("dijkstra: destination out of range")

	// ErrBadDelay indicates a negative pacing delay.
	ErrBadDelay = errors.New("dijkstra: Delay must be non-negative")
)

// noDestination selects the default destination, the last node id.
const noDestination = -1

// Options configures a Dijkstra run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Run and Token bind the search to an existing run; nil Run means a
	// private controller and a fresh run.
	Run   *run.Controller
	Token run.Token

	// Delay paces every visit and every highlighted path segment.
	Delay time.Duration

	// Destination is the node whose shortest path is replayed after the
	// main loop. Negative selects N-1.
	Destination int

	// Sink receives the visualization events.
	Sink viz.Sink

	err error
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// DefaultOptions returns background context, DefaultDelay, destination N-1
// and a discarding sink.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Delay:       DefaultDelay,
		Destination: noDestination,
		Sink:        viz.Nop,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRun binds the search to run t of ctl.
func WithRun(ctl *run.Controller, t run.Token) Option {
	return func(o *Options) {
		o.Run = ctl
		o.Token = t
	}
}

// WithDelay sets the pacing interval.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: got %v", ErrBadDelay, d)
			return
		}
		o.Delay = d
	}
}

// WithDestination selects the node whose path is highlighted.
// Validated against the graph when Dijkstra runs.
func WithDestination(dest int) Option {
	return func(o *Options) {
		if dest < 0 {
			o.err = fmt.Errorf("%w: %d", ErrDestinationOutOfRange, dest)
			return
		}
		o.Destination = dest
	}
}

// WithSink routes visualization events to s.
func WithSink(s viz.Sink) Option {
	return func(o *Options) {
		o.Sink = viz.OrNop(s)
	}
}

// Result is the outcome of one Dijkstra run.
type Result struct {
	// Order is the selection order (the traversal trace).
	Order []int

	// Dist holds shortest distances; Unreachable for nodes never settled.
	Dist []int64

	// Parent holds shortest-path predecessors; -1 for the source and
	// unreached nodes.
	Parent []int

	// Destination is the node the path was reconstructed for.
	Destination int

	// Path runs from the source to Destination; empty when unreachable.
	Path []int

	// Abandoned is set when the run went stale before finishing.
	Abandoned bool
}
