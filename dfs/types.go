package dfs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// DefaultDelay is the pause between entering a node and settling it.
const DefaultDelay = 600 * time.Millisecond

// Sentinel errors for DFS.
var (
	// ErrGraphNil is returned when the input graph pointer is nil.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange is returned when the start node is outside [0, N).
	ErrStartOutOfRange = errors.New("dfs: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS behavior.
type Option func(*DFSOptions)

// DFSOptions holds the run binding and presentation hooks of one DFS.
type DFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Run and Token bind the traversal to an existing run; nil Run means a
	// private controller and a fresh run.
	Run   *run.Controller
	Token run.Token

	// Delay is the pacing interval spent on every entered node.
	Delay time.Duration

	// Sink receives the visualization events.
	Sink viz.Sink

	err error
}

// DefaultOptions returns background context, DefaultDelay and a discarding sink.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:   context.Background(),
		Delay: DefaultDelay,
		Sink:  viz.Nop,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRun binds DFS to run t of ctl.
func WithRun(ctl *run.Controller, t run.Token) Option {
	return func(o *DFSOptions) {
		o.Run = ctl
		o.Token = t
	}
}

// WithDelay sets the per-node pacing interval. Negative values are rejected.
func WithDelay(d time.Duration) Option {
	return func(o *DFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithSink routes visualization events to s.
func WithSink(s viz.Sink) Option {
	return func(o *DFSOptions) {
		o.Sink = viz.OrNop(s)
	}
}

// DFSResult holds the outcome of a DFS traversal.
type DFSResult struct {
	// Order lists nodes in pre-order (entry) sequence.
	Order []int

	// Parent maps each reached node to its DFS-tree predecessor; -1 for the
	// start node and for unreached nodes.
	Parent []int

	// Abandoned is set when the run went stale before the traversal ended.
	Abandoned bool
}
