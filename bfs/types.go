package bfs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// DefaultDelay is the pause between visiting a node and settling it.
const DefaultDelay = 600 * time.Millisecond

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start node is outside [0, N).
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds the run binding and presentation hooks of one BFS.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Run and Token bind the traversal to an existing run. When Run is nil
	// BFS starts a fresh run on a private controller.
	Run   *run.Controller
	Token run.Token

	// Delay is the pacing interval spent on every visited node.
	Delay time.Duration

	// Sink receives the visualization events.
	Sink viz.Sink

	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - context.Background()
//   - a private run controller
//   - DefaultDelay pacing
//   - events discarded
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:   context.Background(),
		Delay: DefaultDelay,
		Sink:  viz.Nop,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithRun binds BFS to run t of ctl. The caller owns the Start.
func WithRun(ctl *run.Controller, t run.Token) Option {
	return func(o *BFSOptions) {
		o.Run = ctl
		o.Token = t
	}
}

// WithDelay sets the per-node pacing interval.
//
//	d > 0: wait d of unpaused time per node
//	d == 0: no waiting, only liveness checks
//	d < 0: invalid option → ErrOptionViolation
func WithDelay(d time.Duration) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithSink routes visualization events to s.
func WithSink(s viz.Sink) Option {
	return func(o *BFSOptions) {
		o.Sink = viz.OrNop(s)
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: nodes in visit sequence (the traversal trace).
//   - Depth: hop distance from the start, -1 when unreached.
//   - Parent: predecessor in the BFS tree, -1 for the start and unreached nodes.
//   - Abandoned: the run was superseded or cancelled before the queue drained.
type BFSResult struct {
	Order     []int
	Depth     []int
	Parent    []int
	Abandoned bool
}

// PathTo reconstructs the hop-shortest path from the start node to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] < 0 {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
