package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// Dijkstra computes single-source shortest paths on g from start with the
// classic O(V²) selection, one paced visit at a time, then replays the
// shortest path to the destination as a highlighted sequence.
//
// Steps:
//  1. Validate graph, start, destination and options; nothing is emitted on error.
//  2. Select the unvisited node with the smallest finite distance, ties going
//     to the lowest id. Stop when none is left.
//  3. Mark it visited, append it to the trace, suspend, then settle it and
//     relax its edges with a strict "<".
//  4. Walk Parent back from the destination, reverse, and glow each node and
//     edge of the path, suspending after every segment.
//
// The replay honors pause and cancel exactly like the main loop.
func Dijkstra(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, ErrStartOutOfRange
	}
	n := g.Len()
	dest := o.Destination
	if dest == noDestination {
		dest = n - 1
	}
	if !g.HasNode(dest) {
		return nil, fmt.Errorf("%w: %d", ErrDestinationOutOfRange, dest)
	}

	ctl, tok := o.Run, o.Token
	if ctl == nil {
		ctl = run.NewController()
		tok = ctl.Start()
	}

	r := &runner{
		graph:   g,
		opts:    o,
		scope:   ctl.Bind(o.Ctx, tok),
		start:   start,
		visited: make([]bool, n),
		res: &Result{
			Order:       make([]int, 0, n),
			Dist:        make([]int64, n),
			Parent:      make([]int, n),
			Destination: dest,
		},
	}
	for i := 0; i < n; i++ {
		r.res.Dist[i] = Unreachable
		r.res.Parent[i] = -1
	}
	r.res.Dist[start] = 0

	return r.res, r.run()
}

// runner holds mutable state for one execution.
type runner struct {
	graph   *core.Graph
	opts    Options
	scope   run.Scope
	start   int
	visited []bool
	res     *Result
}

func (r *runner) run() error {
	if !r.scope.Do(func() { r.opts.Sink.Emit(viz.HeaderEvent("dijkstra")) }) {
		return r.abandon()
	}
	if ok, err := r.process(); !ok || err != nil {
		return err
	}
	if !r.highlight() {
		return r.abandon()
	}
	r.scope.Finish()

	return nil
}

// process runs the selection loop. It reports false when the run went stale.
func (r *runner) process() (bool, error) {
	for {
		u := r.selectMin()
		if u < 0 {
			return true, nil
		}
		r.visited[u] = true

		if !r.scope.Do(func() {
			r.res.Order = append(r.res.Order, u)
			r.opts.Sink.Emit(viz.Event{Kind: viz.NodeVisited, Node: u})
		}) {
			return false, r.abandon()
		}
		if !r.scope.Wait(r.opts.Delay) {
			return false, r.abandon()
		}
		var err error
		if !r.scope.Do(func() {
			r.opts.Sink.Emit(viz.Event{Kind: viz.NodeSettled, Node: u})
			err = r.relax(u)
		}) {
			return false, r.abandon()
		}
		if err != nil {
			return false, err
		}
	}
}

// selectMin returns the unvisited node with the smallest finite distance,
// or -1. The strict comparison keeps the lowest id on ties.
func (r *runner) selectMin() int {
	u := -1
	for j, d := range r.res.Dist {
		if r.visited[j] || d == Unreachable {
			continue
		}
		if u == -1 || d < r.res.Dist[u] {
			u = j
		}
	}

	return u
}

// relax lowers the distance of every neighbor reachable more cheaply via u.
func (r *runner) relax(u int) error {
	edges, err := r.graph.Neighbors(u)
	if err != nil {
		return err
	}
	du := r.res.Dist[u]
	for _, e := range edges {
		if e.Weight > Unreachable-du {
			continue
		}
		if nd := du + e.Weight; nd < r.res.Dist[e.To] {
			r.res.Dist[e.To] = nd
			r.res.Parent[e.To] = u
		}
	}

	return nil
}

// pathTo walks Parent back from dest; nil when dest is unreachable.
func (r *runner) pathTo(dest int) []int {
	if r.res.Dist[dest] == Unreachable {
		return nil
	}
	var path []int
	for cur := dest; cur >= 0; cur = r.res.Parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// highlight replays the destination path. It reports false when the run went stale.
func (r *runner) highlight() bool {
	path := r.pathTo(r.res.Destination)
	r.res.Path = path
	if len(path) == 0 {
		return true
	}
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		if !r.scope.Do(func() {
			r.opts.Sink.Emit(viz.Event{Kind: viz.PathNodeGlow, Node: a})
			r.opts.Sink.Emit(viz.Event{Kind: viz.PathEdgeGlow, From: a, To: b})
		}) {
			return false
		}
		if !r.scope.Wait(r.opts.Delay) {
			return false
		}
	}

	return r.scope.Do(func() {
		r.opts.Sink.Emit(viz.Event{Kind: viz.PathNodeGlow, Node: path[len(path)-1]})
	})
}

func (r *runner) abandon() error {
	r.res.Abandoned = true

	return r.scope.Err()
}
