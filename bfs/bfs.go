package bfs

import (
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	scope   run.Scope
	queue   []int
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start, one paced visit at
// a time. Returns ErrGraphNil, ErrStartOutOfRange or ErrOptionViolation for
// invalid input, before any event is emitted.
//
// A run that is superseded or cancelled through its controller stops quietly:
// the partial result comes back with Abandoned set and a nil error. If the
// context ends first, ctx.Err() is returned alongside the partial result.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
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

	ctl, tok := o.Run, o.Token
	if ctl == nil {
		ctl = run.NewController()
		tok = ctl.Start()
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		scope:   ctl.Bind(o.Ctx, tok),
		queue:   make([]int, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  filled(n, -1),
			Parent: filled(n, -1),
		},
	}

	return w.res, w.loop(start)
}

// loop processes the queue until it drains or the run goes stale.
func (w *walker) loop(start int) error {
	if !w.scope.Do(func() { w.opts.Sink.Emit(viz.HeaderEvent("bfs")) }) {
		return w.abandon()
	}
	// seed: visited at enqueue time
	w.visited[start] = true
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]

		if !w.scope.Do(func() { w.visit(u) }) {
			return w.abandon()
		}
		if !w.scope.Wait(w.opts.Delay) {
			return w.abandon()
		}
		var err error
		if !w.scope.Do(func() { err = w.settle(u) }) {
			return w.abandon()
		}
		if err != nil {
			return err
		}
	}
	w.scope.Finish()

	return nil
}

// visit appends u to the trace.
func (w *walker) visit(u int) {
	w.res.Order = append(w.res.Order, u)
	w.opts.Sink.Emit(viz.Event{Kind: viz.NodeVisited, Node: u})
}

// settle marks u complete and enqueues each unseen neighbor in adjacency order.
func (w *walker) settle(u int) error {
	w.opts.Sink.Emit(viz.Event{Kind: viz.NodeSettled, Node: u})

	edges, err := w.graph.Neighbors(u)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if w.visited[e.To] {
			continue
		}
		w.visited[e.To] = true
		w.res.Depth[e.To] = w.res.Depth[u] + 1
		w.res.Parent[e.To] = u
		w.opts.Sink.Emit(viz.Event{Kind: viz.EdgeHighlighted, From: u, To: e.To})
		w.queue = append(w.queue, e.To)
	}

	return nil
}

func (w *walker) abandon() error {
	w.res.Abandoned = true

	return w.scope.Err()
}

func filled(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
