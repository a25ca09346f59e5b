package dfs

import (
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// frame is one level of the explicit descent stack: the node, its adjacency
// snapshot, and the index of the next neighbor to examine.
type frame struct {
	node  int
	edges []core.Edge
	next  int
}

// walker holds mutable DFS state.
type walker struct {
	graph   *core.Graph
	opts    DFSOptions
	scope   run.Scope
	stack   []frame
	visited []bool
	res     *DFSResult
}

// DFS performs a paced depth-first traversal of g from start.
//
// The descent is driven by an explicit stack that reproduces recursive order
// exactly: a node is appended to the trace on entry, the run suspends, the
// node is settled, then each still-unvisited neighbor in adjacency order is
// highlighted and descended into. Liveness is re-checked after every
// suspension at every depth.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
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
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	w := &walker{
		graph:   g,
		opts:    o,
		scope:   ctl.Bind(o.Ctx, tok),
		visited: make([]bool, n),
		res:     &DFSResult{Order: make([]int, 0, n), Parent: parent},
	}

	return w.res, w.traverse(start)
}

func (w *walker) traverse(start int) error {
	if !w.scope.Do(func() { w.opts.Sink.Emit(viz.HeaderEvent("dfs")) }) {
		return w.abandon()
	}
	if ok, err := w.enter(start); !ok || err != nil {
		return err
	}

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if top.next >= len(top.edges) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		u, v := top.node, top.edges[top.next].To
		top.next++
		if w.visited[v] {
			continue
		}

		if !w.scope.Do(func() {
			w.res.Parent[v] = u
			w.opts.Sink.Emit(viz.Event{Kind: viz.EdgeHighlighted, From: u, To: v})
		}) {
			return w.abandon()
		}
		if ok, err := w.enter(v); !ok || err != nil {
			return err
		}
	}
	w.scope.Finish()

	return nil
}

// enter visits u, paces, settles it and pushes its frame. It reports false
// when the run went stale; err is then the context error, if any.
func (w *walker) enter(u int) (bool, error) {
	w.visited[u] = true
	if !w.scope.Do(func() {
		w.res.Order = append(w.res.Order, u)
		w.opts.Sink.Emit(viz.Event{Kind: viz.NodeVisited, Node: u})
	}) {
		return false, w.abandon()
	}
	if !w.scope.Wait(w.opts.Delay) {
		return false, w.abandon()
	}

	var (
		edges []core.Edge
		err   error
	)
	if !w.scope.Do(func() {
		w.opts.Sink.Emit(viz.Event{Kind: viz.NodeSettled, Node: u})
		edges, err = w.graph.Neighbors(u)
	}) {
		return false, w.abandon()
	}
	if err != nil {
		return false, err
	}
	w.stack = append(w.stack, frame{node: u, edges: edges})

	return true, nil
}

func (w *walker) abandon() error {
	w.res.Abandoned = true

	return w.scope.Err()
}
