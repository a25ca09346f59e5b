package lab

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/dijkstra"
	"github.com/katalvlaran/algoviz/input"
	"github.com/katalvlaran/algoviz/run"
	"github.com/katalvlaran/algoviz/viz"
)

// GraphAlgorithms lists the traversal keys GraphLab.Run accepts.
var GraphAlgorithms = []string{"bfs", "dfs", "dijkstra"}

// GraphLab runs traversals over one built graph.
//
// The traversal trace is appended from NodeVisited events, which engines
// emit inside a controller commit, so only the current run ever writes it.
type GraphLab struct {
	controls
	s    settings
	sink viz.Sink

	mu    sync.Mutex
	graph *core.Graph
	start int
	trace []int
}

// NewGraphLab returns a lab with no graph.
func NewGraphLab(opts ...Option) *GraphLab {
	s := newSettings(opts)
	l := &GraphLab{controls: controls{ctl: s.controller()}, s: s}
	l.sink = s.metrics.Sink(viz.Multi(s.sink, viz.SinkFunc(l.record)))

	return l
}

// Build validates in, replaces the graph and cancels any run.
// On error the previous graph is kept.
func (l *GraphLab) Build(in input.GraphInput) error {
	g, err := in.Build()
	if err != nil {
		return err
	}
	l.ctl.Cancel()

	l.mu.Lock()
	l.graph = g
	l.start = in.Start
	l.trace = l.trace[:0]
	l.mu.Unlock()

	l.sink.Emit(viz.Event{Kind: viz.RunReset})
	l.s.logger.Debug("graph built", "nodes", g.Len(), "edges", g.EdgeCount(), "start", in.Start)

	return nil
}

// BuildRandom builds a random connected graph of n nodes.
func (l *GraphLab) BuildRandom(n, start int, rng *rand.Rand) error {
	in, err := input.RandomGraph(n, start, rng)
	if err != nil {
		return err
	}

	return l.Build(in)
}

// Graph returns the built graph, or nil.
func (l *GraphLab) Graph() *core.Graph {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.graph
}

// Trace returns a copy of the traversal trace of the latest run.
func (l *GraphLab) Trace() []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]int(nil), l.trace...)
}

// Run starts algo on the built graph and blocks until it ends. Any run in
// flight is superseded first. A superseded or cancelled run reports
// Abandoned with a nil error; a context that ends yields its error.
func (l *GraphLab) Run(ctx context.Context, algo string) (*Report, error) {
	key := strings.ToLower(strings.TrimSpace(algo))
	if !slices.Contains(GraphAlgorithms, key) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
	l.mu.Lock()
	g, start := l.graph, l.start
	l.mu.Unlock()
	if g == nil {
		return nil, ErrNoGraph
	}
	if key == "dijkstra" && l.s.destination >= g.Len() {
		return nil, fmt.Errorf("%w: %d", dijkstra.ErrDestinationOutOfRange, l.s.destination)
	}

	tok := l.ctl.Start()
	rep := newReport("graph", key)
	l.s.metrics.RunStarted(rep.Lab, key)
	l.s.logger.Debug("run started", "run_id", rep.ID.String(), "algorithm", key, "token", tok)
	began := time.Now()

	l.ctl.Commit(tok, func() {
		l.mu.Lock()
		l.trace = l.trace[:0]
		l.mu.Unlock()
		l.sink.Emit(viz.Event{Kind: viz.RunReset})
	})

	var err error
	switch key {
	case "bfs":
		err = l.runBFS(ctx, g, start, tok, rep)
	case "dfs":
		err = l.runDFS(ctx, g, start, tok, rep)
	case "dijkstra":
		err = l.runDijkstra(ctx, g, start, tok, rep)
	}
	conclude(l.s, l.ctl, tok, rep, err, began)

	return rep, err
}

// Cancel stops the active run. The trace is kept.
func (l *GraphLab) Cancel() { l.ctl.Cancel() }

// Reset cancels the active run and clears the trace. The graph is kept.
func (l *GraphLab) Reset() {
	l.ctl.Cancel()
	l.mu.Lock()
	l.trace = l.trace[:0]
	l.mu.Unlock()
	l.sink.Emit(viz.Event{Kind: viz.RunReset})
}

func (l *GraphLab) runBFS(ctx context.Context, g *core.Graph, start int, tok run.Token, rep *Report) error {
	res, err := bfs.BFS(g, start,
		bfs.WithContext(ctx),
		bfs.WithRun(l.ctl, tok),
		bfs.WithDelay(l.s.delayOr(bfs.DefaultDelay)),
		bfs.WithSink(l.sink),
	)
	if res != nil {
		rep.Order, rep.Parent, rep.Depth, rep.Abandoned = res.Order, res.Parent, res.Depth, res.Abandoned
	}

	return err
}

func (l *GraphLab) runDFS(ctx context.Context, g *core.Graph, start int, tok run.Token, rep *Report) error {
	res, err := dfs.DFS(g, start,
		dfs.WithContext(ctx),
		dfs.WithRun(l.ctl, tok),
		dfs.WithDelay(l.s.delayOr(dfs.DefaultDelay)),
		dfs.WithSink(l.sink),
	)
	if res != nil {
		rep.Order, rep.Parent, rep.Abandoned = res.Order, res.Parent, res.Abandoned
	}

	return err
}

func (l *GraphLab) runDijkstra(ctx context.Context, g *core.Graph, start int, tok run.Token, rep *Report) error {
	opts := []dijkstra.Option{
		dijkstra.WithContext(ctx),
		dijkstra.WithRun(l.ctl, tok),
		dijkstra.WithDelay(l.s.delayOr(dijkstra.DefaultDelay)),
		dijkstra.WithSink(l.sink),
	}
	if l.s.destination >= 0 {
		opts = append(opts, dijkstra.WithDestination(l.s.destination))
	}
	res, err := dijkstra.Dijkstra(g, start, opts...)
	if res != nil {
		rep.Order, rep.Parent, rep.Dist, rep.Path, rep.Abandoned = res.Order, res.Parent, res.Dist, res.Path, res.Abandoned
	}

	return err
}

// record appends visited nodes to the trace. Engines call it inside a commit.
func (l *GraphLab) record(e viz.Event) {
	if e.Kind != viz.NodeVisited {
		return
	}
	l.mu.Lock()
	l.trace = append(l.trace, e.Node)
	l.mu.Unlock()
}
