// Package dijkstra implements an instrumented single-source shortest-path
// search over a core.Graph with non-negative edge weights.
//
// The selection is the classic O(V²) scan rather than a heap: each step picks
// the unvisited node with the smallest finite distance (ties to the lowest
// id), so the visit order is easy to follow on screen. The search stops as
// soon as only unreachable nodes remain.
//
// After the main loop the shortest path to a destination node (N-1 unless
// WithDestination says otherwise) is rebuilt from Parent and replayed as
// viz.PathNodeGlow / viz.PathEdgeGlow events, paced like the visits and
// equally subject to pause and cancel.
//
// Complexity:
//
//	– Time:  O(V² + E) plus V + |path| pacing delays
//	– Space: O(V)
//
// Errors (sentinel):
//
//	– ErrNilGraph               if the provided graph pointer is nil.
//	– ErrStartOutOfRange        if start is not in [0, N).
//	– ErrDestinationOutOfRange  if the destination is not in [0, N).
//	– ErrBadDelay               if Delay < 0.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, 0,
//	    dijkstra.WithRun(ctl, tok),
//	    dijkstra.WithDestination(4),
//	    dijkstra.WithSink(sink),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Dist[4], res.Path)
package dijkstra
