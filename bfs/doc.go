// Package bfs provides an instrumented breadth-first search over a core.Graph.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Every dequeued node is appended to the trace and announced with
//     viz.NodeVisited, then the run suspends for the pacing delay, then the
//     node is settled (viz.NodeSettled) and its unseen neighbors are
//     highlighted (viz.EdgeHighlighted) and enqueued.
//   - A node is marked visited when it is enqueued, so it enters the queue
//     and the trace at most once.
//
// Run binding
//
//	BFS shares a run.Controller with the rest of a lab through WithRun.
//	Every mutation and every event goes through Controller.Commit, so once a
//	newer run has started nothing from the old one reaches the sink. Pause
//	and resume act on the controller; the engine only observes them inside
//	its suspension.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E) plus V pacing delays
//   - Memory: O(V)
//
// Usage
//
//	ctl := run.NewController()
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithRun(ctl, ctl.Start()),
//	    bfs.WithDelay(200*time.Millisecond),
//	    bfs.WithSink(sink),
//	)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartOutOfRange  if start is not in [0, N).
//   - ErrOptionViolation  for a negative delay.
//   - ctx.Err()           when the context ends mid-run.
package bfs
