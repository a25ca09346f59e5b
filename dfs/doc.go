// Package dfs implements an instrumented depth-first traversal on a core.Graph.
//
// What:
//
//   - DFS enters a node (trace append + viz.NodeVisited), suspends for the
//     pacing delay, settles it (viz.NodeSettled), then descends into every
//     still-unvisited neighbor in adjacency order, highlighting the tree edge
//     (viz.EdgeHighlighted) first.
//   - Recursion is replaced by an explicit frame stack, so suspension and
//     staleness checks look the same at every depth.
//
// Key Types:
//
//   - Option / DFSOptions: Context, run binding, Delay, Sink
//   - DFSResult: pre-order trace, Parent links, Abandoned flag
//
// Complexity:
//
//   - Time O(V+E) plus V pacing delays, Memory O(V+E) for the frame snapshots
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrStartOutOfRange   start not in [0, N)
//   - ErrOptionViolation   negative delay
//   - context.Canceled     DFS canceled via context
package dfs
