// Package sorting holds the comparison-instrumentation engine and the sort
// algorithms built on it.
//
// A Helper wraps a Sequence and exposes the only operations a sort may use:
// Compare, Swap and Write are paced through the run controller, counted as
// steps and checked for staleness before and after their suspension; Mark,
// MarkSpecial, Unmark and Done are free cosmetic tags. Swap rings the audio
// cue exactly once, Write never does. Every Swap and Write recomputes all bar
// heights, since the maximum value can move.
//
// The algorithms (Bubble, Selection, Insertion, Merge, Quick) contain no
// presentation logic and check Helper.Stopped at every loop boundary.
//
//	seq := sorting.NewSequence([]int{5, 3, 8, 1})
//	h, _ := sorting.NewHelper(seq, sorting.WithSpeed(4), sorting.WithSink(sink))
//	algo, _ := sorting.Lookup("bubble")
//	algo.Run(h)
package sorting
