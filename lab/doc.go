// Package lab is the command surface of algoviz. A lab owns one run
// controller and the shared state of its kind (the built graph and its
// traversal trace, or the loaded sequence) and turns user commands into
// engine runs: build/load, run, pause, resume, toggle, cancel and reset.
//
// GraphLab lets a new run supersede the one in flight; the older run winds
// down on its own and never touches the trace again. SortLab is
// single-flight: Run refuses with ErrBusy while a sort is active.
//
// Every run gets a uuid that is attached to its log lines and its Report.
package lab
