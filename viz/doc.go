// Package viz is the boundary between the engines and whatever draws them.
//
// Engines never query render state; they push Events into a Sink in the exact
// order the algorithm produces them, and ring a Cue on every successful swap.
// Recorder captures events for tests, TextSink draws them on a terminal,
// LogSink streams them to slog, and Multi fans out to several sinks.
//
// Complexity holds the static time/space labels shown in run headers.
package viz
