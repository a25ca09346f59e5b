// Package algoviz is a playground for watching classic algorithms run one
// step at a time: traversals, comparison sorts and the Tower of Hanoi, each
// pausable, resumable and cancelable mid-flight.
//
// 🚀 What is inside?
//
//	• Run control: epochs, tokens and a quantized suspension primitive (run/)
//	• Traversals: BFS, DFS and Dijkstra with path replay (bfs/, dfs/, dijkstra/)
//	• Sorting: an instrumented Helper plus bubble, selection, insertion,
//	  merge and quick sort (sorting/)
//	• Recursion: a compiled Hanoi instruction queue with auto-play and
//	  single-step drivers (hanoi/)
//	• Presentation: an ordered event stream, terminal rendering and swap cues (viz/)
//
// ✨ Why algoviz?
//
//   - Stale runs never corrupt state: every mutation commits against the run token
//   - Pause freezes time; resume and cancel answer within one poll interval
//   - Engines know nothing about rendering; they push events into a Sink
//
// Layout:
//
//	core/      — undirected weighted graph (≤ 30 nodes, no loops, no duplicates)
//	run/       — Controller, Suspend, Scope and the repeating Task
//	input/     — validation, parsing and random generators for lab input
//	lab/       — GraphLab, SortLab and Hanoi wiring behind one controller each
//	metrics/   — Prometheus counters for runs, events, cues and controls
//	cmd/algoviz — the terminal front end
//
// Quick ASCII example:
//
//	    0───1
//	     \  │
//	      \ │
//	        2
//
//	edges (0,1,4) (1,2,1) (0,2,10): Dijkstra from 0 visits [0 1 2] and
//	replays the path 0→1→2 of length 5.
//
//	go run ./cmd/algoviz graph --edge "0 1 4" --edge "1 2 1" --edge "0 2 10" --algo dijkstra
package algoviz

// Version is the release of the algoviz module and CLI.
const Version = "0.1.0"
