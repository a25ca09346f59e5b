package viz

import "strings"

// complexity is the static label table shown in run headers.
var complexity = map[string]Header{
	"bfs":       {Algorithm: "BFS", Time: "O(V + E)", Space: "O(V)"},
	"dfs":       {Algorithm: "DFS", Time: "O(V + E)", Space: "O(V)"},
	"dijkstra":  {Algorithm: "DIJKSTRA", Time: "O(V²)", Space: "O(V)"},
	"bubble":    {Algorithm: "Bubble Sort", Time: "O(n²)", Space: "O(1)"},
	"selection": {Algorithm: "Selection Sort", Time: "O(n²)", Space: "O(1)"},
	"insertion": {Algorithm: "Insertion Sort", Time: "O(n²)", Space: "O(1)"},
	"merge":     {Algorithm: "Merge Sort", Time: "O(n log n)", Space: "O(n)"},
	"quick":     {Algorithm: "Quick Sort", Time: "Avg O(n log n)", Space: "O(log n)"},
	"hanoi":     {Algorithm: "Tower of Hanoi", Time: "O(2ⁿ)", Space: "O(n)"},
}

// Complexity returns the header for an algorithm key (case-insensitive).
// Unknown keys yield a header with "—" labels and ok == false.
func Complexity(key string) (Header, bool) {
	h, ok := complexity[strings.ToLower(key)]
	if !ok {
		return Header{Algorithm: key, Time: "—", Space: "—"}, false
	}

	return h, true
}

// HeaderEvent builds the HeaderUpdated event for key.
func HeaderEvent(key string) Event {
	h, _ := Complexity(key)

	return Event{Kind: HeaderUpdated, Header: h}
}
