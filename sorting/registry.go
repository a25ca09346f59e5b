package sorting

import (
	"strings"

	"github.com/katalvlaran/algoviz/viz"
)

// Algorithm is one registered sort.
type Algorithm struct {
	// Key is the lookup name ("bubble", "merge", ...).
	Key string

	// Sort runs the algorithm against h.
	Sort func(h *Helper)
}

// Header returns the display name and complexity labels of a.
func (a Algorithm) Header() viz.Header {
	hd, _ := viz.Complexity(a.Key)

	return hd
}

// Run emits the header, sorts and finishes the run. It reports whether the
// sort ran to completion on a live run.
func (a Algorithm) Run(h *Helper) bool {
	if !h.Header(a.Key) {
		return false
	}
	a.Sort(h)

	return h.Finish()
}

var registry = []Algorithm{
	{Key: "bubble", Sort: Bubble},
	{Key: "selection", Sort: Selection},
	{Key: "insertion", Sort: Insertion},
	{Key: "merge", Sort: Merge},
	{Key: "quick", Sort: Quick},
}

// Algorithms lists the registered sorts in menu order.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), registry...)
}

// Lookup finds an algorithm by key, case-insensitively.
func Lookup(key string) (Algorithm, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, a := range registry {
		if a.Key == key {
			return a, true
		}
	}

	return Algorithm{}, false
}
