package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/viz"
)

// ExampleAlgorithm_Run bubble-sorts a short array and reports the step count.
func ExampleAlgorithm_Run() {
	seq := sorting.NewSequence([]int{5, 3, 8, 1})
	swaps := 0
	h, _ := sorting.NewHelper(seq,
		sorting.WithDelay(0),
		sorting.WithCue(viz.CueFunc(func() { swaps++ })),
	)

	algo, _ := sorting.Lookup("bubble")
	algo.Run(h)

	fmt.Println(seq.Values(), h.Steps(), swaps)
	// Output:
	// [1 3 5 8] 10 4
}
