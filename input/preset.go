package input

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoviz/core"
)

// Shape emits the edges of a named topology over nodes 0..n-1.
// Edges come out in a fixed order, so adjacency order, and with it the
// traversal order, is the same on every build.
type Shape func(n int) []EdgeSpec

// Path connects i to i+1.
func Path(n int) []EdgeSpec {
	out := make([]EdgeSpec, 0, max(n-1, 0))
	for i := 0; i+1 < n; i++ {
		out = append(out, EdgeSpec{U: i, V: i + 1})
	}

	return out
}

// Cycle is Path closed by n-1 to 0. Below three nodes it is a path.
func Cycle(n int) []EdgeSpec {
	out := Path(n)
	if n >= 3 {
		out = append(out, EdgeSpec{U: n - 1, V: 0})
	}

	return out
}

// Star connects the hub 0 to every other node.
func Star(n int) []EdgeSpec {
	out := make([]EdgeSpec, 0, max(n-1, 0))
	for i := 1; i < n; i++ {
		out = append(out, EdgeSpec{U: 0, V: i})
	}

	return out
}

// Wheel is a Star whose rim 1..n-1 is closed into a cycle.
func Wheel(n int) []EdgeSpec {
	out := Star(n)
	if n < 4 {
		return out
	}
	for i := 1; i < n-1; i++ {
		out = append(out, EdgeSpec{U: i, V: i + 1})
	}

	return append(out, EdgeSpec{U: n - 1, V: 1})
}

// Complete connects every pair, in row-major order.
func Complete(n int) []EdgeSpec {
	out := make([]EdgeSpec, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			out = append(out, EdgeSpec{U: u, V: v})
		}
	}

	return out
}

// Grid returns the rows×cols orthogonal grid; cell (r, c) is node r*cols+c.
// Each cell links right, then down.
func Grid(rows, cols int) []EdgeSpec {
	var out []EdgeSpec
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				out = append(out, EdgeSpec{U: u, V: u + 1})
			}
			if r+1 < rows {
				out = append(out, EdgeSpec{U: u, V: u + cols})
			}
		}
	}

	return out
}

var shapes = map[string]Shape{
	"path":     Path,
	"cycle":    Cycle,
	"star":     Star,
	"wheel":    Wheel,
	"complete": Complete,
}

// Preset builds a GraphInput from spec, one of "path:N", "cycle:N",
// "star:N", "wheel:N", "complete:N" or "grid:RxC". Edges weigh 1, or a
// random 1..9 when rng is non-nil.
func Preset(spec string, start int, rng *rand.Rand) (GraphInput, error) {
	name, arg, ok := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), ":")
	if !ok {
		return GraphInput{}, fmt.Errorf("%w: preset %q: want name:size", ErrInvalid, spec)
	}

	var in GraphInput
	if name == "grid" {
		rs, cs, ok := strings.Cut(arg, "x")
		rows, err1 := strconv.Atoi(rs)
		cols, err2 := strconv.Atoi(cs)
		if !ok || err1 != nil || err2 != nil || rows < 1 || cols < 1 {
			return GraphInput{}, fmt.Errorf("%w: preset %q: want grid:RxC", ErrInvalid, spec)
		}
		if rows > core.MaxNodes || cols > core.MaxNodes || rows*cols > core.MaxNodes {
			return GraphInput{}, fmt.Errorf("%w: preset %q: at most %d cells", ErrInvalid, spec, core.MaxNodes)
		}
		in = GraphInput{Nodes: rows * cols, Edges: Grid(rows, cols)}
	} else {
		shape, found := shapes[name]
		n, err := strconv.Atoi(arg)
		if !found || err != nil {
			return GraphInput{}, fmt.Errorf("%w: unknown preset %q", ErrInvalid, spec)
		}
		in = GraphInput{Nodes: n}
		if n >= 1 && n <= core.MaxNodes {
			in.Edges = shape(n)
		}
	}
	in.Start = start
	if err := in.Validate(); err != nil {
		return GraphInput{}, err
	}
	for i := range in.Edges {
		in.Edges[i].W = core.DefaultWeight
		if rng != nil {
			in.Edges[i].W = int64(rng.Intn(RandomWeightMax) + 1)
		}
	}

	return in, nil
}
