package input

import (
	"bufio"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoviz/core"
)

// Random graph shape.
const (
	// RandomWeightMax is the largest weight RandomGraph assigns.
	RandomWeightMax = 9

	// randomTries caps the attempts at drawing extra edges.
	randomTries = 300
)

// EdgeSpec is one parsed "u v [w]" line.
type EdgeSpec struct {
	U int   `validate:"gte=0"`
	V int   `validate:"gte=0"`
	W int64 `validate:"gte=0"`
}

// GraphInput describes a graph to build.
type GraphInput struct {
	Nodes int        `validate:"min=1,max=30"`
	Start int        `validate:"gte=0,ltfield=Nodes"`
	Edges []EdgeSpec `validate:"dive"`
}

// Validate checks bounds on the node count, the start node and every edge.
func (in GraphInput) Validate() error {
	if err := check(in); err != nil {
		return err
	}
	for i, e := range in.Edges {
		if e.U >= in.Nodes || e.V >= in.Nodes {
			return fmt.Errorf("%w: edge %d (%d %d) references a node outside 0..%d", ErrInvalid, i+1, e.U, e.V, in.Nodes-1)
		}
	}

	return nil
}

// Build validates in and returns the graph. A self-loop or a repeated pair is
// rejected as a whole; nothing is returned half-built.
func (in GraphInput) Build() (*core.Graph, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	g, err := core.NewGraph(in.Nodes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for i, e := range in.Edges {
		if err := g.AddEdge(e.U, e.V, e.W); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrInvalid, i+1, err)
		}
	}

	return g, nil
}

// ParseEdges reads one "u v [w]" edge per line; w defaults to 1 and must be a
// non-negative integer.
// Blank lines and lines starting with '#' are skipped. At least one edge
// is required.
func ParseEdges(text string) ([]EdgeSpec, error) {
	var out []EdgeSpec
	sc := bufio.NewScanner(strings.NewReader(text))
	for line := 1; sc.Scan(); line++ {
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		fields := strings.Fields(raw)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w: line %d: want \"u v [w]\", got %q", ErrInvalid, line, raw)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: node %q", ErrInvalid, line, fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: node %q", ErrInvalid, line, fields[1])
		}
		w := core.DefaultWeight
		if len(fields) == 3 {
			if w, err = strconv.ParseInt(fields[2], 10, 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: weight %q", ErrInvalid, line, fields[2])
			}
			if w < 0 {
				return nil, fmt.Errorf("%w: line %d: %w", ErrInvalid, line, core.ErrNegativeWeight)
			}
		}
		out = append(out, EdgeSpec{U: u, V: v, W: w})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no edges given", ErrInvalid)
	}

	return out, nil
}

// RandomGraph draws a connected graph: the chain 0-1-...-(n-1) plus up to
// n/2 extra edges between random distinct pairs, all weighted 1..9. Extra
// edges that would loop or repeat are redrawn, at most 300 times.
func RandomGraph(n, start int, rng *rand.Rand) (GraphInput, error) {
	in := GraphInput{Nodes: n, Start: start}
	if err := in.Validate(); err != nil {
		return GraphInput{}, err
	}

	type pair struct{ u, v int }
	seen := make(map[pair]bool)
	add := func(u, v int) bool {
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		if seen[pair{u, v}] {
			return false
		}
		seen[pair{u, v}] = true
		in.Edges = append(in.Edges, EdgeSpec{U: u, V: v, W: int64(rng.Intn(RandomWeightMax) + 1)})
		return true
	}

	for i := 0; i+1 < n; i++ {
		add(i, i+1)
	}
	want := n - 1 + n/2
	for tries := 0; len(in.Edges) < want && tries < randomTries; tries++ {
		add(rng.Intn(n), rng.Intn(n))
	}

	return in, nil
}
