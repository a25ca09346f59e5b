// File: methods.go
// Role: edge insertion and read-only queries over a Graph.
// Determinism:
//   - Neighbors(u) follows insertion order of AddEdge calls touching u.
//   - Edges() follows global insertion order; each undirected edge appears once.
// Concurrency:
//   - AddEdge under write lock; queries under read lock and return copies.

package core

import (
	"fmt"
	"strings"
)

// AddEdge connects u and v with weight w in both directions.
//
// Steps:
//  1. Validate endpoints, loop and weight constraints.
//  2. Under lock, reject a second edge for the unordered pair {u,v}.
//  3. Append {v,w} to adj[u], {u,w} to adj[v], and record the link.
//
// The graph is left untouched on any error.
// Complexity: O(deg(u)) for the duplicate scan.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if !g.HasNode(u) || !g.HasNode(v) {
		return fmt.Errorf("%w: edge %d-%d with %d nodes", ErrNodeOutOfRange, u, v, g.n)
	}
	if u == v {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, u)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, u, v, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, e := range g.adj[u] {
		if e.To == v {
			return fmt.Errorf("%w: %d-%d", ErrDuplicateEdge, u, v)
		}
	}
	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Edge{To: u, Weight: w})
	g.links = append(g.links, Link{U: u, V: v, Weight: w})

	return nil
}

// Len returns the node count N.
func (g *Graph) Len() int { return g.n }

// HasNode reports whether id is in 0..N-1.
func (g *Graph) HasNode(id int) bool { return id >= 0 && id < g.n }

// Neighbors returns a copy of u's adjacency list in insertion order.
// Returns ErrNodeOutOfRange for an unknown node.
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.HasNode(u) {
		return nil, fmt.Errorf("%w: %d", ErrNodeOutOfRange, u)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Edges returns every undirected edge once, in insertion order.
func (g *Graph) Edges() []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Link, len(g.links))
	copy(out, g.links)

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.links)
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of edge {u,v} and whether it exists.
func (g *Graph) Weight(u, v int) (int64, bool) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.adj[u] {
		if e.To == v {
			return e.Weight, true
		}
	}

	return 0, false
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		n:     g.n,
		adj:   make([][]Edge, g.n),
		links: make([]Link, len(g.links)),
	}
	for i, list := range g.adj {
		c.adj[i] = append([]Edge(nil), list...)
	}
	copy(c.links, g.links)

	return c
}

// String renders the edge list as "u v w" lines, the same shape ParseEdges reads.
func (g *Graph) String() string {
	var sb strings.Builder
	for i, l := range g.Edges() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d %d %d", l.U, l.V, l.Weight)
	}

	return sb.String()
}
