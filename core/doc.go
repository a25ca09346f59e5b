// Package core provides the small, thread-safe graph model the traversal
// engines run on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - V is fixed at construction: nodes 0..N-1 with 1 <= N <= MaxNodes (30).
//   - E is undirected and weighted: AddEdge(u,v,w) inserts both directions.
//   - No self-loops, no parallel edges, no negative weights.
//   - Neighbor order is insertion order, so BFS/DFS/Dijkstra visit sequences
//     are reproducible from the edge list alone.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)         // O(n)
//	AddEdge(u, v int, w int64) error        // O(deg(u))
//	Neighbors(u int) ([]Edge, error)        // O(deg(u)), copy
//	Edges() []Link                          // O(E), copy, insertion order
//	HasNode / HasEdge / Weight / Len / EdgeCount / Clone
//
// A Graph is only mutated while it is being built; once handed to an engine it
// is read-only, and the RWMutex makes concurrent reads from several runs safe.
package core
