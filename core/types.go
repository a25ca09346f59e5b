// Package core defines the Graph and Edge types shared by the traversal engines.
//
// A Graph has a fixed node set 0..N-1 chosen at construction and an undirected,
// weighted adjacency list built by AddEdge. Nodes are plain ints because every
// consumer (BFS, DFS, Dijkstra, the presentation layer) addresses them by position.
//
// Errors:
//
//	ErrTooManyNodes     - node count outside 1..MaxNodes.
//	ErrNodeOutOfRange   - an endpoint is not in 0..N-1.
//	ErrLoopNotAllowed   - self-loop (u == v).
//	ErrDuplicateEdge    - the unordered pair {u,v} already has an edge.
//	ErrNegativeWeight   - weight < 0 (Dijkstra requires non-negative weights).
package core

import (
	"errors"
	"sync"
)

// MaxNodes is the largest node count a Graph accepts.
const MaxNodes = 30

// DefaultWeight is the weight used when an edge is declared without one.
const DefaultWeight int64 = 1

// Sentinel errors for graph construction.
var (
	// ErrTooManyNodes indicates a node count outside 1..MaxNodes.
	ErrTooManyNodes = errors.New("core: node count out of range")

	// ErrNodeOutOfRange indicates an endpoint outside 0..N-1.
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same unordered pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("core: negative weight")
)

// Edge is one directed half of an undirected connection, as stored in an
// adjacency list: the owning node is implicit, To is the neighbor.
type Edge struct {
	// To is the neighbor node id.
	To int

	// Weight is the non-negative cost of the connection.
	Weight int64
}

// Link is a full undirected edge {U,V} as returned by Graph.Edges.
type Link struct {
	U, V   int
	Weight int64
}

// Graph is an undirected weighted graph over nodes 0..N-1.
//
// Adjacency lists keep insertion order, which fixes neighbor iteration order
// for every traversal and makes visit sequences reproducible.
// mu guards adj and links; the node count never changes after NewGraph.
type Graph struct {
	mu    sync.RWMutex
	n     int
	adj   [][]Edge
	links []Link
}

// NewGraph creates a graph with n isolated nodes.
// Returns ErrTooManyNodes unless 1 <= n <= MaxNodes.
// Complexity: O(n)
func NewGraph(n int) (*Graph, error) {
	if n < 1 || n > MaxNodes {
		return nil, ErrTooManyNodes
	}

	return &Graph{
		n:   n,
		adj: make([][]Edge, n),
	}, nil
}
