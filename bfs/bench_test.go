package bfs_test

import (
	"testing"

	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/core"
)

// BenchmarkBFS_Chain measures an unpaced BFS over the longest allowed chain.
func BenchmarkBFS_Chain(b *testing.B) {
	g, _ := core.NewGraph(core.MaxNodes)
	for i := 0; i+1 < core.MaxNodes; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, bfs.WithDelay(0))
	}
}

// BenchmarkBFS_Dense runs BFS on the complete graph of MaxNodes nodes.
func BenchmarkBFS_Dense(b *testing.B) {
	g, _ := core.NewGraph(core.MaxNodes)
	for u := 0; u < core.MaxNodes; u++ {
		for v := u + 1; v < core.MaxNodes; v++ {
			_ = g.AddEdge(u, v, 1)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0, bfs.WithDelay(0))
	}
}
