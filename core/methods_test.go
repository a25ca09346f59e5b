package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/core"
)

func TestNewGraph_Bounds(t *testing.T) {
	for _, n := range []int{-1, 0, core.MaxNodes + 1} {
		g, err := core.NewGraph(n)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, core.ErrTooManyNodes, "n=%d", n)
	}

	g, err := core.NewGraph(core.MaxNodes)
	require.NoError(t, err)
	assert.Equal(t, core.MaxNodes, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddEdge_Undirected(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(2, 0, 7))

	n0, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{To: 1, Weight: 4}, {To: 2, Weight: 7}}, n0)

	n2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{To: 0, Weight: 7}}, n2)

	w, ok := g.Weight(1, 0)
	assert.True(t, ok)
	assert.EqualValues(t, 4, w)
	assert.True(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(1, 2))

	assert.Equal(t, []core.Link{{U: 0, V: 1, Weight: 4}, {U: 2, V: 0, Weight: 7}}, g.Edges())
	assert.Equal(t, "0 1 4\n2 0 7", g.String())
}

func TestAddEdge_Rejections(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))

	cases := []struct {
		name    string
		u, v    int
		w       int64
		wantErr error
	}{
		{"out of range high", 0, 3, 1, core.ErrNodeOutOfRange},
		{"out of range negative", -1, 1, 1, core.ErrNodeOutOfRange},
		{"self loop", 2, 2, 1, core.ErrLoopNotAllowed},
		{"duplicate same direction", 0, 1, 5, core.ErrDuplicateEdge},
		{"duplicate reverse direction", 1, 0, 5, core.ErrDuplicateEdge},
		{"negative weight", 1, 2, -3, core.ErrNegativeWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.AddEdge(tc.u, tc.v, tc.w), tc.wantErr)
		})
	}
	// nothing above may have mutated the graph
	assert.Equal(t, 1, g.EdgeCount())
}

func TestNeighbors_UnknownNode(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, err = g.Neighbors(2)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestClone_IsDeep(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 2))

	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 2, 3))

	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.False(t, g.HasEdge(1, 2))
}
