package input_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/input"
)

func TestShapes(t *testing.T) {
	assert.Len(t, input.Path(5), 4)
	assert.Len(t, input.Cycle(5), 5)
	assert.Len(t, input.Cycle(2), 1, "two nodes cannot close a cycle without a duplicate")
	assert.Len(t, input.Star(6), 5)
	assert.Len(t, input.Wheel(6), 10)
	assert.Len(t, input.Complete(6), 15)
	assert.Empty(t, input.Path(1))

	// 2x3 grid: 0 1 2 / 3 4 5
	assert.Equal(t, []input.EdgeSpec{
		{U: 0, V: 1}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 4},
		{U: 2, V: 5},
		{U: 3, V: 4},
		{U: 4, V: 5},
	}, input.Grid(2, 3))
}

func TestPreset(t *testing.T) {
	for _, spec := range []string{"path:6", "cycle:5", "star:7", "wheel:6", "complete:5", "grid:3x4", " Grid:5x6 "} {
		in, err := input.Preset(spec, 0, nil)
		require.NoError(t, err, spec)
		g, err := in.Build()
		require.NoError(t, err, spec)
		assert.Equal(t, len(in.Edges), g.EdgeCount(), spec)
		for _, e := range in.Edges {
			assert.Equal(t, int64(1), e.W)
		}
	}

	in, err := input.Preset("grid:2x2", 3, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	assert.Equal(t, 4, in.Nodes)
	assert.Equal(t, 3, in.Start)
	for _, e := range in.Edges {
		assert.GreaterOrEqual(t, e.W, int64(1))
		assert.LessOrEqual(t, e.W, int64(input.RandomWeightMax))
	}
}

func TestPreset_Rejects(t *testing.T) {
	for _, spec := range []string{"path", "ring:5", "path:x", "path:0", "path:31", "grid:3", "grid:6x6", "grid:0x4", "grid:4294967296x4294967296"} {
		_, err := input.Preset(spec, 0, nil)
		assert.ErrorIs(t, err, input.ErrInvalid, spec)
	}
	_, err := input.Preset("star:4", 4, nil)
	assert.ErrorIs(t, err, input.ErrInvalid, "start outside the preset")
}
