package input_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/core"
	"github.com/katalvlaran/algoviz/input"
)

func TestParseEdges(t *testing.T) {
	edges, err := input.ParseEdges("0 1 4\n\n# comment\n1 2\n  0 2 10  \n")
	require.NoError(t, err)
	assert.Equal(t, []input.EdgeSpec{{0, 1, 4}, {1, 2, 1}, {0, 2, 10}}, edges)

	for name, text := range map[string]string{
		"empty":        "  \n",
		"one field":    "0\n",
		"four fields":  "0 1 2 3",
		"bad node":     "a 1",
		"bad weight":   "0 1 x",
		"negative":     "0 1 -2",
		"float weight": "0 1 1.5",
	} {
		_, err := input.ParseEdges(text)
		assert.ErrorIs(t, err, input.ErrInvalid, name)
	}
	_, err = input.ParseEdges("0 1 -2")
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
}

func TestGraphInput_Validate(t *testing.T) {
	ok := input.GraphInput{Nodes: 3, Start: 2, Edges: []input.EdgeSpec{{0, 1, 1}}}
	assert.NoError(t, ok.Validate())

	cases := map[string]input.GraphInput{
		"zero nodes":     {Nodes: 0},
		"too many nodes": {Nodes: 31},
		"start too big":  {Nodes: 3, Start: 3},
		"negative start": {Nodes: 3, Start: -1},
		"edge outside":   {Nodes: 3, Edges: []input.EdgeSpec{{0, 3, 1}}},
		"negative node":  {Nodes: 3, Edges: []input.EdgeSpec{{-1, 2, 1}}},
		"negative w":     {Nodes: 3, Edges: []input.EdgeSpec{{0, 1, -1}}},
	}
	for name, in := range cases {
		assert.ErrorIs(t, in.Validate(), input.ErrInvalid, name)
	}

	err := input.GraphInput{Nodes: 31}.Validate()
	assert.ErrorContains(t, err, "Nodes must be at most 30")
}

func TestGraphInput_Build(t *testing.T) {
	g, err := input.GraphInput{Nodes: 3, Edges: []input.EdgeSpec{{0, 1, 4}, {1, 2, 1}}}.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())

	_, err = input.GraphInput{Nodes: 3, Edges: []input.EdgeSpec{{0, 1, 4}, {1, 0, 2}}}.Build()
	assert.ErrorIs(t, err, input.ErrInvalid)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)

	_, err = input.GraphInput{Nodes: 3, Edges: []input.EdgeSpec{{2, 2, 1}}}.Build()
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestRandomGraph(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 1; n <= core.MaxNodes; n++ {
		in, err := input.RandomGraph(n, n-1, rng)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(in.Edges), n-1+n/2)
		assert.GreaterOrEqual(t, len(in.Edges), n-1)

		g, err := in.Build()
		require.NoError(t, err, "n=%d", n)
		for i := 0; i+1 < n; i++ {
			assert.True(t, g.HasEdge(i, i+1), "chain edge %d-%d", i, i+1)
		}
		for _, e := range in.Edges {
			assert.GreaterOrEqual(t, e.W, int64(1))
			assert.LessOrEqual(t, e.W, int64(input.RandomWeightMax))
		}
	}

	_, err := input.RandomGraph(5, 5, rng)
	assert.ErrorIs(t, err, input.ErrInvalid)
}

func TestParseValues(t *testing.T) {
	vals, err := input.ParseValues(" 5 3\t8\n1 ", 4)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 8, 1}, vals)

	_, err = input.ParseValues("1 2 3", 4)
	assert.ErrorIs(t, err, input.ErrInvalid)
	_, err = input.ParseValues("1 x", 2)
	assert.ErrorIs(t, err, input.ErrInvalid)
	_, err = input.ParseValues("", 0)
	assert.ErrorIs(t, err, input.ErrInvalid)
	_, err = input.ParseValues("1 -4", 2)
	assert.ErrorIs(t, err, input.ErrInvalid)
	_, err = input.ParseValues("1 1001", 2)
	assert.ErrorContains(t, err, "Values[1] must be at most 1000")
}

func TestRandomValues(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	vals, err := input.RandomValues(20, rng)
	require.NoError(t, err)
	require.Len(t, vals, 20)
	for _, v := range vals {
		assert.True(t, v >= 1 && v <= input.RandomValueMax)
	}

	_, err = input.RandomValues(21, rng)
	assert.ErrorIs(t, err, input.ErrInvalid)
}

func TestSortInputAndSpeed(t *testing.T) {
	assert.NoError(t, input.SortInput{Values: []int{1}, Speed: 2}.Validate())
	assert.ErrorIs(t, input.SortInput{}.Validate(), input.ErrInvalid)
	assert.ErrorIs(t, input.SortInput{Values: make([]int, 21)}.Validate(), input.ErrInvalid)
	assert.ErrorIs(t, input.SortInput{Values: []int{1}, Speed: -1}.Validate(), input.ErrInvalid)

	assert.Equal(t, 1.0, input.Speed(0))
	assert.Equal(t, 1.0, input.Speed(-3))
	assert.Equal(t, 2.5, input.Speed(2.5))
}

func TestHanoiInput(t *testing.T) {
	assert.NoError(t, input.HanoiInput{Disks: 3, Delay: time.Second}.Validate())
	assert.ErrorIs(t, input.HanoiInput{Disks: 0}.Validate(), input.ErrInvalid)
	assert.ErrorIs(t, input.HanoiInput{Disks: 11}.Validate(), input.ErrInvalid)
	assert.ErrorIs(t, input.HanoiInput{Disks: 2, Delay: -time.Second}.Validate(), input.ErrInvalid)
}
