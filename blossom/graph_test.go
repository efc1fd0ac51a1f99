package blossom

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphRejectsSelfLoopsAndParallelEdges(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))

	require.ErrorIs(t, g.AddEdge("a", "a", big.NewInt(1)), ErrSelfLoop)
	require.NoError(t, g.AddEdge("a", "b", big.NewInt(5)))
	require.ErrorIs(t, g.AddEdge("a", "b", big.NewInt(1)), ErrParallelEdge)
	require.ErrorIs(t, g.AddEdge("b", "a", big.NewInt(1)), ErrParallelEdge)
}

func TestGraphUnknownVertex(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.ErrorIs(t, g.AddEdge("a", "ghost", big.NewInt(1)), ErrUnknownVertex)
}

func TestGraphNeighborsInsertionOrder(t *testing.T) {
	g := NewGraph()
	for _, v := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge("a", "d", big.NewInt(1)))
	require.NoError(t, g.AddEdge("a", "b", big.NewInt(1)))
	require.NoError(t, g.AddEdge("a", "c", big.NewInt(1)))

	assert.Equal(t, []string{"d", "b", "c"}, g.Neighbors("a"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())
}

func TestGraphCloneIsIndependent(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddEdge("a", "b", big.NewInt(7)))

	clone := g.Clone()
	e, ok := clone.EdgeBetween("a", "b")
	require.True(t, ok)
	e.Weight.SetInt64(99)

	orig, ok := g.EdgeBetween("a", "b")
	require.True(t, ok)
	assert.Equal(t, int64(7), orig.Weight.Int64())
}
