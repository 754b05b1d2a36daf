package core_test

import (
	"testing"

	"github.com/katalvlaran/multiroute/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddNode_Idempotent verifies that re-adding a node keeps its edges.
func TestAddNode_Idempotent(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(1)
	require.NoError(t, g.AddEdge(1, 2, 5))
	g.AddNode(1)

	assert.True(t, g.HasNode(1))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, map[int]int64{2: 5}, g.Neighbors(1))
}

// TestAddNode_Isolated verifies that a declared node without edges exists
// with an empty neighbor map.
func TestAddNode_Isolated(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	g.AddNode(9)

	assert.True(t, g.HasNode(9))
	nbrs := g.Neighbors(9)
	assert.NotNil(t, nbrs)
	assert.Empty(t, nbrs)

	ids, err := g.NeighborIDs(9)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

// TestAddEdge_Symmetric checks that both directions carry the same weight.
func TestAddEdge_Symmetric(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 10))

	w, ok := g.Weight(1, 2)
	require.True(t, ok)
	assert.Equal(t, int64(10), w)

	w, ok = g.Weight(2, 1)
	require.True(t, ok)
	assert.Equal(t, int64(10), w)

	assert.True(t, g.HasEdge(2, 1))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_LastWriteWins checks overwrite semantics without multi-edges.
func TestAddEdge_LastWriteWins(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 10))
	require.NoError(t, g.AddEdge(2, 1, 3))

	w, _ := g.Weight(1, 2)
	assert.Equal(t, int64(3), w)
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_ZeroAndNegative accepts zero weights and rejects negatives.
func TestAddEdge_ZeroAndNegative(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 0))

	err := g.AddEdge(2, 3, -1)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.False(t, g.HasNode(3), "rejected edge must not add nodes")
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_SelfLoop stores a loop once.
func TestAddEdge_SelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(4, 4, 2))

	w, ok := g.Weight(4, 4)
	require.True(t, ok)
	assert.Equal(t, int64(2), w)
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.NodeCount())
}

// TestNeighbors_UnknownNode returns empty results, never panics.
func TestNeighbors_UnknownNode(t *testing.T) {
	g := core.NewGraph()

	assert.Empty(t, g.Neighbors(42))
	_, ok := g.Weight(42, 1)
	assert.False(t, ok)

	_, err := g.NeighborIDs(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestNeighbors_ReturnsCopy ensures callers cannot mutate the graph through the map.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 7))

	nbrs := g.Neighbors(1)
	nbrs[2] = 100
	nbrs[3] = 1

	w, _ := g.Weight(1, 2)
	assert.Equal(t, int64(7), w)
	assert.False(t, g.HasEdge(1, 3))
}

// TestNodesAndNeighborIDs_Sorted checks deterministic enumeration.
func TestNodesAndNeighborIDs_Sorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(5, 3, 1))
	require.NoError(t, g.AddEdge(5, 1, 1))
	require.NoError(t, g.AddEdge(5, 4, 1))
	g.AddNode(2)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, g.Nodes())

	ids, err := g.NeighborIDs(5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, ids)
}

// TestEachNeighbor visits every adjacent node once.
func TestEachNeighbor(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(1, 3, 4))

	seen := map[int]int64{}
	g.EachNeighbor(1, func(v int, w int64) { seen[v] = w })
	assert.Equal(t, map[int]int64{2: 3, 3: 4}, seen)

	g.EachNeighbor(99, func(int, int64) { t.Fatal("unknown node has no neighbors") })
}
