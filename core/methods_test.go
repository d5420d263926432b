package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
)

func TestAddEdge_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddVertex("A")
	require.NoError(t, err)

	_, err = g.AddEdge("A", "B", 1)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	_, err = g.AddEdge("B", "A", 1)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	_, err = g.AddEdge("", "A", 1)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	assert.Zero(t, g.EdgeCount(), "failed AddEdge must not append")
	assert.Equal(t, 1, g.VertexCount(), "failed AddEdge must not declare vertices")
}

func TestAddEdge_AutoVertices(t *testing.T) {
	g := core.NewGraph(core.WithAutoVertices())
	e, err := g.AddEdge("X", "Y", -4)
	require.NoError(t, err)

	assert.Equal(t, core.Edge{ID: "e1", From: "X", To: "Y", Src: 0, Dst: 1, Weight: -4}, e)
	assert.Equal(t, []string{"X", "Y"}, g.Vertices())
}

func TestAddEdge_LoopsAndMulti(t *testing.T) {
	g, err := core.FromEdgeList([]string{"A", "B"}, nil)
	require.NoError(t, err)

	loop, err := g.AddEdge("A", "A", 1)
	require.NoError(t, err)
	assert.True(t, loop.IsLoop())

	_, err = g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("B", "A"))
	assert.False(t, g.HasEdge("B", "B"))

	strict, err := core.FromEdgeList([]string{"A", "B"}, nil, core.WithoutLoops(), core.WithoutMultiEdges())
	require.NoError(t, err)
	_, err = strict.AddEdge("A", "A", 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = strict.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = strict.AddEdge("B", "A", 2)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestAddEdge_RefusedLoopDeclaresNothing(t *testing.T) {
	g := core.NewGraph(core.WithAutoVertices(), core.WithoutLoops())

	_, err := g.AddEdge("X", "X", 3)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	assert.False(t, g.HasVertex("X"))
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestSnapshot(t *testing.T) {
	g, err := core.FromEdgeList([]string{"A", "B", "C"}, []core.EdgeSpec{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	})
	require.NoError(t, err)

	names, edges := g.Snapshot()
	assert.Equal(t, []string{"A", "B", "C"}, names)
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)

	names[0] = "Z"
	edges[0].Weight = 99
	assert.Equal(t, "A", g.Vertices()[0])
	assert.Equal(t, int64(1), g.Edges()[0].Weight)
}

func TestEdges_InsertionOrder(t *testing.T) {
	specs := []core.EdgeSpec{
		{From: "C", To: "A", Weight: 9},
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 4},
	}
	g, err := core.FromEdgeList([]string{"A", "B", "C"}, specs)
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, len(specs))
	for i, e := range edges {
		assert.Equal(t, specs[i].From, e.From)
		assert.Equal(t, specs[i].To, e.To)
		assert.Equal(t, specs[i].Weight, e.Weight)
	}
	assert.Equal(t, 2, edges[0].Src)
	assert.Equal(t, 0, edges[0].Dst)

	// Mutating the snapshot must not leak into the graph.
	edges[0].Weight = 100
	assert.Equal(t, int64(9), g.Edges()[0].Weight)
}

func TestFromEdgeList_Errors(t *testing.T) {
	_, err := core.FromEdgeList([]string{"A", "A"}, nil)
	assert.ErrorIs(t, err, core.ErrDuplicateVertex)

	_, err = core.FromEdgeList([]string{"A", ""}, nil)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = core.FromEdgeList([]string{"A", "B"}, []core.EdgeSpec{{From: "A", To: "Q", Weight: 1}})
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.Contains(t, err.Error(), "edge #0")
}

func TestNeighbors(t *testing.T) {
	g, err := core.FromEdgeList([]string{"A", "B", "C", "D"}, []core.EdgeSpec{
		{From: "B", To: "A", Weight: 1},
		{From: "A", To: "C", Weight: 2},
		{From: "A", To: "B", Weight: 3},
		{From: "A", To: "A", Weight: 4},
	})
	require.NoError(t, err)

	nb, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, nb)

	nb, err = g.Neighbors("D")
	require.NoError(t, err)
	assert.Empty(t, nb)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}
