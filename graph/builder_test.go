package graph_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/graph"
)

func TestBuilder_Defaults(t *testing.T) {
	b := graph.NewBuilder()
	assert.False(t, b.Directed())
	assert.False(t, b.Looped())
	assert.Equal(t, 0, b.VertexCount())

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.Dense())
}

func TestBuilder_AddEdge_OutOfRange(t *testing.T) {
	b := graph.NewBuilder()
	b.AddVertices(2)

	err := b.AddEdge(0, 2)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	err = b.AddEdge(-1, 0)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	assert.Equal(t, 0, b.EdgeCount())
}

func TestBuilder_LoopPolicy(t *testing.T) {
	b := graph.NewBuilder()
	b.AddVertices(1)
	assert.ErrorIs(t, b.AddEdge(0, 0), graph.ErrLoopNotAllowed)

	b = graph.NewBuilder(graph.WithLoops())
	b.AddVertices(1)
	require.NoError(t, b.AddEdge(0, 0))
	g, err := b.Build()
	require.NoError(t, err)
	assert.True(t, g.HasLoop(0))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.Degree(0))
}

func TestBuilder_SetLabelAndID(t *testing.T) {
	b := graph.NewBuilder()
	v := b.AddVertex(7)
	assert.Equal(t, 0, v)
	require.NoError(t, b.SetLabel(0, 9))
	require.NoError(t, b.SetID(0, 42))
	assert.ErrorIs(t, b.SetLabel(1, 1), graph.ErrVertexOutOfRange)
	assert.ErrorIs(t, b.SetID(-1, 1), graph.ErrVertexOutOfRange)

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 9, g.Label(0))
	assert.Equal(t, 42, g.ID(0))
	assert.True(t, g.Labelled())
}

func TestBuilder_CollapsesParallelEdges(t *testing.T) {
	b := graph.NewBuilder(graph.WithDirected(true))
	b.AddVertices(3)
	for i := 0; i < 3; i++ {
		require.NoError(t, b.AddEdge(0, 1))
	}
	require.NoError(t, b.AddEdge(2, 1))
	assert.Equal(t, 4, b.EdgeCount())

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{1}, g.Out(0))
	assert.Equal(t, []int{0, 2}, g.In(1))
}

func TestBuilder_UndirectedSymmetry(t *testing.T) {
	g, err := graph.FromEdges(4, [][2]int{{0, 1}, {1, 0}, {2, 1}, {3, 1}})
	require.NoError(t, err)

	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []int{0, 2, 3}, g.Out(1))
	assert.Equal(t, g.Out(1), g.In(1))
	assert.Equal(t, g.Out(1), g.Neighbors(1))
	assert.True(t, g.HasEdge(1, 0))
	assert.True(t, g.HasEdge(0, 1))
}

func TestBuilder_DirectedNeighborsUnion(t *testing.T) {
	g, err := graph.FromEdges(4, [][2]int{{0, 1}, {2, 0}, {0, 3}, {3, 0}}, graph.WithDirected(true))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, g.Out(0))
	assert.Equal(t, []int{2, 3}, g.In(0))
	assert.Equal(t, []int{1, 2, 3}, g.Neighbors(0))
	assert.Equal(t, 2, g.OutDegree(0))
	assert.Equal(t, 2, g.InDegree(0))
	assert.Equal(t, 3, g.Degree(0))
	assert.Equal(t, 4, g.EdgeCount())
}

func TestFromEdges_Invalid(t *testing.T) {
	_, err := graph.FromEdges(2, [][2]int{{0, 5}})
	assert.ErrorIs(t, err, graph.ErrInvalidGraph)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestBuilder_BuildIsRepeatable(t *testing.T) {
	b := graph.NewBuilder()
	b.AddVertices(3)
	require.NoError(t, b.AddEdge(0, 1))
	g1, err := b.Build()
	require.NoError(t, err)

	require.NoError(t, b.AddEdge(1, 2))
	g2, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 1, g1.EdgeCount(), "earlier graph must not observe later edges")
	assert.Equal(t, 2, g2.EdgeCount())
}

func TestBuilder_ConcurrentAddEdge(t *testing.T) {
	const n = 64
	b := graph.NewBuilder(graph.WithDirected(true))
	b.AddVertices(n)

	var wg sync.WaitGroup
	for u := 0; u < n; u++ {
		wg.Add(1)
		go func(u int) {
			defer wg.Done()
			_ = b.AddEdge(u, (u+1)%n)
		}(u)
	}
	wg.Wait()

	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, n, g.EdgeCount())
	for u := 0; u < n; u++ {
		assert.True(t, g.HasEdge(u, (u+1)%n))
	}
}
