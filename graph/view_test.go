package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/graph"
)

func TestInducedSubgraph_KeepsEdgesAndLabels(t *testing.T) {
	b := graph.NewBuilder(graph.WithDirected(true))
	for i := 0; i < 5; i++ {
		b.AddVertex(i * 10)
	}
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}} {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	g, err := b.Build()
	require.NoError(t, err)

	sub, err := graph.InducedSubgraph(g, []int{4, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, sub.VertexCount())
	assert.True(t, sub.Directed())
	assert.Equal(t, []int{40, 20, 30}, sub.Labels())
	// 4→2 becomes 0→1, 2→3 becomes 1→2, 3→4 becomes 2→0.
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}}, sub.Edges())
	assert.Equal(t, 2, sub.ID(2))
}

func TestInducedSubgraph_Undirected(t *testing.T) {
	g, err := graph.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)

	sub, err := graph.InducedSubgraph(g, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.EdgeCount())
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}}, sub.Edges())
}

func TestInducedSubgraph_Errors(t *testing.T) {
	g, err := graph.FromEdges(2, [][2]int{{0, 1}})
	require.NoError(t, err)

	_, err = graph.InducedSubgraph(g, []int{0, 2})
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	_, err = graph.InducedSubgraph(g, []int{1, 1})
	assert.ErrorIs(t, err, graph.ErrInvalidGraph)
}
