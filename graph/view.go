// SPDX-License-Identifier: MIT

package graph

import "fmt"

// InducedSubgraph returns the graph induced by keep: vertex i of the result is
// keep[i] in g, and every edge of g with both endpoints kept is carried over.
// Labels and directedness are preserved; external ids of the result are
// renumbered 0..len(keep)-1 so the subgraph can be written as a standalone
// file. g is not modified.
//
// Errors: ErrVertexOutOfRange for ids outside g, ErrInvalidGraph for a
// repeated vertex.
//
// Complexity: O(len(keep) + Σ deg(keep[i])).
func InducedSubgraph(g *Graph, keep []int) (*Graph, error) {
	index := make(map[int]int, len(keep))
	for i, v := range keep {
		if v < 0 || v >= g.n {
			return nil, fmt.Errorf("InducedSubgraph: vertex %d: %w", v, ErrVertexOutOfRange)
		}
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("%w: InducedSubgraph: vertex %d listed twice", ErrInvalidGraph, v)
		}
		index[v] = i
	}

	opts := []Option{WithDirected(g.directed)}
	if g.loops {
		opts = append(opts, WithLoops())
	}
	b := NewBuilder(opts...)
	for _, v := range keep {
		b.AddVertex(g.labels[v])
	}
	for i, v := range keep {
		for _, w := range g.out[v] {
			j, ok := index[w]
			if !ok {
				continue
			}
			if !g.directed && j < i {
				continue // mirror added by the builder
			}
			if err := b.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%w: InducedSubgraph: %w", ErrInvalidGraph, err)
			}
		}
	}

	return b.Build()
}
