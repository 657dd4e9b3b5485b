package subiso_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/graph"
	"github.com/katalvlaran/lvmatch/subiso"
)

// mkGraph builds an unlabelled graph from an edge list.
func mkGraph(t *testing.T, n int, directed bool, edges ...[2]int) *graph.Graph {
	t.Helper()
	g, err := graph.FromEdges(n, edges, graph.WithDirected(directed), graph.WithLoops())
	require.NoError(t, err)

	return g
}

// mkLabelled builds a graph with the given labels and edges.
func mkLabelled(t *testing.T, labels []int, directed bool, edges ...[2]int) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(graph.WithDirected(directed), graph.WithLoops())
	for _, l := range labels {
		b.AddVertex(l)
	}
	for _, e := range edges {
		require.NoError(t, b.AddEdge(e[0], e[1]))
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// randomGraph samples a small labelled graph; loops appear with low probability.
func randomGraph(t *testing.T, rng *rand.Rand, n int, p float64, labels int, directed bool) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(graph.WithDirected(directed), graph.WithLoops())
	for i := 0; i < n; i++ {
		b.AddVertex(rng.Intn(labels))
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if !directed && v < u {
				continue
			}
			q := p
			if u == v {
				q = p / 4
			}
			if rng.Float64() < q {
				require.NoError(t, b.AddEdge(u, v))
			}
		}
	}
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

// bruteForce enumerates every injective mapping and keeps the ones Verify
// accepts, in lexicographic order.
func bruteForce(pattern, target *graph.Graph, induced bool) []subiso.Solution {
	np, nt := pattern.VertexCount(), target.VertexCount()
	var out []subiso.Solution
	cur := make(subiso.Solution, np)
	used := make([]bool, nt)
	var rec func(int)
	rec = func(p int) {
		if p == np {
			if subiso.Verify(pattern, target, cur, induced) == nil {
				out = append(out, cur.Clone())
			}
			return
		}
		for t := 0; t < nt; t++ {
			if used[t] {
				continue
			}
			used[t] = true
			cur[p] = t
			rec(p + 1)
			used[t] = false
		}
	}
	rec(0)

	return out
}

// sorted returns the solutions in lexicographic order.
func sorted(sols []subiso.Solution) []subiso.Solution {
	out := slices.Clone(sols)
	slices.SortFunc(out, func(a, b subiso.Solution) int { return slices.Compare(a, b) })

	return out
}

// bowtie is two directed 3-cycles sharing vertex 2.
func bowtie(t *testing.T) *graph.Graph {
	return mkGraph(t, 5, true, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 2})
}

// triangle is the directed 3-cycle 0→1→2→0.
func triangle(t *testing.T) *graph.Graph {
	return mkGraph(t, 3, true, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
}
