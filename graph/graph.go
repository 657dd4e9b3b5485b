// SPDX-License-Identifier: MIT

package graph

import (
	"slices"
)

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of distinct edges (arcs when directed; each
// undirected edge and each self-loop counts once).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether the graph was built with self-loops permitted.
func (g *Graph) Looped() bool { return g.loops }

// Dense reports whether HasEdge is served by the dense bit matrix.
func (g *Graph) Dense() bool { return g.dense != nil }

// Label returns the label of v (0 when unlabelled).
func (g *Graph) Label(v int) int { return g.labels[v] }

// Labels returns a copy of all vertex labels indexed by vertex.
func (g *Graph) Labels() []int { return slices.Clone(g.labels) }

// Labelled reports whether any vertex carries a non-zero label.
func (g *Graph) Labelled() bool {
	for _, l := range g.labels {
		if l != 0 {
			return true
		}
	}

	return false
}

// ID returns the external id the loader assigned to v.
func (g *Graph) ID(v int) int { return g.ids[v] }

// Out returns the ascending out-neighbors of v. The slice is shared with the
// graph and must not be modified.
func (g *Graph) Out(v int) []int { return g.out[v] }

// In returns the ascending in-neighbors of v (equal to Out when undirected).
// The slice is shared with the graph and must not be modified.
func (g *Graph) In(v int) []int { return g.in[v] }

// Neighbors returns the ascending union of Out(v) and In(v). The slice is
// shared with the graph and must not be modified.
func (g *Graph) Neighbors(v int) []int { return g.nbr[v] }

// OutDegree returns len(Out(v)).
func (g *Graph) OutDegree(v int) int { return len(g.out[v]) }

// InDegree returns len(In(v)).
func (g *Graph) InDegree(v int) int { return len(g.in[v]) }

// Degree returns the undirected degree |Out(v) ∪ In(v)|.
func (g *Graph) Degree(v int) int { return len(g.nbr[v]) }

// HasEdge reports whether the arc u→v exists (the edge {u,v} when undirected).
// Complexity: O(1) with the dense matrix, O(log d) otherwise.
func (g *Graph) HasEdge(u, v int) bool {
	if g.dense != nil {
		return g.dense[u].Bit(v) == 1
	}
	_, ok := slices.BinarySearch(g.out[u], v)

	return ok
}

// HasUndirectedEdge reports whether u and v are adjacent in either direction.
func (g *Graph) HasUndirectedEdge(u, v int) bool {
	if !g.directed {
		return g.HasEdge(u, v)
	}

	return g.HasEdge(u, v) || g.HasEdge(v, u)
}

// HasLoop reports whether v carries a self-loop.
func (g *Graph) HasLoop(v int) bool { return g.HasEdge(v, v) }

// Edges returns every edge as a (from, to) pair in ascending order. For
// undirected graphs each edge is reported once with from <= to.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edgeCount)
	for u := 0; u < g.n; u++ {
		for _, v := range g.out[u] {
			if !g.directed && v < u {
				continue
			}
			out = append(out, [2]int{u, v})
		}
	}

	return out
}

// Stats is a small summary used for diagnostics and CLI reports.
type Stats struct {
	Vertices  int  `json:"vertices" yaml:"vertices"`
	Edges     int  `json:"edges" yaml:"edges"`
	Directed  bool `json:"directed" yaml:"directed"`
	Labels    int  `json:"labels" yaml:"labels"` // distinct label values
	MaxDegree int  `json:"max_degree" yaml:"max_degree"`
	Loops     int  `json:"loops" yaml:"loops"`
}

// Stats computes a Stats snapshot in O(V + E).
func (g *Graph) Stats() Stats {
	s := Stats{Vertices: g.n, Edges: g.edgeCount, Directed: g.directed}
	seen := make(map[int]struct{})
	for v := 0; v < g.n; v++ {
		seen[g.labels[v]] = struct{}{}
		if d := g.Degree(v); d > s.MaxDegree {
			s.MaxDegree = d
		}
		if g.HasLoop(v) {
			s.Loops++
		}
	}
	s.Labels = len(seen)

	return s
}
