// SPDX-License-Identifier: MIT

package subiso

import "github.com/katalvlaran/lvmatch/graph"

// adjacency views a graph through the matching semantics of a run: directed
// iff the pattern is directed, otherwise through its undirected shadow.
type adjacency struct {
	g        *graph.Graph
	directed bool
}

// newSemantics binds both graphs to the semantics chosen by the pattern.
func newSemantics(pattern, target *graph.Graph) (pat, tgt adjacency) {
	directed := pattern.Directed()

	return adjacency{g: pattern, directed: directed}, adjacency{g: target, directed: directed}
}

func (a adjacency) hasEdge(u, v int) bool {
	if a.directed {
		return a.g.HasEdge(u, v)
	}

	return a.g.HasUndirectedEdge(u, v)
}

func (a adjacency) outDegree(v int) int {
	if a.directed {
		return a.g.OutDegree(v)
	}

	return a.g.Degree(v)
}

func (a adjacency) inDegree(v int) int {
	if a.directed {
		return a.g.InDegree(v)
	}

	return a.g.Degree(v)
}

// degree is the MRV tie-break key: in+out when directed, undirected degree otherwise.
func (a adjacency) degree(v int) int {
	if a.directed {
		return a.g.OutDegree(v) + a.g.InDegree(v)
	}

	return a.g.Degree(v)
}

// neighbors returns every vertex joined to v in either direction.
func (a adjacency) neighbors(v int) []int { return a.g.Neighbors(v) }
