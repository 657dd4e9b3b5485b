// SPDX-License-Identifier: MIT

package graph

import (
	"slices"

	"github.com/soniakeys/bits"
)

// componentWalker holds the BFS state for WeakComponents.
type componentWalker struct {
	g       *Graph
	visited bits.Bits
	queue   []int
}

// WeakComponents partitions the vertices into weakly connected components
// (edge direction ignored). Each component is ascending and components are
// ordered by their smallest vertex, so the result is deterministic.
//
// Complexity: O(V + E) time, O(V) space.
func WeakComponents(g *Graph) [][]int {
	if g.n == 0 {
		return nil
	}
	w := &componentWalker{
		g:       g,
		visited: bits.New(g.n),
		queue:   make([]int, 0, g.n),
	}

	var comps [][]int
	for s := 0; s < g.n; s++ {
		if w.visited.Bit(s) == 1 {
			continue
		}
		comps = append(comps, w.walk(s))
	}

	return comps
}

// walk explores the component containing s.
func (w *componentWalker) walk(s int) []int {
	comp := []int{s}
	w.visited.SetBit(s, 1)
	w.queue = append(w.queue[:0], s)
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		for _, v := range w.g.nbr[u] {
			if w.visited.Bit(v) == 1 {
				continue
			}
			w.visited.SetBit(v, 1)
			comp = append(comp, v)
			w.queue = append(w.queue, v)
		}
	}
	slices.Sort(comp)

	return comp
}

// Connected reports whether g has at most one weak component.
func Connected(g *Graph) bool {
	return len(WeakComponents(g)) <= 1
}

// ConnectedSubset reports whether the vertices in vs induce a weakly connected
// subgraph of g. An empty set is connected. Out-of-range ids make it false.
func ConnectedSubset(g *Graph, vs []int) bool {
	if len(vs) == 0 {
		return true
	}
	in := bits.New(g.n)
	for _, v := range vs {
		if v < 0 || v >= g.n {
			return false
		}
		in.SetBit(v, 1)
	}
	seen := bits.New(g.n)
	seen.SetBit(vs[0], 1)
	queue := []int{vs[0]}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.nbr[u] {
			if in.Bit(v) == 1 && seen.Bit(v) == 0 {
				seen.SetBit(v, 1)
				queue = append(queue, v)
			}
		}
	}

	return seen.OnesCount() == in.OnesCount()
}
