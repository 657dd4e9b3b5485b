// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"math/rand"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/lvmatch/graph"
)

const (
	methodConnectedNodes = "ConnectedNodes"
	methodPlanted        = "Planted"
)

// ConnectedNodes samples k vertices of g that induce a weakly connected
// subgraph. A start vertex is drawn uniformly from the components holding at
// least k vertices; the set then grows by drawing uniformly from its frontier
// (unselected neighbors of selected vertices). Vertices are returned in the
// order they were selected.
//
// Errors: ErrTooFewVertices when k < 1 or k > |V|, ErrNeedRandSource for a
// nil rng, ErrConstructFailed when no component is large enough.
//
// Complexity: O(V + E) for the component scan plus O(k · Δ) for the growth.
func ConnectedNodes(g *graph.Graph, k int, rng *rand.Rand) ([]int, error) {
	n := g.VertexCount()
	if k < 1 || k > n {
		return nil, fmt.Errorf("%s: k=%d not in [1,%d]: %w", methodConnectedNodes, k, n, ErrTooFewVertices)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: %w", methodConnectedNodes, ErrNeedRandSource)
	}

	var pool []int
	for _, comp := range graph.WeakComponents(g) {
		if len(comp) >= k {
			pool = append(pool, comp...)
		}
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%s: no component with %d vertices: %w", methodConnectedNodes, k, ErrConstructFailed)
	}

	selected := bits.New(n)
	inFrontier := bits.New(n)
	var frontier []int
	out := make([]int, 0, k)

	take := func(v int) {
		selected.SetBit(v, 1)
		out = append(out, v)
		for _, w := range g.Neighbors(v) {
			if selected.Bit(w) == 0 && inFrontier.Bit(w) == 0 {
				inFrontier.SetBit(w, 1)
				frontier = append(frontier, w)
			}
		}
	}

	take(pool[rng.Intn(len(pool))])
	for len(out) < k {
		if len(frontier) == 0 {
			return nil, fmt.Errorf("%s: frontier exhausted at %d of %d: %w", methodConnectedNodes, len(out), k, ErrConstructFailed)
		}
		i := rng.Intn(len(frontier))
		v := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		take(v)
	}

	return out, nil
}

// Planted samples a connected k-vertex set of g with ConnectedNodes and
// returns the subgraph it induces together with the set. Pattern vertex i
// corresponds to nodes[i], so nodes is itself an induced match.
func Planted(g *graph.Graph, k int, rng *rand.Rand) (pattern *graph.Graph, nodes []int, err error) {
	nodes, err = ConnectedNodes(g, k, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodPlanted, err)
	}
	pattern, err = graph.InducedSubgraph(g, nodes)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodPlanted, err)
	}

	return pattern, nodes, nil
}
