// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"slices"
	"sync"

	"github.com/soniakeys/bits"
)

// edge is a raw, not yet collated, edge record.
type edge struct{ from, to int }

// Builder accumulates vertices and edges and produces an immutable Graph.
//
// All methods are safe for concurrent use; a single mutex guards the builder
// state. Build may be called more than once; each call returns an independent
// Graph reflecting the builder contents at that moment.
type Builder struct {
	mu sync.Mutex

	directed       bool
	loops          bool
	denseThreshold int

	labels []int
	ids    []int
	edges  []edge
}

// NewBuilder returns an empty Builder. By default it is undirected, rejects
// self-loops and attaches a dense matrix up to DefaultDenseThreshold vertices.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{denseThreshold: DefaultDenseThreshold}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Directed reports the builder's edge semantics.
func (b *Builder) Directed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.directed
}

// Looped reports whether self-loops are permitted.
func (b *Builder) Looped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.loops
}

// AddVertex appends a vertex with the given label and returns its id.
// The external id defaults to the vertex id itself.
// Complexity: amortised O(1).
func (b *Builder) AddVertex(label int) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	v := len(b.labels)
	b.labels = append(b.labels, label)
	b.ids = append(b.ids, v)

	return v
}

// AddVertices appends n unlabelled vertices and returns the id of the first.
func (b *Builder) AddVertices(n int) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	first := len(b.labels)
	for i := 0; i < n; i++ {
		b.labels = append(b.labels, 0)
		b.ids = append(b.ids, first+i)
	}

	return first
}

// VertexCount returns the number of vertices added so far.
func (b *Builder) VertexCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.labels)
}

// EdgeCount returns the number of AddEdge calls accepted so far, before
// parallel edges are collapsed by Build.
func (b *Builder) EdgeCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.edges)
}

// SetLabel replaces the label of vertex v.
func (b *Builder) SetLabel(v, label int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if v < 0 || v >= len(b.labels) {
		return fmt.Errorf("SetLabel(%d): %w", v, ErrVertexOutOfRange)
	}
	b.labels[v] = label

	return nil
}

// SetID records the external id of vertex v (for example the node id found
// in a GRF file). External ids are reported back to users, never searched on.
func (b *Builder) SetID(v, id int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if v < 0 || v >= len(b.labels) {
		return fmt.Errorf("SetID(%d): %w", v, ErrVertexOutOfRange)
	}
	b.ids[v] = id

	return nil
}

// AddEdge records the edge u→v (or {u,v} when undirected). Parallel edges are
// accepted here and collapsed by Build.
func (b *Builder) AddEdge(u, v int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.labels)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("AddEdge(%d,%d) with %d vertices: %w", u, v, n, ErrVertexOutOfRange)
	}
	if u == v && !b.loops {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	b.edges = append(b.edges, edge{from: u, to: v})

	return nil
}

// Build collates the recorded edges into sorted, de-duplicated adjacency and
// returns the immutable Graph.
//
// Implementation:
//   - Stage 1: bucket every edge into out (and, undirected, the mirror).
//   - Stage 2: sort + compact each row; derive in and nbr.
//   - Stage 3: verify the in/out mirror invariant and attach the dense matrix.
//
// Complexity: O(V + E log E) time, O(V + E) space (+ V² bits when dense).
func (b *Builder) Build() (*Graph, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(b.labels)
	g := &Graph{
		n:        n,
		directed: b.directed,
		loops:    b.loops,
		labels:   slices.Clone(b.labels),
		ids:      slices.Clone(b.ids),
		out:      make([][]int, n),
	}

	var e edge
	for _, e = range b.edges {
		if e.from < 0 || e.from >= n || e.to < 0 || e.to >= n {
			return nil, fmt.Errorf("%w: edge %d→%d outside %d vertices", ErrInvalidGraph, e.from, e.to, n)
		}
		g.out[e.from] = append(g.out[e.from], e.to)
		if !b.directed && e.from != e.to {
			g.out[e.to] = append(g.out[e.to], e.from)
		}
	}
	for v := 0; v < n; v++ {
		g.out[v] = sortUnique(g.out[v])
	}

	if b.directed {
		g.in = make([][]int, n)
		for u := 0; u < n; u++ {
			for _, v := range g.out[u] {
				g.in[v] = append(g.in[v], u) // u ascends, so rows stay sorted
			}
		}
		g.nbr = make([][]int, n)
		for v := 0; v < n; v++ {
			g.nbr[v] = mergeUnion(g.out[v], g.in[v])
			g.edgeCount += len(g.out[v])
		}
	} else {
		g.in = g.out
		g.nbr = g.out
		loops := 0
		for v := 0; v < n; v++ {
			g.edgeCount += len(g.out[v])
			if _, ok := slices.BinarySearch(g.out[v], v); ok {
				loops++
			}
		}
		g.edgeCount = (g.edgeCount + loops) / 2
	}

	if err := g.validate(); err != nil {
		return nil, err
	}
	if n > 0 && n <= b.denseThreshold {
		g.attachDense()
	}

	return g, nil
}

// FromEdges is a convenience wrapper that builds an unlabelled graph with n
// vertices and the given edge pairs.
func FromEdges(n int, edges [][2]int, opts ...Option) (*Graph, error) {
	b := NewBuilder(opts...)
	b.AddVertices(n)
	for _, e := range edges {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
		}
	}

	return b.Build()
}

// validate checks the mirror invariant in[v] ∋ u ⇔ out[u] ∋ v.
func (g *Graph) validate() error {
	var in int
	for v := 0; v < g.n; v++ {
		in += len(g.in[v])
		for _, u := range g.in[v] {
			if _, ok := slices.BinarySearch(g.out[u], v); !ok {
				return fmt.Errorf("%w: in[%d] lists %d without out[%d] listing %d", ErrInvalidGraph, v, u, u, v)
			}
		}
	}
	var out int
	for v := 0; v < g.n; v++ {
		out += len(g.out[v])
	}
	if in != out {
		return fmt.Errorf("%w: %d in-entries vs %d out-entries", ErrInvalidGraph, in, out)
	}

	return nil
}

// attachDense fills one bit row per vertex with its out-neighbors.
func (g *Graph) attachDense() {
	g.dense = make([]bits.Bits, g.n)
	for u := 0; u < g.n; u++ {
		g.dense[u] = bits.New(g.n)
		for _, v := range g.out[u] {
			g.dense[u].SetBit(v, 1)
		}
	}
}

// sortUnique sorts s in place and drops duplicates.
func sortUnique(s []int) []int {
	if len(s) < 2 {
		return s
	}
	slices.Sort(s)

	return slices.Compact(s)
}

// mergeUnion merges two ascending unique slices into a new ascending unique slice.
func mergeUnion(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
