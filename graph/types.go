// SPDX-License-Identifier: MIT

package graph

import (
	"errors"

	"github.com/soniakeys/bits"
)

// Sentinel errors for graph construction and views.
var (
	// ErrInvalidGraph indicates inconsistent graph data. Every Build failure wraps it.
	ErrInvalidGraph = errors.New("graph: invalid graph")

	// ErrVertexOutOfRange indicates a vertex id outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was added when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// DefaultDenseThreshold is the largest vertex count for which Build attaches a
// dense out-adjacency bit matrix (n² bits; 2 MiB at the default).
const DefaultDenseThreshold = 4096

// Option configures a Builder before any vertex is added.
type Option func(b *Builder)

// WithDirected sets whether edges are one-way (true) or symmetric (false).
// Builders are undirected by default.
func WithDirected(directed bool) Option {
	return func(b *Builder) { b.directed = directed }
}

// WithLoops permits self-loops (u == v).
func WithLoops() Option {
	return func(b *Builder) { b.loops = true }
}

// WithDenseThreshold overrides DefaultDenseThreshold. A value <= 0 disables
// the dense matrix and every HasEdge goes through binary search.
func WithDenseThreshold(n int) Option {
	return func(b *Builder) { b.denseThreshold = n }
}

// Graph is an immutable labelled graph over vertices 0..n-1.
//
// For undirected graphs out, in and nbr share the same backing slices and each
// edge {u,v} appears in both out[u] and out[v]. For directed graphs nbr[v] is
// the sorted union of out[v] and in[v].
type Graph struct {
	n        int
	directed bool
	loops    bool

	labels []int // vertex → label, 0 when unlabelled
	ids    []int // vertex → external id assigned by the loader

	out [][]int // sorted, unique
	in  [][]int // sorted, unique; in[v] ∋ u  ⇔  out[u] ∋ v
	nbr [][]int // sorted, unique; out ∪ in

	edgeCount int

	// dense[u].Bit(v) == 1 iff u→v; nil above the dense threshold.
	dense []bits.Bits
}
