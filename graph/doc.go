// SPDX-License-Identifier: MIT

// Package graph provides the immutable, integer-indexed graph used by the
// subgraph isomorphism engine, together with the Builder that produces it.
//
// What:
//
//   - Graph: vertex count, per-vertex integer labels, sorted and de-duplicated
//     out/in adjacency, the undirected neighborhood (Out ∪ In), degrees and
//     adjacency queries. Immutable once built and safe for concurrent reads.
//   - Builder: the single mutation surface. Vertices are dense ids 0..n-1,
//     edges are validated on insertion and collated on Build.
//   - InducedSubgraph, WeakComponents: read-only views and connectivity.
//
// Adjacency queries:
//
//   - HasEdge(u, v) is O(log d) through binary search in Out(u), or O(1) when
//     the graph is small enough to carry a dense bit matrix (see
//     WithDenseThreshold).
//   - HasUndirectedEdge(u, v) = HasEdge(u, v) || HasEdge(v, u).
//
// Errors:
//
//   - ErrInvalidGraph       inconsistent adjacency or vertex data
//   - ErrVertexOutOfRange   a vertex id outside [0, VertexCount)
//   - ErrLoopNotAllowed     self-loop on a builder without WithLoops
//
// Every error returned by Build carries ErrInvalidGraph in its chain, so a
// loader can reject bad input with a single errors.Is check before any search
// starts.
package graph
