// SPDX-License-Identifier: MIT

// Package lvmatch finds every copy of a small pattern graph inside a larger
// target graph: the subgraph isomorphism problem.
//
// 🚀 What is inside?
//
//	A pure-Go search engine plus everything needed to feed and drive it:
//		• graph/   – immutable labelled graphs, directed or undirected, loops allowed
//		• subiso/  – backtracking matcher: label/degree candidates, MRV ordering,
//		             forward checking, induced and non-induced semantics
//		• format/  – LAD, labelled LAD, GRF and VF readers and writers
//		• gen/     – deterministic generators and planted-pattern sampling
//		• cmd/lvmatch – CLI: match, generate and bench
//
// ✨ Guarantees
//
//   - Deterministic – same inputs, same solutions in the same order
//   - Exact – every emitted mapping is injective, label- and edge-preserving
//   - Cancellable – searches honour a context.Context
//
// Quick example: the directed triangle 0→1→2→0 occurs six times (induced)
// in a bowtie of two triangles sharing a vertex.
//
//	    0       3
//	    │ ╲   ╱ │
//	    1 ─ 2 ─ 4
//
//	sols, _ := subiso.FindAll(triangle, bowtie)
//
//	go get github.com/katalvlaran/lvmatch/subiso
package lvmatch
