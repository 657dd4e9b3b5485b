// SPDX-License-Identifier: MIT

// Package gen builds deterministic graph fixtures for tests, benchmarks and
// the lvmatch CLI.
//
// What:
//   - Topologies: Cycle, Path, Star, Complete.
//   - Random: RandomSparse (independent edges with probability p) and
//     Backbone (a guaranteed path 0→1→…→n-1 topped up to a target density,
//     the shape used for benchmark targets).
//   - Patterns: ConnectedNodes samples a connected k-vertex set by frontier
//     growth; Planted returns the subgraph it induces, which is therefore
//     guaranteed to occur in the source graph.
//
// How:
//
//	g, err := gen.BuildGraph(
//		[]graph.Option{graph.WithDirected(false)},
//		[]gen.Option{gen.WithSeed(42), gen.WithLabels(4)},
//		gen.Backbone(500, 0.05),
//	)
//
// Determinism: the same constructors, options and seed always produce the
// same graph. Stochastic constructors require WithSeed or WithRand and return
// ErrNeedRandSource otherwise.
//
// Errors: constructors return sentinel errors (ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed) wrapped with
// the constructor name; branch with errors.Is.
package gen
