// SPDX-License-Identifier: MIT
// Package: lvmatch/gen
//
// api.go - the public orchestrator of the gen package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, opts, cons...). Creates a builder,
//     resolves the config, runs cons in order, builds the graph.
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel errors and never panic; only Option
//     constructors panic, on programmer error (nil rand source, k < 1).

package gen

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

// Constructor adds vertices and edges to b. Constructors validate their
// parameters before touching b, append their vertices after any existing
// ones, and emit edges in a fixed order so results are reproducible.
type Constructor func(b *graph.Builder, cfg genConfig) error

// BuildGraph creates a graph.Builder with gopts, resolves the generator
// configuration from opts and applies cons in order. Any constructor error is
// wrapped as "BuildGraph: %w".
//
// Rationale:
//   - Several constructors may be composed; each appends its vertices after
//     those already present, so vertex ranges never overlap.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Applying K constructors: Σ cost of each constructor, plus O(V + E) for Build.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor errors wrapped via %w (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, graph errors).
func BuildGraph(gopts []graph.Option, opts []Option, cons ...Constructor) (*graph.Graph, error) {
	b := graph.NewBuilder(gopts...)
	cfg := newGenConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build()
}

// addVertices appends n labelled vertices and returns the id of the first.
func addVertices(b *graph.Builder, cfg genConfig, n int) int {
	base := b.VertexCount()
	for i := 0; i < n; i++ {
		b.AddVertex(cfg.labelFn(base + i))
	}

	return base
}
