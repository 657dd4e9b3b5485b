// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmatch/graph"
)

const (
	methodRandomSparse = "RandomSparse"
	methodBackbone     = "Backbone"

	minRandomSparseNodes = 1
	minBackboneNodes     = 2

	// backboneAttemptFactor bounds Backbone sampling at factor × target arcs.
	backboneAttemptFactor = 10
)

// RandomSparse returns a Constructor that includes every admissible edge
// independently with probability p: ordered pairs when the builder is
// directed (self-loops only when it is looped), unordered pairs otherwise.
// Trials run in ascending (i, j) order. An rng is required unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(b *graph.Builder, cfg genConfig) error {
		if n < minRandomSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := addVertices(b, cfg, n)
		directed, loops := b.Directed(), b.Looped()
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				switch {
				case i == j && !loops:
					continue
				case !directed && j < i:
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				if err := b.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: %w", methodRandomSparse, err)
				}
			}
		}

		return nil
	}
}

// trial is one Bernoulli draw; p ∈ {0,1} needs no rng.
func trial(cfg genConfig, p float64) bool {
	switch p {
	case 0:
		return false
	case 1:
		return true
	}

	return cfg.rng.Float64() < p
}

// Backbone returns a Constructor for benchmark targets: arcs i→i+1 for every
// i < n-1, then uniformly random arcs u→v (u ≠ v) until the number of
// distinct arcs reaches max(n-1, round(density·n·(n-1))) or the attempt
// budget runs out. Undirected builders mirror every arc, which yields the
// symmetrised target. density must lie in (0, 1].
func Backbone(n int, density float64) Constructor {
	return func(b *graph.Builder, cfg genConfig) error {
		if n < minBackboneNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodBackbone, n, minBackboneNodes, ErrTooFewVertices)
		}
		if density <= 0 || density > 1 {
			return fmt.Errorf("%s: density=%.6f not in (0,1]: %w", methodBackbone, density, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodBackbone, ErrNeedRandSource)
		}

		base := addVertices(b, cfg, n)
		maxArcs := n * (n - 1)
		want := max(n-1, min(maxArcs, int(math.Round(density*float64(maxArcs)))))

		arcs := make(map[[2]int]struct{}, want)
		for i := 0; i+1 < n; i++ {
			arcs[[2]int{i, i + 1}] = struct{}{}
			if err := b.AddEdge(base+i, base+i+1); err != nil {
				return fmt.Errorf("%s: %w", methodBackbone, err)
			}
		}
		for attempts := 0; len(arcs) < want && attempts < want*backboneAttemptFactor; attempts++ {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			if _, ok := arcs[[2]int{u, v}]; ok {
				continue
			}
			arcs[[2]int{u, v}] = struct{}{}
			if err := b.AddEdge(base+u, base+v); err != nil {
				return fmt.Errorf("%s: %w", methodBackbone, err)
			}
		}

		return nil
	}
}
