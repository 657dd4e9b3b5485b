// SPDX-License-Identifier: MIT

package gen

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

const (
	methodCycle    = "Cycle"
	methodPath     = "Path"
	methodStar     = "Star"
	methodComplete = "Complete"

	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Cycle returns a Constructor for C_n with edges i→(i+1) mod n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(b *graph.Builder, cfg genConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := addVertices(b, cfg, n)
		for i := 0; i < n; i++ {
			if err := b.AddEdge(base+i, base+(i+1)%n); err != nil {
				return fmt.Errorf("%s: %w", methodCycle, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor for P_n with edges i→i+1 (n ≥ 2).
func Path(n int) Constructor {
	return func(b *graph.Builder, cfg genConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := addVertices(b, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := b.AddEdge(base+i, base+i+1); err != nil {
				return fmt.Errorf("%s: %w", methodPath, err)
			}
		}

		return nil
	}
}

// Star returns a Constructor for a star whose first vertex is the center,
// with edges center→leaf (n ≥ 2 including the center).
func Star(n int) Constructor {
	return func(b *graph.Builder, cfg genConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := addVertices(b, cfg, n)
		for i := 1; i < n; i++ {
			if err := b.AddEdge(center, center+i); err != nil {
				return fmt.Errorf("%s: %w", methodStar, err)
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n. Directed builders receive both
// arcs of every pair (n ≥ 1).
func Complete(n int) Constructor {
	return func(b *graph.Builder, cfg genConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := addVertices(b, cfg, n)
		directed := b.Directed()
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				if err := b.AddEdge(base+i, base+j); err != nil {
					return fmt.Errorf("%s: %w", methodComplete, err)
				}
			}
		}

		return nil
	}
}
