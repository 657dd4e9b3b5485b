// SPDX-License-Identifier: MIT

package subiso

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/graph"
)

// Sink receives solutions in discovery order. Returning false halts the
// search. A Sink owns every Solution it receives.
type Sink interface {
	Emit(sol Solution) bool
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(sol Solution) bool

// Emit calls f(sol).
func (f SinkFunc) Emit(sol Solution) bool { return f(sol) }

// Collector stores solutions in discovery order. When Limit > 0 it halts
// the search once Limit solutions are stored.
type Collector struct {
	Limit     int
	solutions []Solution
}

// Emit stores sol.
func (c *Collector) Emit(sol Solution) bool {
	c.solutions = append(c.solutions, sol)

	return c.Limit <= 0 || len(c.solutions) < c.Limit
}

// Solutions returns the stored solutions in discovery order.
func (c *Collector) Solutions() []Solution { return c.solutions }

// Len returns the number of stored solutions.
func (c *Collector) Len() int { return len(c.solutions) }

// Counter counts solutions without keeping them.
type Counter struct{ n int }

// Emit increments the count.
func (c *Counter) Emit(Solution) bool {
	c.n++

	return true
}

// N returns the count.
func (c *Counter) N() int { return c.n }

// Verify independently checks that sol is a subgraph isomorphism of pattern
// into target: correct length, in-range and injective images, equal labels,
// and edge preservation per mode (presence and absence when induced,
// presence only otherwise), self-loops included.
//
// Complexity: O(|P|²) edge queries.
func Verify(pattern, target *graph.Graph, sol Solution, induced bool) error {
	if pattern == nil || target == nil {
		return ErrGraphNil
	}
	np, nt := pattern.VertexCount(), target.VertexCount()
	if len(sol) != np {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidSolution, len(sol), np)
	}
	used := make(map[int]int, np)
	for p, t := range sol {
		if t < 0 || t >= nt {
			return fmt.Errorf("%w: pattern vertex %d maps to %d outside target", ErrInvalidSolution, p, t)
		}
		if q, dup := used[t]; dup {
			return fmt.Errorf("%w: pattern vertices %d and %d both map to %d", ErrInvalidSolution, q, p, t)
		}
		used[t] = p
		if pattern.Label(p) != target.Label(t) {
			return fmt.Errorf("%w: label of %d is %d, target %d has %d",
				ErrInvalidSolution, p, pattern.Label(p), t, target.Label(t))
		}
	}

	pat, tgt := newSemantics(pattern, target)
	var p, q int
	for p = 0; p < np; p++ {
		for q = 0; q < np; q++ {
			if !pat.directed && q < p {
				continue
			}
			pe, te := pat.hasEdge(p, q), tgt.hasEdge(sol[p], sol[q])
			if pe && !te {
				return fmt.Errorf("%w: edge %d→%d missing as %d→%d", ErrInvalidSolution, p, q, sol[p], sol[q])
			}
			if induced && te && !pe {
				return fmt.Errorf("%w: extra edge %d→%d for non-edge %d→%d", ErrInvalidSolution, sol[p], sol[q], p, q)
			}
		}
	}

	return nil
}
