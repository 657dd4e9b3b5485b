// SPDX-License-Identifier: MIT
// Package: lvmatch/subiso
//
// candidates.go - static per-pattern-vertex candidate sets.
//
// Contract:
//   - Lists are ascending in target index; search order depends on it.
//   - Membership bitsets mirror the lists exactly.
//   - Filtering is idempotent: recomputing on the same inputs yields the same sets.

package subiso

import (
	"github.com/soniakeys/bits"

	"github.com/katalvlaran/lvmatch/graph"
)

// CandidateSet holds, for every pattern vertex, the target vertices that pass
// the static label and degree filter. It is immutable after ComputeCandidates.
type CandidateSet struct {
	lists  [][]int     // pattern vertex → ascending target vertices
	member []bits.Bits // pattern vertex → membership over target vertices
}

// ComputeCandidates builds the static candidate sets. A target vertex t is a
// candidate for pattern vertex p iff their labels are equal and, under
// directed semantics, outdeg(t) ≥ outdeg(p) and indeg(t) ≥ indeg(p); under
// undirected semantics deg(t) ≥ deg(p).
//
// The filter does not depend on the induced flag: both modes need every
// pattern edge in the target, so the same degree bound holds for both.
//
// Rationale:
//   - Label buckets are built once per call and discarded; nothing is cached
//     on the graphs.
//   - Degree bounds are necessary conditions only; the engine still checks
//     every edge.
//
// Complexity: O(|T| + Σ_p |bucket(label(p))|) time, O(|P|·|T|) bits.
//
// Errors: none. A nil CandidateSet is never returned; use AnyEmpty to detect
// an unsatisfiable pattern.
func ComputeCandidates(pattern, target *graph.Graph) *CandidateSet {
	pat, tgt := newSemantics(pattern, target)
	np, nt := pattern.VertexCount(), target.VertexCount()

	// Label buckets, each ascending because t ascends.
	buckets := make(map[int][]int)
	var t int
	for t = 0; t < nt; t++ {
		l := target.Label(t)
		buckets[l] = append(buckets[l], t)
	}

	cs := &CandidateSet{
		lists:  make([][]int, np),
		member: make([]bits.Bits, np),
	}
	var p int
	for p = 0; p < np; p++ {
		out, in := pat.outDegree(p), pat.inDegree(p)
		list := make([]int, 0, len(buckets[pattern.Label(p)]))
		cs.member[p] = bits.New(nt)
		for _, t = range buckets[pattern.Label(p)] {
			if tgt.outDegree(t) < out || tgt.inDegree(t) < in {
				continue
			}
			list = append(list, t)
			cs.member[p].SetBit(t, 1)
		}
		cs.lists[p] = list
	}

	return cs
}

// Len returns the number of pattern vertices covered.
func (cs *CandidateSet) Len() int { return len(cs.lists) }

// Of returns the ascending candidates of p. The slice is shared and must not
// be modified.
func (cs *CandidateSet) Of(p int) []int { return cs.lists[p] }

// Size returns the number of candidates of p.
func (cs *CandidateSet) Size(p int) int { return len(cs.lists[p]) }

// Contains reports whether t is a static candidate of p.
func (cs *CandidateSet) Contains(p, t int) bool { return cs.member[p].Bit(t) == 1 }

// AnyEmpty reports whether some pattern vertex has no candidate at all, which
// proves that no solution exists.
func (cs *CandidateSet) AnyEmpty() bool {
	for _, l := range cs.lists {
		if len(l) == 0 {
			return true
		}
	}

	return false
}

// Total returns Σ_p |candidates(p)|.
func (cs *CandidateSet) Total() int {
	var n int
	for _, l := range cs.lists {
		n += len(l)
	}

	return n
}
