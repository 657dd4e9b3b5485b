// SPDX-License-Identifier: MIT

package subiso

import "math"

// scanSource picks the smallest target vertex list that must contain every
// feasible image of p: the static candidates of p, or the target neighborhood
// of the image of an already-mapped pattern neighbor. filtered is true when
// the list is a neighborhood and entries still need the static membership
// test. Both lists are ascending, so the visiting order never changes.
func (e *engine) scanSource(p int) (list []int, filtered bool) {
	list = e.cands.Of(p)
	var q, u int
	for _, q = range e.chk.pat.neighbors(p) {
		u = e.m.forward[q]
		if u == Unmapped {
			continue
		}
		if nb := e.chk.tgt.neighbors(u); len(nb) < len(list) {
			list, filtered = nb, true
		}
	}

	return list, filtered
}

// countFeasible counts feasible images of p, stopping as soon as the count
// exceeds limit (the caller only needs to know it cannot win).
func (e *engine) countFeasible(p, limit int) int {
	list, filtered := e.scanSource(p)
	var count int
	for _, t := range list {
		if filtered && !e.cands.Contains(p, t) {
			continue
		}
		if !e.chk.feasible(p, t) {
			continue
		}
		count++
		if count > limit {
			break
		}
	}

	return count
}

// hasCandidate reports whether p has at least one feasible image.
func (e *engine) hasCandidate(p int) bool {
	return e.countFeasible(p, 0) > 0
}

// selectVertex returns the unmapped pattern vertex with the fewest feasible
// images (MRV); ties go to the higher pattern degree, then the lower index.
// It returns -1 when some unmapped vertex has no feasible image left.
func (e *engine) selectVertex() int {
	best, bestCount := -1, math.MaxInt
	var p, c int
	for p = 0; p < e.np; p++ {
		if e.m.forward[p] != Unmapped {
			continue
		}
		c = e.countFeasible(p, bestCount)
		if c == 0 {
			return -1
		}
		if c < bestCount || (c == bestCount && e.patDeg[p] > e.patDeg[best]) {
			best, bestCount = p, c
		}
	}

	return best
}

// collect appends the feasible images of p in ascending order to buf.
func (e *engine) collect(p int, buf []int) []int {
	list, filtered := e.scanSource(p)
	for _, t := range list {
		if filtered && !e.cands.Contains(p, t) {
			continue
		}
		if e.chk.feasible(p, t) {
			buf = append(buf, t)
		}
	}

	return buf
}

// forwardCheck verifies that every unmapped pattern neighbor of p still has
// a feasible image after p was mapped.
func (e *engine) forwardCheck(p int) bool {
	for _, x := range e.chk.pat.neighbors(p) {
		if e.m.forward[x] != Unmapped {
			continue
		}
		if !e.hasCandidate(x) {
			return false
		}
	}

	return true
}
