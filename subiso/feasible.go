// SPDX-License-Identifier: MIT

package subiso

// checker decides whether a tentative pair keeps the mapping a valid partial
// isomorphism.
type checker struct {
	pat, tgt adjacency
	induced  bool
	m        *PartialMapping
}

// feasible reports whether mapping p to t is consistent with every pair
// already in the mapping. p must be unmapped.
//
// Induced: hasEdge(p,p') == hasEdge(t,t') and hasEdge(p',p) == hasEdge(t',t)
// for every mapped p', and equal self-loop state.
// Non-induced: only pattern edge ⟹ target edge. Since a non-adjacent p'
// imposes nothing, the scan runs over the pattern neighbors of p.
//
// Complexity: O(depth) induced, O(deg(p)) non-induced; each step one HasEdge.
func (c *checker) feasible(p, t int) bool {
	if c.m.backward[t] != Unmapped {
		return false
	}
	loopP, loopT := c.pat.hasEdge(p, p), c.tgt.hasEdge(t, t)
	if loopP && !loopT {
		return false
	}
	if c.induced {
		if loopT && !loopP {
			return false
		}

		return c.inducedPairs(p, t)
	}

	return c.monoPairs(p, t)
}

// inducedPairs compares edge presence against every mapped vertex.
func (c *checker) inducedPairs(p, t int) bool {
	var q, u int
	for _, q = range c.m.stack {
		u = c.m.forward[q]
		if c.pat.hasEdge(p, q) != c.tgt.hasEdge(t, u) {
			return false
		}
		if c.pat.directed && c.pat.hasEdge(q, p) != c.tgt.hasEdge(u, t) {
			return false
		}
	}

	return true
}

// monoPairs requires every pattern edge between p and a mapped neighbor to
// exist in the target.
func (c *checker) monoPairs(p, t int) bool {
	var q, u int
	for _, q = range c.pat.neighbors(p) {
		u = c.m.forward[q]
		if u == Unmapped || q == p {
			continue
		}
		if !c.pat.directed {
			if !c.tgt.hasEdge(t, u) {
				return false
			}
			continue
		}
		if c.pat.hasEdge(p, q) && !c.tgt.hasEdge(t, u) {
			return false
		}
		if c.pat.hasEdge(q, p) && !c.tgt.hasEdge(u, t) {
			return false
		}
	}

	return true
}
