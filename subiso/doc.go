// SPDX-License-Identifier: MIT

// Package subiso finds subgraph isomorphisms: injective mappings from the
// vertices of a small pattern graph into a larger target graph that preserve
// labels and adjacency.
//
// Two matching semantics are supported:
//
//   - Induced (default): for every pair of mapped vertices an edge is present
//     in the pattern iff it is present in the target, self-loops included.
//   - Non-induced (monomorphism): pattern edges must be present in the target;
//     extra target edges are allowed.
//
// Directed semantics apply iff the pattern is directed. An undirected pattern
// is matched against the undirected view of the target (an arc in either
// direction counts as an edge).
//
// Search:
//  1. Candidate filtering (once): target vertices are bucketed by label and
//     filtered by degree. An empty candidate set proves there is no solution.
//  2. Ordering: the next pattern vertex is the unmapped one with the fewest
//     feasible candidates (MRV), ties broken by higher pattern degree and then
//     lower index. Candidates are tried in ascending target id.
//  3. Forward checking: after each tentative extension every unmapped pattern
//     neighbor must keep at least one feasible candidate, otherwise the branch
//     is abandoned before recursing.
//
// Results are deterministic: identical inputs and options produce the same
// solutions in the same discovery order, so FirstOnly returns exactly the
// first element of the full enumeration.
//
// Complexity: worst case exponential in the pattern size; per node
// O(|P| · |C| · depth) for MRV where |C| is the scanned candidate count.
//
// Usage:
//
//	m, err := subiso.NewMatcher(pattern, target, subiso.WithNonInduced())
//	if err != nil { ... }
//	for sol := range m.Solutions() {
//		fmt.Println(sol)
//	}
package subiso
