// SPDX-License-Identifier: MIT

// Package format reads and writes graph files for lvmatch.
//
// Supported formats:
//
//	lad   n, then per vertex: degree followed by that many 0-based neighbor
//	      ids. Undirected; adjacency is symmetrised on load.
//	ladl  vertex-labelled LAD: n, then per vertex: label, degree, neighbors.
//	grf   n; n lines "id label"; then for each node in declaration order an
//	      edge count m followed by m lines "src dst" (or a single "dst").
//	      Directed.
//	vf    same layout as grf.
//
// Lines starting with '#' and blank lines are ignored everywhere. LAD values
// may wrap across lines; GRF/VF are line oriented.
//
// Loading is strict: truncated files, non-integer tokens, unknown node ids and
// out-of-range neighbors are reported with their line number. Parse failures
// wrap ErrSyntax; structural failures wrap graph.ErrInvalidGraph. A graph
// returned by Read is therefore always valid input for the matcher.
package format
