// SPDX-License-Identifier: MIT

package gen

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, k) is below the
// minimum the constructor accepts, or above what the source graph holds.
var ErrTooFewVertices = errors.New("gen: parameter too small")

// ErrInvalidProbability indicates a probability or density outside its range.
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without a
// *rand.Rand (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("gen: rng is required")

// ErrConstructFailed indicates that a sampler could not satisfy its
// constraints, e.g. no connected component has k vertices.
var ErrConstructFailed = errors.New("gen: construction failed")
