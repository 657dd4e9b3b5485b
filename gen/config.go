// SPDX-License-Identifier: MIT

package gen

import "math/rand"

// genConfig aggregates the knobs used by constructors. It is passed by value.
type genConfig struct {
	// rng drives stochastic constructors; nil means no randomness.
	rng *rand.Rand
	// labelFn maps a vertex index to its label.
	labelFn func(i int) int
}

// Option customises the generator configuration.
type Option func(*genConfig)

// newGenConfig applies opts over the defaults (no rng, every label 0).
// Later options override earlier ones.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:     nil,
		labelFn: zeroLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func zeroLabel(int) int { return 0 }

// WithSeed installs a rand.Rand seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs r as the random source. It panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gen: WithRand(nil)")
	}

	return func(c *genConfig) { c.rng = r }
}

// WithLabels labels vertex i with i mod k. It panics if k < 1.
func WithLabels(k int) Option {
	if k < 1 {
		panic("gen: WithLabels requires k >= 1")
	}

	return func(c *genConfig) {
		c.labelFn = func(i int) int { return i % k }
	}
}

// WithLabeler installs an arbitrary vertex-index → label function. It panics on nil.
func WithLabeler(fn func(i int) int) Option {
	if fn == nil {
		panic("gen: WithLabeler(nil)")
	}

	return func(c *genConfig) { c.labelFn = fn }
}
