// SPDX-License-Identifier: MIT

package subiso

import (
	"context"
	"errors"
	"slices"
)

var (
	// ErrGraphNil is returned when the pattern or the target graph is nil.
	ErrGraphNil = errors.New("subiso: graph is nil")

	// ErrSinkNil is returned when Run is called with a nil Sink.
	ErrSinkNil = errors.New("subiso: sink is nil")

	// ErrInvalidSolution is returned by Verify for a mapping that is not a
	// subgraph isomorphism under the requested semantics.
	ErrInvalidSolution = errors.New("subiso: invalid solution")
)

// Unmapped marks a pattern vertex without an image, or a target vertex
// without a preimage, in a PartialMapping.
const Unmapped = -1

// contextPollMask sets how often the engine polls its context: once every
// contextPollMask+1 search nodes.
const contextPollMask = 1023

// Mode fixes the matching semantics for a whole run.
type Mode struct {
	// Induced requires edge absence to be preserved as well as presence.
	Induced bool `json:"induced" yaml:"induced"`

	// FirstOnly halts the search after the first solution.
	FirstOnly bool `json:"first_only" yaml:"first_only"`
}

// Option configures a Matcher.
type Option func(*Options)

// Options holds the configuration of a Matcher.
type Options struct {
	// Ctx allows cooperative cancellation; defaults to context.Background().
	// It is polled every 1024 search nodes.
	Ctx context.Context

	// Mode selects induced/non-induced matching and first-only halting.
	Mode Mode
}

// DefaultOptions returns the configuration used when no Option is given:
//   - Background context
//   - Induced matching
//   - All solutions
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Mode: Mode{Induced: true, FirstOnly: false},
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithInduced selects induced (true) or non-induced (false) matching.
func WithInduced(induced bool) Option {
	return func(o *Options) { o.Mode.Induced = induced }
}

// WithNonInduced is shorthand for WithInduced(false).
func WithNonInduced() Option {
	return WithInduced(false)
}

// WithFirstOnly stops the search after the first solution.
func WithFirstOnly() Option {
	return func(o *Options) { o.Mode.FirstOnly = true }
}

// WithMode replaces the whole Mode.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// Solution maps every pattern vertex p to the target vertex Solution[p].
// Each emitted Solution is a fresh slice owned by the receiver.
type Solution []int

// Clone returns an independent copy of s.
func (s Solution) Clone() Solution { return slices.Clone(s) }

// Stats reports what a run did.
type Stats struct {
	// Nodes is the number of search nodes entered (including the root).
	Nodes int `json:"nodes" yaml:"nodes"`

	// Tried counts tentative extensions (pushes onto the mapping).
	Tried int `json:"tried" yaml:"tried"`

	// Pruned counts extensions rejected by forward checking.
	Pruned int `json:"pruned" yaml:"pruned"`

	// Solutions is the number of solutions emitted.
	Solutions int `json:"solutions" yaml:"solutions"`

	// Exhausted is true when every branch was explored, i.e. the search was
	// not halted by FirstOnly, the sink or the context.
	Exhausted bool `json:"exhausted" yaml:"exhausted"`
}
