// SPDX-License-Identifier: MIT
// Package: lvmatch/subiso
//
// engine.go - public entry points (Matcher, FindAll, FindFirst, Count) and
// the recursive backtracking engine behind them.
//
// Search outline:
//  1. Static filter: ComputeCandidates drops target vertices whose label
//     differs or whose degrees are too small; any empty set ends the run.
//  2. Selection: the unmapped pattern vertex with the fewest feasible
//     candidates (MRV), ties broken by higher degree, then lower index.
//  3. Extension: candidates are tried in ascending target order; each one is
//     checked against every already-mapped pattern vertex (feasible.go).
//  4. Forward checking: after a push, every unmapped pattern neighbor must
//     still have a feasible candidate, else the branch is pruned.
//  5. Cancellation: the context is polled once every 1024 search nodes.
//
// Complexity:
//   - Worst case exponential in |P| (the problem is NP-complete).
//   - Per node: O(|P|·|T|) for selection in the worst case, usually far less
//     because scans are restricted to neighbors of mapped vertices.
//   - Memory: O(|P| + |T|) mapping state + O(|P|·|T|) candidate bits.

package subiso

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/lvmatch/graph"
)

// Matcher runs subgraph isomorphism searches of one pattern in one target.
// A Matcher holds only immutable inputs; every Run owns its own search state,
// so a Matcher may be used from several goroutines.
type Matcher struct {
	pattern *graph.Graph
	target  *graph.Graph
	opts    Options
}

// NewMatcher validates the inputs and applies opts over DefaultOptions.
//
// Rationale:
//   - Semantics (induced, first-only, context) are fixed once per Matcher, so
//     every Run of the same Matcher reports the same solutions in the same order.
//   - No search work happens here; candidates are computed per Run.
//
// Complexity: O(len(opts)).
//
// Errors:
//   - ErrGraphNil if pattern or target is nil.
func NewMatcher(pattern, target *graph.Graph, opts ...Option) (*Matcher, error) {
	if pattern == nil || target == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Matcher{pattern: pattern, target: target, opts: o}, nil
}

// Mode returns the matching semantics of m.
func (m *Matcher) Mode() Mode { return m.opts.Mode }

// Run searches and hands every solution to sink in discovery order. The
// search stops after one solution in FirstOnly mode, when sink.Emit returns
// false, or when the context is done; in the last case Run returns ctx.Err()
// together with the statistics gathered so far.
//
// Zero solutions is not an error. A pattern larger than the target returns
// immediately without computing candidates.
//
// Rationale:
//   - The sink decides what to keep (Collector, Counter, SinkFunc); the engine
//     never buffers solutions itself.
//   - Each emitted Solution is a fresh slice the sink may retain.
//
// Complexity:
//   - Exponential in |P| in the worst case; see the file header.
//
// Concurrency:
//   - Run allocates its own engine; concurrent Runs on one Matcher are safe
//     provided the sinks are distinct.
//
// Errors:
//   - ErrSinkNil for a nil sink.
//   - "subiso: run: %w" wrapping ctx.Err() when the context is done before or
//     during the search; Stats then reflect the work done so far.
func (m *Matcher) Run(sink Sink) (Stats, error) {
	if sink == nil {
		return Stats{}, ErrSinkNil
	}
	if err := m.opts.Ctx.Err(); err != nil {
		return Stats{}, fmt.Errorf("subiso: run: %w", err)
	}
	np, nt := m.pattern.VertexCount(), m.target.VertexCount()
	if np > nt {
		return Stats{Exhausted: true}, nil
	}

	cands := ComputeCandidates(m.pattern, m.target)
	if cands.AnyEmpty() {
		return Stats{Exhausted: true}, nil
	}

	e := newEngine(m.pattern, m.target, cands, m.opts, sink)
	e.search()
	e.stats.Exhausted = !e.halted
	if e.err != nil {
		return e.stats, fmt.Errorf("subiso: run: %w", e.err)
	}

	return e.stats, nil
}

// Solutions returns the solutions as a lazy sequence. Breaking out of the
// range loop halts the search. A cancelled context ends the sequence early;
// use Run to observe the error.
func (m *Matcher) Solutions() iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		_, _ = m.Run(SinkFunc(yield))
	}
}

// First returns the first solution in discovery order, if any.
func (m *Matcher) First() (Solution, bool, error) {
	first := *m
	first.opts.Mode.FirstOnly = true
	var c Collector
	if _, err := first.Run(&c); err != nil {
		return nil, false, err
	}
	if c.Len() == 0 {
		return nil, false, nil
	}

	return c.Solutions()[0], true, nil
}

// Count returns the number of solutions (1 at most in FirstOnly mode).
func (m *Matcher) Count() (int, error) {
	var c Counter
	if _, err := m.Run(&c); err != nil {
		return c.N(), err
	}

	return c.N(), nil
}

// FindAll collects every solution in discovery order.
func FindAll(pattern, target *graph.Graph, opts ...Option) ([]Solution, error) {
	m, err := NewMatcher(pattern, target, opts...)
	if err != nil {
		return nil, err
	}
	var c Collector
	if _, err = m.Run(&c); err != nil {
		return c.Solutions(), err
	}

	return c.Solutions(), nil
}

// FindFirst returns the first solution in discovery order, if any.
func FindFirst(pattern, target *graph.Graph, opts ...Option) (Solution, bool, error) {
	m, err := NewMatcher(pattern, target, opts...)
	if err != nil {
		return nil, false, err
	}

	return m.First()
}

// Count returns the number of solutions.
func Count(pattern, target *graph.Graph, opts ...Option) (int, error) {
	m, err := NewMatcher(pattern, target, opts...)
	if err != nil {
		return 0, err
	}

	return m.Count()
}

// engine holds the state of one run.
type engine struct {
	np        int
	firstOnly bool

	cands  *CandidateSet
	chk    checker
	m      *PartialMapping
	patDeg []int // MRV tie-break key per pattern vertex

	// bufs[d] holds the candidate list materialised at depth d.
	bufs [][]int

	sink Sink

	ctx    context.Context
	steps  int // sparse context checks counter
	halted bool
	err    error

	stats Stats
}

func newEngine(pattern, target *graph.Graph, cands *CandidateSet, opts Options, sink Sink) *engine {
	pat, tgt := newSemantics(pattern, target)
	np := pattern.VertexCount()
	e := &engine{
		np:        np,
		firstOnly: opts.Mode.FirstOnly,
		cands:     cands,
		m:         NewPartialMapping(np, target.VertexCount()),
		patDeg:    make([]int, np),
		bufs:      make([][]int, np+1),
		sink:      sink,
		ctx:       opts.Ctx,
	}
	e.chk = checker{pat: pat, tgt: tgt, induced: opts.Mode.Induced, m: e.m}
	for p := 0; p < np; p++ {
		e.patDeg[p] = pat.degree(p)
	}

	return e
}

// pollContext checks the context every contextPollMask+1 nodes.
func (e *engine) pollContext() bool {
	e.steps++
	if e.steps&contextPollMask != 0 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.err = err
		e.halted = true

		return true
	}

	return false
}

// emit hands a copy of the complete mapping to the sink.
func (e *engine) emit() {
	e.stats.Solutions++
	if !e.sink.Emit(e.m.Solution()) || e.firstOnly {
		e.halted = true
	}
}

// search is the recursive step: select, extend, forward-check, recurse, undo.
func (e *engine) search() {
	if e.halted {
		return
	}
	e.stats.Nodes++
	if e.pollContext() {
		return
	}

	d := e.m.Depth()
	if d == e.np {
		e.emit()

		return
	}

	p := e.selectVertex()
	if p < 0 {
		return
	}
	e.bufs[d] = e.collect(p, e.bufs[d][:0])

	for _, t := range e.bufs[d] {
		if e.halted {
			return
		}
		e.stats.Tried++
		e.m.Push(p, t)
		if e.forwardCheck(p) {
			e.search()
		} else {
			e.stats.Pruned++
		}
		e.m.Pop()
	}
}
