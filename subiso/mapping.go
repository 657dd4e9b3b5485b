// SPDX-License-Identifier: MIT

package subiso

import "slices"

// PartialMapping is the mutable state of one search: a partial injective map
// from pattern vertices to target vertices, extended and retracted in strict
// stack order.
type PartialMapping struct {
	forward  []int // pattern → target or Unmapped
	backward []int // target → pattern or Unmapped
	stack    []int // mapped pattern vertices in push order
}

// NewPartialMapping returns an empty mapping for a pattern with np vertices
// and a target with nt vertices.
func NewPartialMapping(np, nt int) *PartialMapping {
	m := &PartialMapping{
		forward:  make([]int, np),
		backward: make([]int, nt),
		stack:    make([]int, 0, np),
	}
	for i := range m.forward {
		m.forward[i] = Unmapped
	}
	for i := range m.backward {
		m.backward[i] = Unmapped
	}

	return m
}

// Depth returns the number of mapped pairs.
func (m *PartialMapping) Depth() int { return len(m.stack) }

// Complete reports whether every pattern vertex is mapped.
func (m *PartialMapping) Complete() bool { return len(m.stack) == len(m.forward) }

// Target returns the image of p, or Unmapped.
func (m *PartialMapping) Target(p int) int { return m.forward[p] }

// Source returns the preimage of t, or Unmapped.
func (m *PartialMapping) Source(t int) int { return m.backward[t] }

// Mapped reports whether p has an image.
func (m *PartialMapping) Mapped(p int) bool { return m.forward[p] != Unmapped }

// Used reports whether t is already the image of some pattern vertex.
func (m *PartialMapping) Used(t int) bool { return m.backward[t] != Unmapped }

// Push maps p to t. p must be unmapped and t unused.
func (m *PartialMapping) Push(p, t int) {
	m.forward[p] = t
	m.backward[t] = p
	m.stack = append(m.stack, p)
}

// Pop undoes the most recent Push and returns its pair.
// It returns (Unmapped, Unmapped) on an empty mapping.
func (m *PartialMapping) Pop() (p, t int) {
	if len(m.stack) == 0 {
		return Unmapped, Unmapped
	}
	p = m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	t = m.forward[p]
	m.forward[p] = Unmapped
	m.backward[t] = Unmapped

	return p, t
}

// Order returns the mapped pattern vertices in push order. The slice is
// shared and only valid until the next Push or Pop.
func (m *PartialMapping) Order() []int { return m.stack }

// Solution copies the forward map.
func (m *PartialMapping) Solution() Solution { return slices.Clone(m.forward) }
