package subiso_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvmatch/subiso"
)

func TestComputeCandidates_LabelBuckets(t *testing.T) {
	pattern := mkLabelled(t, []int{7}, false)
	target := mkLabelled(t, []int{7, 3, 7}, false)

	cs := subiso.ComputeCandidates(pattern, target)
	assert.Equal(t, 1, cs.Len())
	assert.Equal(t, []int{0, 2}, cs.Of(0))
	assert.Equal(t, 2, cs.Size(0))
	assert.True(t, cs.Contains(0, 2))
	assert.False(t, cs.Contains(0, 1))
	assert.False(t, cs.AnyEmpty())
	assert.Equal(t, 2, cs.Total())
}

func TestComputeCandidates_DirectedDegrees(t *testing.T) {
	// Pattern: 0→1, 0→2. Vertex 0 needs out-degree ≥ 2.
	pattern := mkGraph(t, 3, true, [2]int{0, 1}, [2]int{0, 2})
	target := mkGraph(t, 4, true, [2]int{0, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{3, 1})

	cs := subiso.ComputeCandidates(pattern, target)
	assert.Equal(t, []int{1}, cs.Of(0))
	// Vertices 1, 2 of the pattern need in-degree ≥ 1.
	assert.Equal(t, []int{1, 2, 3}, cs.Of(1))
	assert.Equal(t, []int{1, 2, 3}, cs.Of(2))
}

func TestComputeCandidates_UndirectedUsesUnionDegree(t *testing.T) {
	// Undirected path 0-1-2; the middle vertex needs two neighbors.
	pattern := mkGraph(t, 3, false, [2]int{0, 1}, [2]int{1, 2})
	// Directed target where 1 only has in-arcs; its undirected degree is 2.
	target := mkGraph(t, 3, true, [2]int{0, 1}, [2]int{2, 1})

	cs := subiso.ComputeCandidates(pattern, target)
	assert.Equal(t, []int{1}, cs.Of(1))
	assert.Equal(t, []int{0, 1, 2}, cs.Of(0))
}

func TestComputeCandidates_EmptySet(t *testing.T) {
	pattern := mkLabelled(t, []int{1, 2}, false)
	target := mkLabelled(t, []int{1, 1}, false)

	cs := subiso.ComputeCandidates(pattern, target)
	assert.True(t, cs.AnyEmpty())
	assert.Empty(t, cs.Of(1))
}

func TestComputeCandidates_Idempotent(t *testing.T) {
	pattern, target := triangle(t), bowtie(t)

	a := subiso.ComputeCandidates(pattern, target)
	b := subiso.ComputeCandidates(pattern, target)
	assert.Equal(t, a, b)
	for p := 0; p < a.Len(); p++ {
		assert.Equal(t, []int{0, 1, 2, 3, 4}, a.Of(p))
	}
}
