package subiso_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/graph"
	"github.com/katalvlaran/lvmatch/subiso"
)

// Directed triangle in a bowtie: each triangle contributes three rotations.
func TestScenario_TriangleInBowtie(t *testing.T) {
	pattern, target := triangle(t), bowtie(t)

	sols, err := subiso.FindAll(pattern, target)
	require.NoError(t, err)
	require.Len(t, sols, 6)
	assert.Equal(t, []subiso.Solution{
		{0, 1, 2}, {1, 2, 0}, {2, 0, 1},
		{2, 3, 4}, {3, 4, 2}, {4, 2, 3},
	}, sols)
	for _, s := range sols {
		assert.NoError(t, subiso.Verify(pattern, target, s, true))
	}
}

// A pattern larger than the target yields nothing without entering the search.
func TestScenario_PatternLargerThanTarget(t *testing.T) {
	pattern := mkGraph(t, 4, false)
	target := mkGraph(t, 3, false)

	m, err := subiso.NewMatcher(pattern, target)
	require.NoError(t, err)
	var c subiso.Counter
	st, err := m.Run(&c)
	require.NoError(t, err)
	assert.Equal(t, 0, c.N())
	assert.Equal(t, 0, st.Nodes)
	assert.Equal(t, 0, st.Tried)
	assert.True(t, st.Exhausted)
}

// A single labelled vertex maps onto every target vertex with its label.
func TestScenario_LabelledVertex(t *testing.T) {
	pattern := mkLabelled(t, []int{7}, false)
	target := mkLabelled(t, []int{7, 3, 7}, false)

	sols, err := subiso.FindAll(pattern, target)
	require.NoError(t, err)
	assert.Equal(t, []subiso.Solution{{0}, {2}}, sols)
}

// One edge plus an isolated vertex in a directed triangle: induced matching
// has to find a vertex non-adjacent to both ends, which a triangle lacks.
func TestScenario_NonInducedFindsMore(t *testing.T) {
	pattern := mkGraph(t, 3, true, [2]int{0, 1})
	target := triangle(t)

	induced, err := subiso.Count(pattern, target)
	require.NoError(t, err)
	mono, err := subiso.Count(pattern, target, subiso.WithNonInduced())
	require.NoError(t, err)

	assert.Equal(t, 0, induced)
	assert.Equal(t, 3, mono)
	assert.Greater(t, mono, induced)
}

// A single arc inside a triangle with one reciprocal pair.
func TestNonInduced_ReciprocalArc(t *testing.T) {
	pattern := mkGraph(t, 2, true, [2]int{0, 1})
	target := mkGraph(t, 3, true, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 2}, [2]int{2, 0})

	induced, err := subiso.FindAll(pattern, target)
	require.NoError(t, err)
	mono, err := subiso.FindAll(pattern, target, subiso.WithNonInduced())
	require.NoError(t, err)

	assert.Equal(t, []subiso.Solution{{1, 2}, {2, 0}}, induced)
	assert.Equal(t, []subiso.Solution{{0, 1}, {1, 0}, {1, 2}, {2, 0}}, mono)
}

func TestEmptyPattern(t *testing.T) {
	pattern := mkGraph(t, 0, false)
	target := triangle(t)

	sols, err := subiso.FindAll(pattern, target)
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Empty(t, sols[0])
}

func TestEmptyCandidateSetShortCircuits(t *testing.T) {
	pattern := mkLabelled(t, []int{1, 9}, false)
	target := mkLabelled(t, []int{1, 1, 1}, false)

	m, err := subiso.NewMatcher(pattern, target)
	require.NoError(t, err)
	st, err := m.Run(&subiso.Counter{})
	require.NoError(t, err)
	assert.Equal(t, 0, st.Nodes)
	assert.Equal(t, 0, st.Solutions)
}

func TestSelfLoopParity(t *testing.T) {
	loopTarget := mkGraph(t, 3, false, [2]int{1, 1})

	plain := mkGraph(t, 1, false)
	sols, err := subiso.FindAll(plain, loopTarget)
	require.NoError(t, err)
	assert.Equal(t, []subiso.Solution{{0}, {2}}, sols, "induced: no loop maps only to loop-free vertices")

	sols, err = subiso.FindAll(plain, loopTarget, subiso.WithNonInduced())
	require.NoError(t, err)
	assert.Equal(t, []subiso.Solution{{0}, {1}, {2}}, sols, "non-induced: extra loop allowed")

	looped := mkGraph(t, 1, false, [2]int{0, 0})
	for _, induced := range []bool{true, false} {
		sols, err = subiso.FindAll(looped, loopTarget, subiso.WithInduced(induced))
		require.NoError(t, err)
		assert.Equal(t, []subiso.Solution{{1}}, sols, "induced=%v", induced)
	}
}

func TestUndirectedPatternDirectedTarget(t *testing.T) {
	pattern := mkGraph(t, 2, false, [2]int{0, 1})
	target := mkGraph(t, 2, true, [2]int{0, 1})

	sols, err := subiso.FindAll(pattern, target)
	require.NoError(t, err)
	assert.Equal(t, []subiso.Solution{{0, 1}, {1, 0}}, sols)
}

func TestDirectedPatternUndirectedTarget(t *testing.T) {
	pattern := mkGraph(t, 2, true, [2]int{0, 1})
	target := mkGraph(t, 2, false, [2]int{0, 1})

	induced, err := subiso.Count(pattern, target)
	require.NoError(t, err)
	assert.Equal(t, 0, induced, "undirected edge is a reciprocal pair, pattern has one arc")

	mono, err := subiso.Count(pattern, target, subiso.WithNonInduced())
	require.NoError(t, err)
	assert.Equal(t, 2, mono)
}

func TestFirstOnlyMatchesFirstOfAll(t *testing.T) {
	pattern, target := triangle(t), bowtie(t)

	all, err := subiso.FindAll(pattern, target)
	require.NoError(t, err)
	first, ok, err := subiso.FindFirst(pattern, target)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, all[0], first)

	m, err := subiso.NewMatcher(pattern, target, subiso.WithFirstOnly())
	require.NoError(t, err)
	var c subiso.Collector
	st, err := m.Run(&c)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.False(t, st.Exhausted)
}

func TestFindFirst_NoSolution(t *testing.T) {
	sol, ok, err := subiso.FindFirst(mkGraph(t, 2, false, [2]int{0, 1}), mkGraph(t, 3, false))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, sol)
}

func TestDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	target := randomGraph(t, rng, 12, 0.35, 2, true)
	pattern := randomGraph(t, rng, 4, 0.5, 2, true)

	for _, induced := range []bool{true, false} {
		a, err := subiso.FindAll(pattern, target, subiso.WithInduced(induced))
		require.NoError(t, err)
		b, err := subiso.FindAll(pattern, target, subiso.WithInduced(induced))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestAgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 60; round++ {
		directed := round%2 == 0
		np := 1 + rng.Intn(4)
		nt := np + rng.Intn(4)
		pattern := randomGraph(t, rng, np, 0.5, 2, directed)
		target := randomGraph(t, rng, nt, 0.5, 2, rng.Intn(3) != 0 || directed)

		for _, induced := range []bool{true, false} {
			want := bruteForce(pattern, target, induced)
			got, err := subiso.FindAll(pattern, target, subiso.WithInduced(induced))
			require.NoError(t, err)
			assert.Equal(t, want, sorted(got), "round %d induced=%v", round, induced)

			for _, s := range got {
				assert.NoError(t, subiso.Verify(pattern, target, s, induced))
			}
		}
	}
}

func TestCollectorLimitHalts(t *testing.T) {
	m, err := subiso.NewMatcher(triangle(t), bowtie(t))
	require.NoError(t, err)

	c := subiso.Collector{Limit: 2}
	st, err := m.Run(&c)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, st.Solutions)
	assert.False(t, st.Exhausted)
}

func TestSolutions_Iterator(t *testing.T) {
	m, err := subiso.NewMatcher(triangle(t), bowtie(t))
	require.NoError(t, err)

	var got []subiso.Solution
	for s := range m.Solutions() {
		got = append(got, s)
		if len(got) == 4 {
			break
		}
	}
	assert.Equal(t, []subiso.Solution{{0, 1, 2}, {1, 2, 0}, {2, 0, 1}, {2, 3, 4}}, got)

	n := 0
	for range m.Solutions() {
		n++
	}
	assert.Equal(t, 6, n)
}

func TestRun_Errors(t *testing.T) {
	_, err := subiso.NewMatcher(nil, triangle(t))
	assert.ErrorIs(t, err, subiso.ErrGraphNil)

	m, err := subiso.NewMatcher(triangle(t), bowtie(t))
	require.NoError(t, err)
	_, err = m.Run(nil)
	assert.ErrorIs(t, err, subiso.ErrSinkNil)
}

func TestRun_CancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := subiso.NewMatcher(triangle(t), bowtie(t), subiso.WithContext(ctx))
	require.NoError(t, err)
	st, err := m.Run(&subiso.Counter{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, st.Nodes)
}

func TestRun_CancelledMidSearch(t *testing.T) {
	// 5 isolated pattern vertices into 20 isolated target vertices: 20·19·18·17·16
	// solutions, far more than one polling interval of nodes.
	pattern := mkGraph(t, 5, false)
	target := mkGraph(t, 20, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m, err := subiso.NewMatcher(pattern, target, subiso.WithContext(ctx), subiso.WithNonInduced())
	require.NoError(t, err)

	sink := subiso.SinkFunc(func(subiso.Solution) bool {
		cancel()
		return true
	})
	st, err := m.Run(sink)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, st.Exhausted)
	assert.Less(t, st.Nodes, 2048)
}

func TestMatcher_Mode(t *testing.T) {
	m, err := subiso.NewMatcher(triangle(t), bowtie(t), subiso.WithMode(subiso.Mode{Induced: false, FirstOnly: true}))
	require.NoError(t, err)
	assert.Equal(t, subiso.Mode{Induced: false, FirstOnly: true}, m.Mode())

	n, err := m.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStats_Counters(t *testing.T) {
	m, err := subiso.NewMatcher(triangle(t), bowtie(t))
	require.NoError(t, err)

	st, err := m.Run(&subiso.Counter{})
	require.NoError(t, err)
	assert.Equal(t, 6, st.Solutions)
	assert.True(t, st.Exhausted)
	assert.GreaterOrEqual(t, st.Tried, 6)
	assert.GreaterOrEqual(t, st.Nodes, st.Tried-st.Pruned+1)
}

func TestConcurrentRuns(t *testing.T) {
	m, err := subiso.NewMatcher(triangle(t), bowtie(t))
	require.NoError(t, err)

	const workers = 8
	counts := make(chan int, workers)
	for i := 0; i < workers; i++ {
		go func() {
			n, _ := m.Count()
			counts <- n
		}()
	}
	for i := 0; i < workers; i++ {
		assert.Equal(t, 6, <-counts)
	}
}

func TestPlantedSubgraphIsFound(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	target := randomGraph(t, rng, 15, 0.3, 3, false)
	keep := []int{1, 4, 5, 9}
	pattern, err := graph.InducedSubgraph(target, keep)
	require.NoError(t, err)

	sols, err := subiso.FindAll(pattern, target)
	require.NoError(t, err)
	assert.Contains(t, sols, subiso.Solution(keep))
}
