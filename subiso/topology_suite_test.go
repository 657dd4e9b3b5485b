// SPDX-License-Identifier: MIT

package subiso_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmatch/gen"
	"github.com/katalvlaran/lvmatch/graph"
	"github.com/katalvlaran/lvmatch/subiso"
)

// TopologySuite checks solution counts of classic pattern/target pairs built
// by the gen package, where the counts are known in closed form.
type TopologySuite struct {
	suite.Suite
	directed bool
}

func (s *TopologySuite) SetupTest() {
	// Undirected by default; individual tests may override
	s.directed = false
}

func (s *TopologySuite) build(c gen.Constructor) *graph.Graph {
	g, err := gen.BuildGraph([]graph.Option{graph.WithDirected(s.directed)}, nil, c)
	require.NoError(s.T(), err)

	return g
}

// counts returns the induced and non-induced solution counts.
func (s *TopologySuite) counts(pattern, target gen.Constructor) (int, int) {
	require := require.New(s.T())
	p, t := s.build(pattern), s.build(target)
	induced, err := subiso.Count(p, t)
	require.NoError(err)
	mono, err := subiso.Count(p, t, subiso.WithNonInduced())
	require.NoError(err)

	return induced, mono
}

func (s *TopologySuite) TestPathInCycle() {
	require := require.New(s.T())
	// Every vertex of C5 is the middle of one induced P3, in two orientations
	induced, mono := s.counts(gen.Path(3), gen.Cycle(5))
	require.Equal(10, induced)
	require.Equal(10, mono)
}

func (s *TopologySuite) TestCycleAutomorphisms() {
	require := require.New(s.T())
	induced, mono := s.counts(gen.Cycle(5), gen.Cycle(5))
	require.Equal(10, induced, "dihedral group of order 10")
	require.Equal(10, mono)
}

func (s *TopologySuite) TestTriangleInComplete() {
	require := require.New(s.T())
	induced, mono := s.counts(gen.Complete(3), gen.Complete(4))
	require.Equal(24, induced, "4 triangles × 6 automorphisms")
	require.Equal(24, mono)
}

func (s *TopologySuite) TestSparsePatternsInComplete() {
	require := require.New(s.T())
	// Any 3 or 4 vertices of K4 are a clique, so only monomorphisms exist
	for name, c := range map[string]gen.Constructor{
		"path":  gen.Path(3),
		"star":  gen.Star(4),
		"cycle": gen.Cycle(4),
	} {
		induced, mono := s.counts(c, gen.Complete(4))
		require.Zero(induced, name)
		require.Equal(24, mono, name)
	}
}

func (s *TopologySuite) TestDirectedCycleInDirectedComplete() {
	require := require.New(s.T())
	s.directed = true
	// Reverse arcs of the complete digraph break every induced embedding
	induced, mono := s.counts(gen.Cycle(3), gen.Complete(3))
	require.Zero(induced)
	require.Equal(6, mono)
}

func TestTopologySuite(t *testing.T) {
	suite.Run(t, new(TopologySuite))
}
