package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/areanav/core"
)

// GraphSuite exercises vertex and edge lifecycle on undirected and directed graphs.
type GraphSuite struct {
	suite.Suite
	g *core.Graph[int]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[int]()
}

func (s *GraphSuite) TestAddVertex_Idempotent() {
	r := require.New(s.T())
	s.g.AddVertex(1)
	s.g.AddVertex(1)
	r.True(s.g.HasVertex(1))
	r.Equal(1, s.g.VertexCount())
}

func (s *GraphSuite) TestAddEdge_AddsEndpointsAndIsIdempotent() {
	r := require.New(s.T())
	r.NoError(s.g.AddEdge(1, 2))
	r.NoError(s.g.AddEdge(1, 2))
	r.NoError(s.g.AddEdge(2, 1))
	r.Equal([]int{1, 2}, s.g.Vertices())
	r.Equal(1, s.g.EdgeCount())
	r.True(s.g.AreAdjacent(1, 2))
	r.True(s.g.AreAdjacent(2, 1))
}

func (s *GraphSuite) TestAddEdge_LoopRejected() {
	r := require.New(s.T())
	r.ErrorIs(s.g.AddEdge(3, 3), core.ErrLoopNotAllowed)

	loops := core.NewGraph[int](core.WithLoops())
	r.NoError(loops.AddEdge(3, 3))
	r.True(loops.AreAdjacent(3, 3))
}

func (s *GraphSuite) TestRemoveEdge_ClearsBothDirections() {
	r := require.New(s.T())
	r.NoError(s.g.AddEdge(1, 2))
	r.NoError(s.g.RemoveEdge(2, 1))
	r.False(s.g.AreAdjacent(1, 2))
	r.False(s.g.AreAdjacent(2, 1))
	r.Zero(s.g.EdgeCount())
	r.ErrorIs(s.g.RemoveEdge(1, 2), core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestRemoveVertex_PurgesIncidentEdges() {
	r := require.New(s.T())
	r.NoError(s.g.AddEdge(1, 2))
	r.NoError(s.g.AddEdge(1, 3))
	r.NoError(s.g.AddEdge(2, 3))

	r.NoError(s.g.RemoveVertex(1))
	r.False(s.g.HasVertex(1))
	r.Equal([]int{2, 3}, s.g.Vertices())
	r.Equal(1, s.g.EdgeCount())

	nbrs, err := s.g.Neighbors(2)
	r.NoError(err)
	r.Equal([]int{3}, nbrs)

	r.ErrorIs(s.g.RemoveVertex(1), core.ErrVertexNotFound)
	_, err = s.g.Neighbors(1)
	r.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestNeighbors_InsertionOrder() {
	r := require.New(s.T())
	for _, n := range []int{5, 3, 9, 3} {
		r.NoError(s.g.AddEdge(0, n))
	}
	nbrs, err := s.g.Neighbors(0)
	r.NoError(err)
	r.Equal([]int{5, 3, 9}, nbrs)

	// returned slice is a copy
	nbrs[0] = 42
	again, _ := s.g.Neighbors(0)
	r.Equal(5, again[0])
}

func (s *GraphSuite) TestEdges_ReportsUndirectedOnce() {
	r := require.New(s.T())
	r.NoError(s.g.AddEdge(1, 2))
	r.NoError(s.g.AddEdge(3, 1))
	r.Equal([]core.Pair[int]{{From: 1, To: 2}, {From: 1, To: 3}}, s.g.Edges())
}

func (s *GraphSuite) TestDirected() {
	r := require.New(s.T())
	d := core.NewGraph[string](core.WithDirected())
	r.True(d.Directed())
	r.NoError(d.AddEdge("a", "b"))
	r.True(d.AreAdjacent("a", "b"))
	r.False(d.AreAdjacent("b", "a"))
	r.ErrorIs(d.RemoveEdge("b", "a"), core.ErrEdgeNotFound)

	r.NoError(d.AddEdge("c", "b"))
	r.NoError(d.RemoveVertex("b"))
	r.Zero(d.EdgeCount())
	nbrs, err := d.Neighbors("c")
	r.NoError(err)
	r.Empty(nbrs)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestAreAdjacent_Symmetry checks the symmetry property over every pair of
// a small random-looking graph, including after removals.
func TestAreAdjacent_Symmetry(t *testing.T) {
	g := core.NewGraph[int]()
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 0}, {5, 2}}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.RemoveEdge(0, 2))
	require.NoError(t, g.RemoveVertex(5))

	for a := 0; a < 6; a++ {
		for b := 0; b < 6; b++ {
			if g.AreAdjacent(a, b) != g.AreAdjacent(b, a) {
				t.Errorf("AreAdjacent(%d,%d) != AreAdjacent(%d,%d)", a, b, b, a)
			}
		}
	}
}
