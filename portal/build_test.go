package portal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/areanav/core"
	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/partition"
	"github.com/katalvlaran/areanav/portal"
)

func TestBuild_Errors(t *testing.T) {
	_, err := portal.Build(nil)
	assert.ErrorIs(t, err, portal.ErrNilAreas)

	_, err = portal.Build(labels(t, ".."), portal.WithMaxGroupSize(-2))
	assert.ErrorIs(t, err, portal.ErrOptionViolation)
}

func TestBuild_OpenMapHasNoPortals(t *testing.T) {
	gs, err := portal.Build(labels(t, ".....", ".....", "....."))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, gs.Areas.Vertices())
	assert.Zero(t, gs.Areas.EdgeCount())
	assert.Empty(t, gs.Groups())
	assert.Empty(t, gs.Squares())
}

func TestBuild_Corridor(t *testing.T) {
	gs, err := portal.Build(labels(t, corridorRows...))
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3}, gs.Areas.Vertices())
	assert.True(t, gs.Areas.AreAdjacent(1, 2))
	assert.True(t, gs.Areas.AreAdjacent(3, 2))
	assert.False(t, gs.Areas.AreAdjacent(1, 3))

	groups := gs.Groups()
	require.Len(t, groups, 2)
	top, bottom := groups[0], groups[1]
	assert.True(t, top.Connects(1, 2))
	assert.Equal(t, grid.C(2, 5), top.Portals()[0].Cells[0])
	assert.Equal(t, grid.C(2, 4), top.Portals()[0].Cells[1])
	assert.True(t, bottom.Connects(2, 3))

	assert.Equal(t, []*portal.Group{top}, gs.GroupsAt(grid.C(2, 4)))
	assert.Equal(t, []*portal.Group{top, bottom}, gs.GroupsByArea(2))
	assert.Equal(t, []*portal.Group{bottom}, gs.GroupsBetween(3, 2))
	assert.Empty(t, gs.GroupsBetween(1, 3))
	assert.True(t, gs.IsPortalSquare(grid.C(7, 9)))
	assert.False(t, gs.IsPortalSquare(grid.C(0, 0)))
	assert.Equal(t, []grid.Cell{{X: 2, Y: 4}, {X: 2, Y: 5}, {X: 7, Y: 8}, {X: 7, Y: 9}}, gs.Squares())

	require.True(t, gs.Portals.AreAdjacent(top, bottom))
	d, ok := gs.Portals.EdgeLabel(bottom, top)
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt(41), d, 1e-9)
	open, ok := gs.Portals.VertexLabel(top)
	assert.True(t, ok)
	assert.True(t, open)

	assert.Equal(t, []portal.GroupEdge{{A: 0, B: 1, Distance: d}}, gs.GroupEdges())
	g, ok := gs.Group(1)
	assert.True(t, ok)
	assert.Same(t, bottom, g)
	_, ok = gs.Group(2)
	assert.False(t, ok)
}

func TestBuild_VerticalRun(t *testing.T) {
	gs, err := portal.Build(labels(t, "..@..", ".....", "....."))
	require.NoError(t, err)

	groups := gs.Groups()
	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, 2, g.Len())
	assert.False(t, g.Horizontal())
	assert.True(t, g.Connects(1, 2))
	assert.True(t, g.Contains(grid.C(2, 1)))
	assert.True(t, g.Contains(grid.C(3, 2)))
	assert.False(t, g.Contains(grid.C(3, 0)))
}

func TestBuild_MaxGroupSize(t *testing.T) {
	rows := []string{
		"............",
		"..........@@",
		"............",
	}
	cases := []struct {
		max   int
		sizes []int
	}{
		{0, []int{10}},
		{5, []int{5, 5}},
		{3, []int{3, 3, 3, 1}},
	}
	for _, tc := range cases {
		gs, err := portal.Build(labels(t, rows...), portal.WithMaxGroupSize(tc.max))
		require.NoError(t, err)
		var sizes []int
		for _, g := range gs.Groups() {
			sizes = append(sizes, g.Len())
		}
		assert.Equal(t, tc.sizes, sizes, "max %d", tc.max)

		// consecutive groups along one boundary share both areas
		for i := 1; i < len(gs.Groups()); i++ {
			assert.True(t, gs.Portals.AreAdjacent(gs.Groups()[i-1], gs.Groups()[i]))
		}
	}
}

// TestBuild_PortalConsistency checks on random maps that area adjacency and
// portals agree in both directions.
func TestBuild_PortalConsistency(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		rng := rand.New(rand.NewSource(seed))
		free, err := grid.New[bool](6+rng.Intn(14), 6+rng.Intn(14))
		require.NoError(t, err)
		for i := 0; i < free.Len(); i++ {
			free.SetAt(free.Coordinate(i), rng.Intn(100) >= 25)
		}
		areas, _ := partition.Partition(free)
		gs, err := portal.Build(areas, portal.WithMaxGroupSize(rng.Intn(4)))
		require.NoError(t, err)

		// every boundary between areas is covered by a group at both cells
		want := core.NewGraph[int]()
		for c, a := range areas.All() {
			for _, n := range []grid.Cell{c.Up(), c.Left()} {
				b := areas.GetOr(n.X, n.Y, 0)
				if a == 0 || b == 0 || a == b {
					continue
				}
				require.NoError(t, want.AddEdge(a, b))
				found := false
				for _, g := range gs.GroupsAt(c) {
					if g.Connects(a, b) && g.Contains(c) && g.Contains(n) {
						found = true
					}
				}
				require.True(t, found, "seed %d: boundary %v|%v not in any group", seed, c, n)
			}
		}

		// every area edge is backed by a real portal
		for _, e := range gs.Areas.Edges() {
			require.True(t, want.AreAdjacent(e.From, e.To), "seed %d: phantom edge %v", seed, e)
			require.NotEmpty(t, gs.GroupsBetween(e.From, e.To))
		}
		require.Equal(t, want.EdgeCount(), gs.Areas.EdgeCount(), "seed %d", seed)

		// every portal joins adjacent cells in the areas it claims
		for _, g := range gs.Groups() {
			for _, p := range g.Portals() {
				require.True(t, p.Cells[0].Adjacent(p.Cells[1]))
				require.Equal(t, p.Areas[0], areas.At(p.Cells[0]))
				require.Equal(t, p.Areas[1], areas.At(p.Cells[1]))
			}
		}

		// groups sharing an area are linked, others are not
		groups := gs.Groups()
		for i, a := range groups {
			for _, b := range groups[i+1:] {
				require.Equal(t, a.IsLinkedWith(b), gs.Portals.AreAdjacent(a, b))
			}
		}
	}
}

func TestRestore_ReproducesGraphs(t *testing.T) {
	gs, err := portal.Build(labels(t, corridorRows...))
	require.NoError(t, err)

	var groups []*portal.Group
	for _, g := range gs.Groups() {
		r, err := portal.RestoreGroup(g.ID(), g.Portals())
		require.NoError(t, err)
		groups = append(groups, r)
	}
	back, err := portal.Restore(groups, gs.Areas.Vertices(), gs.Areas.Edges(), gs.GroupEdges())
	require.NoError(t, err)

	assert.Equal(t, gs.Areas.Edges(), back.Areas.Edges())
	assert.Equal(t, gs.GroupEdges(), back.GroupEdges())
	assert.Equal(t, gs.Squares(), back.Squares())
	assert.Len(t, back.GroupsByArea(2), 2)

	_, err = portal.Restore(groups, nil, nil, []portal.GroupEdge{{A: 0, B: 9}})
	assert.ErrorIs(t, err, portal.ErrUnknownGroup)
	_, err = portal.Restore(groups[1:], nil, nil, nil)
	assert.ErrorIs(t, err, portal.ErrUnknownGroup)
}
