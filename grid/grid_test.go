package grid_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/areanav/grid"
)

//----------------------------------------------------------------------------//
// Construction and bounds
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New and FromRows reject empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		run  func() error
		err  error
	}{
		{"ZeroWidth", func() error { _, err := grid.New[int](0, 3); return err }, grid.ErrEmptyGrid},
		{"NegativeHeight", func() error { _, err := grid.New[int](3, -1); return err }, grid.ErrEmptyGrid},
		{"EmptyRows", func() error { _, err := grid.FromRows([][]int{}); return err }, grid.ErrEmptyGrid},
		{"EmptyCols", func() error { _, err := grid.FromRows([][]int{{}}); return err }, grid.ErrEmptyGrid},
		{"NonRectangular", func() error { _, err := grid.FromRows([][]int{{1, 2}, {3}}); return err }, grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.run(); !errors.Is(err, tc.err) {
				t.Errorf("error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestInBounds checks InBounds and IsOutOfBound on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := grid.New[bool](3, 2)
	require.NoError(t, err)

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) || g.IsOutOfBound(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) || !g.IsOutOfBound(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

func TestGetSet_RowMajor(t *testing.T) {
	g, err := grid.FromRows([][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 6, g.Get(2, 1))
	assert.Equal(t, 5, g.Index(2, 1))
	assert.Equal(t, grid.C(2, 1), g.Coordinate(5))

	g.Set(0, 1, 40)
	assert.Equal(t, 40, g.At(grid.C(0, 1)))
	assert.Equal(t, -1, g.GetOr(9, 9, -1))

	var seen []grid.Cell
	var vals []int
	for c, v := range g.All() {
		seen = append(seen, c)
		vals = append(vals, v)
	}
	want := []grid.Cell{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("All() order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{1, 2, 3, 40, 5, 6}, vals)
}

func TestGet_OutOfRangePanics(t *testing.T) {
	g, err := grid.New[int](2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { g.Get(2, 0) })
	assert.Panics(t, func() { g.Set(0, -1, 1) })
}

func TestClone_IsIndependent(t *testing.T) {
	g, err := grid.New[int](2, 2)
	require.NoError(t, err)
	g.Fill(7)

	c := g.Clone()
	c.Set(0, 0, 1)
	assert.Equal(t, 7, g.Get(0, 0))
	assert.Equal(t, 1, c.Get(0, 0))

	doubled := grid.Map(g, func(_ grid.Cell, v int) int { return v * 2 })
	assert.Equal(t, 14, doubled.Get(1, 1))
}

func TestCell_Geometry(t *testing.T) {
	c := grid.C(3, 4)
	assert.Equal(t, grid.C(3, 3), c.Up())
	assert.Equal(t, grid.C(3, 5), c.Down())
	assert.Equal(t, grid.C(2, 4), c.Left())
	assert.Equal(t, grid.C(4, 4), c.Right())
	assert.Equal(t, [4]grid.Cell{{3, 3}, {4, 4}, {3, 5}, {2, 4}}, c.Neighbors4())

	assert.InDelta(t, 5.0, grid.C(0, 0).Distance(grid.C(3, 4)), 1e-9)
	assert.Equal(t, 7, grid.C(0, 0).Manhattan(grid.C(3, 4)))
	assert.True(t, c.Adjacent(c.Right()))
	assert.False(t, c.Adjacent(grid.C(4, 5)))
	assert.Equal(t, "(3,4)", c.String())
}
