package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/areanav/grid"
)

// TestComponents verifies 4-connected region discovery.
func TestComponents(t *testing.T) {
	cases := []struct {
		name  string
		rows  [][]bool
		sizes []int
	}{
		{"Empty", [][]bool{{false, false}, {false, false}}, nil},
		{"Single", [][]bool{{true}}, []int{1}},
		{"DiagonalSplit", [][]bool{{true, false}, {false, true}}, []int{1, 1}},
		{"Ring", [][]bool{
			{true, true, true},
			{true, false, true},
			{true, true, true},
		}, []int{8}},
		{"TwoBands", [][]bool{
			{true, true, true},
			{false, false, false},
			{true, true, false},
		}, []int{3, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.FromRows(tc.rows)
			require.NoError(t, err)
			comps := g.Components(func(_ grid.Cell, v bool) bool { return v })
			require.Len(t, comps, len(tc.sizes))
			for i, comp := range comps {
				if len(comp) != tc.sizes[i] {
					t.Errorf("component %d size = %d; want %d", i, len(comp), tc.sizes[i])
				}
			}
		})
	}
}
