package portal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/partition"
)

// labels partitions '.'/'@' rows.
func labels(t testing.TB, rows ...string) *grid.Grid[int] {
	t.Helper()
	bs := make([][]bool, len(rows))
	for y, r := range rows {
		bs[y] = make([]bool, len(r))
		for x := range r {
			bs[y][x] = r[x] == '.'
		}
	}
	free, err := grid.FromRows(bs)
	require.NoError(t, err)
	areas, _ := partition.Partition(free)

	return areas
}

// corridorRows is three areas stacked vertically and joined by one-cell gaps.
var corridorRows = []string{
	"..........",
	"..........",
	"..........",
	"..........",
	"@@.@@@@@@@",
	"..........",
	"..........",
	"..........",
	"@@@@@@@.@@",
	"..........",
	"..........",
}
