package partition_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/partition"
)

// freeGrid turns '.'/'@' rows into a passability mask.
func freeGrid(t testing.TB, rows ...string) *grid.Grid[bool] {
	t.Helper()
	bs := make([][]bool, len(rows))
	for y, r := range rows {
		bs[y] = make([]bool, len(r))
		for x := range r {
			bs[y][x] = r[x] == '.'
		}
	}
	g, err := grid.FromRows(bs)
	require.NoError(t, err)

	return g
}

func labelRows(g *grid.Grid[int]) [][]int {
	out := make([][]int, g.Height())
	for y := range out {
		out[y] = make([]int, g.Width())
		for x := range out[y] {
			out[y][x] = g.Get(x, y)
		}
	}

	return out
}

// TestPartition_Shapes pins the labeling of small maps that exercise each
// growth rule.
func TestPartition_Shapes(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		count int
		want  [][]int
	}{
		{
			name:  "Open",
			rows:  []string{"...", "...", "..."},
			count: 1,
			want:  [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}},
		},
		{
			name:  "AllBlocked",
			rows:  []string{"@@", "@@"},
			count: 0,
			want:  [][]int{{0, 0}, {0, 0}},
		},
		{
			name:  "RightShrinkThenGrowUndoesRow",
			rows:  []string{"....", "..@@", "...."},
			count: 2,
			want:  [][]int{{1, 1, 1, 1}, {1, 1, 0, 0}, {2, 2, 2, 2}},
		},
		{
			name:  "LeftShrinkThenGrowStops",
			rows:  []string{"....", "@...", "...."},
			count: 2,
			want:  [][]int{{1, 1, 1, 1}, {0, 1, 1, 1}, {2, 2, 2, 2}},
		},
		{
			name:  "LeftGrowthUnderWall",
			rows:  []string{"@@..", "...."},
			count: 1,
			want:  [][]int{{0, 0, 1, 1}, {1, 1, 1, 1}},
		},
		{
			name:  "StopsUnderUnclaimedCell",
			rows:  []string{"..@..", "....."},
			count: 2,
			want:  [][]int{{1, 1, 0, 2, 2}, {1, 1, 1, 2, 2}},
		},
		{
			name:  "NoAlignedCellBelow",
			rows:  []string{"..@", "@@.", "..."},
			count: 2,
			want:  [][]int{{1, 1, 0}, {0, 0, 2}, {2, 2, 2}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			free := freeGrid(t, tc.rows...)
			areas, n := partition.Partition(free)
			require.Equal(t, tc.count, n)
			if diff := cmp.Diff(tc.want, labelRows(areas)); diff != "" {
				t.Errorf("labels mismatch (-want +got):\n%s", diff)
			}
			require.NoError(t, partition.Verify(free, areas, n))
		})
	}
}

// TestPartition_GapSplitsTwoAreas uses a wall with a single opening: the
// opening joins the upper area and the lower rows form the second one.
func TestPartition_GapSplitsTwoAreas(t *testing.T) {
	rows := make([]string, 10)
	for y := range rows {
		rows[y] = ".........."
	}
	rows[5] = "@@@@.@@@@@"
	free := freeGrid(t, rows...)

	areas, n := partition.Partition(free)
	require.Equal(t, 2, n)
	require.Equal(t, 1, areas.Get(0, 0))
	require.Equal(t, 1, areas.Get(4, 5))
	require.Equal(t, 2, areas.Get(4, 6))
	require.Equal(t, 2, areas.Get(9, 9))
}

// TestPartition_Properties checks coverage, disjointness and connectivity
// on random maps.
func TestPartition_Properties(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		rng := rand.New(rand.NewSource(seed))
		w, h := 5+rng.Intn(20), 5+rng.Intn(20)
		free, err := grid.New[bool](w, h)
		require.NoError(t, err)
		for i := 0; i < free.Len(); i++ {
			c := free.Coordinate(i)
			free.SetAt(c, rng.Intn(100) >= 30)
		}

		areas, n := partition.Partition(free)
		require.NoError(t, partition.Verify(free, areas, n), "seed %d", seed)

		used := make(map[int]bool)
		for _, a := range areas.Values() {
			if a != 0 {
				used[a] = true
			}
		}
		require.Len(t, used, n, "seed %d: every label in [1,N] is used", seed)
	}
}

func TestVerify_Rejects(t *testing.T) {
	free := freeGrid(t, "..", "@.")
	good, n := partition.Partition(free)
	require.NoError(t, partition.Verify(free, good, n))

	bad := good.Clone()
	bad.Set(0, 0, 0)
	require.ErrorIs(t, partition.Verify(free, bad, n), partition.ErrUncovered)

	bad = good.Clone()
	bad.Set(0, 1, 1)
	require.ErrorIs(t, partition.Verify(free, bad, n), partition.ErrBlockedLabeled)

	bad = good.Clone()
	bad.Set(1, 1, 7)
	require.ErrorIs(t, partition.Verify(free, bad, n), partition.ErrLabelRange)

	split := freeGrid(t, ".@.")
	labels, err := grid.FromRows([][]int{{1, 0, 1}})
	require.NoError(t, err)
	require.ErrorIs(t, partition.Verify(split, labels, 1), partition.ErrDisconnectedArea)

	wide := freeGrid(t, "...")
	require.ErrorIs(t, partition.Verify(wide, good, n), partition.ErrShapeMismatch)
}

func BenchmarkPartition(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	free, _ := grid.New[bool](256, 256)
	for i := 0; i < free.Len(); i++ {
		free.SetAt(free.Coordinate(i), rng.Intn(100) >= 20)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		partition.Partition(free)
	}
}
