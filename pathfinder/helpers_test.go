package pathfinder_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/areanav/astar"
	"github.com/katalvlaran/areanav/belief"
	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/mapfile"
	"github.com/katalvlaran/areanav/navmap"
	"github.com/katalvlaran/areanav/pathfinder"
)

func world(t testing.TB, rows ...string) *navmap.Map {
	t.Helper()
	src, err := mapfile.FromRows("test", rows...)
	require.NoError(t, err)
	m, err := navmap.New(src)
	require.NoError(t, err)
	require.NoError(t, m.ComputeMap())

	return m
}

func open(w, h int) []string {
	rows := make([]string, h)
	for y := range rows {
		rows[y] = strings.Repeat(".", w)
	}

	return rows
}

// halves is a 10×10 map with a wall on row 5 open only at x=4.
func halves() []string {
	rows := open(10, 10)
	rows[5] = "@@@@.@@@@@"

	return rows
}

// twoGaps has a wall on row 5 open at x=2 and x=7: two groups join the
// same pair of areas.
func twoGaps() []string {
	rows := open(10, 10)
	rows[5] = "@@.@@@@.@@"

	return rows
}

// sharedSquare has three areas meeting at (2,2): B above it, C to its left.
var sharedSquare = []string{
	".@...",
	".@..@",
	".....",
}

// cutArea joins the pocket at (7,1) to row 2 in one area; the group below
// row 2 at x=6..7 owns the squares that connect them.
var cutArea = []string{
	"@.......",
	"...@@@@.",
	"........",
	"..@@@@..",
}

// randomWorld scatters w*h/4 walls over a w×h map, keeping the corners
// (0,0) and (w-1,h-1) free.
func randomWorld(t testing.TB, rng *rand.Rand, w, h int) *navmap.Map {
	t.Helper()
	terrain, err := grid.New[byte](w, h)
	require.NoError(t, err)
	terrain.Fill('.')
	for i := 0; i < w*h/4; i++ {
		terrain.Set(rng.Intn(w), rng.Intn(h), '@')
	}
	terrain.Set(0, 0, '.')
	terrain.Set(w-1, h-1, '.')
	m, err := navmap.New(mapfile.FromTerrain("rand", terrain))
	require.NoError(t, err)
	require.NoError(t, m.ComputeMap())

	return m
}

// freeCells lists the cells the ground truth reports free, row-major.
func freeCells(m *navmap.Map) []grid.Cell {
	var out []grid.Cell
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if c := grid.C(x, y); m.IsFree(c) {
				out = append(out, c)
			}
		}
	}

	return out
}

func planner(t testing.TB, m *navmap.Map, opts ...pathfinder.Option) (*pathfinder.Pathfinder, *belief.Model) {
	t.Helper()
	b := belief.New(m)
	pf, err := pathfinder.New(m, b, opts...)
	require.NoError(t, err)

	return pf, b
}

// requireWalkable checks that cells form a 4-connected walk of free cells.
func requireWalkable(t testing.TB, m *navmap.Map, cells []grid.Cell, from, to grid.Cell) {
	t.Helper()
	require.NotEmpty(t, cells)
	require.Equal(t, from, cells[0])
	require.Equal(t, to, cells[len(cells)-1])
	for i, c := range cells {
		require.True(t, m.IsFree(c), "cell %v blocked", c)
		if i > 0 {
			require.True(t, cells[i-1].Adjacent(c), "%v -> %v", cells[i-1], c)
		}
	}
}

// recorder counts Observer events.
type recorder struct {
	searches map[pathfinder.Level]int
	found    map[pathfinder.Level]int
	reviews  []int64
	replans  int
}

func newRecorder() *recorder {
	return &recorder{searches: map[pathfinder.Level]int{}, found: map[pathfinder.Level]int{}}
}

func (r *recorder) SearchDone(l pathfinder.Level, _ astar.Stats, found bool) {
	r.searches[l]++
	if found {
		r.found[l]++
	}
}

func (r *recorder) WindowReviewed(w int64, _ int) { r.reviews = append(r.reviews, w) }

func (r *recorder) Replanned() { r.replans++ }
