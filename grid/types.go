package grid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// offsets4 lists the cardinal neighbour offsets in N, E, S, W order.
var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Cell is an integer grid coordinate. Y grows downwards.
type Cell struct {
	X, Y int
}

// C is shorthand for Cell{X: x, Y: y}.
func C(x, y int) Cell { return Cell{X: x, Y: y} }

// Up returns the cell above c.
func (c Cell) Up() Cell { return Cell{c.X, c.Y - 1} }

// Down returns the cell below c.
func (c Cell) Down() Cell { return Cell{c.X, c.Y + 1} }

// Left returns the cell left of c.
func (c Cell) Left() Cell { return Cell{c.X - 1, c.Y} }

// Right returns the cell right of c.
func (c Cell) Right() Cell { return Cell{c.X + 1, c.Y} }

// Neighbors4 returns the four cardinal neighbours in N, E, S, W order.
// Bounds are not checked.
func (c Cell) Neighbors4() [4]Cell {
	var out [4]Cell
	for i, d := range offsets4 {
		out[i] = Cell{c.X + d[0], c.Y + d[1]}
	}

	return out
}

// Distance returns the Euclidean distance between c and o.
func (c Cell) Distance(o Cell) float64 {
	dx := float64(c.X - o.X)
	dy := float64(c.Y - o.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan returns |dx| + |dy|.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Adjacent reports whether o is one of c's cardinal neighbours.
func (c Cell) Adjacent(o Cell) bool { return c.Manhattan(o) == 1 }

// String formats the cell as "(x,y)".
func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
