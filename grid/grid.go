package grid

import (
	"fmt"
	"iter"
)

// Grid is a dense Width×Height array of T. Dimensions never change after
// construction. The zero value is not usable; build one with New or FromRows.
type Grid[T any] struct {
	width, height int
	cells         []T
}

// New allocates a grid with every cell set to the zero value of T.
// Returns ErrEmptyGrid if either dimension is not positive.
func New[T any](width, height int) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}

	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// FromRows builds a grid from rows[y][x], deep-copying the input.
// Returns ErrEmptyGrid if rows is empty or the first row is empty,
// ErrNonRectangular if any row length differs.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	g, err := New[T](w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		copy(g.cells[y*w:(y+1)*w], row)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns Width×Height.
func (g *Grid[T]) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsOutOfBound is the negation of InBounds.
func (g *Grid[T]) IsOutOfBound(x, y int) bool { return !g.InBounds(x, y) }

// Contains reports whether c lies within the grid.
func (g *Grid[T]) Contains(c Cell) bool { return g.InBounds(c.X, c.Y) }

// Index maps (x,y) to its row-major offset y*Width + x.
func (g *Grid[T]) Index(x, y int) int { return y*g.width + x }

// Coordinate converts a row-major offset back to a cell.
func (g *Grid[T]) Coordinate(idx int) Cell {
	return Cell{X: idx % g.width, Y: idx / g.width}
}

// Get returns the value at (x,y). It panics when (x,y) is out of range.
func (g *Grid[T]) Get(x, y int) T {
	g.mustContain(x, y)

	return g.cells[g.Index(x, y)]
}

// Set stores v at (x,y). It panics when (x,y) is out of range.
func (g *Grid[T]) Set(x, y int, v T) {
	g.mustContain(x, y)
	g.cells[g.Index(x, y)] = v
}

// At is Get addressed by cell.
func (g *Grid[T]) At(c Cell) T { return g.Get(c.X, c.Y) }

// SetAt is Set addressed by cell.
func (g *Grid[T]) SetAt(c Cell, v T) { g.Set(c.X, c.Y, v) }

// GetOr returns the value at (x,y), or def when (x,y) is out of range.
func (g *Grid[T]) GetOr(x, y int, def T) T {
	if !g.InBounds(x, y) {
		return def
	}

	return g.cells[g.Index(x, y)]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// All yields every cell and its value in row-major order.
func (g *Grid[T]) All() iter.Seq2[Cell, T] {
	return func(yield func(Cell, T) bool) {
		for i, v := range g.cells {
			if !yield(g.Coordinate(i), v) {
				return
			}
		}
	}
}

// Values returns a copy of the backing row-major slice.
func (g *Grid[T]) Values() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)

	return out
}

// Clone returns a deep copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{width: g.width, height: g.height, cells: g.Values()}
}

// Map builds a new grid of the same shape by applying fn to every cell.
func Map[T, U any](g *Grid[T], fn func(Cell, T) U) *Grid[U] {
	out := &Grid[U]{width: g.width, height: g.height, cells: make([]U, len(g.cells))}
	for i, v := range g.cells {
		out.cells[i] = fn(g.Coordinate(i), v)
	}

	return out
}

func (g *Grid[T]) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("grid: (%d,%d) out of range %dx%d", x, y, g.width, g.height))
	}
}
