package portal

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/grid"
)

// Sentinel errors for portal construction.
var (
	ErrNilAreas        = errors.New("portal: area grid is nil")
	ErrOptionViolation = errors.New("portal: invalid option supplied")
	ErrNotAdjacent     = errors.New("portal: portal cells are not adjacent")
	ErrEmptyGroup      = errors.New("portal: group has no portals")
	ErrMixedAreas      = errors.New("portal: group portals link different areas")
	ErrUnknownGroup    = errors.New("portal: unknown group id")
)

// Point is a position in cell units; cell (x,y) sits at Point{x, y}.
type Point struct {
	X, Y float64
}

// PointOf returns the position of c.
func PointOf(c grid.Cell) Point { return Point{float64(c.X), float64(c.Y)} }

// Distance returns the Euclidean distance between p and o.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Portal is one crossing between two areas. Cells[i] lies in Areas[i].
type Portal struct {
	Cells [2]grid.Cell
	Areas [2]int
}

// NewPortal builds the portal between c1 (in a1) and c2 (in a2).
func NewPortal(c1, c2 grid.Cell, a1, a2 int) (Portal, error) {
	if !c1.Adjacent(c2) {
		return Portal{}, fmt.Errorf("%w: %v %v", ErrNotAdjacent, c1, c2)
	}

	return Portal{Cells: [2]grid.Cell{c1, c2}, Areas: [2]int{a1, a2}}, nil
}

// CellIn returns the portal's cell in area a.
func (p Portal) CellIn(a int) (grid.Cell, bool) {
	switch a {
	case p.Areas[0]:
		return p.Cells[0], true
	case p.Areas[1]:
		return p.Cells[1], true
	}

	return grid.Cell{}, false
}

// Across returns the cell on the far side when leaving area a.
func (p Portal) Across(a int) (grid.Cell, bool) {
	switch a {
	case p.Areas[0]:
		return p.Cells[1], true
	case p.Areas[1]:
		return p.Cells[0], true
	}

	return grid.Cell{}, false
}

// Links reports whether the portal touches area a.
func (p Portal) Links(a int) bool { return p.Areas[0] == a || p.Areas[1] == a }

// MidPoint returns the point halfway between the two cells.
func (p Portal) MidPoint() Point {
	return Point{
		X: float64(p.Cells[0].X+p.Cells[1].X) / 2,
		Y: float64(p.Cells[0].Y+p.Cells[1].Y) / 2,
	}
}

// Option configures Build.
type Option func(*Options)

// Options holds Build parameters.
type Options struct {
	// MaxGroupSize, if > 0, closes a run after that many portals.
	MaxGroupSize int

	// Logger receives build summaries at debug level.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns unbounded groups and a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithMaxGroupSize caps the number of portals per group.
//
//	n > 0: cap at n
//	n == 0: maximal runs
//	n < 0: invalid option → ErrOptionViolation
func WithMaxGroupSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxGroupSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxGroupSize = n
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
