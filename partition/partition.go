package partition

import (
	"github.com/katalvlaran/areanav/grid"
)

// Partition labels every free cell of free with an area id in [1, N] and
// returns the label grid together with N.
func Partition(free *grid.Grid[bool]) (*grid.Grid[int], int) {
	areas, _ := grid.New[int](free.Width(), free.Height())
	p := &partitioner{free: free, areas: areas}

	label := 0
	for i := 0; i < free.Len(); i++ {
		c := free.Coordinate(i)
		if !p.labelFree(c.X, c.Y) {
			continue
		}
		label++
		p.grow(c.X, c.Y, label)
	}

	return areas, label
}

// partitioner holds the grids of a single Partition run. Reads outside the
// grid behave as blocked, unlabelled cells.
type partitioner struct {
	free  *grid.Grid[bool]
	areas *grid.Grid[int]
}

func (p *partitioner) isFree(x, y int) bool { return p.free.GetOr(x, y, false) }

func (p *partitioner) label(x, y int) int { return p.areas.GetOr(x, y, 0) }

// labelFree reports a free cell that no area has claimed yet.
func (p *partitioner) labelFree(x, y int) bool {
	return p.isFree(x, y) && p.label(x, y) == 0
}

// grow labels one area seeded at (sx, sy).
func (p *partitioner) grow(sx, sy, label int) {
	var shrunkL, shrunkR bool
	xLeft, y := sx, sy

	for {
		// 1) Fill the row rightwards. Stop under free, unclaimed cells of the
		//    row above: they will seed their own area.
		x := xLeft
		p.areas.Set(x, y, label)
		for p.labelFree(x+1, y) && !p.labelFree(x+1, y-1) {
			x++
			p.areas.Set(x, y, label)
		}

		// 2) Right side: shrinking is allowed once, re-growing undoes the row.
		if p.label(x+1, y-1) == label {
			shrunkR = true
		} else if p.label(x, y-1) != label && shrunkR {
			for ux := xLeft; ux <= x; ux++ {
				p.areas.Set(ux, y, 0)
			}
			return
		}

		// 3) Find the next row's start under the current span.
		y++
		if y >= p.free.Height() {
			return
		}
		x = xLeft
		for !p.labelFree(x, y) && p.label(x, y-1) == label {
			x++
		}
		if !p.labelFree(x, y) || p.label(x, y-1) != label {
			return
		}

		// 4) Extend left under blocked or claimed cells of the row above.
		for p.labelFree(x-1, y) && !p.labelFree(x-1, y-1) {
			x--
		}

		// 5) Left side: same rule as the right, checked before labelling.
		if p.label(x-1, y-1) == label {
			shrunkL = true
		} else if p.label(x, y-1) != label && shrunkL {
			return
		}
		xLeft = x
	}
}
