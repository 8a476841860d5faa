package portal

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/areanav/grid"
)

// DummyID is the id of every dummy group.
const DummyID = -1

// Group is a run of portals between the same two areas.
// Groups are compared by identity.
type Group struct {
	id      int
	portals []Portal
	first   Point
	last    Point
}

func newGroup(id int, p Portal) *Group {
	mid := p.MidPoint()
	return &Group{id: id, portals: []Portal{p}, first: mid, last: mid}
}

// NewDummy returns a group linking area to itself at c.
func NewDummy(c grid.Cell, area int) *Group {
	return newGroup(DummyID, Portal{Cells: [2]grid.Cell{c, c}, Areas: [2]int{area, area}})
}

// RestoreGroup rebuilds a group from its persisted portals.
func RestoreGroup(id int, portals []Portal) (*Group, error) {
	if len(portals) == 0 {
		return nil, fmt.Errorf("%w: id %d", ErrEmptyGroup, id)
	}
	g := newGroup(id, portals[0])
	for _, p := range portals[1:] {
		if p.Areas != g.portals[0].Areas {
			return nil, fmt.Errorf("%w: id %d", ErrMixedAreas, id)
		}
		g.add(p)
	}

	return g, nil
}

// add appends p and moves the Last endpoint. Duplicates are ignored.
func (g *Group) add(p Portal) bool {
	if slices.Contains(g.portals, p) {
		return false
	}
	g.portals = append(g.portals, p)
	g.last = p.MidPoint()

	return true
}

// ID returns the group's build-order id, or DummyID.
func (g *Group) ID() int { return g.id }

// IsDummy reports whether the group links one area to itself.
func (g *Group) IsDummy() bool { return g.portals[0].Areas[0] == g.portals[0].Areas[1] }

// Len returns the number of portals.
func (g *Group) Len() int { return len(g.portals) }

// Portals returns a copy of the member portals in scan order.
func (g *Group) Portals() []Portal { return slices.Clone(g.portals) }

// Areas returns the two linked areas in scan order.
func (g *Group) Areas() (int, int) { return g.portals[0].Areas[0], g.portals[0].Areas[1] }

// First returns the midpoint of the first portal.
func (g *Group) First() Point { return g.first }

// Last returns the midpoint of the last portal.
func (g *Group) Last() Point { return g.last }

// Horizontal reports whether the run extends along the x axis.
// Single-portal groups report true.
func (g *Group) Horizontal() bool { return math.Abs(g.first.Y-g.last.Y) < 0.01 }

// MidPoint returns the point halfway between First and Last.
func (g *Group) MidPoint() Point {
	return Point{X: (g.first.X + g.last.X) / 2, Y: (g.first.Y + g.last.Y) / 2}
}

// MidPortal returns the portal at index Len()/2.
func (g *Group) MidPortal() Portal { return g.portals[len(g.portals)/2] }

// BelongsTo reports whether the group touches area a.
func (g *Group) BelongsTo(a int) bool { return g.portals[0].Links(a) }

// Connects reports whether the group links a and b in either order.
func (g *Group) Connects(a, b int) bool {
	a1, a2 := g.Areas()
	return (a1 == a && a2 == b) || (a1 == b && a2 == a)
}

// Other returns the area across the group from a.
func (g *Group) Other(a int) (int, bool) {
	a1, a2 := g.Areas()
	switch a {
	case a1:
		return a2, true
	case a2:
		return a1, true
	}

	return 0, false
}

// IsLinkedWith reports whether g and o share an area.
func (g *Group) IsLinkedWith(o *Group) bool {
	_, ok := g.CommonArea(o)
	return ok
}

// CommonArea returns the first of g's areas that o also touches.
func (g *Group) CommonArea(o *Group) (int, bool) {
	a1, a2 := g.Areas()
	if o.BelongsTo(a1) {
		return a1, true
	}
	if o.BelongsTo(a2) {
		return a2, true
	}

	return 0, false
}

// Contains reports whether c lies on either side of the run, using the band
// spanned by First and Last.
func (g *Group) Contains(c grid.Cell) bool {
	x, y := float64(c.X), float64(c.Y)
	if g.Horizontal() {
		lo, hi := math.Min(g.first.X, g.last.X), math.Max(g.first.X, g.last.X)
		return math.Abs(y-g.first.Y) <= 0.51 && x >= lo-0.5 && x <= hi+0.5
	}
	lo, hi := math.Min(g.first.Y, g.last.Y), math.Max(g.first.Y, g.last.Y)

	return math.Abs(x-g.first.X) <= 0.51 && y >= lo-0.5 && y <= hi+0.5
}

// NearestPortal returns the member portal whose midpoint is closest to c
// and that distance. Ties keep the earliest portal.
func (g *Group) NearestPortal(c grid.Cell) (Portal, float64) {
	at := PointOf(c)
	best, bestD := g.portals[0], math.Inf(1)
	for _, p := range g.portals {
		if d := at.Distance(p.MidPoint()); d < bestD {
			best, bestD = p, d
		}
	}

	return best, bestD
}

// DistanceTo returns the distance from the group's midpoint to c.
func (g *Group) DistanceTo(c grid.Cell) float64 {
	return g.MidPoint().Distance(PointOf(c))
}

// Distance measures between two groups with the dummy special cases.
func Distance(a, b *Group) float64 {
	switch {
	case a.IsDummy() && b.IsDummy():
		return a.portals[0].Cells[0].Distance(b.portals[0].Cells[0])
	case a.IsDummy():
		_, d := b.NearestPortal(a.portals[0].Cells[0])
		return d
	case b.IsDummy():
		_, d := a.NearestPortal(b.portals[0].Cells[0])
		return d
	}

	return a.MidPoint().Distance(b.MidPoint())
}

// String identifies the group for logs.
func (g *Group) String() string {
	a1, a2 := g.Areas()
	if g.IsDummy() {
		return fmt.Sprintf("dummy@%v[%d]", g.portals[0].Cells[0], a1)
	}

	return fmt.Sprintf("pg%d[%d|%d]x%d", g.id, a1, a2, len(g.portals))
}
