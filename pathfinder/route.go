package pathfinder

import (
	"github.com/katalvlaran/areanav/astar"
	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/portal"
)

// Stats aggregates the searches behind one query or trip.
type Stats struct {
	Coarse         astar.Stats
	Fine           astar.Stats
	CoarseSearches int
	FineSearches   int
	Reviews        int // stale-window reviews performed
	Excluded       int // coarse hops excluded after a failed fine leg
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Coarse.Add(o.Coarse)
	s.Fine.Add(o.Fine)
	s.CoarseSearches += o.CoarseSearches
	s.FineSearches += o.FineSearches
	s.Reviews += o.Reviews
	s.Excluded += o.Excluded
}

// Leg is a cell path inside one area. Its last cell may lie across a
// portal, in the next area.
type Leg struct {
	Area int
	Path *astar.Path[grid.Cell]
}

// Route is the answer to FindPath. On failure only Start, Goal and Stats
// are set.
type Route struct {
	Start, Goal grid.Cell

	// Groups lists the portal groups the route crosses, in order.
	Groups []*portal.Group
	Legs   []Leg

	// Window is the smallest review window used, or -1.
	Window int64
	Stats  Stats
}

// Cells returns the route from Start to Goal, one cell per step.
func (r *Route) Cells() []grid.Cell {
	var out []grid.Cell
	for i, l := range r.Legs {
		steps := l.Path.Steps()
		if i > 0 {
			steps = steps[1:]
		}
		out = append(out, steps...)
	}

	return out
}

// Cost returns the summed cost of the legs.
func (r *Route) Cost() float64 {
	var c float64
	for _, l := range r.Legs {
		c += l.Path.TotalCost()
	}

	return c
}

// Len returns the number of cells on the route.
func (r *Route) Len() int { return len(r.Cells()) }
