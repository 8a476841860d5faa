package pathfinder

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/astar"
	"github.com/katalvlaran/areanav/belief"
	"github.com/katalvlaran/areanav/bfs"
	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/navmap"
	"github.com/katalvlaran/areanav/portal"
)

// Pathfinder plans over a map through one belief model.
type Pathfinder struct {
	world  *navmap.Map
	belief *belief.Model
	cfg    Options
}

// New returns a Pathfinder for world as seen through b.
func New(world *navmap.Map, b *belief.Model, opts ...Option) (*Pathfinder, error) {
	if world == nil || b == nil {
		return nil, ErrNilWorld
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Pathfinder{world: world, belief: b, cfg: cfg}, nil
}

// Belief returns the model the pathfinder consults.
func (pf *Pathfinder) Belief() *belief.Model { return pf.belief }

// FindPath plans a route from start to goal. The returned Route is non-nil
// for valid endpoints, so Stats survive a failure.
func (pf *Pathfinder) FindPath(start, goal grid.Cell) (*Route, error) {
	sa, ga := pf.world.Area(start), pf.world.Area(goal)
	if sa == 0 || ga == 0 {
		return nil, fmt.Errorf("%w: %v -> %v", ErrBlockedEndpoint, start, goal)
	}

	route := &Route{Start: start, Goal: goal, Window: -1}
	if start == goal {
		route.Legs = []Leg{{Area: sa, Path: astar.NewPath(start)}}
		return route, nil
	}

	// 1) Areas are static: no belief can connect disconnected areas.
	if sa != ga {
		res, err := bfs.BFS(pf.world.AreaGraph(), sa)
		if err != nil {
			return route, err
		}
		if !res.Reached(ga) {
			pf.cfg.Logger.Debug("areas not connected", zap.Int("from", sa), zap.Int("to", ga))
			return route, fmt.Errorf("%w: area %d cannot reach area %d", ErrNoPath, sa, ga)
		}
	}

	// 2) Plan, exclude failing hops, forgive stale beliefs.
	src := waypoint{g: portal.NewDummy(start, sa), area: sa}
	dst := waypoint{g: portal.NewDummy(goal, ga), area: ga}
	excluded := make(map[hop]struct{})
	windows := pf.cfg.windows()
	for next := 0; ; {
		plan, err := pf.coarse(src, dst, goal, excluded, &route.Stats)
		if err == nil {
			groups, legs, blamed, err := pf.refine(start, goal, plan, &route.Stats)
			if err == nil {
				route.Groups, route.Legs = groups, legs
				return route, nil
			}
			if errors.Is(err, astar.ErrExpansionLimit) {
				return route, err
			}
			excluded[blamed] = struct{}{}
			route.Stats.Excluded++
			pf.cfg.Logger.Debug("hop excluded",
				zap.Stringer("from", blamed.from),
				zap.Stringer("to", blamed.to),
				zap.Error(err),
			)
			continue
		}
		if errors.Is(err, astar.ErrExpansionLimit) {
			return route, err
		}

		if next >= len(windows) {
			return route, fmt.Errorf("%w: %v -> %v", ErrNoPath, start, goal)
		}
		w := windows[next]
		next++
		reopened := pf.belief.ReviewOlderThan(w)
		route.Window = w
		route.Stats.Reviews++
		pf.cfg.Observer.WindowReviewed(w, reopened)
		pf.cfg.Logger.Debug("beliefs reviewed", zap.Int64("window", w), zap.Int("reopened", reopened))
		clear(excluded)
	}
}

// waypoint is a portal group seen from one of its areas. An approach
// waypoint is reached by walking through area and left by crossing g;
// the others are reached by crossing g, or are the dummy endpoints, and
// left by walking.
type waypoint struct {
	g        *portal.Group
	area     int
	approach bool
}

func (w waypoint) String() string {
	if w.approach {
		return fmt.Sprintf("%v<%d", w.g, w.area)
	}

	return fmt.Sprintf("%v>%d", w.g, w.area)
}

// hop is one edge of a coarse plan: a walk inside an area or a crossing.
type hop struct{ from, to waypoint }

// coarse runs A* over portal groups between the src and dst dummies. Hops
// in excluded are not offered, so an excluded hop into dst stays excluded
// even though the goal hop is free.
func (pf *Pathfinder) coarse(src, dst waypoint, goal grid.Cell, excluded map[hop]struct{}, st *Stats) ([]waypoint, error) {
	pg := pf.world.PortalGraph()

	nb := astar.NeighborFunc[waypoint](func(w waypoint) []waypoint {
		var out []waypoint
		switch {
		case w == dst:
		case w.approach:
			if o, ok := w.g.Other(w.area); ok {
				out = append(out, waypoint{g: w.g, area: o})
			}
		default:
			for _, g := range pf.world.GroupsByArea(w.area) {
				out = append(out, waypoint{g: g, area: w.area, approach: true})
			}
			if w.area == dst.area {
				out = append(out, dst)
			}
		}

		return slices.DeleteFunc(out, func(n waypoint) bool {
			_, ok := excluded[hop{w, n}]
			return ok
		})
	})
	cost := func(from, to waypoint) float64 {
		if from.approach {
			if !pf.belief.GroupPassable(from.g) {
				return math.Inf(1)
			}
			return 0
		}
		if !from.g.IsDummy() && !to.g.IsDummy() {
			if d, ok := pg.EdgeLabel(from.g, to.g); ok {
				return d
			}
		}

		return portal.Distance(from.g, to.g)
	}
	h := func(w waypoint) float64 { return w.g.DistanceTo(goal) }

	res, err := astar.Search(src, dst, nb, cost, h, astar.WithMaxExpansions(pf.cfg.MaxExpansions))
	if res != nil {
		st.Coarse.Add(res.Stats)
		st.CoarseSearches++
		pf.cfg.Observer.SearchDone(Coarse, res.Stats, err == nil)
	}
	if err != nil {
		return nil, err
	}

	return res.Path.Steps(), nil
}

// refine turns a coarse plan into cell legs: one per walk that ends in a
// crossing, plus the final walk to the goal. It returns the crossed groups
// in order. On failure it returns the hop to exclude: the crossing when no
// portal of the group is believed open, the walk otherwise.
func (pf *Pathfinder) refine(start, goal grid.Cell, plan []waypoint, st *Stats) ([]*portal.Group, []Leg, hop, error) {
	cur, area := start, plan[0].area

	var (
		groups []*portal.Group
		legs   []Leg
		last   portal.Portal
	)
	for i := 1; i < len(plan); i++ {
		w, step := plan[i], hop{plan[i-1], plan[i]}
		if i == len(plan)-1 {
			path, err := pf.leg(cur, goal, area, st)
			if err != nil {
				return nil, nil, step, err
			}
			legs = append(legs, Leg{Area: area, Path: path})
			break
		}
		if !w.approach {
			continue
		}

		// An approach is followed by its crossing and at least one more
		// waypoint, which the portal choice aims at.
		ports := pf.crossings(w.g, cur, plan[i+2].g.MidPoint())
		if len(ports) == 0 {
			return nil, nil, hop{w, plan[i+1]}, fmt.Errorf("%w: %v has no open portal", ErrNoPath, w.g)
		}
		back := plan[i-1].g == w.g

		var (
			path   *astar.Path[grid.Cell]
			target grid.Cell
			err    = fmt.Errorf("%w: %v has no other open portal", ErrNoPath, w.g)
		)
		for _, p := range ports {
			if back && p == last {
				continue
			}
			target, _ = p.Across(area)
			if path, err = pf.leg(cur, target, area, st); err == nil {
				last = p
				break
			}
			if errors.Is(err, astar.ErrExpansionLimit) {
				return nil, nil, step, err
			}
		}
		if path == nil {
			return nil, nil, step, err
		}
		legs = append(legs, Leg{Area: area, Path: path})
		groups = append(groups, w.g)
		cur = target
		area, _ = w.g.Other(area)
	}

	return groups, legs, hop{}, nil
}

// crossings returns the portals of g whose squares are believed free,
// ordered by the detour from c through the portal to aim.
func (pf *Pathfinder) crossings(g *portal.Group, c grid.Cell, aim portal.Point) []portal.Portal {
	at := portal.PointOf(c)
	detour := func(p portal.Portal) float64 {
		m := p.MidPoint()
		return at.Distance(m) + m.Distance(aim)
	}

	var out []portal.Portal
	for _, p := range g.Portals() {
		if pf.belief.IsFree(p.Cells[0]) && pf.belief.IsFree(p.Cells[1]) {
			out = append(out, p)
		}
	}
	slices.SortStableFunc(out, func(a, b portal.Portal) int {
		return cmp.Compare(detour(a), detour(b))
	})

	return out
}

// leg runs a cell-level A* from 'from' to 'to' inside area; only 'to' may lie
// outside it.
func (pf *Pathfinder) leg(from, to grid.Cell, area int, st *Stats) (*astar.Path[grid.Cell], error) {
	nb := astar.NeighborFunc[grid.Cell](func(c grid.Cell) []grid.Cell {
		var out []grid.Cell
		for _, n := range c.Neighbors4() {
			if (n == to || pf.world.Area(n) == area) && pf.belief.IsFree(n) {
				out = append(out, n)
			}
		}

		return out
	})
	h := func(c grid.Cell) float64 { return c.Distance(to) }

	res, err := astar.Search(from, to, nb, grid.Cell.Distance, h,
		astar.WithExactGoalCost(),
		astar.WithMaxExpansions(pf.cfg.MaxExpansions),
	)
	if res != nil {
		st.Fine.Add(res.Stats)
		st.FineSearches++
		pf.cfg.Observer.SearchDone(Fine, res.Stats, err == nil)
	}
	if err != nil {
		return nil, fmt.Errorf("leg %v -> %v in area %d: %w", from, to, area, err)
	}

	return res.Path, nil
}
