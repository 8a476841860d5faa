package pathfinder

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/belief"
	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/navmap"
)

// Agent walks a map with its own belief, replanning when the ground truth
// disagrees.
type Agent struct {
	ID uuid.UUID

	world  *navmap.Map
	belief *belief.Model
	pf     *Pathfinder
	pos    grid.Cell
	cfg    Options
	log    *zap.Logger
}

// Trip records one Travel call.
type Trip struct {
	AgentID     uuid.UUID
	Start, Goal grid.Cell
	Cells       []grid.Cell // visited cells, Start first
	Replans     int
	Reached     bool
	Stats       Stats
}

// Steps returns the number of moves made.
func (t *Trip) Steps() int { return len(t.Cells) - 1 }

// NewAgent places a new agent with a fresh belief at start.
func NewAgent(world *navmap.Map, start grid.Cell, opts ...Option) (*Agent, error) {
	if world == nil {
		return nil, ErrNilWorld
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if world.Area(start) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, start)
	}

	id := uuid.New()
	log := cfg.Logger.With(zap.String("agent", id.String()))
	b := belief.New(world, belief.WithLogger(log))
	b.Clean()
	cfg.Logger = log

	return &Agent{
		ID:     id,
		world:  world,
		belief: b,
		pf:     &Pathfinder{world: world, belief: b, cfg: cfg},
		pos:    start,
		cfg:    cfg,
		log:    log,
	}, nil
}

// Position returns the agent's cell.
func (a *Agent) Position() grid.Cell { return a.pos }

// Belief returns the agent's belief model.
func (a *Agent) Belief() *belief.Model { return a.belief }

// Pathfinder returns the planner bound to the agent's belief.
func (a *Agent) Pathfinder() *Pathfinder { return a.pf }

// Travel moves the agent towards goal until it arrives, the plan fails,
// the replan limit is hit or ctx is done. The Trip is returned in every
// case.
func (a *Agent) Travel(ctx context.Context, goal grid.Cell) (*Trip, error) {
	trip := &Trip{AgentID: a.ID, Start: a.pos, Goal: goal, Cells: []grid.Cell{a.pos}}
	for {
		if err := ctx.Err(); err != nil {
			return trip, err
		}
		route, err := a.pf.FindPath(a.pos, goal)
		if route != nil {
			trip.Stats.Add(route.Stats)
		}
		if err != nil {
			a.log.Debug("travel failed", zap.Stringer("at", a.pos), zap.Stringer("goal", goal), zap.Error(err))
			return trip, err
		}

		blocked, err := a.follow(ctx, route, trip)
		if err != nil {
			return trip, err
		}
		if !blocked {
			trip.Reached = a.pos == goal
			a.log.Debug("travel done",
				zap.Stringer("goal", goal),
				zap.Int("steps", trip.Steps()),
				zap.Int("replans", trip.Replans),
			)
			return trip, nil
		}

		if a.cfg.MaxReplans > 0 && trip.Replans >= a.cfg.MaxReplans {
			return trip, fmt.Errorf("%w: %d", ErrReplanLimit, trip.Replans)
		}
		trip.Replans++
		a.cfg.Observer.Replanned()
	}
}

// follow walks route from its second cell. It reports whether a blocked
// cell stopped the walk.
func (a *Agent) follow(ctx context.Context, route *Route, trip *Trip) (bool, error) {
	cells := route.Cells()
	for _, c := range cells[1:] {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		a.belief.Tick()
		if !a.world.IsFree(c) {
			changed := a.belief.UpdateCell(c, false)
			a.log.Debug("blocked cell observed", zap.Stringer("cell", c), zap.Bool("changed", changed))
			return true, nil
		}

		from := a.world.Area(a.pos)
		a.pos = c
		trip.Cells = append(trip.Cells, c)
		if to := a.world.Area(c); to != from {
			a.observeArea(to)
		}
	}

	return false, nil
}

// observeArea refreshes the belief of every group of area from the ground
// truth at the group's portal nearest to the agent.
func (a *Agent) observeArea(area int) {
	changed := 0
	for _, g := range a.world.GroupsByArea(area) {
		p, _ := g.NearestPortal(a.pos)
		open := a.world.IsFree(p.Cells[0]) && a.world.IsFree(p.Cells[1])
		if a.belief.UpdateGroup(g, open) {
			changed++
		}
	}
	if changed > 0 {
		a.log.Debug("area observed", zap.Int("area", area), zap.Int("changed", changed))
	}
}
