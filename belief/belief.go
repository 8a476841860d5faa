package belief

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/portal"
)

// Model is an agent's belief about portal groups.
type Model struct {
	world   World
	entries map[*portal.Group]Entry
	now     int64
	log     *zap.Logger
}

// New returns an empty Model over world.
func New(world World, opts ...Option) *Model {
	m := &Model{
		world:   world,
		entries: make(map[*portal.Group]Entry),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Now returns the current logical time.
func (m *Model) Now() int64 { return m.now }

// Tick advances the clock by one step and returns the new time.
func (m *Model) Tick() int64 {
	m.now++
	return m.now
}

// SetNow moves the clock to t. The clock never goes backwards; an earlier t
// is ignored.
func (m *Model) SetNow(t int64) {
	if t > m.now {
		m.now = t
	}
}

// Len returns the number of entries.
func (m *Model) Len() int { return len(m.entries) }

// Entry returns the observation recorded for g.
func (m *Model) Entry(g *portal.Group) (Entry, bool) {
	e, ok := m.entries[g]
	return e, ok
}

// UpdateGroup records that g is passable or not, stamps it with Now and
// reports whether the believed value changed.
func (m *Model) UpdateGroup(g *portal.Group, passable bool) bool {
	prior := m.GroupPassable(g)
	m.entries[g] = Entry{Passable: passable, Updated: m.now}

	return prior != passable
}

// UpdateCell records an observation of cell c for every group touching it.
// A cell without groups is an inconsistency: it is logged and reported as
// no change.
func (m *Model) UpdateCell(c grid.Cell, passable bool) bool {
	groups := m.world.GroupsAt(c)
	if len(groups) == 0 {
		m.log.Warn("no portal group at cell", zap.Stringer("cell", c), zap.Bool("passable", passable))
		return false
	}

	changed := false
	for _, g := range groups {
		if m.UpdateGroup(g, passable) {
			changed = true
		}
	}

	return changed
}

// GroupPassable returns the believed state of g.
func (m *Model) GroupPassable(g *portal.Group) bool {
	if e, ok := m.entries[g]; ok {
		return e.Passable
	}

	return m.world.GroupOpen(g)
}

// IsFree returns the believed state of c. A portal square follows the
// entries of its groups; with no entry at all it follows the world's square.
func (m *Model) IsFree(c grid.Cell) bool {
	if !m.world.IsPortalSquare(c) {
		return m.world.IsFree(c)
	}
	known := false
	for _, g := range m.world.GroupsAt(c) {
		e, ok := m.entries[g]
		if !ok {
			continue
		}
		if !e.Passable {
			return false
		}
		known = true
	}
	if !known {
		return m.world.IsFree(c)
	}

	return true
}

// ReviewOlderThan resets to passable every entry stamped at or before
// Now-window and returns how many were believed blocked.
func (m *Model) ReviewOlderThan(window int64) int {
	limit := m.now - window
	reopened := 0
	for g, e := range m.entries {
		if e.Updated > limit {
			continue
		}
		if m.UpdateGroup(g, true) {
			reopened++
		}
	}
	if reopened > 0 {
		m.log.Debug("stale beliefs reopened", zap.Int64("window", window), zap.Int("reopened", reopened))
	}

	return reopened
}

// Clean believes every group of the world passable, stamped with Now.
func (m *Model) Clean() {
	clear(m.entries)
	for _, g := range m.world.Groups() {
		m.entries[g] = Entry{Passable: true, Updated: m.now}
	}
}

// Reset is an alias of Clean.
func (m *Model) Reset() { m.Clean() }

// Blocked returns the groups currently believed impassable.
func (m *Model) Blocked() []*portal.Group {
	var out []*portal.Group
	for _, g := range m.world.Groups() {
		if e, ok := m.entries[g]; ok && !e.Passable {
			out = append(out, g)
		}
	}

	return out
}
