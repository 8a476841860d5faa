package navmap

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/portal"
)

// SetGroupState opens or closes the portal squares of g that lie in area
// side. Squares shared with other groups change for them too.
func (m *Map) SetGroupState(g *portal.Group, passable bool, side int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.setGroupState(g, passable, side)
}

func (m *Map) setGroupState(g *portal.Group, passable bool, side int) error {
	if err := m.owns(g, side); err != nil {
		m.cfg.Logger.Debug("group state rejected", zap.Int("side", side), zap.Error(err))
		return err
	}

	touched := map[*portal.Group]struct{}{g: {}}
	for _, p := range g.Portals() {
		c, _ := p.CellIn(side)
		m.squares[c] = passable
		for _, o := range m.graphs.GroupsAt(c) {
			touched[o] = struct{}{}
		}
	}
	for o := range touched {
		_ = m.graphs.Portals.SetVertexLabel(o, m.groupOpen(o))
	}

	return nil
}

// GroupState reports the state of the first portal square of g in area side.
func (m *Map) GroupState(g *portal.Group, side int) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := m.owns(g, side); err != nil {
		return false, err
	}
	c, _ := g.Portals()[0].CellIn(side)

	return m.squares[c], nil
}

// GroupOpen reports whether some portal of g can be crossed, i.e. both of
// its squares are open. It reads the vertex label of g in the portal graph;
// groups without a label, such as dummies, are computed from the squares.
func (m *Map) GroupOpen(g *portal.Group) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if open, ok := m.graphs.Portals.VertexLabel(g); ok {
		return open
	}

	return m.groupOpen(g)
}

func (m *Map) groupOpen(g *portal.Group) bool {
	for _, p := range g.Portals() {
		if m.isFree(p.Cells[0]) && m.isFree(p.Cells[1]) {
			return true
		}
	}

	return false
}

// OpenAll reopens every portal square.
func (m *Map) OpenAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for c := range m.squares {
		m.squares[c] = true
	}
	for _, g := range m.graphs.Groups() {
		_ = m.graphs.Portals.SetVertexLabel(g, true)
	}
}

// CloseRandom visits the groups in id order and, with probability fraction,
// flips the state of both sides (taken from the first side). It returns the
// number of groups flipped.
func (m *Map) CloseRandom(rng *rand.Rand, fraction float64) (int, error) {
	if fraction < 0 || fraction > 1 {
		return 0, fmt.Errorf("%w: %v", ErrBadFraction, fraction)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	flipped := 0
	for _, g := range m.graphs.Groups() {
		if rng.Float64() >= fraction {
			continue
		}
		a1, a2 := g.Areas()
		c, _ := g.Portals()[0].CellIn(a1)
		state := !m.squares[c]
		_ = m.setGroupState(g, state, a1)
		_ = m.setGroupState(g, state, a2)
		flipped++
	}
	m.cfg.Logger.Debug("portal groups flipped", zap.Int("flipped", flipped), zap.Float64("fraction", fraction))

	return flipped, nil
}

// owns checks that g is a group of this map and side one of its areas.
func (m *Map) owns(g *portal.Group, side int) error {
	if g == nil || g.IsDummy() {
		return ErrUnknownGroup
	}
	if own, ok := m.graphs.Group(g.ID()); !ok || own != g {
		return fmt.Errorf("%w: %v", ErrUnknownGroup, g)
	}
	if !g.BelongsTo(side) {
		return fmt.Errorf("%w: %v side %d", ErrWrongSide, g, side)
	}

	return nil
}

// ClosedSquares returns the portal squares currently closed, row-major.
func (m *Map) ClosedSquares() []grid.Cell {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []grid.Cell
	for _, c := range m.graphs.Squares() {
		if !m.squares[c] {
			out = append(out, c)
		}
	}

	return out
}
