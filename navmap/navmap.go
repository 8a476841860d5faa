package navmap

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/core"
	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/mapfile"
	"github.com/katalvlaran/areanav/partition"
	"github.com/katalvlaran/areanav/portal"
)

// Map couples a parsed map with its derived hierarchy.
type Map struct {
	mu  sync.RWMutex
	cfg Options

	src     *mapfile.Map
	free    *grid.Grid[bool]
	areas   *grid.Grid[int]
	count   int
	islands int
	graphs  *portal.Graphs
	squares map[grid.Cell]bool
}

// New wraps src. Derived state is empty until ComputeMap or Restore.
func New(src *mapfile.Map, opts ...Option) (*Map, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxGroupSize < 0 {
		return nil, fmt.Errorf("%w: MaxGroupSize %d", ErrOptionViolation, cfg.MaxGroupSize)
	}

	free := src.Free()
	areas, _ := grid.New[int](free.Width(), free.Height())
	empty, _ := portal.Restore(nil, nil, nil, nil)

	return &Map{
		cfg:     cfg,
		src:     src,
		free:    free,
		areas:   areas,
		graphs:  empty,
		squares: map[grid.Cell]bool{},
	}, nil
}

// ComputeMap partitions the map and builds the portal graphs. Every portal
// square starts open.
func (m *Map) ComputeMap() error {
	areas, count := partition.Partition(m.free)
	graphs, err := portal.Build(areas, m.cfg.portalOptions()...)
	if err != nil {
		return err
	}
	islands := len(m.free.Components(func(_ grid.Cell, ok bool) bool { return ok }))

	m.mu.Lock()
	m.install(areas, count, graphs)
	m.islands = islands
	m.mu.Unlock()

	m.cfg.Logger.Info("map computed",
		zap.String("map", m.src.Name),
		zap.Int("width", m.free.Width()),
		zap.Int("height", m.free.Height()),
		zap.Int("areas", count),
		zap.Int("islands", islands),
		zap.Int("portal_groups", len(graphs.Groups())),
		zap.Int("portal_squares", len(graphs.Squares())),
	)

	return nil
}

func (m *Map) install(areas *grid.Grid[int], count int, graphs *portal.Graphs) {
	m.areas, m.count, m.graphs = areas, count, graphs
	m.squares = make(map[grid.Cell]bool, len(graphs.Squares()))
	for _, c := range graphs.Squares() {
		m.squares[c] = true
	}
	for _, g := range graphs.Groups() {
		_ = graphs.Portals.SetVertexLabel(g, true)
	}
}

// Name returns the source map name.
func (m *Map) Name() string { return m.src.Name }

// Digest returns the source map identity.
func (m *Map) Digest() string { return m.src.Digest }

// Source returns the parsed map.
func (m *Map) Source() *mapfile.Map { return m.src }

// Width returns the map width.
func (m *Map) Width() int { return m.free.Width() }

// Height returns the map height.
func (m *Map) Height() int { return m.free.Height() }

// Contains reports whether c lies on the map.
func (m *Map) Contains(c grid.Cell) bool { return m.free.Contains(c) }

// AreaCount returns the number of areas.
func (m *Map) AreaCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.count
}

// Islands returns the number of 4-connected free regions found by the last
// ComputeMap.
func (m *Map) Islands() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.islands
}

// Area returns the area label of c, or 0 for blocked and off-map cells.
func (m *Map) Area(c grid.Cell) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.areas.GetOr(c.X, c.Y, 0)
}

// Areas returns a copy of the area labels.
func (m *Map) Areas() *grid.Grid[int] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.areas.Clone()
}

// IsFree reports whether c is passable in ground truth. Portal squares also
// honour their open/closed state. Off-map cells are blocked.
func (m *Map) IsFree(c grid.Cell) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.isFree(c)
}

func (m *Map) isFree(c grid.Cell) bool {
	if !m.free.GetOr(c.X, c.Y, false) {
		return false
	}
	if open, ok := m.squares[c]; ok {
		return open
	}

	return true
}

// AreaGraph returns the area-connectivity graph.
func (m *Map) AreaGraph() *core.Graph[int] { return m.current().Areas }

// PortalGraph returns the portal-connectivity graph. Vertex labels mirror
// GroupOpen.
func (m *Map) PortalGraph() *core.LabeledGraph[*portal.Group, bool, float64] {
	return m.current().Portals
}

// Groups returns every portal group in id order.
func (m *Map) Groups() []*portal.Group { return m.current().Groups() }

// GroupsByArea returns the groups touching area a.
func (m *Map) GroupsByArea(a int) []*portal.Group { return m.current().GroupsByArea(a) }

// GroupsBetween returns the groups linking a and b.
func (m *Map) GroupsBetween(a, b int) []*portal.Group { return m.current().GroupsBetween(a, b) }

// GroupsAt returns the groups with a portal touching c.
func (m *Map) GroupsAt(c grid.Cell) []*portal.Group { return m.current().GroupsAt(c) }

// IsPortalSquare reports whether c belongs to some portal.
func (m *Map) IsPortalSquare(c grid.Cell) bool { return m.current().IsPortalSquare(c) }

// PortalSquares returns every portal square in row-major order.
func (m *Map) PortalSquares() []grid.Cell { return m.current().Squares() }

func (m *Map) current() *portal.Graphs {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.graphs
}
