package navmap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/core"
	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/partition"
	"github.com/katalvlaran/areanav/portal"
)

// Snapshot is the derived state of a Map in plain form.
type Snapshot struct {
	Areas      *grid.Grid[int]
	AreaCount  int
	AreaIDs    []int
	AreaEdges  []core.Pair[int]
	Groups     []*portal.Group
	GroupEdges []portal.GroupEdge
}

// Snapshot exports the current derived state. Portal square states are not
// part of it.
func (m *Map) Snapshot() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return &Snapshot{
		Areas:      m.areas.Clone(),
		AreaCount:  m.count,
		AreaIDs:    m.graphs.Areas.Vertices(),
		AreaEdges:  m.graphs.Areas.Edges(),
		Groups:     m.graphs.Groups(),
		GroupEdges: m.graphs.GroupEdges(),
	}
}

// Restore installs s as the derived state, after checking the labels
// against the map's free cells. Every portal square starts open.
func (m *Map) Restore(s *Snapshot) error {
	if s == nil || s.Areas == nil {
		return fmt.Errorf("%w: empty snapshot", ErrSnapshotMismatch)
	}
	if err := partition.Verify(m.free, s.Areas, s.AreaCount); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotMismatch, err)
	}
	for _, g := range s.Groups {
		for _, p := range g.Portals() {
			for i, c := range p.Cells {
				if s.Areas.GetOr(c.X, c.Y, 0) != p.Areas[i] {
					return fmt.Errorf("%w: portal %v outside its area", ErrSnapshotMismatch, c)
				}
			}
		}
	}
	graphs, err := portal.Restore(s.Groups, s.AreaIDs, s.AreaEdges, s.GroupEdges)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshotMismatch, err)
	}
	islands := len(m.free.Components(func(_ grid.Cell, ok bool) bool { return ok }))

	m.mu.Lock()
	m.install(s.Areas.Clone(), s.AreaCount, graphs)
	m.islands = islands
	m.mu.Unlock()

	m.cfg.Logger.Info("map restored",
		zap.String("map", m.src.Name),
		zap.Int("areas", s.AreaCount),
		zap.Int("portal_groups", len(s.Groups)),
	)

	return nil
}
