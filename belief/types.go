package belief

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/areanav/grid"
	"github.com/katalvlaran/areanav/portal"
)

// World is the ground truth a Model falls back to.
type World interface {
	IsFree(c grid.Cell) bool
	IsPortalSquare(c grid.Cell) bool
	GroupsAt(c grid.Cell) []*portal.Group
	Groups() []*portal.Group
	GroupOpen(g *portal.Group) bool
}

// Entry is one observation.
type Entry struct {
	Passable bool
	Updated  int64
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger for anomalies.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// WithStart sets the initial logical time.
func WithStart(now int64) Option {
	return func(m *Model) { m.now = now }
}
