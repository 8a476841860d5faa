package mapfile

import (
	"errors"

	"github.com/katalvlaran/areanav/grid"
)

// Sentinel errors for map parsing.
var (
	ErrMissingDimension   = errors.New("mapfile: height and width must precede the map section")
	ErrBadDimension       = errors.New("mapfile: dimension must be a positive integer")
	ErrMissingMapSentinel = errors.New("mapfile: missing \"map\" line")
	ErrShortMap           = errors.New("mapfile: fewer rows than declared height")
	ErrRowLength          = errors.New("mapfile: row length differs from declared width")
	ErrUnknownTerrain     = errors.New("mapfile: unknown terrain character")
)

// terrain maps every known character to its passability.
var terrain = map[byte]bool{
	'.': true,
	'G': true,
	'S': true,
	'@': false,
	'O': false,
	'T': false,
	'W': false,
}

// Passable reports whether the terrain character ch is free. Unknown
// characters are blocked.
func Passable(ch byte) bool { return terrain[ch] }

// Known reports whether ch is in the terrain table.
func Known(ch byte) bool {
	_, ok := terrain[ch]
	return ok
}

// Map is a parsed terrain grid plus its identity.
type Map struct {
	Name    string
	Type    string
	Terrain *grid.Grid[byte]
	Digest  string
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.Terrain.Width() }

// Height returns the number of rows.
func (m *Map) Height() int { return m.Terrain.Height() }

// IsFree reports whether (x,y) is passable terrain. Out-of-bounds cells are
// blocked.
func (m *Map) IsFree(x, y int) bool {
	return Passable(m.Terrain.GetOr(x, y, '@'))
}

// Free returns the passability mask of the terrain.
func (m *Map) Free() *grid.Grid[bool] {
	return grid.Map(m.Terrain, func(_ grid.Cell, ch byte) bool { return Passable(ch) })
}
