package cache

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/katalvlaran/areanav/grid"
)

// Sentinel errors for the cache.
var (
	ErrCorrupt  = errors.New("cache: corrupt record")
	ErrMismatch = errors.New("cache: stored map differs from the source")
)

// labelsVersion tags the area label record layout.
const labelsVersion = 1

// encodeLabels writes: version, width, height, then one uvarint per cell in
// row-major order.
func encodeLabels(g *grid.Grid[int]) []byte {
	buf := make([]byte, 0, 3*binary.MaxVarintLen64+g.Len())
	buf = binary.AppendUvarint(buf, labelsVersion)
	buf = binary.AppendUvarint(buf, uint64(g.Width()))
	buf = binary.AppendUvarint(buf, uint64(g.Height()))
	for _, v := range g.Values() {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return buf
}

// decodeLabels reads a record written by encodeLabels. The recorded
// dimensions must equal width and height of the stored terrain; nothing is
// allocated before they are checked.
func decodeLabels(b []byte, width, height int) (*grid.Grid[int], error) {
	r := &reader{buf: b}
	if v := r.next(); v != labelsVersion {
		return nil, fmt.Errorf("%w: label record version %d", ErrCorrupt, v)
	}
	w, h := r.next(), r.next()
	if r.err != nil {
		return nil, r.err
	}
	if width <= 0 || height <= 0 || w != uint64(width) || h != uint64(height) {
		return nil, fmt.Errorf("%w: label record is %dx%d, terrain is %dx%d", ErrCorrupt, w, h, width, height)
	}
	g, err := grid.New[int](width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	for i := 0; i < g.Len(); i++ {
		g.SetAt(g.Coordinate(i), int(r.next()))
	}
	if r.err != nil {
		return nil, r.err
	}
	if len(r.buf) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(r.buf))
	}

	return g, nil
}

// reader consumes uvarints and remembers the first failure.
type reader struct {
	buf []byte
	err error
}

func (r *reader) next() uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.buf)
	if n <= 0 {
		r.err = fmt.Errorf("%w: truncated label record", ErrCorrupt)
		return 0
	}
	r.buf = r.buf[n:]

	return v
}
