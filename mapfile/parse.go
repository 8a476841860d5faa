package mapfile

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/areanav/grid"
)

// Load opens and parses the map at path. The map name is the file's base
// name without extension.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open map: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	return Parse(name, f)
}

// maxRowsHint caps the row buffer preallocated from the header.
const maxRowsHint = 4096

// Parse reads a map in the text format from r.
func Parse(name string, r io.Reader) (*Map, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		width, height int
		typ           string
		line          int
		sawMap        bool
	)

	// 1) Header
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		key, val, _ := strings.Cut(text, " ")
		key = strings.ToLower(key)
		switch key {
		case "type":
			typ = strings.TrimSpace(val)
		case "height", "width":
			n, err := strconv.Atoi(strings.TrimSpace(val))
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("%w: line %d: %q", ErrBadDimension, line, text)
			}
			if key == "height" {
				height = n
			} else {
				width = n
			}
		case "map":
			sawMap = true
		}
		if sawMap {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	if !sawMap {
		return nil, ErrMissingMapSentinel
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: height=%d width=%d", ErrMissingDimension, height, width)
	}

	// 2) Rows; the header is untrusted, so it only hints the capacity.
	rows := make([][]byte, 0, min(height, maxRowsHint))
	for len(rows) < height && sc.Scan() {
		line++
		row := []byte(strings.TrimRight(sc.Text(), "\r"))
		if len(row) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRowLength, line, len(row), width)
		}
		for x, ch := range row {
			if !Known(ch) {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTerrain, ch, x, len(rows))
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	if len(rows) < height {
		return nil, fmt.Errorf("%w: got %d of %d", ErrShortMap, len(rows), height)
	}

	return newMap(name, typ, rows)
}

// FromRows builds a Map from literal rows, mostly for tests and tools.
func FromRows(name string, rows ...string) (*Map, error) {
	bs := make([][]byte, len(rows))
	for y, r := range rows {
		bs[y] = []byte(r)
		for x := range bs[y] {
			if !Known(bs[y][x]) {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTerrain, bs[y][x], x, y)
			}
		}
	}

	return newMap(name, "octile", bs)
}

// FromTerrain wraps an existing terrain grid, computing its digest.
func FromTerrain(name string, t *grid.Grid[byte]) *Map {
	return &Map{Name: name, Type: "octile", Terrain: t, Digest: Digest(t)}
}

func newMap(name, typ string, rows [][]byte) (*Map, error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, err
	}

	return &Map{Name: name, Type: typ, Terrain: g, Digest: Digest(g)}, nil
}

// Digest hashes the dimensions and terrain of t.
func Digest(t *grid.Grid[byte]) string {
	h := sha256.New()
	fmt.Fprintf(h, "%dx%d\n", t.Width(), t.Height())
	h.Write(t.Values())

	return hex.EncodeToString(h.Sum(nil))
}

// Write renders m in the text format.
func (m *Map) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	typ := m.Type
	if typ == "" {
		typ = "octile"
	}
	fmt.Fprintf(bw, "type %s\nheight %d\nwidth %d\nmap\n", typ, m.Height(), m.Width())
	vals := m.Terrain.Values()
	for y := 0; y < m.Height(); y++ {
		bw.Write(vals[y*m.Width() : (y+1)*m.Width()])
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
