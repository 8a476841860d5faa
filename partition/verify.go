package partition

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/areanav/grid"
)

// Sentinel errors reported by Verify.
var (
	ErrShapeMismatch    = errors.New("partition: label grid and free grid differ in size")
	ErrUncovered        = errors.New("partition: free cell without an area")
	ErrBlockedLabeled   = errors.New("partition: blocked cell carries an area")
	ErrLabelRange       = errors.New("partition: area label out of range")
	ErrDisconnectedArea = errors.New("partition: area is not 4-connected")
)

// Verify checks that areas is a valid labeling of free with labels in
// [1, count]: full coverage of free cells, no labels on blocked cells and a
// single 4-connected component per label.
func Verify(free *grid.Grid[bool], areas *grid.Grid[int], count int) error {
	if free.Width() != areas.Width() || free.Height() != areas.Height() {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch,
			free.Width(), free.Height(), areas.Width(), areas.Height())
	}
	for c, a := range areas.All() {
		isFree := free.At(c)
		switch {
		case isFree && a == 0:
			return fmt.Errorf("%w: %v", ErrUncovered, c)
		case !isFree && a != 0:
			return fmt.Errorf("%w: %v has %d", ErrBlockedLabeled, c, a)
		case a < 0 || a > count:
			return fmt.Errorf("%w: %v has %d, max %d", ErrLabelRange, c, a, count)
		}
	}

	seen := make(map[int]bool, count)
	for _, root := range labelRoots(areas) {
		a := areas.At(root)
		if seen[a] {
			return fmt.Errorf("%w: area %d", ErrDisconnectedArea, a)
		}
		seen[a] = true
	}

	return nil
}

// labelRoots flood-fills same-label regions and returns the first cell of
// each 4-connected piece. An area split in two yields two roots.
func labelRoots(areas *grid.Grid[int]) []grid.Cell {
	seen := make([]bool, areas.Len())
	var roots []grid.Cell
	for c, a := range areas.All() {
		i := areas.Index(c.X, c.Y)
		if a == 0 || seen[i] {
			continue
		}
		roots = append(roots, c)
		seen[i] = true
		queue := []grid.Cell{c}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, n := range u.Neighbors4() {
				if !areas.Contains(n) || areas.At(n) != a {
					continue
				}
				if j := areas.Index(n.X, n.Y); !seen[j] {
					seen[j] = true
					queue = append(queue, n)
				}
			}
		}
	}

	return roots
}
