package pathfinder

import (
	"fmt"
	"time"

	"github.com/katalvlaran/areanav/astar"
	"github.com/katalvlaran/areanav/dijkstra"
	"github.com/katalvlaran/areanav/grid"
)

// FlatPath returns the ground-truth shortest path from start to goal over
// raw cells, ignoring areas and beliefs. It is the omniscient baseline for
// FindPath.
func (pf *Pathfinder) FlatPath(start, goal grid.Cell) ([]grid.Cell, error) {
	if !pf.world.IsFree(start) || !pf.world.IsFree(goal) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrBlockedEndpoint, start, goal)
	}

	neighbors := func(c grid.Cell) []grid.Cell {
		var out []grid.Cell
		for _, n := range c.Neighbors4() {
			if pf.world.IsFree(n) {
				out = append(out, n)
			}
		}

		return out
	}

	began := time.Now()
	dist, prev, err := dijkstra.Dijkstra(start, neighbors, grid.Cell.Distance, dijkstra.WithReturnPath())
	if err != nil {
		return nil, err
	}
	stats := astar.Stats{NodesExpanded: len(dist), Elapsed: time.Since(began)}
	cells, err := dijkstra.PathTo(prev, start, goal)
	pf.cfg.Observer.SearchDone(Flat, stats, err == nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPath, err)
	}

	return cells, nil
}
