package grid

// Components finds all 4-connected regions of cells for which keep returns
// true. Each component lists its cells in BFS discovery order; components
// are returned in row-major order of their first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Components(keep func(Cell, T) bool) [][]Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]Cell

	for i0, v := range g.cells {
		if seen[i0] || !keep(g.Coordinate(i0), v) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Cell

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, n := range u.Neighbors4() {
				if !g.Contains(n) {
					continue
				}
				vi := g.Index(n.X, n.Y)
				if seen[vi] || !keep(n, g.cells[vi]) {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
