// Package portal finds the boundaries between partitioned areas and builds
// the two coarse graphs the hierarchical planner searches.
//
// What:
//
//   - A Portal is a pair of 4-adjacent free cells in two different areas.
//   - A Group is a run of collinear, mutually adjacent portals linking the
//     same ordered pair of areas. It keeps its extreme midpoints (First,
//     Last) for a band membership test instead of indexing member cells.
//   - Build scans the label grid twice (each cell against the cell above,
//     then each cell against the cell to its left) and returns Graphs:
//     the area-connectivity graph, the portal-connectivity graph over groups
//     (edges between groups that share an area, labelled with the distance
//     between them), and a cell→groups reverse index.
//   - A dummy group links one area to itself at a single cell; the planner
//     uses it to inject a bare start or goal point into the coarse graph.
//
// Distance:
//
//   - real↔real:   Euclidean distance between group midpoints.
//   - dummy↔real:  distance from the dummy's cell to the midpoint of the
//     real group's nearest portal.
//   - dummy↔dummy: distance between the two cells.
//
// Complexity:
//
//   - Build: O(W×H + Σ_a |groups(a)|²).
//
// Errors:
//
//   - ErrNilAreas:        Build got a nil label grid.
//   - ErrOptionViolation: invalid option (negative group size).
//   - ErrNotAdjacent:     a restored portal's cells are not 4-adjacent.
//   - ErrEmptyGroup:      a restored group has no portals.
//   - ErrMixedAreas:      a restored group's portals link different areas.
//   - ErrUnknownGroup:    a restored edge references a missing group id.
package portal
