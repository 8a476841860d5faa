// Package astar implements a generic best-first (A*) search and the
// persistent Path type it produces.
//
// What:
//
//   - Search explores from start toward goal using a Neighborer, a CostFunc
//     and a HeuristicFunc. The search is agnostic of the abstraction level:
//     the same routine plans over portal groups and over raw cells.
//   - The open set is a pqueue.PriorityQueue keyed by f = g + h; ties are FIFO.
//   - Closed nodes are tracked lazily: duplicates may sit in the open set and
//     are discarded when popped.
//   - Each call returns a Result carrying the Path and its own Stats
//     (nodes expanded, peak open-set bucket count, elapsed time).
//
// Goal hop:
//
//	By default the cost of stepping onto the goal is forced to zero. This is
//	a reachability shortcut for coarse graphs where the goal is injected as
//	a point and adjacency to it may be asymmetric. It can understate the
//	cost of the final hop; WithExactGoalCost charges the real edge cost and
//	is required whenever the returned cost must be exact.
//
// Complexity:
//
//   - Time:  O((V + E) log B) where B is the number of distinct f values.
//   - Space: O(V + E) for the open set under lazy deletion.
//
// Errors:
//
//   - ErrNoPath:          the open set emptied before reaching goal.
//   - ErrExpansionLimit:  WithMaxExpansions was exceeded.
//   - ErrNilNeighborer:   a nil Neighborer or CostFunc was supplied.
//
// Edges whose cost is +Inf or NaN are excluded. A negative heuristic is
// treated as zero; admissibility is the caller's responsibility.
package astar
