// Package dijkstra implements Dijkstra's single-source shortest paths over
// an implicit graph given as a neighbour function and a weight function.
//
// Dijkstra computes the minimum-cost distance from a source to every
// reachable node when all weights are non-negative. areanav uses it as the
// omniscient ground-truth baseline (a flat search over raw cells) and as the
// exhaustive oracle that A* results are checked against.
//
// Complexity:
//
//	– Time:  O((V + E) log V)
//	   • Each node is finalised at most once.
//	   • Each relaxation may push into the heap (lazy decrease-key).
//	– Space: O(V + E)
//
// Options:
//
//	– ReturnPath:       return the predecessor map for path reconstruction.
//	– MaxDistance:      nodes farther than this are not explored.
//	– InfEdgeThreshold: edges with weight >= this threshold are impassable.
//
// Errors (sentinel):
//
//	– ErrNilNeighbors    if the neighbour or weight function is nil.
//	– ErrNegativeWeight  if a negative edge weight is encountered.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrNoPath          from PathTo when the target was not reached.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(src, neighbors, weight, dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, _ := dijkstra.PathTo(prev, src, dst)
package dijkstra
