// Package bfs provides breadth-first search over a core.Graph[N],
// returning unweighted hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Result carries Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the BFS tree), plus PathTo for reconstruction.
//   - Honors MaxDepth (d>0) or explicit “no limit” (d==0) and a context
//     for cancellation.
//
// Why
//
//   - areanav checks area-graph reachability before planning: if the
//     goal's area is not reachable from the start's area through any
//     portal, no belief revision can ever produce a path.
//
// Determinism
//
//	core.Graph keeps neighbours in insertion order and BFS enqueues them in
//	that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil:            nil graph.
//   - ErrStartVertexNotFound: start not in graph.
//   - ErrOptionViolation:     invalid option (negative depth).
//   - ErrNeighbors:           neighbour lookup failed.
//   - context errors when the context is cancelled.
package bfs
