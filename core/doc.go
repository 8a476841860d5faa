// Package core provides the generic adjacency structures areanav plans over:
// Graph[N] for plain connectivity (areas, portal groups) and
// LabeledGraph[N, VL, EL] which adds vertex and edge labels.
//
// What:
//
//   - Graph[N] stores vertices of any comparable type N in insertion order,
//     with per-vertex neighbour lists that also keep insertion order.
//   - Undirected graphs (the default) store both directions of every edge,
//     so AreAdjacent is symmetric and RemoveEdge clears both lists.
//   - LabeledGraph keys edge labels by unordered pair in undirected mode.
//
// Why:
//
//   - Deterministic iteration order makes partitions, cache bundles and
//     coarse plans reproducible across runs.
//   - A single sync.RWMutex guards each graph, so read-mostly sharing after
//     a map load is safe.
//
// Complexity:
//
//   - AddVertex, HasVertex, AreAdjacent, AddEdge:  O(1) amortised.
//   - RemoveEdge:                                  O(deg).
//   - RemoveVertex:                                O(deg²) worst case.
//   - Neighbors, Vertices:                         O(deg), O(V) (copies).
//
// Errors:
//
//   - ErrVertexNotFound: an operation referenced a missing vertex.
//   - ErrEdgeNotFound:   an operation referenced a missing edge.
//   - ErrLoopNotAllowed: a self-loop was added without WithLoops.
package core
