package core

import (
	"fmt"
	"slices"
	"sync"
)

// adjacency keeps a neighbour set for O(1) membership plus the insertion
// order for deterministic enumeration.
type adjacency[N comparable] struct {
	set   map[N]struct{}
	order []N
}

func newAdjacency[N comparable]() *adjacency[N] {
	return &adjacency[N]{set: make(map[N]struct{})}
}

func (a *adjacency[N]) add(n N) bool {
	if _, ok := a.set[n]; ok {
		return false
	}
	a.set[n] = struct{}{}
	a.order = append(a.order, n)

	return true
}

func (a *adjacency[N]) remove(n N) bool {
	if _, ok := a.set[n]; !ok {
		return false
	}
	delete(a.set, n)
	if i := slices.Index(a.order, n); i >= 0 {
		a.order = slices.Delete(a.order, i, i+1)
	}

	return true
}

// Graph is a thread-safe adjacency structure over vertices of type N.
// Undirected by default.
type Graph[N comparable] struct {
	mu       sync.RWMutex
	directed bool
	loops    bool
	adj      map[N]*adjacency[N]
	order    []N
	edges    int
}

// NewGraph creates an empty graph configured by opts.
func NewGraph[N comparable](opts ...GraphOption) *Graph[N] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N]{
		directed: cfg.directed,
		loops:    cfg.allowLoops,
		adj:      make(map[N]*adjacency[N]),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph[N]) Directed() bool { return g.directed }

// AddVertex inserts n. Adding an existing vertex is a no-op.
func (g *Graph[N]) AddVertex(n N) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(n)
}

func (g *Graph[N]) addVertexLocked(n N) {
	if _, ok := g.adj[n]; ok {
		return
	}
	g.adj[n] = newAdjacency[N]()
	g.order = append(g.order, n)
}

// HasVertex reports whether n is present.
func (g *Graph[N]) HasVertex(n N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[n]

	return ok
}

// AddEdge connects from and to, adding either endpoint if missing.
// Adding an existing edge is a no-op. Self-loops return ErrLoopNotAllowed
// unless the graph was built WithLoops.
func (g *Graph[N]) AddEdge(from, to N) error {
	if from == to && !g.loops {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, from)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)
	added := g.adj[from].add(to)
	if !g.directed {
		added = g.adj[to].add(from) || added
	}
	if added {
		g.edges++
	}

	return nil
}

// AreAdjacent reports whether an edge from→to exists. In undirected graphs
// the answer is the same for (to, from).
func (g *Graph[N]) AreAdjacent(from, to N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacentLocked(from, to)
}

func (g *Graph[N]) adjacentLocked(from, to N) bool {
	a, ok := g.adj[from]
	if !ok {
		return false
	}
	if _, ok = a.set[to]; ok {
		return true
	}
	if g.directed {
		return false
	}
	// symmetric lookup guards against a one-sided record
	if b, ok := g.adj[to]; ok {
		_, ok = b.set[from]
		return ok
	}

	return false
}

// RemoveEdge deletes from→to (and to→from when undirected).
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph[N]) RemoveEdge(from, to N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.adjacentLocked(from, to) {
		return fmt.Errorf("%w: %v-%v", ErrEdgeNotFound, from, to)
	}
	g.removeEdgeLocked(from, to)

	return nil
}

func (g *Graph[N]) removeEdgeLocked(from, to N) {
	removed := false
	if a, ok := g.adj[from]; ok {
		removed = a.remove(to)
	}
	if !g.directed {
		if b, ok := g.adj[to]; ok {
			removed = b.remove(from) || removed
		}
	}
	if removed {
		g.edges--
	}
}

// RemoveVertex deletes n and every incident edge.
// Returns ErrVertexNotFound if n is absent.
func (g *Graph[N]) RemoveVertex(n N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	a, ok := g.adj[n]
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, n)
	}
	for _, m := range slices.Clone(a.order) {
		g.removeEdgeLocked(n, m)
	}
	if g.directed {
		// incoming edges live in other vertices' lists
		for _, m := range g.order {
			if b := g.adj[m]; b.remove(n) {
				g.edges--
			}
		}
	}
	delete(g.adj, n)
	if i := slices.Index(g.order, n); i >= 0 {
		g.order = slices.Delete(g.order, i, i+1)
	}

	return nil
}

// Neighbors returns a copy of n's neighbour list in insertion order.
// Returns ErrVertexNotFound if n is absent.
func (g *Graph[N]) Neighbors(n N) ([]N, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.adj[n]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, n)
	}

	return slices.Clone(a.order), nil
}

// Vertices returns every vertex in insertion order.
func (g *Graph[N]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.order)
}

// Edges returns every edge once, ordered by source vertex then neighbour
// insertion. Undirected edges are reported from their first-inserted endpoint.
func (g *Graph[N]) Edges() []Pair[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Pair[N], 0, g.edges)
	pos := make(map[N]int, len(g.order))
	for i, v := range g.order {
		pos[v] = i
	}
	for i, v := range g.order {
		for _, m := range g.adj[v].order {
			if !g.directed && pos[m] < i {
				continue
			}
			out = append(out, Pair[N]{From: v, To: m})
		}
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph[N]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of edges; an undirected edge counts once.
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
