package core

import (
	"fmt"
	"sync"
)

// LabeledGraph is an undirected Graph with an optional label per vertex and
// per edge. Edge labels are keyed by unordered pair: EdgeLabel(a, b) and
// EdgeLabel(b, a) return the same value.
type LabeledGraph[N comparable, VL, EL any] struct {
	*Graph[N]

	lmu    sync.RWMutex
	vlabel map[N]VL
	elabel map[Pair[N]]EL
}

// NewLabeledGraph creates an empty undirected labeled graph.
func NewLabeledGraph[N comparable, VL, EL any](opts ...GraphOption) *LabeledGraph[N, VL, EL] {
	return &LabeledGraph[N, VL, EL]{
		Graph:  NewGraph[N](opts...),
		vlabel: make(map[N]VL),
		elabel: make(map[Pair[N]]EL),
	}
}

// SetVertexLabel attaches l to n. Returns ErrVertexNotFound if n is absent.
func (g *LabeledGraph[N, VL, EL]) SetVertexLabel(n N, l VL) error {
	if !g.HasVertex(n) {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, n)
	}
	g.lmu.Lock()
	g.vlabel[n] = l
	g.lmu.Unlock()

	return nil
}

// VertexLabel returns the label of n and whether one was set.
func (g *LabeledGraph[N, VL, EL]) VertexLabel(n N) (VL, bool) {
	g.lmu.RLock()
	defer g.lmu.RUnlock()
	l, ok := g.vlabel[n]

	return l, ok
}

// AddLabeledEdge adds the edge a-b and labels it in one call.
func (g *LabeledGraph[N, VL, EL]) AddLabeledEdge(a, b N, l EL) error {
	if err := g.AddEdge(a, b); err != nil {
		return err
	}

	return g.SetEdgeLabel(a, b, l)
}

// SetEdgeLabel attaches l to edge a-b. Returns ErrEdgeNotFound if the
// vertices are not adjacent.
func (g *LabeledGraph[N, VL, EL]) SetEdgeLabel(a, b N, l EL) error {
	if !g.AreAdjacent(a, b) {
		return fmt.Errorf("%w: %v-%v", ErrEdgeNotFound, a, b)
	}
	g.lmu.Lock()
	defer g.lmu.Unlock()
	// drop a label stored under the reverse key before writing
	if !g.directed {
		delete(g.elabel, Pair[N]{From: b, To: a})
	}
	g.elabel[Pair[N]{From: a, To: b}] = l

	return nil
}

// EdgeLabel returns the label of edge a-b, trying both orderings in
// undirected graphs.
func (g *LabeledGraph[N, VL, EL]) EdgeLabel(a, b N) (EL, bool) {
	g.lmu.RLock()
	defer g.lmu.RUnlock()

	if l, ok := g.elabel[Pair[N]{From: a, To: b}]; ok {
		return l, true
	}
	if !g.directed {
		l, ok := g.elabel[Pair[N]{From: b, To: a}]
		return l, ok
	}
	var zero EL

	return zero, false
}

// RemoveEdge deletes the edge and its label.
func (g *LabeledGraph[N, VL, EL]) RemoveEdge(a, b N) error {
	if err := g.Graph.RemoveEdge(a, b); err != nil {
		return err
	}
	g.lmu.Lock()
	delete(g.elabel, Pair[N]{From: a, To: b})
	if !g.directed {
		delete(g.elabel, Pair[N]{From: b, To: a})
	}
	g.lmu.Unlock()

	return nil
}

// RemoveVertex deletes n, its incident edges and every label they carried.
func (g *LabeledGraph[N, VL, EL]) RemoveVertex(n N) error {
	nbrs, err := g.Neighbors(n)
	if err != nil {
		return err
	}
	if err = g.Graph.RemoveVertex(n); err != nil {
		return err
	}
	g.lmu.Lock()
	defer g.lmu.Unlock()
	delete(g.vlabel, n)
	for _, m := range nbrs {
		delete(g.elabel, Pair[N]{From: n, To: m})
		delete(g.elabel, Pair[N]{From: m, To: n})
	}
	if g.directed {
		for k := range g.elabel {
			if k.To == n {
				delete(g.elabel, k)
			}
		}
	}

	return nil
}
