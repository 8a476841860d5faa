package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/areanav/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[N comparable] struct {
	id    N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	graph *core.Graph[N]
	opts  Options
	ctx   context.Context
	queue []queueItem[N]
	res   *Result[N]
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// or the context error on cancellation.
func BFS[N comparable](g *core.Graph[N], start N, opts ...Option) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walker[N]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[N], 0, n),
		res: &Result[N]{
			Order:  make([]N, 0, n),
			Depth:  make(map[N]int, n),
			Parent: make(map[N]N, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[N]{id: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbour within MaxDepth.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrNeighbors, item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.res.Reached(nbr) {
			continue
		}
		w.res.Depth[nbr] = next
		w.res.Parent[nbr] = item.id
		w.queue = append(w.queue, queueItem[N]{id: nbr, depth: next})
	}

	return nil
}
