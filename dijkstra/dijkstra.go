package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"
)

// Dijkstra computes shortest distances from source to every node reachable
// through neighbors, weighting each step with weight.
//
// Returns:
//
//   - dist: node → minimum distance. Unreachable nodes are absent.
//   - prev: predecessor map if ReturnPath (nil otherwise); the source has no entry.
//   - err:  ErrNilNeighbors, or ErrNegativeWeight wrapped with the offending edge.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[N comparable](
	source N,
	neighbors func(N) []N,
	weight func(from, to N) float64,
	opts ...Option,
) (map[N]float64, map[N]N, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if neighbors == nil || weight == nil {
		return nil, nil, ErrNilNeighbors
	}

	// 3) Prepare the runner; prev is always tracked, returned on request
	r := &runner[N]{
		neighbors: neighbors,
		weight:    weight,
		options:   cfg,
		dist:      make(map[N]float64),
		prev:      make(map[N]N),
		visited:   make(map[N]bool),
	}

	// 4) Seed and run
	r.init(source)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the source→target route from a predecessor map.
// Returns ErrNoPath if target is neither source nor recorded in prev.
func PathTo[N comparable](prev map[N]N, source, target N) ([]N, error) {
	path := []N{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrNoPath, target)
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N comparable] struct {
	neighbors func(N) []N
	weight    func(from, to N) float64
	options   Options
	dist      map[N]float64
	prev      map[N]N
	visited   map[N]bool
	pq        nodePQ[N]
}

// init records distance 0 for the source and pushes it onto the heap.
func (r *runner[N]) init(source N) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[N]{id: source, dist: 0})
}

// process repeatedly finalises the closest node and relaxes its edges.
// The loop ends when the heap empties or the closest distance exceeds
// MaxDistance.
func (r *runner[N]) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(*nodeItem[N])

		// 2) Skip stale entries.
		if r.visited[item.id] {
			continue
		}

		// 3) Nothing closer remains within range.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalise and relax.
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbour of u.
func (r *runner[N]) relax(u N) error {
	for _, v := range r.neighbors(u) {
		if r.visited[v] {
			continue
		}
		w := r.weight(u, v)
		if math.IsNaN(w) || w >= r.options.InfEdgeThreshold || math.IsInf(w, 1) {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		if old, seen := r.dist[v]; seen && newDist >= old {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem[N]{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a node and its tentative distance.
type nodeItem[N comparable] struct {
	id   N
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist (lazy decrease-key).
type nodePQ[N comparable] []*nodeItem[N]

func (pq nodePQ[N]) Len() int           { return len(pq) }
func (pq nodePQ[N]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ[N]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[N]) Push(x any) { *pq = append(*pq, x.(*nodeItem[N])) }

func (pq *nodePQ[N]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
