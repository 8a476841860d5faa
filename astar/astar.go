package astar

import (
	"math"
	"time"

	"github.com/katalvlaran/areanav/pqueue"
)

// Search runs A* from start to goal.
//
// Steps:
//  1. Seed the open set with the zero-cost path at start.
//  2. Pop the minimum-f path; skip it if its node is already closed.
//  3. If the node is goal, return the path.
//  4. Close the node and push one extended path per neighbour with a finite
//     step cost; the hop onto goal costs zero unless WithExactGoalCost.
//  5. If the open set empties, fail with ErrNoPath.
//
// The returned Result is non-nil whenever the inputs are valid, so callers
// can aggregate Stats from failed searches too.
func Search[N comparable](
	start, goal N,
	nb Neighborer[N],
	cost CostFunc[N],
	h HeuristicFunc[N],
	opts ...Option,
) (*Result[N], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if nb == nil || cost == nil {
		return nil, ErrNilNeighborer
	}
	if h == nil {
		h = Zero[N]
	}

	r := &runner[N]{
		goal:   goal,
		nb:     nb,
		cost:   cost,
		h:      h,
		opts:   cfg,
		open:   pqueue.New[float64, *Path[N]](),
		closed: make(map[N]struct{}),
	}
	began := time.Now()
	path, err := r.run(start)
	res := &Result[N]{
		Path: path,
		Stats: Stats{
			NodesExpanded: r.expanded,
			PeakFrontier:  r.peak,
			Elapsed:       time.Since(began),
		},
	}

	return res, err
}

// runner holds the mutable state for a single search.
type runner[N comparable] struct {
	goal     N
	nb       Neighborer[N]
	cost     CostFunc[N]
	h        HeuristicFunc[N]
	opts     Options
	open     *pqueue.PriorityQueue[float64, *Path[N]]
	closed   map[N]struct{}
	expanded int
	peak     int
}

func (r *runner[N]) run(start N) (*Path[N], error) {
	r.push(NewPath(start))

	for !r.open.IsEmpty() {
		current, _ := r.open.Dequeue()
		node := current.LastStep()

		// lazy deletion of stale duplicates
		if _, done := r.closed[node]; done {
			continue
		}
		if node == r.goal {
			return current, nil
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return nil, ErrExpansionLimit
		}
		r.closed[node] = struct{}{}
		r.expanded++
		r.expand(current)
	}

	return nil, ErrNoPath
}

func (r *runner[N]) expand(current *Path[N]) {
	from := current.LastStep()
	for _, n := range r.nb.Neighbors(from) {
		if _, done := r.closed[n]; done {
			continue
		}
		var d float64
		if n != r.goal || r.opts.ExactGoalCost {
			d = r.cost(from, n)
		}
		if math.IsInf(d, 1) || math.IsNaN(d) {
			continue
		}
		r.push(current.AddStep(n, d))
	}
}

func (r *runner[N]) push(p *Path[N]) {
	est := r.h(p.LastStep())
	if est < 0 || math.IsNaN(est) {
		est = 0
	}
	r.open.Enqueue(p.TotalCost()+est, p)
	r.peak = max(r.peak, r.open.Count())
}
