package astar

import (
	"iter"
	"slices"
)

// Path is an immutable cons list of steps. Every AddStep returns a new Path
// that shares its prefix with the receiver.
type Path[N any] struct {
	last  N
	prev  *Path[N]
	cost  float64
	steps int
}

// NewPath returns the zero-cost path consisting only of origin.
func NewPath[N any](origin N) *Path[N] {
	return &Path[N]{last: origin, steps: 1}
}

// AddStep returns a new path ending at n whose total cost is p's total plus
// stepCost.
func (p *Path[N]) AddStep(n N, stepCost float64) *Path[N] {
	return &Path[N]{last: n, prev: p, cost: p.cost + stepCost, steps: p.steps + 1}
}

// LastStep returns the most recent node.
func (p *Path[N]) LastStep() N { return p.last }

// Previous returns the path without its last step, or nil at the origin.
func (p *Path[N]) Previous() *Path[N] { return p.prev }

// TotalCost returns the cumulative cost from the origin.
func (p *Path[N]) TotalCost() float64 { return p.cost }

// Len returns the number of nodes, origin included.
func (p *Path[N]) Len() int { return p.steps }

// All yields nodes from the last step back to the origin.
func (p *Path[N]) All() iter.Seq[N] {
	return func(yield func(N) bool) {
		for cur := p; cur != nil; cur = cur.prev {
			if !yield(cur.last) {
				return
			}
		}
	}
}

// Costs yields the cumulative cost at each node, last step first.
func (p *Path[N]) Costs() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for cur := p; cur != nil; cur = cur.prev {
			if !yield(cur.cost) {
				return
			}
		}
	}
}

// Steps materialises the path in origin→last order.
func (p *Path[N]) Steps() []N {
	out := make([]N, 0, p.steps)
	for n := range p.All() {
		out = append(out, n)
	}
	slices.Reverse(out)

	return out
}
