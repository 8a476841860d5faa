package astar

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by Search.
var (
	// ErrNoPath indicates the goal is unreachable from start.
	ErrNoPath = errors.New("astar: no path")

	// ErrExpansionLimit indicates the search stopped at the configured
	// expansion ceiling before reaching the goal.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrNilNeighborer indicates a nil neighbour source or cost function.
	ErrNilNeighborer = errors.New("astar: neighborer and cost function are required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Neighborer enumerates the successors of a node. Implementations decide the
// abstraction level: ground truth, a belief-filtered view or a coarse graph.
type Neighborer[N comparable] interface {
	Neighbors(n N) []N
}

// NeighborFunc adapts a plain function to Neighborer.
type NeighborFunc[N comparable] func(n N) []N

// Neighbors calls f(n).
func (f NeighborFunc[N]) Neighbors(n N) []N { return f(n) }

// CostFunc returns the cost of stepping from one node to an adjacent one.
// Return math.Inf(1) to exclude the edge.
type CostFunc[N comparable] func(from, to N) float64

// HeuristicFunc estimates the remaining cost from n to the goal.
type HeuristicFunc[N comparable] func(n N) float64

// Zero is the trivial heuristic; Search with Zero behaves like Dijkstra.
func Zero[N comparable](N) float64 { return 0 }

// Stats describes one Search call.
type Stats struct {
	NodesExpanded int
	PeakFrontier  int // peak number of open-set priority buckets
	Elapsed       time.Duration
}

// Add accumulates o into s. Peak frontier keeps the maximum.
func (s *Stats) Add(o Stats) {
	s.NodesExpanded += o.NodesExpanded
	s.PeakFrontier = max(s.PeakFrontier, o.PeakFrontier)
	s.Elapsed += o.Elapsed
}

// Result is the outcome of a Search. Path is nil when the search failed;
// Stats is always populated.
type Result[N comparable] struct {
	Path  *Path[N]
	Stats Stats
}

// Options configures Search.
type Options struct {
	// ExactGoalCost charges the real cost of the final hop instead of zero.
	ExactGoalCost bool

	// MaxExpansions, if > 0, aborts the search after that many expansions.
	MaxExpansions int

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the preserved defaults: zero-cost goal hop and no
// expansion ceiling.
func DefaultOptions() Options {
	return Options{}
}

// WithExactGoalCost disables the zero-cost goal hop.
func WithExactGoalCost() Option {
	return func(o *Options) { o.ExactGoalCost = true }
}

// WithMaxExpansions bounds the number of node expansions.
//
//	n > 0: limit to n
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
