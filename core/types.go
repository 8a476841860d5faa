package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed   bool
	allowLoops bool
}

// WithDirected makes edges one-way: AddEdge(a, b) no longer implies b→a.
func WithDirected() GraphOption {
	return func(c *graphConfig) { c.directed = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// Pair is an edge endpoint pair as returned by Edges.
type Pair[N comparable] struct {
	From, To N
}
