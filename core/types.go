package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeWeight indicates an attempt to store a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrNodeNotFound indicates an operation referenced a node that was never added.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Graph is an undirected graph with one int64 weight per edge.
//
// adjacency[u][v] == w means the edge u-v has weight w; adjacency[v][u] is
// always equal. edges counts unordered pairs (a self-loop counts once).
type Graph struct {
	mu sync.RWMutex // guards adjacency and edges

	adjacency map[int]map[int]int64
	edges     int
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node map for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.adjacency = make(map[int]map[int]int64, n)
		}
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[int]map[int]int64)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
