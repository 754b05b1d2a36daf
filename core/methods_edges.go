// File: methods_edges.go
// Role: Edge insertion & lookups.
//
// Policy:
//   - Edges are undirected: every insert writes both u→v and v→u.
//   - Re-inserting an existing pair overwrites the weight.
package core

import (
	"fmt"
	"sort"
)

// AddEdge stores the undirected edge u-v with weight w, adding u and v as
// nodes if they are missing. A previous weight for the same pair is
// overwritten. Negative weights are rejected with ErrNegativeWeight and
// leave the graph unchanged.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int, w int64) error {
	if w < 0 {
		return fmt.Errorf("%w: edge %d-%d weight=%d", ErrNegativeWeight, u, v, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	from := g.ensureNode(u)
	to := g.ensureNode(v)
	if _, exists := from[v]; !exists {
		g.edges++
	}
	from[v] = w
	to[u] = w

	return nil
}

// HasEdge reports whether u and v are directly connected.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of edge u-v. ok is false if either node is
// unknown or the nodes are not adjacent.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (w int64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, found := g.adjacency[u]
	if !found {
		return 0, false
	}
	w, ok = nbrs[v]

	return w, ok
}

// Neighbors returns a copy of the neighbor → weight mapping for id.
// Unknown nodes yield an empty, non-nil map.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id int) map[int]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs := g.adjacency[id]
	out := make(map[int]int64, len(nbrs))
	for v, w := range nbrs {
		out[v] = w
	}

	return out
}

// NeighborIDs returns the sorted identifiers adjacent to id, or
// ErrNodeNotFound if id was never added.
// Complexity: O(deg·log deg).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	nbrs, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	ids := make([]int, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	g.mu.RUnlock()

	sort.Ints(ids)

	return ids, nil
}

// EachNeighbor calls fn for every neighbor of id while holding the read
// lock, without copying the adjacency map. fn must not mutate g.
// Iteration order is unspecified.
func (g *Graph) EachNeighbor(id int, fn func(v int, w int64)) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for v, w := range g.adjacency[id] {
		fn(v, w)
	}
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
