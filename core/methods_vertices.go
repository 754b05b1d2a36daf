// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NeighborIDs() return identifiers sorted ascending.
package core

import "sort"

// AddNode ensures an adjacency entry exists for id. Adding an existing node
// is a no-op, and its edges are left untouched.
// Complexity: O(1).
func (g *Graph) AddNode(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(id)
}

// ensureNode creates the adjacency bucket for id. Caller holds g.mu.
func (g *Graph) ensureNode(id int) map[int]int64 {
	nbrs, ok := g.adjacency[id]
	if !ok {
		nbrs = make(map[int]int64)
		g.adjacency[id] = nbrs
	}

	return nbrs
}

// HasNode reports whether id was added, explicitly or as an edge endpoint.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Nodes returns all node identifiers sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	g.mu.RUnlock()

	sort.Ints(ids)

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}
