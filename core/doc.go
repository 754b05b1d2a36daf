// Package core provides the weighted, undirected adjacency structure the
// route planner searches over.
//
// A Graph maps an integer node identifier to a mapping of neighbor
// identifier → non-negative int64 weight. Every edge is mirrored in both
// directions with the same weight. One Graph holds exactly one weight
// dimension; the network package keeps three of them (distance, time, cost)
// built from the same road list.
//
// Invariants:
//
//   - Symmetry: an edge u→v with weight w implies v→u with weight w.
//   - Non-negativity: AddEdge rejects negative weights with ErrNegativeWeight,
//     so shortest-path search never has to re-check signs.
//   - Append-only: nodes and edges are never removed. Re-adding an edge
//     overwrites its weight (last write wins, no parallel edges).
//   - A declared node with no edges still exists with an empty neighbor map.
//
// Concurrency:
//
//	All methods take the Graph's sync.RWMutex, so a graph can be built and
//	read from different goroutines. Once construction is finished, any number
//	of readers may query it concurrently.
//
// Core methods:
//
//	AddNode(id int)                      // O(1), idempotent
//	AddEdge(u, v int, w int64) error     // O(1), mirrors u↔v
//	HasNode(id int) bool                 // O(1)
//	HasEdge(u, v int) bool               // O(1)
//	Weight(u, v int) (int64, bool)       // O(1)
//	Neighbors(id int) map[int]int64      // O(deg), returns a copy
//	NeighborIDs(id int) []int            // O(deg·log deg), sorted
//	Nodes() []int                        // O(V·log V), sorted
//	NodeCount() int, EdgeCount() int     // O(1)
package core
