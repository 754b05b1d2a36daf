// Package bfs provides breadth-first search over a core.Graph, ignoring
// edge weights.
//
// The route planner uses it to answer "which cities can be reached from
// here at all", independent of any criterion: the three weight layers of a
// network share the same topology, so one unweighted walk covers them all.
//
// BFS returns the visit order, the hop count of every reached node and the
// parent links of the BFS tree. Options:
//
//   - WithContext(ctx): abort with ctx.Err() when the context is cancelled.
//   - WithMaxDepth(d): do not go further than d hops (d == 0: no limit).
//
// Complexity: O(V + E·log deg) time (neighbors are visited in sorted order
// for deterministic output), O(V) space.
package bfs
