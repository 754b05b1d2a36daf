// Package dijkstra implements single-source, single-target shortest-path
// search over a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath(g, start, end) returns the minimum total weight from start
//     to end and one path achieving it.
//   - The frontier is a pqueue.Queue used with lazy deletion: improved
//     distances are pushed as new entries and popped entries whose key is
//     larger than the recorded distance are skipped as stale. No decrease-key.
//   - Search stops as soon as end is popped.
//
// Outcomes:
//
//   - Reachable: Result.Distance is the optimum, Result.Path runs start→end
//     inclusive. start == end yields a single-node path with distance 0.
//   - Unreachable or unknown endpoint: Result.Distance == Infinity and
//     Result.Path is empty. This is a normal result, not an error.
//   - A nil graph returns ErrNilGraph.
//
// Which of several equally short paths is returned depends on heap order
// and map iteration; only the distance is guaranteed.
//
// Options:
//
//   - WithMaxDistance(d): do not expand nodes farther than d from start.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable. Unset by
//     default, so every edge is usable.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold up to E stale entries.
//
// Weight signs are not re-checked here; core.Graph refuses negative weights.
package dijkstra
