// Package pqueue provides a binary min-heap keyed by int64 priorities.
//
// The queue is the frontier structure used by the dijkstra package:
// callers push (key, payload) pairs and always pop the entry with the
// smallest key. There is no decrease-key operation; shortest-path search
// pushes duplicates and discards stale entries on pop ("lazy deletion").
//
// Complexity:
//
//   - Push: O(log n)
//   - Pop:  O(log n)
//   - Peek, Len, IsEmpty: O(1)
//
// Ordering between entries with equal keys is unspecified.
//
// A Queue is not safe for concurrent use; each search owns its own queue.
package pqueue
