package pqueue

import "container/heap"

// entry pairs a priority key with its payload.
type entry[T any] struct {
	key     int64
	payload T
}

// entries is the heap.Interface backing store, ordered by key ascending.
type entries[T any] []entry[T]

// Len returns the number of stored entries.
func (h entries[T]) Len() int { return len(h) }

// Less orders entries by smaller key first.
func (h entries[T]) Less(i, j int) bool { return h[i].key < h[j].key }

// Swap exchanges two entries.
func (h entries[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push which then sifts it up.
func (h *entries[T]) Push(x interface{}) { *h = append(*h, x.(entry[T])) }

// Pop removes the last element; called by heap.Pop after moving the root there.
func (h *entries[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop payload reference
	*h = old[:n-1]

	return item
}

// Queue is a min-priority queue of payloads of type T.
// The zero value is an empty, ready-to-use queue.
type Queue[T any] struct {
	h entries[T]
}

// New returns an empty Queue with room for capacity entries before growing.
// A negative capacity is treated as zero.
func New[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[T]{h: make(entries[T], 0, capacity)}
}

// Push inserts payload with the given key.
// Complexity: O(log n).
func (q *Queue[T]) Push(key int64, payload T) {
	heap.Push(&q.h, entry[T]{key: key, payload: payload})
}

// Pop removes and returns the entry with the smallest key.
// ok is false when the queue is empty; key and payload are then zero values.
// Complexity: O(log n).
func (q *Queue[T]) Pop() (key int64, payload T, ok bool) {
	if len(q.h) == 0 {
		return 0, payload, false
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.key, e.payload, true
}

// Peek returns the entry with the smallest key without removing it.
// ok is false when the queue is empty.
func (q *Queue[T]) Peek() (key int64, payload T, ok bool) {
	if len(q.h) == 0 {
		return 0, payload, false
	}

	return q.h[0].key, q.h[0].payload, true
}

// Len reports the number of entries, including stale ones the caller
// has not popped yet.
func (q *Queue[T]) Len() int { return len(q.h) }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool { return len(q.h) == 0 }
