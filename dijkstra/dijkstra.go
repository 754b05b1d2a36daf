package dijkstra

import (
	"github.com/katalvlaran/multiroute/core"
	"github.com/katalvlaran/multiroute/pqueue"
)

// ShortestPath computes a minimum-weight path from start to end in g.
//
// Preconditions and validation:
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be nodes of g; otherwise the result is
//     Result{Distance: Infinity} with a nil error.
//
// All weights in g are non-negative by construction of core.Graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, end int, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph and endpoints.
	if g == nil {
		return notFound(), ErrNilGraph
	}
	if !g.HasNode(start) || !g.HasNode(end) {
		return notFound(), nil
	}

	// 3) Trivial case: no edges need to be examined.
	if start == end {
		return Result{Distance: 0, Path: []int{start}}, nil
	}

	// 4) Run the search.
	r := newRunner(g, cfg, start, end)
	r.process()

	return r.result(), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph
	options Options
	start   int
	end     int
	dist    map[int]int64 // best known distance; absent means +∞
	prev    map[int]int   // predecessor on the best known path
	pq      *pqueue.Queue[int]
}

// newRunner seeds dist[start] = 0 and pushes (0, start).
func newRunner(g *core.Graph, cfg Options, start, end int) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		end:     end,
		dist:    make(map[int]int64, n),
		prev:    make(map[int]int, n),
		pq:      pqueue.New[int](n),
	}
	r.dist[start] = 0
	r.pq.Push(0, start)

	return r
}

// distance returns the recorded distance of v, Infinity if none.
func (r *runner) distance(v int) int64 {
	if d, ok := r.dist[v]; ok {
		return d
	}

	return Infinity
}

// process pops nodes in distance order until the queue drains, the target
// is popped, or the next node lies beyond MaxDistance.
func (r *runner) process() {
	for {
		d, u, ok := r.pq.Pop()
		if !ok {
			return
		}

		// Stale entry: a strictly shorter distance was recorded after this push.
		if d > r.distance(u) {
			continue
		}

		if d > r.options.MaxDistance {
			return
		}

		if u == r.end {
			return
		}

		r.relax(u, d)
	}
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u int, du int64) {
	r.g.EachNeighbor(u, func(v int, w int64) {
		if r.options.InfEdgeThreshold > 0 && w >= r.options.InfEdgeThreshold {
			return
		}
		candidate := du + w
		if candidate < du { // overflow guard for huge weights
			return
		}
		if candidate > r.options.MaxDistance {
			return
		}
		if best, seen := r.dist[v]; seen && candidate >= best {
			return
		}
		r.dist[v] = candidate
		r.prev[v] = u
		r.pq.Push(candidate, v)
	})
}

// result reconstructs the path by walking predecessors back from end.
func (r *runner) result() Result {
	d, reached := r.dist[r.end]
	if !reached || d > r.options.MaxDistance {
		return notFound()
	}

	path := []int{r.end}
	for cur := r.end; cur != r.start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Result{Distance: d, Path: path}
}
