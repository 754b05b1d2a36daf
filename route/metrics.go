package route

import "math"

// ComputeMetrics sums, over consecutive node pairs of path, the edge weight
// in each of the three layers. ok is false if any pair lacks an edge in any
// layer or a total exceeds math.MaxInt64; no partial sums are returned.
// An empty path is undefined; a single-node path has zero metrics.
// Complexity: O(len(path)).
func ComputeMetrics(path []int, layers Layers) (m Metrics, ok bool) {
	if len(path) == 0 || layers == nil {
		return Metrics{}, false
	}
	dist, tm, cost := layers.Layer(Distance), layers.Layer(Time), layers.Layer(Cost)
	if dist == nil || tm == nil || cost == nil {
		return Metrics{}, false
	}

	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		dw, okD := dist.Weight(u, v)
		tw, okT := tm.Weight(u, v)
		cw, okC := cost.Weight(u, v)
		if !okD || !okT || !okC {
			return Metrics{}, false
		}
		if !add(&m.Distance, dw) || !add(&m.Time, tw) || !add(&m.Cost, cw) {
			return Metrics{}, false
		}
	}

	return m, true
}

// add accumulates w into *total, reporting false on int64 overflow.
// Weights are non-negative.
func add(total *int64, w int64) bool {
	if w > math.MaxInt64-*total {
		return false
	}
	*total += w

	return true
}
