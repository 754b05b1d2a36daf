package route

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/multiroute/dijkstra"
	"golang.org/x/sync/errgroup"
)

// FindOptimalRoutes runs one shortest-path search per criterion between
// start and end and returns the usable candidates in criterion order.
// An empty slice means no criterion produced a usable path.
//
// The three searches run concurrently; layers must not be mutated while
// the call is in progress. The only errors are a missing layer and
// cancellation of ctx.
func FindOptimalRoutes(ctx context.Context, layers Layers, start, end int, opts ...dijkstra.Option) ([]Candidate, error) {
	if layers == nil {
		return nil, ErrNilLayers
	}

	var slots [3]*Candidate
	eg, ctx := errgroup.WithContext(ctx)
	for _, c := range Criteria {
		c := c
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g := layers.Layer(c)
			if g == nil {
				return fmt.Errorf("%w: %s", ErrNilLayers, c)
			}
			res, err := dijkstra.ShortestPath(g, start, end, opts...)
			if err != nil {
				return fmt.Errorf("route: %s search: %w", c, err)
			}
			if !res.Found() {
				return nil
			}
			m, ok := ComputeMetrics(res.Path, layers)
			if !ok {
				// Inconsistent layers: the path is not traversable in every dimension.
				return nil
			}
			slots[c] = &Candidate{Criterion: c, Path: res.Path, Metrics: m}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]Candidate, 0, len(slots))
	for _, s := range slots {
		if s != nil {
			out = append(out, *s)
		}
	}

	return out, nil
}

// SelectCompromise returns the candidate whose metrics, projected onto
// priorities in order, are lexicographically smallest. ok is false when
// candidates or priorities are empty. The choice does not depend on the
// order of candidates; ties go to the earliest criterion.
func SelectCompromise(candidates []Candidate, priorities []Criterion) (best Candidate, ok bool) {
	if len(candidates) == 0 || len(priorities) == 0 {
		return Candidate{}, false
	}

	ordered := make([]Candidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Criterion < ordered[j].Criterion
	})

	best = ordered[0]
	for _, c := range ordered[1:] {
		if compare(c.Metrics, best.Metrics, priorities) < 0 {
			best = c
		}
	}

	return best, true
}

// compare orders a and b lexicographically by the listed criteria.
// It returns -1, 0 or 1.
func compare(a, b Metrics, priorities []Criterion) int {
	for _, p := range priorities {
		av, bv := a.Value(p), b.Value(p)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
	}

	return 0
}
