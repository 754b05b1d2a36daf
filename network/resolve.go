package network

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/multiroute/bfs"
	"github.com/katalvlaran/multiroute/route"
	"github.com/panjf2000/ants/v2"
)

// Resolve answers one request. Unknown city names yield
// StatusUnknownEndpoint without running any search. The returned error is
// non-nil only when ctx is cancelled.
func (n *Network) Resolve(ctx context.Context, req Request) (Result, error) {
	res := Result{Request: req}

	// 1) Resolve names.
	start, okStart := n.Lookup(req.Origin)
	end, okEnd := n.Lookup(req.Destination)
	if !okStart || !okEnd {
		res.Status = StatusUnknownEndpoint
		if !okStart {
			res.Unknown = append(res.Unknown, req.Origin)
		}
		if !okEnd && (okStart || req.Destination != req.Origin) {
			res.Unknown = append(res.Unknown, req.Destination)
		}
		n.logger.Debug("unknown endpoint", "origin", req.Origin, "destination", req.Destination, "unknown", res.Unknown)

		return res, nil
	}

	// 2) One search per criterion.
	cands, err := route.FindOptimalRoutes(ctx, n.layers, start, end, n.search...)
	if err != nil {
		return res, fmt.Errorf("network: resolve %s -> %s: %w", req.Origin, req.Destination, err)
	}
	if len(cands) == 0 {
		res.Status = StatusNoRoute
		n.logger.Debug("no route", "origin", req.Origin, "destination", req.Destination)

		return res, nil
	}

	// 3) Translate to names and pick the compromise.
	n.mu.RLock()
	res.Routes = make([]Route, len(cands))
	for i, c := range cands {
		res.Routes[i] = n.toRoute(c)
	}
	if best, ok := route.SelectCompromise(cands, route.ParseCriteria(req.Priorities)); ok {
		r := n.toRoute(best)
		res.Compromise = &r
	}
	n.mu.RUnlock()

	res.Status = StatusOK
	n.logger.Debug("resolved",
		"origin", req.Origin,
		"destination", req.Destination,
		"routes", len(res.Routes),
		"compromise", res.HasCompromise(),
	)

	return res, nil
}

// toRoute converts a candidate. Caller holds n.mu for reading.
func (n *Network) toRoute(c route.Candidate) Route {
	ids := make([]int, len(c.Path))
	copy(ids, c.Path)

	return Route{
		Criterion: c.Criterion,
		IDs:       ids,
		Cities:    n.names(ids),
		Metrics:   c.Metrics,
	}
}

// ResolveAll answers reqs on a pool of workers and returns results in
// request order. workers <= 0 means GOMAXPROCS. Individual requests never
// fail the batch; the error reports pool failures or cancellation.
func (n *Network) ResolveAll(ctx context.Context, reqs []Request, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("network: create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]Result, len(reqs))
	errs := make([]error, len(reqs))
	var wg sync.WaitGroup
	for i := range reqs {
		i := i
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = n.Resolve(ctx, reqs[i])
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = fmt.Errorf("network: submit request %d: %w", i, submitErr)
		}
	}
	wg.Wait()

	n.logger.Info("batch resolved", "requests", len(reqs), "workers", workers)

	return results, errors.Join(errs...)
}

// Reach is a city reachable from another, with its hop count.
type Reach struct {
	City
	Hops int `json:"hops"`
}

// Reachable lists the cities connected to name by any sequence of roads,
// nearest first (by hops), starting with name itself.
func (n *Network) Reachable(ctx context.Context, name string) ([]Reach, error) {
	id, ok := n.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCity, name)
	}

	// All layers share one topology; walk the distance layer.
	res, err := bfs.BFS(n.layers[route.Distance], id, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("network: reachable from %q: %w", name, err)
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Reach, len(res.Order))
	for i, v := range res.Order {
		out[i] = Reach{City: City{ID: v, Name: n.byID[v]}, Hops: res.Depth[v]}
	}

	return out, nil
}
