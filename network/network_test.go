package network_test

import (
	"context"
	"sync"
	"testing"

	"github.com/katalvlaran/multiroute/dijkstra"
	"github.com/katalvlaran/multiroute/network"
	"github.com/katalvlaran/multiroute/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain is A(1)-B(2)-C(3) with identical roads, plus an isolated D(4).
func chain(t *testing.T) *network.Network {
	t.Helper()
	n, err := network.Build(
		[]network.City{{1, "A"}, {2, "B"}, {3, "C"}, {4, "D"}},
		[]network.Road{
			{A: 1, B: 2, Distance: 10, Time: 5, Cost: 3},
			{A: 2, B: 3, Distance: 10, Time: 5, Cost: 3},
		},
	)
	require.NoError(t, err)

	return n
}

// diamond is the A-B-D / A-C-D network where distance and time disagree.
func diamond(t *testing.T) *network.Network {
	t.Helper()
	n, err := network.Build(
		[]network.City{{1, "A"}, {2, "B"}, {3, "C"}, {4, "D"}},
		[]network.Road{
			{A: 1, B: 2, Distance: 100, Time: 1, Cost: 50},
			{A: 1, B: 3, Distance: 1, Time: 100, Cost: 50},
			{A: 3, B: 4, Distance: 1, Time: 100, Cost: 50},
			{A: 2, B: 4, Distance: 100, Time: 1, Cost: 50},
		},
	)
	require.NoError(t, err)

	return n
}

// ------------------------------------------------------------------------
// Construction.
// ------------------------------------------------------------------------

func TestAddCity_Validation(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddCity(1, " Moscow "))
	require.NoError(t, n.AddCity(1, "Moscow"), "identical re-declaration is a no-op")

	assert.ErrorIs(t, n.AddCity(2, "  "), network.ErrEmptyName)
	assert.ErrorIs(t, n.AddCity(1, "Tver"), network.ErrDuplicateCity)
	assert.ErrorIs(t, n.AddCity(2, "Moscow"), network.ErrDuplicateCity)

	id, ok := n.Lookup("Moscow")
	require.True(t, ok)
	assert.Equal(t, 1, id)
	name, ok := n.Name(1)
	require.True(t, ok)
	assert.Equal(t, "Moscow", name)
}

func TestAddRoad_Validation(t *testing.T) {
	n := network.New()
	require.NoError(t, n.AddCity(1, "A"))
	require.NoError(t, n.AddCity(2, "B"))

	assert.ErrorIs(t, n.AddRoad(network.Road{A: 1, B: 3, Distance: 1}), network.ErrUnknownCityID)
	assert.ErrorIs(t, n.AddRoad(network.Road{A: 1, B: 2, Time: -1}), network.ErrNegativeWeight)
	assert.Equal(t, 0, n.Stats().Roads)

	require.NoError(t, n.AddRoad(network.Road{A: 2, B: 1, Distance: 4, Time: 5, Cost: 6}))
	require.NoError(t, n.AddRoad(network.Road{A: 1, B: 2, Distance: 7, Time: 8, Cost: 9}))
	assert.Equal(t, []network.Road{{A: 1, B: 2, Distance: 7, Time: 8, Cost: 9}}, n.Roads())

	for _, c := range route.Criteria {
		w, ok := n.Layers().Layer(c).Weight(2, 1)
		require.True(t, ok)
		assert.Equal(t, network.Road{Distance: 7, Time: 8, Cost: 9}.Weight(c), w)
	}
}

func TestBuild_FailsOnBadDeclaration(t *testing.T) {
	_, err := network.Build([]network.City{{1, "A"}, {2, "A"}}, nil)
	assert.ErrorIs(t, err, network.ErrDuplicateCity)

	_, err = network.Build([]network.City{{1, "A"}}, []network.Road{{A: 1, B: 2}})
	assert.ErrorIs(t, err, network.ErrUnknownCityID)
}

func TestCitiesAndStats(t *testing.T) {
	n := chain(t)
	assert.Equal(t, []network.City{{1, "A"}, {2, "B"}, {3, "C"}, {4, "D"}}, n.Cities())
	assert.Equal(t, network.Stats{Cities: 4, Roads: 2}, n.Stats())
}

// ------------------------------------------------------------------------
// Resolve.
// ------------------------------------------------------------------------

func TestResolve_ChainScenario(t *testing.T) {
	n := chain(t)
	res, err := n.Resolve(context.Background(), network.Request{
		Origin: "A", Destination: "C", Priorities: []string{"time", "cost"},
	})
	require.NoError(t, err)
	require.Equal(t, network.StatusOK, res.Status)
	require.Len(t, res.Routes, 3)

	want := route.Metrics{Distance: 20, Time: 10, Cost: 6}
	for i, r := range res.Routes {
		assert.Equal(t, route.Criteria[i], r.Criterion)
		assert.Equal(t, []string{"A", "B", "C"}, r.Cities)
		assert.Equal(t, []int{1, 2, 3}, r.IDs)
		assert.Equal(t, want, r.Metrics)
	}
	require.True(t, res.HasCompromise())
	assert.Equal(t, []string{"A", "B", "C"}, res.Compromise.Cities)
}

func TestResolve_DiamondScenario(t *testing.T) {
	n := diamond(t)
	ctx := context.Background()

	res, err := n.Resolve(ctx, network.Request{Origin: "A", Destination: "D", Priorities: []string{"time", "distance"}})
	require.NoError(t, err)
	require.True(t, res.HasCompromise())
	assert.Equal(t, []string{"A", "B", "D"}, res.Compromise.Cities)

	byDist, ok := res.RouteFor(route.Distance)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "C", "D"}, byDist.Cities)
	assert.Equal(t, int64(2), byDist.Metrics.Distance)
	byTime, ok := res.RouteFor(route.Time)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "D"}, byTime.Cities)
	assert.Equal(t, int64(2), byTime.Metrics.Time)

	res, err = n.Resolve(ctx, network.Request{Origin: "A", Destination: "D", Priorities: []string{"distance", "time"}})
	require.NoError(t, err)
	require.True(t, res.HasCompromise())
	assert.Equal(t, []string{"A", "C", "D"}, res.Compromise.Cities)
}

// TestResolve_UnknownVsDisconnected keeps the two "no route" causes apart.
func TestResolve_UnknownVsDisconnected(t *testing.T) {
	n := chain(t)
	ctx := context.Background()

	res, err := n.Resolve(ctx, network.Request{Origin: "A", Destination: "Atlantis", Priorities: []string{"time"}})
	require.NoError(t, err)
	assert.Equal(t, network.StatusUnknownEndpoint, res.Status)
	assert.Equal(t, []string{"Atlantis"}, res.Unknown)
	assert.Empty(t, res.Routes)

	res, err = n.Resolve(ctx, network.Request{Origin: "A", Destination: "D", Priorities: []string{"time"}})
	require.NoError(t, err)
	assert.Equal(t, network.StatusNoRoute, res.Status)
	assert.Empty(t, res.Unknown)
	assert.False(t, res.HasCompromise())
}

func TestResolve_UnknownSameCityListedOnce(t *testing.T) {
	n := chain(t)
	ctx := context.Background()

	res, err := n.Resolve(ctx, network.Request{Origin: "Atlantis", Destination: "Atlantis", Priorities: []string{"time"}})
	require.NoError(t, err)
	assert.Equal(t, network.StatusUnknownEndpoint, res.Status)
	assert.Equal(t, []string{"Atlantis"}, res.Unknown)

	res, err = n.Resolve(ctx, network.Request{Origin: "Atlantis", Destination: "Lemuria"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Atlantis", "Lemuria"}, res.Unknown)
}

func TestResolve_SearchOptions(t *testing.T) {
	cities := []network.City{{1, "A"}, {2, "B"}, {3, "C"}}
	roads := []network.Road{
		{A: 1, B: 3, Distance: 50, Time: 50, Cost: 50},
		{A: 1, B: 2, Distance: 30, Time: 30, Cost: 30},
		{A: 2, B: 3, Distance: 30, Time: 30, Cost: 30},
	}
	req := network.Request{Origin: "A", Destination: "C", Priorities: []string{"distance"}}
	resolve := func(opts ...dijkstra.Option) network.Result {
		t.Helper()
		n, err := network.Build(cities, roads, network.WithSearchOptions(opts...))
		require.NoError(t, err)
		res, err := n.Resolve(context.Background(), req)
		require.NoError(t, err)

		return res
	}

	res := resolve()
	require.True(t, res.HasCompromise())
	assert.Equal(t, []string{"A", "C"}, res.Compromise.Cities)

	// Closing the direct road forces the detour.
	res = resolve(dijkstra.WithInfEdgeThreshold(40))
	require.True(t, res.HasCompromise())
	assert.Equal(t, []string{"A", "B", "C"}, res.Compromise.Cities)

	res = resolve(dijkstra.WithInfEdgeThreshold(30))
	assert.Equal(t, network.StatusNoRoute, res.Status)

	res = resolve(dijkstra.WithMaxDistance(45))
	assert.Equal(t, network.StatusNoRoute, res.Status)
}

func TestResolve_NoCompromise(t *testing.T) {
	n := chain(t)
	res, err := n.Resolve(context.Background(), network.Request{Origin: "A", Destination: "B"})
	require.NoError(t, err)
	assert.Equal(t, network.StatusOK, res.Status)
	assert.Len(t, res.Routes, 3)
	assert.False(t, res.HasCompromise())
}

func TestResolve_SameCity(t *testing.T) {
	n := chain(t)
	res, err := n.Resolve(context.Background(), network.Request{Origin: "D", Destination: "D", Priorities: []string{"cost"}})
	require.NoError(t, err)
	require.Equal(t, network.StatusOK, res.Status)
	require.True(t, res.HasCompromise())
	assert.Equal(t, []string{"D"}, res.Compromise.Cities)
	assert.Zero(t, res.Compromise.Metrics)
}

func TestResolve_Idempotent(t *testing.T) {
	n := diamond(t)
	req := network.Request{Origin: "A", Destination: "D", Priorities: []string{"distance"}}
	first, err := n.Resolve(context.Background(), req)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := n.Resolve(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, first.Compromise, again.Compromise)
		assert.Equal(t, first.Status, again.Status)
	}
}

func TestResolve_ConcurrentReaders(t *testing.T) {
	n := diamond(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := n.Resolve(context.Background(), network.Request{Origin: "A", Destination: "D", Priorities: []string{"time"}})
			assert.NoError(t, err)
			if assert.True(t, res.HasCompromise()) {
				assert.Equal(t, []string{"A", "B", "D"}, res.Compromise.Cities)
			}
		}()
	}
	wg.Wait()
}

func TestResolve_Cancelled(t *testing.T) {
	n := diamond(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := n.Resolve(ctx, network.Request{Origin: "A", Destination: "D"})
	assert.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// Batch and reachability.
// ------------------------------------------------------------------------

func TestResolveAll_KeepsOrder(t *testing.T) {
	n := diamond(t)
	reqs := []network.Request{
		{Origin: "A", Destination: "D", Priorities: []string{"time"}},
		{Origin: "X", Destination: "D"},
		{Origin: "A", Destination: "D", Priorities: []string{"distance"}},
		{Origin: "B", Destination: "C", Priorities: []string{"cost"}},
	}

	results, err := n.ResolveAll(context.Background(), reqs, 2)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	for i, r := range results {
		assert.Equal(t, reqs[i], r.Request)
	}
	assert.Equal(t, []string{"A", "B", "D"}, results[0].Compromise.Cities)
	assert.Equal(t, network.StatusUnknownEndpoint, results[1].Status)
	assert.Equal(t, []string{"A", "C", "D"}, results[2].Compromise.Cities)
	assert.Equal(t, network.StatusOK, results[3].Status)

	// Default worker count.
	results, err = n.ResolveAll(context.Background(), reqs[:1], 0)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestReachable(t *testing.T) {
	n := chain(t)

	got, err := n.Reachable(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, []network.Reach{
		{City: network.City{ID: 1, Name: "A"}, Hops: 0},
		{City: network.City{ID: 2, Name: "B"}, Hops: 1},
		{City: network.City{ID: 3, Name: "C"}, Hops: 2},
	}, got)

	got, err = n.Reachable(context.Background(), "D")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = n.Reachable(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, network.ErrUnknownCity)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", network.StatusOK.String())
	assert.Equal(t, "unknown_endpoint", network.StatusUnknownEndpoint.String())
	assert.Equal(t, "no_route", network.StatusNoRoute.String())
	assert.Equal(t, "invalid", network.Status(9).String())
}
