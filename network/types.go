package network

import (
	"errors"

	"github.com/katalvlaran/multiroute/route"
)

// Sentinel errors for network construction and lookups.
var (
	// ErrEmptyName indicates a city declared with a blank name.
	ErrEmptyName = errors.New("network: city name is empty")

	// ErrDuplicateCity indicates an id or name already bound to another city.
	ErrDuplicateCity = errors.New("network: duplicate city")

	// ErrUnknownCityID indicates a road referencing an undeclared city id.
	ErrUnknownCityID = errors.New("network: unknown city id")

	// ErrUnknownCity indicates a lookup by a name that is not in the network.
	ErrUnknownCity = errors.New("network: unknown city")

	// ErrNegativeWeight indicates a road with a negative distance, time or cost.
	ErrNegativeWeight = errors.New("network: negative road weight")
)

// City is a node declaration.
type City struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Road is an undirected edge declaration with its three weights.
type Road struct {
	A        int   `json:"a"`
	B        int   `json:"b"`
	Distance int64 `json:"distance"`
	Time     int64 `json:"time"`
	Cost     int64 `json:"cost"`
}

// Weight returns the road's weight for criterion c.
func (r Road) Weight(c route.Criterion) int64 {
	return route.Metrics{Distance: r.Distance, Time: r.Time, Cost: r.Cost}.Value(c)
}

// Request asks for routes between two city names. Priorities are criterion
// tokens in descending importance ("distance", "time", "cost").
type Request struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Priorities  []string `json:"priorities"`
}

// Status classifies the outcome of a request.
type Status int

const (
	// StatusOK means at least one criterion produced a route.
	StatusOK Status = iota
	// StatusUnknownEndpoint means origin or destination is not a known city.
	StatusUnknownEndpoint
	// StatusNoRoute means no criterion produced a usable path.
	StatusNoRoute
)

// String returns a stable lower-case label.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnknownEndpoint:
		return "unknown_endpoint"
	case StatusNoRoute:
		return "no_route"
	default:
		return "invalid"
	}
}

// Route is a candidate path expressed in city names.
type Route struct {
	Criterion route.Criterion `json:"-"`
	IDs       []int           `json:"ids"`
	Cities    []string        `json:"cities"`
	Metrics   route.Metrics   `json:"metrics"`
}

// Result is the outcome of one request.
type Result struct {
	Request Request
	Status  Status

	// Unknown lists the request's names that are not cities
	// (StatusUnknownEndpoint only).
	Unknown []string

	// Routes holds one entry per criterion with a usable path, in
	// criterion order.
	Routes []Route

	// Compromise is the selected route, nil when none was selected.
	Compromise *Route
}

// HasCompromise reports whether a compromise route was selected.
func (r Result) HasCompromise() bool { return r.Compromise != nil }

// RouteFor returns the route optimized for c, if any.
func (r Result) RouteFor(c route.Criterion) (Route, bool) {
	for _, rt := range r.Routes {
		if rt.Criterion == c {
			return rt, true
		}
	}

	return Route{}, false
}

// Stats summarizes the network size.
type Stats struct {
	Cities int `json:"cities"`
	Roads  int `json:"roads"`
}
