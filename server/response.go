package server

import (
	"github.com/katalvlaran/multiroute/network"
	"github.com/katalvlaran/multiroute/route"
)

// RouteJSON is a route as returned by the API.
type RouteJSON struct {
	Criterion string        `json:"criterion"`
	Cities    []string      `json:"cities"`
	Metrics   route.Metrics `json:"metrics"`
}

// RouteResponse is the body of POST /api/routes.
type RouteResponse struct {
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Status      string      `json:"status"`
	Unknown     []string    `json:"unknown,omitempty"`
	Routes      []RouteJSON `json:"routes"`
	Compromise  *RouteJSON  `json:"compromise"`
}

func toRouteJSON(r network.Route) RouteJSON {
	return RouteJSON{Criterion: r.Criterion.String(), Cities: r.Cities, Metrics: r.Metrics}
}

func newRouteResponse(res network.Result) RouteResponse {
	out := RouteResponse{
		Origin:      res.Request.Origin,
		Destination: res.Request.Destination,
		Status:      res.Status.String(),
		Unknown:     res.Unknown,
		Routes:      make([]RouteJSON, 0, len(res.Routes)),
	}
	for _, r := range res.Routes {
		out.Routes = append(out.Routes, toRouteJSON(r))
	}
	if res.Compromise != nil {
		c := toRouteJSON(*res.Compromise)
		out.Compromise = &c
	}

	return out
}
