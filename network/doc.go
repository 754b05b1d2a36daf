// Package network owns a road network and answers route requests against it.
//
// A Network holds the city name ↔ identifier bijection and the three weight
// layers (distance, time, cost) built from one road list. It is filled once
// with AddCity/AddRoad (or Build) and is read-only afterwards; Resolve and
// ResolveAll may then be called from any number of goroutines.
//
// Every request ends in exactly one Status:
//
//   - StatusUnknownEndpoint: origin or destination is not a known city.
//     No search is run.
//   - StatusNoRoute: the cities are known but no criterion produced a
//     usable path.
//   - StatusOK: at least one criterion produced a route. Compromise is nil
//     when the request's priority list is empty (the NoCompromise outcome).
//
// Go errors are reserved for context cancellation; a bad request never
// aborts a batch.
package network
