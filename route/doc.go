// Package route combines three single-criterion shortest paths into one
// recommendation.
//
// A road network carries three independent weight layers: distance, time
// and cost. For a request between two nodes, FindOptimalRoutes runs
// dijkstra.ShortestPath once per layer and measures every resulting path
// in all three dimensions (ComputeMetrics), so that a path optimal for time
// also reports its distance and cost. SelectCompromise then picks the one
// candidate whose metrics are lexicographically smallest under the
// caller's priority ordering.
//
// Outcomes per criterion:
//
//   - no path in that layer: the criterion has no candidate;
//   - a path whose edges are missing from another layer: the metrics are
//     undefined and the candidate is dropped;
//   - otherwise a Candidate with its path and metrics.
//
// Compromise rules:
//
//   - Compare the first listed criterion's value; ties fall through to the
//     next listed criterion.
//   - Unknown criteria compare as +∞ and so never decide.
//   - Remaining ties go to the earliest candidate in criterion order
//     (Distance, Time, Cost), regardless of the order they were supplied in.
//   - No candidates or no priorities: no compromise.
package route
