// Package multiroute plans routes over a road network whose roads carry three
// independent weights: distance, time and cost.
//
// For each request the planner finds the shortest path under every criterion
// and then picks one compromise route by comparing the candidates
// lexicographically over the request's priority order.
//
// Packages:
//
//	pqueue/     min-priority queue with int64 keys
//	core/       undirected weighted graph, one weight per node pair
//	dijkstra/   single-pair shortest path with lazy deletion
//	bfs/        hop-count reachability
//	route/      criteria, path metrics, per-criterion search, compromise selection
//	network/    named cities, three weight layers, request resolution
//	routefile/  [CITIES]/[ROADS]/[REQUESTS] input and result output
//	store/      SQLite network snapshot
//	server/     HTTP API over a network
//	config/     TOML and environment configuration
//	logging/    slog setup
//
// The routeplan command in cmd/routeplan ties these together.
package multiroute
