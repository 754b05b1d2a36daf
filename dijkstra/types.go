package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance reported for unreachable targets.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// a negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Result is the outcome of one search.
type Result struct {
	// Distance is the total weight of Path, or Infinity if no path exists.
	// A path may itself weigh Infinity; use Found to tell them apart.
	Distance int64

	// Path lists node identifiers from start to end inclusive; empty when
	// no path exists.
	Path []int
}

// Found reports whether a path was found.
func (r Result) Found() bool { return len(r.Path) > 0 }

// notFound is the canonical "no path" result.
func notFound() Result { return Result{Distance: Infinity} }

// Options configures ShortestPath.
//
// MaxDistance      - nodes farther than this are not expanded. Default Infinity.
// InfEdgeThreshold - edges with weight ≥ this are skipped. Zero (the default)
// closes no edge.
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance caps the explored radius. Targets beyond it are reported
// as unreachable. Panics with ErrBadMaxDistance if max < 0.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as closed roads.
// Panics with ErrBadInfThreshold if threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no distance cap and no closed edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance: Infinity,
	}
}
