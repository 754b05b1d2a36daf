package route

import (
	"math"
	"strings"

	"github.com/katalvlaran/multiroute/core"
)

// Criterion names one edge-weight dimension.
type Criterion int

const (
	// Distance is the length dimension.
	Distance Criterion = iota
	// Time is the travel-time dimension.
	Time
	// Cost is the monetary dimension.
	Cost
	// Unknown marks an unrecognized priority token.
	Unknown Criterion = -1
)

// Criteria lists the known criteria in enumeration order.
var Criteria = []Criterion{Distance, Time, Cost}

// String returns the canonical lower-case token.
func (c Criterion) String() string {
	switch c {
	case Distance:
		return "distance"
	case Time:
		return "time"
	case Cost:
		return "cost"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of Distance, Time, Cost.
func (c Criterion) Valid() bool { return c >= Distance && c <= Cost }

// ParseCriterion maps a priority token to a Criterion. Matching is
// case-insensitive and accepts the short forms d/t/c, "length", and the
// Cyrillic initials Д/В/С used in legacy request files. Anything else is
// Unknown.
func ParseCriterion(token string) Criterion {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "distance", "length", "d", "д":
		return Distance
	case "time", "t", "в":
		return Time
	case "cost", "c", "с":
		return Cost
	default:
		return Unknown
	}
}

// ParseCriteria maps tokens in order, keeping unrecognized ones as Unknown.
func ParseCriteria(tokens []string) []Criterion {
	out := make([]Criterion, len(tokens))
	for i, tok := range tokens {
		out[i] = ParseCriterion(tok)
	}

	return out
}

// Metrics are the totals of a path in all three dimensions.
type Metrics struct {
	Distance int64 `json:"distance"`
	Time     int64 `json:"time"`
	Cost     int64 `json:"cost"`
}

// Value returns the metric for c; Unknown yields math.MaxInt64.
func (m Metrics) Value(c Criterion) int64 {
	switch c {
	case Distance:
		return m.Distance
	case Time:
		return m.Time
	case Cost:
		return m.Cost
	default:
		return math.MaxInt64
	}
}

// Candidate is a path optimized for one criterion, with its metrics.
type Candidate struct {
	Criterion Criterion
	Path      []int
	Metrics   Metrics
}

// Layers gives access to the weight graph of each criterion.
// Implementations must return a non-nil graph for every valid criterion.
type Layers interface {
	Layer(c Criterion) *core.Graph
}

// Triple is a Layers backed by three graphs held in criterion order.
type Triple [3]*core.Graph

// NewTriple allocates three empty graphs.
func NewTriple() Triple {
	return Triple{core.NewGraph(), core.NewGraph(), core.NewGraph()}
}

// Layer returns the graph for c, or nil for Unknown.
func (t Triple) Layer(c Criterion) *core.Graph {
	if !c.Valid() {
		return nil
	}

	return t[c]
}
