package network

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/multiroute/dijkstra"
	"github.com/katalvlaran/multiroute/route"
)

// pair is an unordered city pair normalized so that a <= b.
type pair struct{ a, b int }

func makePair(a, b int) pair {
	if a > b {
		a, b = b, a
	}

	return pair{a, b}
}

// Network is the top-level container: city names plus three weight layers.
//
// mu guards the name maps and the road catalog; the layers carry their own
// locks. All fields are owned exclusively by the Network.
type Network struct {
	mu     sync.RWMutex
	byName map[string]int
	byID   map[int]string
	roads  map[pair]Road
	layers route.Triple
	search []dijkstra.Option
	logger *slog.Logger
}

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the logger used for request tracing. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithSearchOptions sets the solver options applied to every per-criterion
// search, e.g. dijkstra.WithInfEdgeThreshold to close roads at or above a
// weight in any layer.
func WithSearchOptions(opts ...dijkstra.Option) Option {
	return func(n *Network) {
		n.search = append(n.search, opts...)
	}
}

// New returns an empty Network.
func New(opts ...Option) *Network {
	n := &Network{
		byName: make(map[string]int),
		byID:   make(map[int]string),
		roads:  make(map[pair]Road),
		layers: route.NewTriple(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Build creates a Network from node and edge declarations, failing on the
// first invalid declaration.
func Build(cities []City, roads []Road, opts ...Option) (*Network, error) {
	n := New(opts...)
	for _, c := range cities {
		if err := n.AddCity(c.ID, c.Name); err != nil {
			return nil, err
		}
	}
	for _, r := range roads {
		if err := n.AddRoad(r); err != nil {
			return nil, err
		}
	}
	n.logger.Info("network built", "cities", len(n.byID), "roads", len(n.roads))

	return n, nil
}

// AddCity declares a city. Names are trimmed. Re-declaring the same
// (id, name) pair is a no-op; binding an id or a name to a different
// partner returns ErrDuplicateCity.
func (n *Network) AddCity(id int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: id %d", ErrEmptyName, id)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if existing, ok := n.byID[id]; ok {
		if existing == name {
			return nil
		}
		return fmt.Errorf("%w: id %d is already %q", ErrDuplicateCity, id, existing)
	}
	if existing, ok := n.byName[name]; ok {
		return fmt.Errorf("%w: %q already has id %d", ErrDuplicateCity, name, existing)
	}

	n.byID[id] = name
	n.byName[name] = id
	for _, c := range route.Criteria {
		n.layers[c].AddNode(id)
	}

	return nil
}

// AddRoad mirrors r into all three layers. Both endpoints must be declared
// cities and all weights must be non-negative; otherwise nothing is stored.
// A second road between the same cities replaces the first.
func (n *Network) AddRoad(r Road) error {
	if r.Distance < 0 || r.Time < 0 || r.Cost < 0 {
		return fmt.Errorf("%w: %d-%d (%d, %d, %d)", ErrNegativeWeight, r.A, r.B, r.Distance, r.Time, r.Cost)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	for _, id := range []int{r.A, r.B} {
		if _, ok := n.byID[id]; !ok {
			return fmt.Errorf("%w: %d", ErrUnknownCityID, id)
		}
	}

	for _, c := range route.Criteria {
		if err := n.layers[c].AddEdge(r.A, r.B, r.Weight(c)); err != nil {
			return fmt.Errorf("network: %s layer: %w", c, err)
		}
	}
	p := makePair(r.A, r.B)
	r.A, r.B = p.a, p.b
	n.roads[p] = r

	return nil
}

// Lookup returns the identifier of a city name.
func (n *Network) Lookup(name string) (int, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	id, ok := n.byName[strings.TrimSpace(name)]

	return id, ok
}

// Name returns the display name of a city identifier.
func (n *Network) Name(id int) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	name, ok := n.byID[id]

	return name, ok
}

// Cities returns all cities sorted by id.
func (n *Network) Cities() []City {
	n.mu.RLock()
	out := make([]City, 0, len(n.byID))
	for id, name := range n.byID {
		out = append(out, City{ID: id, Name: name})
	}
	n.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// Roads returns every road once, with A <= B, sorted by (A, B).
func (n *Network) Roads() []Road {
	n.mu.RLock()
	out := make([]Road, 0, len(n.roads))
	for _, r := range n.roads {
		out = append(out, r)
	}
	n.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}

// Stats returns the number of cities and roads.
func (n *Network) Stats() Stats {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return Stats{Cities: len(n.byID), Roads: len(n.roads)}
}

// Layers exposes the three weight layers for read-only use.
func (n *Network) Layers() route.Layers { return n.layers }

// names maps a path of ids to city names. Caller holds n.mu for reading.
func (n *Network) names(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = n.byID[id]
	}

	return out
}
