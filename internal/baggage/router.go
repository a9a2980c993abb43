package baggage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/conveyor/bfs"
	"github.com/katalvlaran/conveyor/core"
	"github.com/katalvlaran/conveyor/dijkstra"
	"github.com/katalvlaran/conveyor/internal/ctxlog"
	"github.com/katalvlaran/conveyor/internal/loader"
)

// Defaults for the target resolution.
const (
	DefaultClaimJunction = "BaggageClaim"
	DefaultArrivalTag    = "ARRIVAL"

	// DefaultCacheSize is how many engine runs a Router keeps by default.
	DefaultCacheSize = 256
)

var (
	// ErrUnresolvedFlight is a bag whose flight has no departure entry.
	ErrUnresolvedFlight = errors.New("baggage: flight has no departure gate")

	// ErrUnknownJunction is an entry or target junction absent from the network.
	ErrUnknownJunction = errors.New("baggage: junction not in network")

	// ErrNilGraph is returned by Route on a router without a graph.
	ErrNilGraph = errors.New("baggage: router has no graph")
)

// JunctionError names the junction behind ErrUnknownJunction.
type JunctionError struct {
	Name string
}

// Error implements error.
func (e *JunctionError) Error() string { return fmt.Sprintf("%v: %s", ErrUnknownJunction, e.Name) }

// Unwrap returns ErrUnknownJunction.
func (e *JunctionError) Unwrap() error { return ErrUnknownJunction }

// Option configures a Router.
type Option func(*Router)

// WithClaimJunction sets the junction that arriving bags are routed to.
func WithClaimJunction(name string) Option {
	return func(r *Router) {
		if name != "" {
			r.claim = name
		}
	}
}

// WithArrivalTag sets the flight tag that marks an arriving bag.
func WithArrivalTag(tag string) Option {
	return func(r *Router) {
		if tag != "" {
			r.arrivalTag = tag
		}
	}
}

// WithLogger sets the router's logger. Without it the logger is taken from
// the context of each call.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) { r.logger = logger }
}

// WithWorkers bounds how many bags Run routes at once. n < 1 means 1.
func WithWorkers(n int) Option {
	return func(r *Router) {
		if n < 1 {
			n = 1
		}
		r.workers = n
	}
}

// WithCacheSize bounds how many engine runs the router keeps. The least
// recently used run is evicted first. n < 1 means DefaultCacheSize.
func WithCacheSize(n int) Option {
	return func(r *Router) {
		if n < 1 {
			n = DefaultCacheSize
		}
		r.cacheSize = n
	}
}

// Router resolves bag targets and answers routing requests over one graph.
// It is safe for concurrent use.
type Router struct {
	g          *core.Graph
	claim      string
	arrivalTag string
	logger     *slog.Logger
	workers    int
	comps      []int
	cacheSize  int

	cache  *lru.Cache[int, *dijkstra.Result]
	flight singleflight.Group
}

// NewRouter returns a Router over g.
func NewRouter(g *core.Graph, opts ...Option) *Router {
	r := &Router{
		g:          g,
		claim:      DefaultClaimJunction,
		arrivalTag: DefaultArrivalTag,
		workers:    1,
		cacheSize:  DefaultCacheSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	// lru.New only fails on a non-positive size, which WithCacheSize rules out.
	r.cache, _ = lru.New[int, *dijkstra.Result](r.cacheSize)
	if g != nil {
		r.comps = bfs.ComponentIndex(g)
	}

	return r
}

// Graph returns the routed graph.
func (r *Router) Graph() *core.Graph { return r.g }

// ClaimJunction returns the target of arriving bags.
func (r *Router) ClaimJunction() string { return r.claim }

// Resolve returns the target junction of bag.
func (r *Router) Resolve(bag loader.Bag, departures map[string]loader.Departure) (string, error) {
	if bag.Flight == r.arrivalTag {
		return r.claim, nil
	}
	d, ok := departures[bag.Flight]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedFlight, bag.Flight)
	}

	return d.Gate, nil
}

// Route returns the cheapest route from one junction to another.
// Requests across disconnected parts of the network fail with
// dijkstra.ErrUnreachable without running the engine.
func (r *Router) Route(ctx context.Context, from, to string) (*dijkstra.Route, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.g == nil {
		return nil, ErrNilGraph
	}
	src, ok := r.g.Index(from)
	if !ok {
		return nil, &JunctionError{Name: from}
	}
	dst, ok := r.g.Index(to)
	if !ok {
		return nil, &JunctionError{Name: to}
	}
	if r.comps[src] != r.comps[dst] {
		return nil, fmt.Errorf("%w: %s → %s", dijkstra.ErrUnreachable, from, to)
	}

	res, err := r.resultFrom(ctx, src)
	if err != nil {
		return nil, err
	}

	return dijkstra.RouteBetween(res, from, to)
}

// resultFrom returns the cached engine run for src, computing it once even
// under concurrent callers.
func (r *Router) resultFrom(ctx context.Context, src int) (*dijkstra.Result, error) {
	if res, ok := r.cache.Get(src); ok {
		return res, nil
	}

	name := r.g.Name(src)
	v, err, _ := r.flight.Do(name, func() (interface{}, error) {
		res, err := dijkstra.Dijkstra(r.g, dijkstra.Source(name))
		if err != nil {
			return nil, err
		}
		if evicted := r.cache.Add(src, res); evicted {
			r.log(ctx).Debug("Engine run evicted.", "size", r.cacheSize)
		}
		r.log(ctx).Debug("Engine run cached.", "source", name, "reached", len(res.Reached()))

		return res, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*dijkstra.Result), nil
}

// CachedSources returns how many engine runs are cached. It never exceeds
// the size set by WithCacheSize.
func (r *Router) CachedSources() int { return r.cache.Len() }

func (r *Router) log(ctx context.Context) *slog.Logger {
	if r.logger != nil {
		return r.logger
	}

	return ctxlog.FromContext(ctx)
}
