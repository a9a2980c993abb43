// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Dijkstra computes the minimum-cost route from a single source junction to
// all other reachable junctions in a graph with non-negative connection costs.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |junctions|, E = |connections|
//	   • Each junction is finalized at most once (V extracts).
//	   • Each relaxation may push into the priority queue (up to E pushes).
//	– Space: O(V + E)
//	   • O(V) for the distance and predecessor slices.
//	   • O(E) heap entries in the worst case (lazy decrease-key).
//
// Options:
//
//	– Source:           name of the starting junction (must be non-empty and present in the graph).
//	– MaxDistance:      optional cap on distances to explore; junctions beyond it stay unreached.
//	– InfEdgeThreshold: connections with cost >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source name is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrSourceNotFound  if the source junction does not exist in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0.
//	– ErrSourceMismatch, ErrJunctionNotFound, ErrUnreachable from RouteBetween.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/conveyor/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source junction name is empty.
	ErrEmptySource = errors.New("dijkstra: source junction is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source junction does not exist in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source junction not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every connection (including zero-cost ones) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrSourceMismatch indicates that RouteBetween was asked for a source other
	// than the one the Result was computed from.
	ErrSourceMismatch = errors.New("dijkstra: route source differs from computed source")

	// ErrJunctionNotFound indicates that a route destination is not in the graph.
	ErrJunctionNotFound = errors.New("dijkstra: junction not found in graph")

	// ErrUnreachable indicates that the destination has no computed distance.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// unreached is the distance stored for junctions that were never relaxed.
const unreached = math.MaxInt64

// noPredecessor is the predecessor stored for the source and unreached junctions.
const noPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting junction name (must be non-empty and present in the graph).
// MaxDistance      – optional cap on distances to explore. Must be ≥ 0. Default math.MaxInt64.
// InfEdgeThreshold – connections with cost ≥ this value are impassable. Must be > 0.
//
//	Default math.MaxInt64 (no obstacles).
type Options struct {
	Source           string // The name of the source junction
	MaxDistance      int64  // Maximum distance to explore
	InfEdgeThreshold int64  // Cost threshold above which connections are non-traversable

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
// An invalid value is recorded and surfaced by Dijkstra as an error.
type Option func(*Options)

// Source sets the starting junction. Required.
func Source(name string) Option {
	return func(o *Options) {
		o.Source = name
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Junctions whose shortest distance would exceed this value stay unreached.
// A negative value makes Dijkstra fail with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a cost threshold at or above which connections
// are skipped entirely. A zero or negative value makes Dijkstra fail with
// ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = ErrBadInfThreshold
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options initialized with the defaults for the given
// source junction:
//   - MaxDistance:      math.MaxInt64 (explore all reachable junctions).
//   - InfEdgeThreshold: math.MaxInt64 (no connection is impassable).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result is the outcome of one Dijkstra run: the best distance and the
// predecessor of every junction reached from Source. A Result is never
// modified after Dijkstra returns it and may be shared between goroutines.
type Result struct {
	g      *core.Graph
	source int
	dist   []int64 // index → distance, unreached if never relaxed
	prev   []int   // index → predecessor index, noPredecessor for source/unreached
}

// Graph returns the graph the Result was computed on.
func (r *Result) Graph() *core.Graph { return r.g }

// Source returns the name of the source junction.
func (r *Result) Source() string { return r.g.Name(r.source) }

// Distance returns the shortest distance from Source to name.
// ok is false when name is unknown or was not reached.
func (r *Result) Distance(name string) (int64, bool) {
	i, ok := r.g.Index(name)
	if !ok || r.dist[i] == unreached {
		return 0, false
	}

	return r.dist[i], true
}

// Predecessor returns the junction through which the best route to name
// arrives. ok is false for the source itself and for unreached junctions.
func (r *Result) Predecessor(name string) (string, bool) {
	i, ok := r.g.Index(name)
	if !ok || r.prev[i] == noPredecessor {
		return "", false
	}

	return r.g.Name(r.prev[i]), true
}

// Reached returns every reached junction (Source included) in name order.
func (r *Result) Reached() []string {
	out := make([]string, 0, len(r.dist))
	for i, d := range r.dist {
		if d != unreached {
			out = append(out, r.g.Name(i))
		}
	}

	return out
}

// Distances returns the distance map restricted to reached junctions.
func (r *Result) Distances() map[string]int64 {
	out := make(map[string]int64, len(r.dist))
	for i, d := range r.dist {
		if d != unreached {
			out[r.g.Name(i)] = d
		}
	}

	return out
}

// Predecessors returns the predecessor map restricted to junctions that have one.
func (r *Result) Predecessors() map[string]string {
	out := make(map[string]string, len(r.prev))
	for i, p := range r.prev {
		if p != noPredecessor {
			out[r.g.Name(i)] = r.g.Name(p)
		}
	}

	return out
}
