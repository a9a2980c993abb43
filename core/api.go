// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors. The only place where Graph fields are written.
// Policy:
//   - Validation happens before any state is published.
//   - A returned *Graph is complete and never changes afterwards.

package core

import (
	"fmt"
	"sort"
)

// NewGraph builds an immutable Graph from an explicit junction list and a
// list of directed connections.
//
// Implementation:
//   - Stage 1: Resolve options and validate junction names (empty, duplicate).
//   - Stage 2: Intern names in ascending order into dense indices.
//   - Stage 3: Validate every connection (known endpoints, cost ≥ 0) and
//     append it to the adjacency list of its source.
//
// Inputs:
//   - junctions: every junction name; order does not matter.
//   - connections: directed entries; both endpoints must be listed in junctions.
//
// Returns:
//   - *Graph: a fully built, read-only graph.
//
// Errors:
//   - ErrEmptyJunction, ErrDuplicateJunction (reject policy only),
//     ErrJunctionNotFound, ErrNegativeCost, ErrCostTooLarge, ErrParallelConnection
//     (WithRejectParallel only). All are wrapped with context.
//
// Complexity:
//   - Time O(V log V + E), Space O(V + E).
func NewGraph(junctions []string, connections []Connection, opts ...GraphOption) (*Graph, error) {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1: names.
	seen := make(map[string]struct{}, len(junctions))
	names := make([]string, 0, len(junctions))
	for _, name := range junctions {
		if name == "" {
			return nil, ErrEmptyJunction
		}
		if _, dup := seen[name]; dup {
			if cfg.dedup {
				continue
			}
			return nil, fmt.Errorf("%w: %q", ErrDuplicateJunction, name)
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	// Stage 2: interning. Ascending order makes index order equal name order.
	sort.Strings(names)
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}

	// Stage 3: connections and adjacency.
	g := &Graph{
		names:       names,
		index:       index,
		connections: make([]Connection, 0, len(connections)),
		adjacency:   make([][]Arc, len(names)),
	}
	var pairs map[[2]int]struct{}
	if cfg.rejectParallel {
		pairs = make(map[[2]int]struct{}, len(connections))
	}
	for _, c := range connections {
		from, ok := index[c.From]
		if !ok {
			return nil, fmt.Errorf("%w: connection %s→%s references %q", ErrJunctionNotFound, c.From, c.To, c.From)
		}
		to, ok := index[c.To]
		if !ok {
			return nil, fmt.Errorf("%w: connection %s→%s references %q", ErrJunctionNotFound, c.From, c.To, c.To)
		}
		if c.Cost < 0 {
			return nil, fmt.Errorf("%w: connection %s→%s cost=%d", ErrNegativeCost, c.From, c.To, c.Cost)
		}
		if c.Cost > MaxCost {
			return nil, fmt.Errorf("%w: connection %s→%s cost=%d > %d", ErrCostTooLarge, c.From, c.To, c.Cost, MaxCost)
		}
		if pairs != nil && from != to {
			key := [2]int{from, to}
			if _, dup := pairs[key]; dup {
				return nil, fmt.Errorf("%w: %s→%s", ErrParallelConnection, c.From, c.To)
			}
			pairs[key] = struct{}{}
		}
		g.connections = append(g.connections, c)
		g.adjacency[from] = append(g.adjacency[from], Arc{To: to, Cost: c.Cost})
	}

	return g, nil
}

// FromLinks builds a Graph from physical links, the shape in which the
// conveyor section of an input file describes the network.
//
// Both endpoints of every link are registered as junctions (a name seen on
// several links is registered once), and every link yields two connections
// of equal cost, A→B then B→A.
//
// Errors are those of NewGraph; ErrDuplicateJunction cannot occur because
// names are collected as a set.
//
// Complexity: Time O(V log V + L), Space O(V + L).
func FromLinks(links []Link, opts ...GraphOption) (*Graph, error) {
	seen := make(map[string]struct{}, 2*len(links))
	junctions := make([]string, 0, 2*len(links))
	connections := make([]Connection, 0, 2*len(links))

	register := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		junctions = append(junctions, name)
	}

	for _, l := range links {
		register(l.A)
		register(l.B)
		connections = append(connections,
			Connection{From: l.A, To: l.B, Cost: l.Cost},
			Connection{From: l.B, To: l.A, Cost: l.Cost},
		)
	}

	return NewGraph(junctions, connections, opts...)
}
