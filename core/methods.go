// File: methods.go
// Role: Read-only queries over an immutable Graph.
//
// Determinism:
//   - Junctions() returns names in ascending order (== index order).
//   - Connections() and Neighbors(i) preserve construction order.
//
// Concurrency:
//   - No locks. A built Graph is never written, so all methods are safe for
//     any number of concurrent readers.
package core

import "fmt"

// Len returns the number of junctions. Complexity: O(1).
func (g *Graph) Len() int { return len(g.names) }

// Junctions returns a copy of all junction names in ascending order.
// Complexity: O(V).
func (g *Graph) Junctions() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// Connections returns a copy of all directed connections in construction order.
// Complexity: O(E).
func (g *Graph) Connections() []Connection {
	out := make([]Connection, len(g.connections))
	copy(out, g.connections)

	return out
}

// HasJunction reports whether name is a junction of g.
func (g *Graph) HasJunction(name string) bool {
	_, ok := g.index[name]

	return ok
}

// Index returns the interned index of name.
func (g *Graph) Index(name string) (int, bool) {
	i, ok := g.index[name]

	return i, ok
}

// Name returns the junction name for index i. It panics if i is out of range,
// like a slice access would.
func (g *Graph) Name(i int) string { return g.names[i] }

// Neighbors returns the outgoing arcs of junction i.
//
// The returned slice is shared with the graph and capped to its length, so an
// append by the caller reallocates instead of corrupting adjacency. Callers
// must not modify elements in place.
//
// Complexity: O(1).
func (g *Graph) Neighbors(i int) []Arc {
	arcs := g.adjacency[i]

	return arcs[:len(arcs):len(arcs)]
}

// Cost returns the cheapest connection cost from → to.
// ok is false when either junction is unknown or no connection links them.
//
// Complexity: O(deg(from)).
func (g *Graph) Cost(from, to string) (int64, bool) {
	fi, ok := g.index[from]
	if !ok {
		return 0, false
	}
	ti, ok := g.index[to]
	if !ok {
		return 0, false
	}

	return g.cost(fi, ti)
}

// MustCost is Cost keyed by index for callers that only ask about pairs they
// discovered through Neighbors. A miss means the caller's state disagrees
// with the graph; MustCost panics with an *InvariantViolation.
func (g *Graph) MustCost(from, to int) int64 {
	if from < 0 || from >= len(g.names) || to < 0 || to >= len(g.names) {
		panic(&InvariantViolation{Op: "MustCost", Detail: fmt.Sprintf("index out of range: %d→%d (V=%d)", from, to, len(g.names))})
	}
	c, ok := g.cost(from, to)
	if !ok {
		panic(&InvariantViolation{Op: "MustCost", Detail: fmt.Sprintf("no connection %s→%s", g.names[from], g.names[to])})
	}

	return c
}

func (g *Graph) cost(from, to int) (int64, bool) {
	best, found := int64(0), false
	for _, a := range g.adjacency[from] {
		if a.To != to {
			continue
		}
		if !found || a.Cost < best {
			best, found = a.Cost, true
		}
	}

	return best, found
}

// Stats returns catalog sizes. Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		Junctions:   len(g.names),
		Connections: len(g.connections),
	}
	for _, arcs := range g.adjacency {
		if len(arcs) == 0 {
			stats.Isolated++
		}
	}

	return stats
}
