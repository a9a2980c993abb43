// Package core provides the immutable junction graph that every routing
// computation in conveyor runs on.
//
// The Graph G = (V,E) models a baggage conveyor network:
//
//   - V is a set of junctions (check-in counters, conveyor switches, gates,
//     the baggage claim) identified by unique names.
//   - E is a set of directed connections with non-negative integer cost.
//     A physical belt is a Link and is stored as two connections of equal
//     cost, one per direction, so the graph is logically undirected.
//
// Why an immutable graph?
//
//   - The network is read once from the input file and never changes while
//     bags are routed, so there is nothing to lock.
//   - Any number of goroutines may query the same *Graph concurrently.
//   - Rebuilding means constructing a new instance (NewGraph / FromLinks).
//
// Interning:
//
//	Junction names are interned into dense integer indices at construction.
//	Indices are assigned in ascending name order, so comparing two indices
//	is the same as comparing the two names. Algorithms key their state by
//	index and translate back through Name(i) only at the API boundary.
//
// Adjacency:
//
//	Neighbors(i) returns the outgoing arcs of junction i in connection
//	insertion order. Per-step neighbor work is O(degree), not O(E).
//
// Construction options (GraphOption):
//
//	– WithDedupJunctions()
//	    Collapse repeated names in the junction list. Without it a repeated
//	    name fails construction with ErrDuplicateJunction.
//
// Errors:
//
//	ErrEmptyJunction      - a junction name is the empty string.
//	ErrDuplicateJunction  - a junction name appears twice under the reject policy.
//	ErrJunctionNotFound   - a connection or query names an unknown junction.
//	ErrNegativeCost       - a connection has cost < 0.
//	ErrCostTooLarge       - a connection has cost > MaxCost.
//	ErrInvariantViolation - an internal consistency fault (raised via panic).
//
// Quick ASCII example:
//
//	    A──4──B
//	     \    │
//	     10   3
//	       \  │
//	         C
//
//	g, _ := core.FromLinks([]core.Link{{"A", "B", 4}, {"B", "C", 3}, {"A", "C", 10}})
//	g.Len()           // 3
//	g.Cost("A", "C")  // 10, true
package core
