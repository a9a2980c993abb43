// Package dijkstra provides the single-source shortest-path engine and the
// path reconstructor used to route bags through a conveyor network.
//
// Overview:
//
//   - Dijkstra computes, from one source junction, the minimum total cost and
//     the predecessor of every reachable junction in O((V + E) log V).
//   - RouteBetween turns a Result into an ordered Route with per-leg costs.
//
// Determinism:
//
//   - Junctions with equal tentative distance are settled in name order,
//     because the heap is keyed by (distance, interned index) and core.Graph
//     interns names in ascending order. Repeated runs from the same source
//     produce identical distances, predecessors and routes.
//   - Relaxation uses a strict "<", so among equal-cost routes the one whose
//     last hop leaves the alphabetically-first settled junction wins.
//
// Key features:
//
//   - MaxDistance: stops exploration beyond a distance cap.
//   - InfEdgeThreshold: treats any connection with cost ≥ threshold as impassable.
//   - Fresh state per call: a Result is immutable and shareable, and two
//     goroutines may run Dijkstra on the same graph at the same time.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (*Result, error)
//	func RouteBetween(res *Result, source, destination string) (*Route, error)
//	func (r *Result) PathTo(destination string) (*Route, error)
//
// Unreached junctions have no distance: Result.Distance reports ok == false
// and RouteBetween returns ErrUnreachable. Nothing is ever reported as an
// "infinite" number.
//
// Invariant violations (a predecessor chain that does not lead back to the
// source, or a leg with no backing connection) are programming faults and
// panic with *core.InvariantViolation rather than returning an error.
//
// Example usage:
//
//	res, err := dijkstra.Dijkstra(g, dijkstra.Source("Concourse_A_Ticketing"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, err := res.PathTo("A1")
//	switch {
//	case errors.Is(err, dijkstra.ErrUnreachable):
//	    fmt.Println("no route")
//	case err == nil:
//	    fmt.Println(route) // 11 Concourse_A_Ticketing A5 A1
//	}
package dijkstra
