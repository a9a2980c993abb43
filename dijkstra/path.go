package dijkstra

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/conveyor/core"
)

// Leg is one hop of a Route.
type Leg struct {
	From string
	To   string
	Cost int64
}

// Route is the ordered sequence of junctions from a source to a destination
// along a shortest path, with its total cost.
type Route struct {
	Junctions []string
	Cost      int64
	Legs      []Leg
}

// String renders the route as "<cost> <j1> <j2> ... <jN>".
func (rt *Route) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(rt.Cost, 10))
	for _, j := range rt.Junctions {
		b.WriteByte(' ')
		b.WriteString(j)
	}

	return b.String()
}

// PathTo reconstructs the route from the Result's source to destination.
func (r *Result) PathTo(destination string) (*Route, error) {
	return RouteBetween(r, r.Source(), destination)
}

// RouteBetween walks the predecessor links of res backwards from destination
// to source and returns the route in source-to-destination order.
//
// Errors:
//   - ErrSourceMismatch:   source is not the junction res was computed from.
//   - ErrJunctionNotFound: destination is not in the graph.
//   - ErrUnreachable:      destination has no computed distance.
//
// source == destination yields a single-junction route of cost 0.
//
// Leg costs are read back from the graph with core.MustCost. A predecessor
// chain that does not end at source within V steps, or legs that do not sum
// to the computed distance, panic with *core.InvariantViolation.
//
// Complexity: O(L · deg) where L is the route length.
func RouteBetween(res *Result, source, destination string) (*Route, error) {
	g := res.g
	if source != res.Source() {
		return nil, fmt.Errorf("%w: computed from %q, asked for %q", ErrSourceMismatch, res.Source(), source)
	}
	dst, ok := g.Index(destination)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrJunctionNotFound, destination)
	}
	if res.dist[dst] == unreached {
		return nil, fmt.Errorf("%w: %s → %s", ErrUnreachable, source, destination)
	}

	// 1) Collect indices destination → source.
	chain := []int{dst}
	for cur := dst; cur != res.source; {
		cur = res.prev[cur]
		if cur == noPredecessor || len(chain) > g.Len() {
			panic(&core.InvariantViolation{
				Op:     "RouteBetween",
				Detail: fmt.Sprintf("predecessor chain from %s does not reach %s", destination, source),
			})
		}
		chain = append(chain, cur)
	}

	// 2) Reverse into source → destination order and price each leg.
	n := len(chain)
	route := &Route{
		Junctions: make([]string, n),
		Cost:      res.dist[dst],
		Legs:      make([]Leg, 0, n-1),
	}
	var sum int64
	for i := 0; i < n; i++ {
		idx := chain[n-1-i]
		route.Junctions[i] = g.Name(idx)
		if i == 0 {
			continue
		}
		from := chain[n-i]
		c := g.MustCost(from, idx)
		sum += c
		route.Legs = append(route.Legs, Leg{From: g.Name(from), To: g.Name(idx), Cost: c})
	}
	if sum != route.Cost {
		panic(&core.InvariantViolation{
			Op:     "RouteBetween",
			Detail: fmt.Sprintf("legs sum to %d, distance is %d", sum, route.Cost),
		})
	}

	return route, nil
}
