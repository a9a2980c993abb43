// Package dijkstra implements Dijkstra's shortest-path algorithm on a core.Graph.
//
// Dijkstra computes the minimum-cost route from a single source junction to all
// other reachable junctions in a graph with non-negative connection costs.
// It processes junctions in order of increasing distance using a min-heap,
// relaxing connections and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each junction is extracted at most once as "settled".
//   - Each relaxation may push a new heap entry: up to E pushes.
//   - Space: O(V + E)
//
// Notes on implementation choices:
//
//   - All state is keyed by the graph's interned indices; names appear only in the Result API.
//   - The heap orders by (distance, index). Index order equals name order, so
//     equal-distance candidates are always settled alphabetically.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Every call allocates fresh state, so concurrent calls on one graph are safe.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/conveyor/core"
)

// Dijkstra computes shortest distances and predecessors from the source
// junction (Options.Source) to every junction reachable in g.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source string must be non-empty (ErrEmptySource).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain Source (ErrSourceNotFound).
//
// Negative costs need no check here: core.NewGraph rejects them.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph.
	src, ok := g.Index(cfg.Source)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, cfg.Source)
	}

	// 5) Prepare fresh per-run state.
	V := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 6) Seed and run.
	r.init(src)
	r.process()

	return &Result{g: g, source: src, dist: r.dist, prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only.
	options Options     // Configuration options (thresholds).
	dist    []int64     // index → current best distance from Source.
	prev    []int       // index → predecessor on the best known route.
	visited []bool      // index → distance finalized.
	pq      nodePQ      // Min-heap keyed by (dist, index).
}

// init sets every distance to unreached, clears predecessors, and pushes the source at distance 0.
func (r *runner) init(src int) {
	for i := range r.dist {
		r.dist[i] = unreached
		r.prev[i] = noPredecessor
	}
	r.dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: src, dist: 0})
}

// process repeatedly settles the closest unsettled junction and relaxes its
// outgoing connections until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest (dist, index) item.
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.idx

		// 2) Skip stale entries of junctions settled earlier.
		if r.visited[u] {
			continue
		}

		// 3) Nothing beyond the cap is explored.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Settle u and relax its arcs.
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each arc leaving u and improves the distance of unsettled
// neighbors. Only a strictly shorter candidate replaces the current best, so
// on equal cost the predecessor settled first is kept.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, a := range r.g.Neighbors(u) {
		v := a.To
		if r.visited[v] {
			continue
		}

		// Impassable connection.
		if a.Cost >= r.options.InfEdgeThreshold {
			continue
		}

		// Saturating add: a candidate that would overflow can never win.
		if a.Cost > unreached-du {
			continue
		}
		newDist := du + a.Cost

		if newDist > r.options.MaxDistance {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{idx: v, dist: newDist})
	}
}

// nodeItem is a heap entry: a junction index and the distance it was pushed with.
type nodeItem struct {
	idx  int
	dist int64
}

// nodePQ is a min-heap of nodeItem ordered by (dist, idx) ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by index for a deterministic tie-break.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
