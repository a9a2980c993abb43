package bfs

import "github.com/katalvlaran/conveyor/core"

// ComponentIndex labels every junction of g with the id of its weakly
// connected component. ids[i] is the component of junction index i; ids are
// dense, start at 0, and are assigned in ascending order of each component's
// smallest junction index (which is also its smallest name).
//
// Connection direction is ignored, so a graph built from bidirectional links
// yields its ordinary connected components.
//
// Time:   O(V + E).
// Memory: O(V + E) for the undirected view and the queue.
func ComponentIndex(g *core.Graph) []int {
	if g == nil {
		return nil
	}
	n := g.Len()
	undirected := make([][]int, n)
	for i := 0; i < n; i++ {
		for _, a := range g.Neighbors(i) {
			undirected[i] = append(undirected[i], a.To)
			undirected[a.To] = append(undirected[a.To], i)
		}
	}

	ids := make([]int, n)
	for i := range ids {
		ids[i] = -1
	}
	next := 0
	for i0 := 0; i0 < n; i0++ {
		if ids[i0] >= 0 {
			continue
		}
		queue := []int{i0}
		ids[i0] = next
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, v := range undirected[u] {
				if ids[v] < 0 {
					ids[v] = next
					queue = append(queue, v)
				}
			}
		}
		next++
	}

	return ids
}

// Components groups junction names by weakly connected component.
// Each component lists its names in ascending order; components are ordered
// by their first name. An isolated junction forms its own component.
func Components(g *core.Graph) [][]string {
	ids := ComponentIndex(g)
	if ids == nil {
		return nil
	}
	var comps [][]string
	for i, id := range ids {
		if id == len(comps) {
			comps = append(comps, nil)
		}
		comps[id] = append(comps[id], g.Name(i))
	}

	return comps
}

// SameComponent reports whether a and b are connected ignoring direction.
// Unknown names are never connected.
func SameComponent(ids []int, g *core.Graph, a, b string) bool {
	ia, okA := g.Index(a)
	ib, okB := g.Index(b)
	if !okA || !okB || ia >= len(ids) || ib >= len(ids) {
		return false
	}

	return ids[ia] == ids[ib]
}
