// Package bfs implements breadth-first traversal of a core.Graph.
//
// What:
//
//   - BFS visits junctions in non-decreasing hop count from a start junction.
//   - Neighbors are expanded in adjacency (construction) order, so traversal
//     is deterministic for a given graph.
//   - Components and ComponentIndex label weakly connected components; the
//     baggage router uses them to answer "no route" without running Dijkstra.
//
// Why:
//
//   - Hop counts and reachability are cheap structural checks over a conveyor
//     network; `conveyor -check` prints both before any routing happens.
//
// Options:
//
//   - WithContext(ctx)        cancellation, checked once per dequeue
//   - WithMaxDepth(d)         stop expanding beyond depth d (0 = unlimited)
//   - WithFilterNeighbor(fn)  skip connections for which fn returns false
//   - WithOnVisit(fn)         hook per visited junction; an error aborts
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors:
//
//   - ErrGraphNil            nil graph
//   - ErrStartVertexNotFound unknown start junction
//   - ErrOptionViolation     invalid option (e.g. negative MaxDepth)
package bfs
