// Package conveyor routes bags through an airport conveyor network along the
// cheapest chain of belts.
//
// What is conveyor?
//
//	A small, deterministic routing stack:
//		• core      immutable junction graph with interned, name-ordered indices
//		• dijkstra  single-source cheapest costs and route reconstruction
//		• bfs       hop-count traversal and connected components
//		• builder   reproducible synthetic networks for tests and benchmarks
//
// The conveyor command (cmd/conveyor) reads a manifest with three sections
// (belts, departing flights, bags) and prints one line per bag:
//
//	0001 : 11 Concourse_A_Ticketing A5 A1
//	0005 : 12 A7 A8 A9 A10 A5 BaggageClaim
//	0006 : no route (unknown flight UA99)
//
// Guarantees:
//
//   - A built graph never changes; every query is safe for concurrent readers.
//   - Equal-cost ties are broken by junction name, so output is reproducible.
//   - A bag that cannot be routed gets an explicit reason, never a crash.
//
// Quick example:
//
//	    A───4───B
//	    │       │
//	    10      3
//	    │       │
//	    └───C───┘
//
//	route A→C costs 7 via B.
//
//	go install github.com/katalvlaran/conveyor/cmd/conveyor@latest
package conveyor
