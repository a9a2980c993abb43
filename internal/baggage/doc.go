// Package baggage routes every bag of a manifest to its target junction.
//
// A bag's target is the claim junction when its flight field carries the
// arrival tag, and otherwise the gate of its departing flight. Routing uses
// the dijkstra engine; one engine run per distinct entry junction is cached
// and shared by all bags entering there.
//
// Run never aborts on a single bag. Each bag gets an Outcome carrying either
// a route or the reason it has none, and the Report lists them in bag ID
// order.
package baggage
