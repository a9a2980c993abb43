// Package builder generates deterministic conveyor topologies as plain
// junction/link lists, ready for core.NewGraph, core.FromLinks, or for
// writing out as a sample input file.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – Build(opts, cons...): resolves options, runs constructors in order,
//     returns a *Network.
//     – Network.Graph(): turns the result into an immutable *core.Graph.
//   - Topologies (Constructor implementations):
//     – Path(n), Cycle(n), Star(n), Grid(rows, cols), Complete(n),
//     RandomSparse(n, p).
//   - Junction naming schemes (IDFn): DefaultIDFn, SymbolIDFn,
//     ExcelColumnIDFn, SymbolNumberIDFn(prefix).
//   - Belt cost distributions (CostFn): DefaultCostFn, ConstantCostFn,
//     UniformCostFn.
//
// Guarantees:
//
//   - Determinism: same options, same seed and same constructor order ⇒
//     identical junction and link lists.
//   - Constructors never panic; they return sentinel errors wrapped with
//     method context. Option constructors panic on nonsense arguments.
//   - Composition: several constructors may share junction names (the
//     network keeps each name once), so a star can be attached to a grid.
package builder
