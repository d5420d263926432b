// Package builder provides deterministic graph fixtures for tests, benchmarks
// and the CLI `generate` command.
//
// A fixture is assembled by BuildGraph from one or more Constructors and a set
// of functional options:
//
//   - Topologies: Path, Cycle, Star, Complete, RandomSparse.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A".."Z"),
//     ExcelColumnIDFn ("A".."Z","AA",…), SymbolNumberIDFn(prefix) ("v0","v1",…).
//   - Edge-weight policies (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn. Negative weights are allowed.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs, edge order included.
//   - Constructors sharing vertex IDs compose: an already declared vertex is reused.
//   - Option constructors panic on meaningless input (nil functions, inverted
//     ranges); constructors themselves only return sentinel errors.
package builder
