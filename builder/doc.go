// Package builder provides deterministic graph generators for core.Graph.
// They feed fixtures, benchmarks and the `skewmatch generate` command.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a graph, resolve options,
//     apply constructors in order.
//     – Constructor: func(g *core.Graph, cfg builderConfig) error.
//   - Topologies (each adds its own fresh vertices):
//     – Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid.
//     – RandomSparse (Erdős–Rényi), RandomRegular (stub matching).
//   - Options:
//     – WithSeed, WithRand: RNG for the stochastic constructors.
//   - Validation helpers:
//     – validateMin, validatePartition, validateProbability.
//
// Guarantees:
//
//   - Determinism: the same constructors, order and seed give identical
//     vertex ids, edge ids and adjacency order.
//   - Simple graphs only: no loops, no parallel edges (core policy).
//   - Fast-fail on meaningless option values via panics in option
//     constructors; constructors themselves return sentinel errors.
//
// Composing constructors yields disjoint unions: BuildGraph(nil, nil,
// Path(3), Cycle(4)) has vertices 0..2 forming a path and 3..6 forming a
// cycle.
package builder
