// Package builder provides deterministic, seedable “functional-options” style
// constructors for the random demo graphs relaxviz animates.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:      create a core.Graph and apply Constructors in order.
//     – Constructor:     a closure mutating the graph under a resolved builderConfig.
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – WithRand, WithIDScheme/WithAlphabet.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:     decimal strings ("0","1",…).
//     – AlphabetIDFn:    runes of a caller-supplied alphabet ("ABCDEF").
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn, UniformWeightFn (closed integer interval, may be negative).
//   - Topology constructors:
//     – ShuffledCycle:   random Hamiltonian cycle over n vertices.
//     – RandomChords:    random extra edges up to a target count, no duplicates
//     or anti-parallel pairs.
//     – NegateEdges:     turn exactly k non-negative edges negative.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Bounded work: every sampling loop has an attempt budget and returns
//     ErrConstructFailed when it is exhausted.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     constructors themselves never panic.
package builder
