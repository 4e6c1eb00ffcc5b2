// Package generator implements the demo GraphGenerator: a random, strongly
// connected, directed weighted graph with a controlled number of
// negative-weight edges.
//
// Generation runs three builder constructors in order on one seeded RNG:
//
//  1. builder.ShuffledCycle   – permute the alphabet and close it into a ring
//     with weights in CycleWeights (default [1,99]).
//  2. builder.RandomChords    – add random edges with weights in ExtraWeights
//     (default [0,99]) until the target drawn from Edges (default [10,13])
//     is reached, skipping duplicates and reverses.
//  3. builder.NegateEdges     – turn exactly k non-negative edges negative,
//     k drawn from Negatives (default [1,3]), weights in NegativeWeights
//     (default [-10,-1]).
//
// Every sampling loop is bounded by Params.MaxAttempts. Impossible targets are
// rejected up front by Params.Validate, and a loop that still runs out of
// attempts surfaces as ErrConstraintUnsatisfiable instead of spinning.
//
// Example:
//
//	g, err := generator.Generate(generator.DefaultParams(), generator.WithSeed(7))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(g.Cycle, g.EdgeCount())
package generator
