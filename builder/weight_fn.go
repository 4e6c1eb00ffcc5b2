// SPDX-License-Identifier: MIT
// Package: relaxviz/builder
//
// weight_fn.go: integer edge-weight distributions.

package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn returns a WeightFn that always yields value.
// Complexity: O(1).
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in the closed
// interval [min, max]. Negative bounds are allowed.
// Panics if max < min. With a nil rng it yields min.
// Complexity: O(1).
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) int64 {
		if rng == nil || span == 1 {
			return min
		}
		return min + rng.Int63n(span)
	}
}
