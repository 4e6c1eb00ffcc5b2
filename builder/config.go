// SPDX-License-Identifier: MIT
// Package: relaxviz/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn     = DefaultIDFn        ("0","1","2",...)
//   • rng      = nil                (stochastic constructors return ErrNeedRandSource)
//   • weightFn = ConstantWeightFn(defaultConstWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Fallback weight generator for constructors given a nil WeightFn.
	weightFn WeightFn
}

// defaultConstWeight is the edge weight used when no WeightFn is configured.
const defaultConstWeight = int64(1)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: ConstantWeightFn(defaultConstWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// pickWeight returns fn if set, otherwise the configured fallback.
func (c builderConfig) pickWeight(fn WeightFn) WeightFn {
	if fn != nil {
		return fn
	}

	return c.weightFn
}
