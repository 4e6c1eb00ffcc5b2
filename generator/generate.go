// SPDX-License-Identifier: MIT
//
// File: generate.go
// Role: Generate composes the builder constructors into one seeded generation.

package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/relaxviz/builder"
	"github.com/katalvlaran/relaxviz/core"
)

// Option customizes a single Generate call.
type Option func(*options)

type options struct {
	seed    int64
	seeded  bool
	logger  *slog.Logger
	nowSeed func() int64
}

// WithSeed fixes the RNG seed so the generation is reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger attaches a logger for debug output. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// graphOptions is the mode every generated graph uses.
var graphOptions = []core.GraphOption{core.WithWeighted(), core.WithoutAntiParallel()}

// Generate builds one random demo graph from p.
//
// Steps:
//  1. Validate p (ErrConstraintUnsatisfiable on impossible targets).
//  2. Resolve the seed (WithSeed, otherwise wall clock) and create the RNG.
//  3. Draw the edge target and the negative count from their ranges.
//  4. Run ShuffledCycle → RandomChords → NegateEdges on that RNG.
//
// The returned Graph records Seed, Target and Negatives so any result can be
// regenerated with WithSeed(g.Seed).
func Generate(p Params, opts ...Option) (*Graph, error) {
	o := options{logger: slog.Default(), nowSeed: func() int64 { return time.Now().UnixNano() }}
	for _, opt := range opts {
		opt(&o)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !o.seeded {
		o.seed = o.nowSeed()
	}

	rng := rand.New(rand.NewSource(o.seed))
	target := drawInt(rng, p.Edges)
	negatives := drawInt(rng, p.Negatives)

	out := &Graph{Seed: o.seed, Target: target, Negatives: negatives}
	g, err := builder.BuildGraph(graphOptions,
		[]builder.BuilderOption{builder.WithRand(rng), builder.WithAlphabet(p.Alphabet)},
		builder.ShuffledCycle(p.NodeCount, uniform(p.CycleWeights), func(perm []string) { out.Cycle = perm }),
		builder.RandomChords(target, uniform(p.ExtraWeights), p.MaxAttempts),
		builder.NegateEdges(negatives, uniform(p.NegativeWeights), p.MaxAttempts),
	)
	if err != nil {
		if errors.Is(err, builder.ErrConstructFailed) {
			return nil, fmt.Errorf("%w: seed=%d: %w", ErrConstraintUnsatisfiable, o.seed, err)
		}
		return nil, fmt.Errorf("generator: seed=%d: %w", o.seed, err)
	}
	out.Graph = g

	o.logger.Debug("graph generated",
		slog.Int64("seed", o.seed),
		slog.Int("edges", target),
		slog.Int("negatives", negatives),
		slog.Any("cycle", out.Cycle))

	return out, nil
}

// drawInt samples uniformly from the closed interval r.
func drawInt(rng *rand.Rand, r Range) int {
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

func uniform(r Range) builder.WeightFn {
	return builder.UniformWeightFn(int64(r.Min), int64(r.Max))
}
