// SPDX-License-Identifier: MIT
// Package: relaxviz/builder
//
// impl_negate.go: implementation of NegateEdges(count, weight, maxAttempts).
//
// Canonical model:
//   • Pick an edge uniformly (with replacement) from the insertion-ordered edge list.
//   • If its current weight is non-negative, overwrite it with weight(rng) and
//     count it; otherwise re-pick without consuming quota.
//
// Contract:
//   • count ≥ 0; count == 0 is a no-op.
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • count ≤ number of non-negative edges (else ErrConstructFailed).
//   • weight must yield negative values (else ErrOptionViolation).
//   • At most maxAttempts picks; exhaustion ⇒ ErrConstructFailed.
//   • Topology is never changed, only weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/relaxviz/core"
)

const methodNegateEdges = "NegateEdges"

// NegateEdges returns a Constructor that turns exactly count currently
// non-negative edges negative. A nil weight uses the configured fallback.
func NegateEdges(count int, weight WeightFn, maxAttempts int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if count < 0 {
			return fmt.Errorf("%s: count=%d < 0: %w", methodNegateEdges, count, ErrTooFewVertices)
		}
		if count == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodNegateEdges, ErrNeedRandSource)
		}

		edges := g.Edges()
		eligible := 0
		for _, e := range edges {
			if e.Weight >= 0 {
				eligible++
			}
		}
		if count > eligible {
			return fmt.Errorf("%s: count=%d > %d non-negative edges: %w", methodNegateEdges, count, eligible, ErrConstructFailed)
		}

		wfn := cfg.pickWeight(weight)
		var attempts int
		for done := 0; done < count; {
			if attempts >= maxAttempts {
				return fmt.Errorf("%s: %d/%d negated after %d attempts: %w",
					methodNegateEdges, done, count, attempts, ErrConstructFailed)
			}
			attempts++

			// Re-read: earlier picks may already have turned this edge negative.
			cur, err := g.GetEdge(edges[cfg.rng.Intn(len(edges))].ID)
			if err != nil {
				return fmt.Errorf("%s: GetEdge: %w", methodNegateEdges, err)
			}
			if cur.Weight < 0 {
				continue
			}

			w := wfn(cfg.rng)
			if w >= 0 {
				return fmt.Errorf("%s: weight %d is not negative: %w", methodNegateEdges, w, ErrOptionViolation)
			}
			if err = g.SetWeight(cur.ID, w); err != nil {
				return fmt.Errorf("%s: SetWeight(%s, %d): %w", methodNegateEdges, cur.ID, w, err)
			}
			done++
		}

		return nil
	}
}
