// SPDX-License-Identifier: MIT
// Package: relaxviz/builder
//
// impl_random_chords.go: implementation of RandomChords(total, weight, maxAttempts).
//
// Canonical model:
//   • Rejection sampling over ordered pairs (u,v) of existing vertices.
//   • A pair is rejected when u==v, u→v exists, or v→u exists.
//   • One weight is drawn per accepted pair, after acceptance.
//   • Stops as soon as EdgeCount() == total (no-op if already there).
//
// Contract:
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Graph must already hold ≥ 2 vertices (else ErrTooFewVertices).
//   • total ≤ n(n-1)/2 (else ErrConstructFailed): an oriented simple graph
//     cannot hold more edges than unordered pairs.
//   • At most maxAttempts samples; exhaustion ⇒ ErrConstructFailed.
//
// Complexity:
//   • Expected O(total) samples for sparse targets; bounded by maxAttempts.

package builder

import (
	"fmt"

	"github.com/katalvlaran/relaxviz/core"
)

const (
	methodRandomChords = "RandomChords"
	minChordVertices   = 2
)

// RandomChords returns a Constructor that adds random edges between existing
// vertices until the graph holds exactly total edges, never creating a
// duplicate or anti-parallel pair. A nil weight uses the configured fallback.
func RandomChords(total int, weight WeightFn, maxAttempts int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomChords, ErrNeedRandSource)
		}

		ids := g.Vertices()
		n := len(ids)
		if n < minChordVertices {
			return fmt.Errorf("%s: vertices=%d < min=%d: %w", methodRandomChords, n, minChordVertices, ErrTooFewVertices)
		}
		if limit := n * (n - 1) / 2; total > limit {
			return fmt.Errorf("%s: total=%d exceeds %d oriented pairs: %w", methodRandomChords, total, limit, ErrConstructFailed)
		}

		wfn := cfg.pickWeight(weight)
		var (
			u, v     string
			attempts int
		)
		for g.EdgeCount() < total {
			if attempts >= maxAttempts {
				return fmt.Errorf("%s: %d/%d edges after %d attempts: %w",
					methodRandomChords, g.EdgeCount(), total, attempts, ErrConstructFailed)
			}
			attempts++

			u = ids[cfg.rng.Intn(n)]
			v = ids[cfg.rng.Intn(n)]
			if u == v || g.HasEdge(u, v) || g.HasEdge(v, u) {
				continue
			}

			w := wfn(cfg.rng)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRandomChords, u, v, w, err)
			}
		}

		return nil
	}
}
