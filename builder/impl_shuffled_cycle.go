// SPDX-License-Identifier: MIT
// Package: relaxviz/builder
//
// impl_shuffled_cycle.go: implementation of ShuffledCycle(n, weight, record).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices); a 2-cycle would be an anti-parallel pair.
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Draws one permutation perm = rng.Perm(n), then emits
//     id(perm[i]) → id(perm[(i+1)%n]) for i=0..n-1, drawing one weight per edge.
//   • record (optional) receives the permuted IDs after success.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the permutation.
//
// Determinism:
//   • Fixed seed ⇒ identical permutation and weights.

package builder

import (
	"fmt"

	"github.com/katalvlaran/relaxviz/core"
)

const (
	methodShuffledCycle = "ShuffledCycle"
	minShuffledCycle    = 3
)

// ShuffledCycle returns a Constructor that builds a random directed
// Hamiltonian cycle over n vertices. Every vertex ends with in- and
// out-degree 1, so the graph is strongly connected.
// A nil weight uses the configured fallback WeightFn.
func ShuffledCycle(n int, weight WeightFn, record func(perm []string)) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minShuffledCycle {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodShuffledCycle, n, minShuffledCycle, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodShuffledCycle, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodShuffledCycle, id, err)
			}
		}

		// Decide generation order once; the ring follows it.
		perm := cfg.rng.Perm(n)
		ids := make([]string, n)
		for i, p := range perm {
			ids[i] = cfg.idFn(p)
		}

		wfn := cfg.pickWeight(weight)
		for i := 0; i < n; i++ {
			u, v := ids[i], ids[(i+1)%n]
			w := wfn(cfg.rng)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodShuffledCycle, u, v, w, err)
			}
		}

		if record != nil {
			record(ids)
		}

		return nil
	}
}
