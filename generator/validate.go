// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: configuration-time feasibility checks for Params.

package generator

import (
	"errors"
	"fmt"
)

const minNodeCount = 3

// Validate reports every reason p cannot produce a graph, joined into one
// error that matches ErrConstraintUnsatisfiable. A nil return guarantees that
// Generate can only fail by running out of attempts.
func (p Params) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrConstraintUnsatisfiable, fmt.Sprintf(format, args...)))
	}

	n := p.NodeCount
	if n < minNodeCount {
		// A 2-node ring is itself an anti-parallel pair.
		fail("node_count=%d < %d", n, minNodeCount)
	}

	runes := []rune(p.Alphabet)
	if len(runes) < n {
		fail("alphabet %q has %d symbols, need %d", p.Alphabet, len(runes), n)
	}
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		if seen[r] {
			fail("alphabet %q repeats %q", p.Alphabet, r)
			break
		}
		seen[r] = true
	}

	for _, nr := range []struct {
		name string
		r    Range
	}{
		{"edges", p.Edges}, {"negatives", p.Negatives}, {"cycle_weights", p.CycleWeights},
		{"extra_weights", p.ExtraWeights}, {"negative_weights", p.NegativeWeights},
	} {
		if nr.r.Min > nr.r.Max {
			fail("%s %s is inverted", nr.name, nr.r)
		}
	}

	if p.Edges.Min < n {
		fail("edges %s below the %d ring edges", p.Edges, n)
	}
	if limit := n * (n - 1) / 2; p.Edges.Max > limit {
		fail("edges %s above the %d oriented pairs of %d nodes", p.Edges, limit, n)
	}
	if p.Negatives.Min < 0 {
		fail("negatives %s below zero", p.Negatives)
	}
	if p.Negatives.Max > p.Edges.Min {
		fail("negatives %s exceed the smallest edge count %d", p.Negatives, p.Edges.Min)
	}
	if p.CycleWeights.Min < 1 {
		fail("cycle_weights %s must be positive", p.CycleWeights)
	}
	if p.ExtraWeights.Min < 0 {
		fail("extra_weights %s must be non-negative", p.ExtraWeights)
	}
	if p.NegativeWeights.Max >= 0 {
		fail("negative_weights %s must be negative", p.NegativeWeights)
	}
	if p.MaxAttempts < 1 {
		fail("max_attempts=%d < 1", p.MaxAttempts)
	}

	return errors.Join(errs...)
}
