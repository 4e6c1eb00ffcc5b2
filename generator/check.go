// SPDX-License-Identifier: MIT
//
// File: check.go
// Role: post-hoc invariant checks for generated graphs.

package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/relaxviz/bfs"
)

// ErrInvariantViolated is returned by Check for every broken invariant.
var ErrInvariantViolated = errors.New("generator: graph invariant violated")

// Check verifies that g satisfies every guarantee Generate makes for p:
// a weighted graph that rejects anti-parallel pairs, edge count in range and equal to Target, no self-loops, duplicates or
// anti-parallel pairs, every vertex with out-degree ≥ 1, the Cycle closes
// over all vertices, every vertex reaches every other, and exactly Negatives
// edges carry negative weight.
// All violations are joined into one error.
func Check(g *Graph, p Params) error {
	if g == nil || g.Graph == nil {
		return fmt.Errorf("%w: nil graph", ErrInvariantViolated)
	}

	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvariantViolated, fmt.Sprintf(format, args...)))
	}

	if !g.Weighted() || g.AntiParallel() {
		fail("graph must be weighted and reject anti-parallel pairs")
	}
	if g.VertexCount() != p.NodeCount {
		fail("vertices=%d, want %d", g.VertexCount(), p.NodeCount)
	}

	edges := g.Edges()
	if !p.Edges.Contains(len(edges)) {
		fail("edges=%d outside %s", len(edges), p.Edges)
	}
	if len(edges) != g.Target {
		fail("edges=%d, drawn target %d", len(edges), g.Target)
	}

	type pair struct{ u, v string }
	seen := make(map[pair]bool, len(edges))
	negatives := 0
	for _, e := range edges {
		if e.From == e.To {
			fail("self-loop on %s", e.From)
		}
		if seen[pair{e.From, e.To}] {
			fail("duplicate edge %s→%s", e.From, e.To)
		}
		if seen[pair{e.To, e.From}] {
			fail("anti-parallel pair %s↔%s", e.From, e.To)
		}
		seen[pair{e.From, e.To}] = true
		if e.Weight < 0 {
			negatives++
		}
	}
	if negatives != g.Negatives || !p.Negatives.Contains(negatives) {
		fail("negative edges=%d, drawn %d in %s", negatives, g.Negatives, p.Negatives)
	}

	for _, id := range g.Vertices() {
		if _, out, err := g.Degree(id); err != nil || out < 1 {
			fail("vertex %s has out-degree %d", id, out)
		}
	}

	if len(g.Cycle) != g.VertexCount() {
		fail("cycle covers %d of %d vertices", len(g.Cycle), g.VertexCount())
	}
	onCycle := make(map[string]bool, len(g.Cycle))
	for i, u := range g.Cycle {
		v := g.Cycle[(i+1)%len(g.Cycle)]
		if !g.HasEdge(u, v) {
			fail("cycle edge %s→%s missing", u, v)
		}
		if onCycle[u] {
			fail("cycle revisits %s", u)
		}
		onCycle[u] = true
	}

	if ok, err := bfs.StronglyConnected(g.Graph); err != nil || !ok {
		fail("not strongly connected (%v)", err)
	}

	return errors.Join(errs...)
}
