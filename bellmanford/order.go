// SPDX-License-Identifier: MIT
//
// File: order.go
// Role: TraversalOrder, the fixed edge sequence examined in every round.

package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/relaxviz/core"
)

// TraversalOrder returns every edge of g exactly once: vertices are taken in
// sorted ID order rotated to begin at source, and each vertex contributes its
// outgoing edges sorted by destination ID.
//
// The result is deterministic for a given (g, source).
// Complexity: O(V log V + E log E).
func TraversalOrder(g *core.Graph, source string) ([]core.Edge, error) {
	if err := checkSource(g, source); err != nil {
		return nil, err
	}

	ids := g.Vertices()
	start := 0
	for i, id := range ids {
		if id == source {
			start = i
			break
		}
	}

	order := make([]core.Edge, 0, g.EdgeCount())
	for k := range ids {
		u := ids[(start+k)%len(ids)]
		out, err := g.Outgoing(u)
		if err != nil {
			return nil, fmt.Errorf("TraversalOrder: vertex %q: %w", u, err)
		}
		order = append(order, out...)
	}

	return order, nil
}

// checkSource validates the (g, source) pair shared by every entry point.
func checkSource(g *core.Graph, source string) error {
	if g == nil {
		return ErrNilGraph
	}
	if source == "" {
		return ErrEmptySource
	}
	if !g.HasVertex(source) {
		return fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}

	return nil
}

// checkOrder verifies that order is a permutation of g's edges with matching
// endpoints and weights.
func checkOrder(g *core.Graph, order []core.Edge) error {
	edges := g.Edges()
	if len(order) != len(edges) {
		return fmt.Errorf("%w: %d edges in order, %d in graph", ErrOrderMismatch, len(order), len(edges))
	}
	want := make(map[string]core.Edge, len(edges))
	for _, e := range edges {
		want[e.ID] = e
	}
	for i, e := range order {
		w, ok := want[e.ID]
		if !ok {
			return fmt.Errorf("%w: position %d: unknown or repeated edge %q", ErrOrderMismatch, i, e.ID)
		}
		if w != e {
			return fmt.Errorf("%w: position %d: edge %q differs from graph", ErrOrderMismatch, i, e.ID)
		}
		delete(want, e.ID)
	}

	return nil
}

// checkWeights bounds the total absolute weight so that no tentative
// distance can overflow. In one round a relaxation chain follows order
// positions forward, so it uses each edge at most once; after V-1 rounds and
// the final candidate every value stays within V·Σ|w| < Unreachable.
func checkWeights(order []core.Edge, vertices int) error {
	budget := (math.MaxInt64 - 1) / int64(max(vertices, 1))
	var sum int64
	for _, e := range order {
		w := e.Weight
		if w == math.MinInt64 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrWeightOverflow, e.From, e.To, w)
		}
		if w < 0 {
			w = -w
		}
		if w > budget-sum {
			return fmt.Errorf("%w: edge %s→%s weight=%d, Σ|w| limit %d for %d vertices",
				ErrWeightOverflow, e.From, e.To, e.Weight, budget, vertices)
		}
		sum += w
	}

	return nil
}
