// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters.

package core

// Weighted reports whether non-zero weights are permitted.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
// Complexity: O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// AntiParallel reports whether b→a may coexist with a→b.
// Complexity: O(1).
func (g *Graph) AntiParallel() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return !g.rejectAntiParallel
}
