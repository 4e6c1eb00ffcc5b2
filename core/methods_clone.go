// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies of graph instances.
// Determinism:
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic on the clone.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices, edges and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	clone.weighted = g.weighted
	clone.rejectAntiParallel = g.rejectAntiParallel
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var id string
	for id = range g.vertices {
		clone.vertices[id] = &Vertex{ID: id}
		clone.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	var (
		eid string
		e   *Edge
	)
	for eid, e = range g.edges {
		ne := *e
		clone.edges[eid] = &ne
		ensureAdjacency(clone, e.From, e.To)
		clone.adjacencyList[e.From][e.To][eid] = struct{}{}
	}

	return clone
}
