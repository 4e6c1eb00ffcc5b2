// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Outgoing-edge queries and adjacency bookkeeping.

package core

import "sort"

// Outgoing returns value copies of every edge leaving id, sorted by
// destination ID and then by edge sequence.
// Returns ErrEmptyVertexID or ErrVertexNotFound.
// Complexity: O(d log d) where d = out-degree.
func (g *Graph) Outgoing(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge, 0, len(g.adjacencyList[id]))
	for _, bucket := range g.adjacencyList[id] {
		for eid := range bucket {
			out = append(out, *g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}
		return edgeSeq(out[i].ID) < edgeSeq(out[j].ID)
	})

	return out, nil
}

// NeighborIDs returns the sorted, de-duplicated destinations reachable from
// id by a single edge.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Outgoing(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for i, e := range edges {
		if i > 0 && edges[i-1].To == e.To {
			continue
		}
		ids = append(ids, e.To)
	}

	return ids, nil
}

// ensureAdjacency makes sure adjacencyList[from][to] exists.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}
