// Package core provides the thread-safe, in-memory directed Graph that every
// other relaxviz package works on.
//
// The Graph G = (V,E) is always directed and simple: self-loops and parallel
// edges are rejected. Construction-time flags narrow what AddEdge accepts:
//
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Anti-parallel pairs a→b / b→a (rejected by WithoutAntiParallel)
//
// Storage:
//
//	adjacencyList[from][to][edgeID] = struct{}{}
//
// gives O(1) membership, insertion and weight updates. Edge IDs are generated
// atomically ("e1", "e2", …) so Edges() has a stable insertion order.
//
// Locking: muVert guards the vertex catalog and the configuration flags,
// muEdgeAdj guards the edge catalog and adjacency. Lock order is always
// muVert -> muEdgeAdj.
//
// Determinism:
//
//   - Vertices() is sorted lexicographically.
//   - Edges() is sorted by insertion (edge ID sequence).
//   - Outgoing(id) is sorted by destination, then edge ID.
//
// Errors are package sentinels; callers branch with errors.Is:
//
//	ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight,
//	ErrLoopNotAllowed, ErrMultiEdgeNotAllowed, ErrAntiParallelNotAllowed.
//
// Example:
//
//	g := core.NewGraph(core.WithWeighted(), core.WithoutAntiParallel())
//	_, _ = g.AddEdge("A", "B", 4)
//	_, err := g.AddEdge("B", "A", 1) // errors.Is(err, core.ErrAntiParallelNotAllowed)
package core
