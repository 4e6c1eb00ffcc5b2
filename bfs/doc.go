// Package bfs walks a core.Graph breadth-first along edge direction and
// reports hop counts and visit order.
//
// Edge weights are ignored: BFS answers "which vertices can the source reach
// and in how many hops", which is exactly the question behind the Reachable
// column of a Bellman-Ford distance table. The generator uses it to prove that
// every generated graph is strongly connected, and `relaxviz verify` uses it
// to cross-check the Reachable column of every finished run.
//
// Neighbors are expanded in core.Graph.NeighborIDs order (sorted, one entry
// per destination), so Order is deterministic for a given graph.
//
// Complexity: O(V + E log d) time, O(V) memory.
//
// Errors:
//   - ErrGraphNil             nil graph.
//   - ErrStartVertexNotFound  start ID absent.
//   - ctx.Err()               cancellation observed between dequeues.
package bfs
