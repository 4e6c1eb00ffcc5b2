// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// weighted core.Graph with non-negative edge weights.
//
// In this module it serves as an independent oracle: on graphs without
// negative edges the Bellman-Ford table must agree with Dijkstra's distances
// vertex for vertex, which the verify command and the engine tests assert.
// With negative weights clamped to zero its distances bound the Bellman-Ford
// ones from above, and every predecessor edge it reports stays tight.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key binary heap.
//   - Space: O(V + E).
//
// Errors (sentinel):
//
//   - ErrEmptySource     source ID is empty.
//   - ErrNilGraph        graph pointer is nil.
//   - ErrUnweightedGraph graph was built without core.WithWeighted.
//   - ErrVertexNotFound  source vertex absent.
//   - ErrNegativeWeight  some edge weight is negative (detected before the search).
//   - ErrWeightOverflow  Σw of the graph does not fit below math.MaxInt64.
//
// Example:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist["C"], prev["C"])
package dijkstra
