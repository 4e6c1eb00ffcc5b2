// Package bellmanford implements a step-by-step Bellman-Ford engine for
// single-source shortest paths on small directed graphs with negative edges.
//
// The engine is built for animation: instead of returning only final
// distances, a Run yields one Event per observable step so a presentation
// layer can render the distance table after every edge examination.
//
// Traversal order:
//
//	TraversalOrder(g, source) sorts vertex IDs, rotates the list to start at
//	source, and appends each vertex's outgoing edges sorted by destination.
//	The same order is reused for every round of a run.
//
// State machine:
//
//	StateInit → StateRelaxing (rounds 1..V-1) → StateFinalCheck → StateDone
//	                    │ (ctx cancelled at any step)
//	                    └──────────────→ StateCancelled
//
// Outcomes:
//
//	OutcomeEarlyExit     – a round produced no update; relaxation converged.
//	OutcomeShortestPaths – all V-1 rounds ran and no edge still relaxes.
//	OutcomeNegativeCycle – an edge still relaxes after V-1 rounds; the first
//	                       such edge in traversal order is the culprit.
//
// Relaxation uses strict less-than: an equal-cost alternative never replaces
// a predecessor. Unreachable vertices (distance Unreachable) never relax their
// outgoing edges.
//
// Complexity:
//
//   - Time:  O(V·E) edge examinations, plus O(V) per event for table snapshots.
//   - Space: O(V + E).
//
// Errors (sentinel):
//
//   - ErrNilGraph       if the graph pointer is nil.
//   - ErrEmptySource    if the source ID is empty.
//   - ErrInvalidSource  if the source is not a vertex of the graph.
//   - ErrOrderMismatch  if a supplied order is not a permutation of the edges.
//   - ErrWeightOverflow if V·Σ|w| could overflow int64.
//   - ErrCancelled      if the context ends between steps or a Pacer fails.
//
// Example usage:
//
//	res, err := bellmanford.Solve(ctx, g, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Outcome, res.Table)
package bellmanford
