// Package relaxviz is the engine behind a step-by-step Bellman-Ford
// visualizer: it generates small random directed graphs, fixes the order in
// which their edges are relaxed, and runs the relaxation one observable event
// at a time.
//
// What is inside
//
//	core/        – thread-safe directed weighted Graph (vertices, edges, adjacency)
//	builder/     – deterministic graph constructors (ring, chords, negation)
//	generator/   – demo-graph generation under node/edge/negative-count bounds
//	bellmanford/ – traversal order, resumable Run state machine, Drive, Solve
//	bfs/         – directed reachability and strong-connectivity checks
//	dijkstra/    – non-negative shortest paths, used as a cross-check oracle
//	session/     – one graph, one source, at most one active run
//	render/      – text transcript and distance tables
//	cmd/relaxviz – CLI: generate, order, run, verify, serve
//
// Quick start
//
//	g, _ := generator.Generate(generator.DefaultParams(), generator.WithSeed(42))
//	res, _ := bellmanford.Solve(ctx, g.Graph, g.DefaultSource())
//	fmt.Println(res.Outcome)
//
// A Run can also be advanced manually with Next, or driven with an Observer
// and a Pacer so that a UI can redraw between edge examinations.
package relaxviz
