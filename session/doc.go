// Package session owns the mutable state of one visualizer: the current
// generated graph, the chosen source, its traversal order and at most one
// active run.
//
// A Session is safe for concurrent use. Run blocks for the duration of the
// run; Status, Cancel, Generate and Reset may be called from other
// goroutines meanwhile. Generate and Reset cancel an in-flight run.
package session
