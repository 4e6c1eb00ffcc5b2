// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: options, sentinel errors and the traversal result.

package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds the tunables of one traversal.
type Options struct {
	// Ctx is checked before every dequeue.
	Ctx context.Context
}

// DefaultOptions returns a background context.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// Result holds the outcome of a traversal:
//   - Order: vertices in visit sequence, start first.
//   - Hops: edge count of the shortest directed walk from the start.
type Result struct {
	Start string
	Order []string
	Hops  map[string]int
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Hops[id]

	return ok
}
