// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors and functional options for Dijkstra.

package dijkstra

import "errors"

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrWeightOverflow indicates that the total edge weight does not fit in int64.
	ErrWeightOverflow = errors.New("dijkstra: total edge weight overflows int64")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source     – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath – if true, return the predecessor map; otherwise prev is nil.
type Options struct {
	Source     string
	ReturnPath bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options for source without a predecessor map.
func DefaultOptions(source string) Options {
	return Options{Source: source}
}
