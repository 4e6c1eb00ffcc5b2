// SPDX-License-Identifier: MIT
//
// File: solve.go
// Role: Solve, the one-shot convenience over TraversalOrder + NewRun.

package bellmanford

import (
	"context"

	"github.com/katalvlaran/relaxviz/core"
)

// Result is the full record of a finished run.
type Result struct {
	Source  string     `json:"source"`
	Outcome Outcome    `json:"outcome"`
	Table   Table      `json:"table"`
	Culprit *core.Edge `json:"culprit,omitempty"`
	Rounds  int        `json:"rounds"`
	Events  []Event    `json:"events"`
}

// Solve builds the traversal order for source, runs it to completion and
// returns every event produced along the way.
func Solve(ctx context.Context, g *core.Graph, source string, opts ...Option) (*Result, error) {
	order, err := TraversalOrder(g, source)
	if err != nil {
		return nil, err
	}
	r, err := NewRun(g, source, order, opts...)
	if err != nil {
		return nil, err
	}

	return Collect(ctx, r)
}

// Collect consumes the remaining events of r into a Result.
func Collect(ctx context.Context, r *Run) (*Result, error) {
	return Drive(ctx, r, nil, NoDelay{})
}
