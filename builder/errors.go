// SPDX-License-Identifier: MIT
// Package: relaxviz/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` with the method name prefix.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric size parameter is smaller than
// the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted its attempt budget
// or that the requested topology cannot exist under the graph's mode flags.
// Usage: if errors.Is(err, ErrConstructFailed) { /* relax targets or reseed */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a weight generator produced a value outside
// the domain the constructor requires (e.g. a non-negative "negative" weight).
var ErrOptionViolation = errors.New("builder: invalid option value")
