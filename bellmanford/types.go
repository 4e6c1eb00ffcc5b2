// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, State/Outcome/Event enums, distance Table and Options.

package bellmanford

import (
	"errors"
	"log/slog"
	"math"
	"strconv"

	"github.com/katalvlaran/relaxviz/core"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("bellmanford: source vertex ID is empty")

	// ErrInvalidSource indicates that the requested source is not a vertex
	// of the graph. The run is not started.
	ErrInvalidSource = errors.New("bellmanford: source vertex not in graph")

	// ErrOrderMismatch indicates a traversal order that is not a
	// permutation of the graph's edges.
	ErrOrderMismatch = errors.New("bellmanford: traversal order does not match graph edges")

	// ErrWeightOverflow indicates edge weights large enough that some
	// tentative distance could overflow int64.
	ErrWeightOverflow = errors.New("bellmanford: edge weights exceed the overflow-safe range")

	// ErrCancelled indicates the run's context ended at a suspension point.
	ErrCancelled = errors.New("bellmanford: run cancelled")
)

// Unreachable is the distance sentinel for vertices not (yet) reached.
const Unreachable int64 = math.MaxInt64

// State is the engine's position in the run state machine.
type State int

const (
	// StateInit: created, no event consumed yet.
	StateInit State = iota
	// StateRelaxing: inside rounds 1..V-1.
	StateRelaxing
	// StateFinalCheck: scanning for a still-relaxable edge.
	StateFinalCheck
	// StateDone: terminal event emitted; Outcome is final.
	StateDone
	// StateCancelled: the context ended before the run finished.
	StateCancelled
)

var stateNames = [...]string{"init", "relaxing", "final_check", "done", "cancelled"}

// String returns a lower_snake name for s.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
	return stateNames[s]
}

// Outcome classifies a finished run.
type Outcome int

const (
	// OutcomeNone: the run has not finished.
	OutcomeNone Outcome = iota
	// OutcomeShortestPaths: full V-1 rounds, no edge still relaxes.
	OutcomeShortestPaths
	// OutcomeEarlyExit: converged before the round budget ran out.
	OutcomeEarlyExit
	// OutcomeNegativeCycle: an edge still relaxes after V-1 rounds.
	OutcomeNegativeCycle
)

var outcomeNames = [...]string{"none", "shortest_paths", "early_exit", "negative_cycle"}

// String returns a lower_snake name for o.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "outcome(" + strconv.Itoa(int(o)) + ")"
	}
	return outcomeNames[o]
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// EventKind tags an Event.
type EventKind int

const (
	EventInitialized EventKind = iota
	EventRoundStarted
	EventEdgeExamined
	EventEarlyExit
	EventFinalCheckStarted
	EventNegativeCycle
	EventRunCompleted
)

var eventNames = [...]string{
	"initialized", "round_started", "edge_examined", "early_exit",
	"final_check_started", "negative_cycle", "run_completed",
}

// String returns a lower_snake name for k.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return "event(" + strconv.Itoa(int(k)) + ")"
	}
	return eventNames[k]
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Event is one observable step of a Run. Which fields are meaningful
// depends on Kind:
//
//	EventInitialized       Source, Table
//	EventRoundStarted      Round, TotalRounds
//	EventEdgeExamined      Round, Edge, Updated, Table
//	EventEarlyExit         Round (the round with no updates)
//	EventFinalCheckStarted Round (= TotalRounds+1)
//	EventNegativeCycle     Round, Edge (the culprit)
//	EventRunCompleted      Outcome, Table
type Event struct {
	Kind        EventKind  `json:"kind"`
	Source      string     `json:"source,omitempty"`
	Round       int        `json:"round,omitempty"`
	TotalRounds int        `json:"total_rounds,omitempty"`
	Edge        *core.Edge `json:"edge,omitempty"`
	Updated     bool       `json:"updated,omitempty"`
	Outcome     Outcome    `json:"outcome,omitempty"`
	Table       Table      `json:"table,omitempty"`
}

// Entry is one row of the distance table.
type Entry struct {
	ID        string `json:"id"`
	Dist      int64  `json:"dist"`
	Pred      string `json:"pred,omitempty"`
	Reachable bool   `json:"reachable"`
}

// Table is a snapshot of distances and predecessors sorted by vertex ID.
type Table []Entry

// Get returns the entry for id.
func (t Table) Get(id string) (Entry, bool) {
	for _, e := range t {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Path follows predecessors back from id and returns source..id.
// Returns nil when id is unreachable or the chain loops (negative cycle).
func (t Table) Path(id string) []string {
	var rev []string
	seen := make(map[string]bool, len(t))
	for cur := id; cur != ""; {
		e, ok := t.Get(cur)
		if !ok || !e.Reachable || seen[cur] {
			return nil
		}
		seen[cur] = true
		rev = append(rev, cur)
		cur = e.Pred
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// Options configures a Run.
type Options struct {
	Logger *slog.Logger
}

// Option represents a functional option for configuring a Run.
type Option func(*Options)

// WithLogger sets the logger used for per-step debug output. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("bellmanford: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns Options with slog.Default() as logger.
func DefaultOptions() Options {
	return Options{Logger: slog.Default()}
}
