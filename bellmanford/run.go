// SPDX-License-Identifier: MIT
//
// File: run.go
// Role: Run, the pull-style step iterator over one Bellman-Ford execution.

package bellmanford

import (
	"context"
	"fmt"
	"iter"

	"github.com/katalvlaran/relaxviz/core"
)

// cursor is the position of the next event to produce.
type cursor int

const (
	curInit cursor = iota
	curRoundStart
	curEdge
	curRoundEnd
	curFinalCheck
	curNegativeCycle
	curComplete
	curExhausted
)

// Run holds the mutable state for a single Bellman-Ford execution.
// A Run is not safe for concurrent use; one goroutine drives it.
type Run struct {
	g       *core.Graph       // The input graph; read-only within a run.
	source  string            // Source vertex ID.
	order   []core.Edge       // Edge sequence reused by every round.
	ids     []string          // Sorted vertex IDs; fixes the table row order.
	options Options           // Logger and friends.
	dist    map[string]int64  // Maps vertex ID → current best distance from source.
	prev    map[string]string // Maps vertex ID → predecessor on the best path.

	cur     cursor
	state   State
	outcome Outcome
	total   int        // Round budget: V-1.
	round   int        // Current (or last started) round, 1-based.
	pos     int        // Next index into order within the current round.
	updated bool       // Any relaxation in the current round.
	culprit *core.Edge // First still-relaxable edge of the final check.
	err     error      // Sticky cancellation error.
}

// NewRun validates its inputs and returns a Run positioned before its first
// event. order must be a permutation of g's edges (normally the result of
// TraversalOrder); it is copied.
//
// Errors: ErrNilGraph, ErrEmptySource, ErrInvalidSource, ErrOrderMismatch,
// ErrWeightOverflow.
func NewRun(g *core.Graph, source string, order []core.Edge, opts ...Option) (*Run, error) {
	// 1) Validate graph and source.
	if err := checkSource(g, source); err != nil {
		return nil, err
	}

	// 2) Validate order against the graph's edge set.
	if err := checkOrder(g, order); err != nil {
		return nil, err
	}

	// 3) Reject weights whose sums could overflow int64.
	if err := checkWeights(order, g.VertexCount()); err != nil {
		return nil, err
	}

	// 4) Apply options over defaults.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ids := g.Vertices()
	r := &Run{
		g:       g,
		source:  source,
		order:   append([]core.Edge(nil), order...),
		ids:     ids,
		options: o,
		dist:    make(map[string]int64, len(ids)),
		prev:    make(map[string]string, len(ids)),
		total:   len(ids) - 1,
	}

	return r, nil
}

// Source returns the run's source vertex ID.
func (r *Run) Source() string { return r.source }

// Order returns a copy of the edge sequence used by every round.
func (r *Run) Order() []core.Edge { return append([]core.Edge(nil), r.order...) }

// State returns the current state machine position.
func (r *Run) State() State { return r.state }

// Outcome returns the run's outcome, or OutcomeNone before completion.
func (r *Run) Outcome() Outcome {
	if r.state != StateDone {
		return OutcomeNone
	}
	return r.outcome
}

// Round returns the current or last started round (0 before the first).
func (r *Run) Round() int { return r.round }

// TotalRounds returns the round budget V-1.
func (r *Run) TotalRounds() int { return r.total }

// Culprit returns the edge that proved a negative cycle, if any.
func (r *Run) Culprit() (core.Edge, bool) {
	if r.culprit == nil {
		return core.Edge{}, false
	}
	return *r.culprit, true
}

// Table returns a snapshot of the current distances and predecessors.
// Before the first event every vertex is unreachable.
func (r *Run) Table() Table {
	t := make(Table, len(r.ids))
	for i, id := range r.ids {
		d, ok := r.dist[id]
		if !ok {
			d = Unreachable
		}
		t[i] = Entry{ID: id, Dist: d, Pred: r.prev[id], Reachable: d != Unreachable}
	}
	return t
}

// Err returns the sticky cancellation error, if any.
func (r *Run) Err() error { return r.err }

// Reset rewinds the run to StateInit so it can be replayed. A replay
// produces exactly the same event sequence.
func (r *Run) Reset() {
	r.cur = curInit
	r.state = StateInit
	r.outcome = OutcomeNone
	r.round, r.pos = 0, 0
	r.updated = false
	r.culprit = nil
	r.err = nil
	clear(r.dist)
	clear(r.prev)
}

// Next produces the next event. It returns ok=false once the terminal
// EventRunCompleted has been consumed.
//
// ctx is checked before every event. If it has ended, the run moves to
// StateCancelled and every later call returns the same error, which wraps
// both ErrCancelled and ctx.Err().
func (r *Run) Next(ctx context.Context) (Event, bool, error) {
	if r.cur == curExhausted {
		return Event{}, false, nil
	}
	if r.err != nil {
		return Event{}, false, r.err
	}
	if err := ctx.Err(); err != nil {
		return Event{}, false, r.abort(err)
	}

	for {
		switch r.cur {
		case curInit:
			return r.initialize(), true, nil

		case curRoundStart:
			r.updated = false
			r.pos = 0
			r.cur = curEdge
			if len(r.order) == 0 {
				r.cur = curRoundEnd
			}
			return Event{Kind: EventRoundStarted, Round: r.round, TotalRounds: r.total}, true, nil

		case curEdge:
			return r.examine(), true, nil

		case curRoundEnd:
			// 1) Converged: a round without updates ends the run.
			if !r.updated {
				r.outcome = OutcomeEarlyExit
				r.cur = curComplete
				return Event{Kind: EventEarlyExit, Round: r.round}, true, nil
			}
			// 2) More rounds in the budget.
			if r.round < r.total {
				r.round++
				r.cur = curRoundStart
				continue
			}
			// 3) Budget exhausted: verify.
			r.cur = curFinalCheck

		case curFinalCheck:
			return r.finalCheck(), true, nil

		case curNegativeCycle:
			r.cur = curComplete
			e := *r.culprit
			return Event{Kind: EventNegativeCycle, Round: r.total + 1, Edge: &e}, true, nil

		case curComplete:
			r.state = StateDone
			r.cur = curExhausted
			r.options.Logger.Debug("run complete",
				"source", r.source, "outcome", r.outcome.String(), "rounds", r.round)
			return Event{Kind: EventRunCompleted, Outcome: r.outcome, Table: r.Table()}, true, nil

		default:
			return Event{}, false, nil
		}
	}
}

// abort moves the run to StateCancelled with cause and returns the sticky
// error. No event is produced.
func (r *Run) abort(cause error) error {
	r.state = StateCancelled
	r.err = fmt.Errorf("%w: %w", ErrCancelled, cause)
	r.options.Logger.Debug("run cancelled", "source", r.source, "round", r.round, "cause", cause)

	return r.err
}

// Events adapts Next to a range-over-func sequence. Iteration stops after
// the terminal event or after yielding a cancellation error.
func (r *Run) Events(ctx context.Context) iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			ev, ok, err := r.Next(ctx)
			if err != nil {
				yield(Event{}, err)
				return
			}
			if !ok || !yield(ev, nil) {
				return
			}
		}
	}
}

// initialize sets dist[v] = Unreachable for all v, dist[source] = 0.
func (r *Run) initialize() Event {
	clear(r.prev)
	for _, v := range r.ids {
		r.dist[v] = Unreachable
	}
	r.dist[r.source] = 0

	r.state = StateRelaxing
	if r.total == 0 {
		// A single vertex has no rounds; go straight to verification.
		r.cur = curFinalCheck
	} else {
		r.round = 1
		r.cur = curRoundStart
	}

	return Event{Kind: EventInitialized, Source: r.source, Table: r.Table()}
}

// examine relaxes order[pos] and advances the cursor.
func (r *Run) examine() Event {
	e := r.order[r.pos]
	updated := r.relax(e)
	if updated {
		r.updated = true
	}
	r.options.Logger.Debug("edge examined",
		"round", r.round, "from", e.From, "to", e.To, "weight", e.Weight, "updated", updated)

	r.pos++
	if r.pos == len(r.order) {
		r.cur = curRoundEnd
	}

	return Event{Kind: EventEdgeExamined, Round: r.round, Edge: &e, Updated: updated, Table: r.Table()}
}

// finalCheck scans the order once and stops at the first edge that still relaxes.
func (r *Run) finalCheck() Event {
	r.state = StateFinalCheck
	r.outcome = OutcomeShortestPaths
	r.cur = curComplete
	for i := range r.order {
		if r.canRelax(r.order[i]) {
			e := r.order[i]
			r.culprit = &e
			r.outcome = OutcomeNegativeCycle
			r.cur = curNegativeCycle
			break
		}
	}

	return Event{Kind: EventFinalCheckStarted, Round: r.total + 1}
}

// canRelax reports whether dist[From] + w < dist[To] with From reachable.
func (r *Run) canRelax(e core.Edge) bool {
	du := r.dist[e.From]
	if du == Unreachable {
		return false
	}
	return du+e.Weight < r.dist[e.To]
}

// relax applies one strict-less-than relaxation and reports whether it changed dist.
func (r *Run) relax(e core.Edge) bool {
	if !r.canRelax(e) {
		return false
	}
	r.dist[e.To] = r.dist[e.From] + e.Weight
	r.prev[e.To] = e.From
	return true
}
