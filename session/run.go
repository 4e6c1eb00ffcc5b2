// SPDX-License-Identifier: MIT
//
// File: run.go
// Role: Run, Cancel and Status; the single active run of a Session.

package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/relaxviz/bellmanford"
	"github.com/katalvlaran/relaxviz/core"
	"github.com/katalvlaran/relaxviz/internal/metrics"
)

// Report is the record of one finished run.
type Report struct {
	RunID string `json:"run_id"`
	*bellmanford.Result
}

// Status is a point-in-time view of the session for presentation.
type Status struct {
	HasGraph    bool                `json:"has_graph"`
	Seed        int64               `json:"seed"`
	Source      string              `json:"source"`
	RunID       string              `json:"run_id,omitempty"`
	State       string              `json:"state"`
	Running     bool                `json:"running"`
	Round       int                 `json:"round"`
	TotalRounds int                 `json:"total_rounds"`
	Outcome     bellmanford.Outcome `json:"outcome"`
}

// Run executes Bellman-Ford from source on the current graph, delivering
// events to obs and pacing edge examinations with pacer. An empty source
// means the selected one; a valid source becomes the selected one.
//
// Errors: ErrNoGraph, bellmanford.ErrInvalidSource and ErrRunInProgress are
// returned before anything starts. A run cancelled through ctx, Cancel,
// Generate or Reset returns an error wrapping bellmanford.ErrCancelled.
func (s *Session) Run(ctx context.Context, source string, obs bellmanford.Observer, pacer bellmanford.Pacer) (*Report, error) {
	// 1) Validate and claim the run slot under the lock.
	s.mu.Lock()
	if s.graph == nil {
		s.mu.Unlock()
		return nil, ErrNoGraph
	}
	if s.cancel != nil {
		s.mu.Unlock()
		return nil, ErrRunInProgress
	}
	src, order := s.source, s.order
	if source != "" {
		var err error
		if src, order, err = s.resolveLocked(source); err != nil {
			s.mu.Unlock()
			return nil, err
		}
	}
	r, err := bellmanford.NewRun(s.graph.Graph, src, order, bellmanford.WithLogger(s.log))
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("session: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	id := uuid.NewString()
	s.source, s.order = src, order
	s.clearRunLocked()
	s.runID, s.cancel = id, cancel
	s.total = r.TotalRounds()
	s.mu.Unlock()
	defer cancel()

	// 2) Drive it outside the lock; the tap keeps Status and metrics current.
	metrics.RunsStarted.Inc()
	metrics.ActiveRuns.Inc()
	defer metrics.ActiveRuns.Dec()
	start := time.Now()
	s.log.Info("run started", "run_id", id, "source", src, "rounds", r.TotalRounds())

	if obs == nil {
		obs = bellmanford.NopObserver{}
	}
	res, err := bellmanford.Drive(runCtx, r, &tap{s: s, id: id, next: obs}, pacer)
	metrics.RunDuration.Observe(float64(time.Since(start).Milliseconds()))

	// 3) Record the end state unless the run was detached meanwhile.
	s.mu.Lock()
	if s.runID == id {
		s.cancel = nil
		if err != nil {
			s.state = bellmanford.StateCancelled
		}
	}
	s.mu.Unlock()

	if err != nil {
		metrics.RunsCompleted.WithLabelValues("cancelled").Inc()
		s.log.Info("run cancelled", "run_id", id, "error", err)
		if !errors.Is(err, bellmanford.ErrCancelled) {
			return nil, fmt.Errorf("session: %w", err)
		}
		return nil, err
	}
	metrics.RunsCompleted.WithLabelValues(res.Outcome.String()).Inc()
	s.log.Info("run complete", "run_id", id, "outcome", res.Outcome.String(), "rounds", res.Rounds)

	return &Report{RunID: id, Result: res}, nil
}

// Cancel aborts the active run, if any. It reports whether one was active.
func (s *Session) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel == nil {
		return false
	}
	s.cancel()
	return true
}

// Status returns the session's current state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{
		HasGraph:    s.graph != nil,
		Source:      s.source,
		RunID:       s.runID,
		State:       s.state.String(),
		Running:     s.cancel != nil,
		Round:       s.round,
		TotalRounds: s.total,
		Outcome:     s.outcome,
	}
	if s.graph != nil {
		st.Seed = s.graph.Seed
	}
	return st
}

// tap mirrors run progress into the session and metrics, then forwards
// every callback to next.
type tap struct {
	s    *Session
	id   string
	next bellmanford.Observer
}

// update applies fn to the session if the run is still the current one.
func (t *tap) update(fn func(s *Session)) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.s.runID == t.id {
		fn(t.s)
	}
}

func (t *tap) OnInitialized(source string, table bellmanford.Table) {
	t.update(func(s *Session) { s.state = bellmanford.StateRelaxing })
	t.next.OnInitialized(source, table)
}

func (t *tap) OnRoundStart(round, total int) {
	t.update(func(s *Session) { s.round, s.total = round, total })
	t.next.OnRoundStart(round, total)
}

func (t *tap) OnEdgeExamined(round int, edge core.Edge, updated bool, table bellmanford.Table) {
	metrics.EdgesExamined.Inc()
	if updated {
		metrics.Relaxations.Inc()
	}
	t.next.OnEdgeExamined(round, edge, updated, table)
}

func (t *tap) OnEarlyExit(round int) { t.next.OnEarlyExit(round) }

func (t *tap) OnFinalCheck(round int) {
	t.update(func(s *Session) { s.state = bellmanford.StateFinalCheck })
	t.next.OnFinalCheck(round)
}

func (t *tap) OnNegativeCycleDetected(edge core.Edge) { t.next.OnNegativeCycleDetected(edge) }

func (t *tap) OnRunComplete(outcome bellmanford.Outcome, table bellmanford.Table) {
	t.update(func(s *Session) { s.state, s.outcome = bellmanford.StateDone, outcome })
	t.next.OnRunComplete(outcome, table)
}
