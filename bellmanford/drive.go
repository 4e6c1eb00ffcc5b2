// SPDX-License-Identifier: MIT
//
// File: drive.go
// Role: Observer/Pacer collaborators and Drive, the push-style runner.

package bellmanford

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/relaxviz/core"
)

// Observer receives the events of a run in order. Callbacks run on the
// driving goroutine; a slow observer slows the run.
type Observer interface {
	OnInitialized(source string, table Table)
	OnRoundStart(round, total int)
	OnEdgeExamined(round int, edge core.Edge, updated bool, table Table)
	OnEarlyExit(round int)
	OnFinalCheck(round int)
	OnNegativeCycleDetected(edge core.Edge)
	OnRunComplete(outcome Outcome, table Table)
}

// NopObserver implements Observer with no-ops. Embed it to override a subset.
type NopObserver struct{}

func (NopObserver) OnInitialized(string, Table) {}
func (NopObserver) OnRoundStart(int, int) {}
func (NopObserver) OnEdgeExamined(int, core.Edge, bool, Table) {}
func (NopObserver) OnEarlyExit(int) {}
func (NopObserver) OnFinalCheck(int) {}
func (NopObserver) OnNegativeCycleDetected(core.Edge) {}
func (NopObserver) OnRunComplete(Outcome, Table) {}

// Dispatch delivers ev to the matching Observer callback.
func Dispatch(obs Observer, ev Event) {
	switch ev.Kind {
	case EventInitialized:
		obs.OnInitialized(ev.Source, ev.Table)
	case EventRoundStarted:
		obs.OnRoundStart(ev.Round, ev.TotalRounds)
	case EventEdgeExamined:
		obs.OnEdgeExamined(ev.Round, *ev.Edge, ev.Updated, ev.Table)
	case EventEarlyExit:
		obs.OnEarlyExit(ev.Round)
	case EventFinalCheckStarted:
		obs.OnFinalCheck(ev.Round)
	case EventNegativeCycle:
		obs.OnNegativeCycleDetected(*ev.Edge)
	case EventRunCompleted:
		obs.OnRunComplete(ev.Outcome, ev.Table)
	}
}

// Pacer spaces out edge examinations for presentation.
type Pacer interface {
	// Wait blocks until the next step may proceed or ctx ends.
	Wait(ctx context.Context) error
}

// NoDelay is a Pacer that never waits.
type NoDelay struct{}

// Wait returns ctx.Err() without blocking.
func (NoDelay) Wait(ctx context.Context) error { return ctx.Err() }

// FixedDelay returns a Pacer that waits d before each edge examination.
// Panics if d is negative.
func FixedDelay(d time.Duration) Pacer {
	if d < 0 {
		panic(fmt.Sprintf("bellmanford: FixedDelay(%v): negative duration", d))
	}
	if d == 0 {
		return NoDelay{}
	}
	return fixedDelay(d)
}

type fixedDelay time.Duration

func (d fixedDelay) Wait(ctx context.Context) error {
	t := time.NewTimer(time.Duration(d))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Drive runs r to completion, delivering every event to obs and waiting on
// pacer before each edge examination. A nil obs or pacer is replaced by a
// no-op. It returns the full Result, or an error wrapping ErrCancelled when
// ctx ends first or the pacer fails; either way the run is left cancelled.
func Drive(ctx context.Context, r *Run, obs Observer, pacer Pacer) (*Result, error) {
	if obs == nil {
		obs = NopObserver{}
	}
	if pacer == nil {
		pacer = NoDelay{}
	}

	var events []Event
	for {
		// Pace before the step that would examine an edge.
		if r.cur == curEdge {
			if err := pacer.Wait(ctx); err != nil {
				return nil, r.abort(err)
			}
		}

		ev, ok, err := r.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		events = append(events, ev)
		Dispatch(obs, ev)
	}

	res := &Result{
		Source:  r.Source(),
		Outcome: r.Outcome(),
		Table:   r.Table(),
		Rounds:  r.Round(),
		Events:  events,
	}
	if e, ok := r.Culprit(); ok {
		res.Culprit = &e
	}

	return res, nil
}
