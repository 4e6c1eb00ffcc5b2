package bellmanford_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relaxviz/bellmanford"
	"github.com/katalvlaran/relaxviz/core"
	"github.com/katalvlaran/relaxviz/generator"
)

type wedge struct {
	from, to string
	w        int64
}

func build(t *testing.T, vertices []string, edges ...wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}
	return g
}

func kinds(events []bellmanford.Event) []bellmanford.EventKind {
	out := make([]bellmanford.EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func arrow(e core.Edge) string { return e.From + "→" + e.To }

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestNewRun_Validation(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", 1}, wedge{"B", "C", 2})
	order, err := bellmanford.TraversalOrder(g, "A")
	require.NoError(t, err)

	_, err = bellmanford.NewRun(nil, "A", order)
	assert.ErrorIs(t, err, bellmanford.ErrNilGraph)

	_, err = bellmanford.NewRun(g, "", order)
	assert.ErrorIs(t, err, bellmanford.ErrEmptySource)

	_, err = bellmanford.NewRun(g, "Z", order)
	assert.ErrorIs(t, err, bellmanford.ErrInvalidSource)

	_, err = bellmanford.NewRun(g, "A", order[:1])
	assert.ErrorIs(t, err, bellmanford.ErrOrderMismatch, "missing edge")

	dup := []core.Edge{order[0], order[0]}
	_, err = bellmanford.NewRun(g, "A", dup)
	assert.ErrorIs(t, err, bellmanford.ErrOrderMismatch, "repeated edge")

	changed := append([]core.Edge(nil), order...)
	changed[1].Weight = 100
	_, err = bellmanford.NewRun(g, "A", changed)
	assert.ErrorIs(t, err, bellmanford.ErrOrderMismatch, "altered weight")

	_, err = bellmanford.TraversalOrder(g, "Z")
	assert.ErrorIs(t, err, bellmanford.ErrInvalidSource)
	_, err = bellmanford.Solve(context.Background(), g, "Z")
	assert.ErrorIs(t, err, bellmanford.ErrInvalidSource)
}

// ------------------------------------------------------------------------
// 2. Traversal order
// ------------------------------------------------------------------------

func TestTraversalOrder_RotationAndSorting(t *testing.T) {
	t.Parallel()

	g := build(t, nil,
		wedge{"A", "C", 1}, wedge{"A", "B", 1},
		wedge{"B", "C", 1},
		wedge{"C", "A", 1},
	)
	order, err := bellmanford.TraversalOrder(g, "B")
	require.NoError(t, err)

	got := make([]string, len(order))
	for i, e := range order {
		got[i] = arrow(e)
	}
	assert.Equal(t, []string{"B→C", "C→A", "A→B", "A→C"}, got)
}

func TestTraversalOrder_BijectionOnGeneratedGraphs(t *testing.T) {
	t.Parallel()

	p := generator.DefaultParams()
	for seed := int64(0); seed < 100; seed++ {
		g, err := generator.Generate(p, generator.WithSeed(seed))
		require.NoError(t, err)

		for _, src := range g.Vertices() {
			order, err := bellmanford.TraversalOrder(g.Graph, src)
			require.NoError(t, err)
			require.Len(t, order, g.EdgeCount())

			seen := make(map[string]bool, len(order))
			for _, e := range order {
				require.False(t, seen[e.ID], "seed %d: edge %s repeated", seed, e.ID)
				seen[e.ID] = true
			}
			// Every generated vertex has an outgoing ring edge.
			assert.Equal(t, src, order[0].From)

			again, err := bellmanford.TraversalOrder(g.Graph, src)
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(order, again))
		}
	}
}

// ------------------------------------------------------------------------
// 3. Outcomes
// ------------------------------------------------------------------------

func TestSolve_EarlyExit(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", 4}, wedge{"B", "C", 2}, wedge{"A", "C", 10})
	res, err := bellmanford.Solve(context.Background(), g, "A")
	require.NoError(t, err)

	assert.Equal(t, bellmanford.OutcomeEarlyExit, res.Outcome)
	assert.Nil(t, res.Culprit)
	assert.Equal(t, 2, res.Rounds)

	want := []bellmanford.EventKind{
		bellmanford.EventInitialized,
		bellmanford.EventRoundStarted,
		bellmanford.EventEdgeExamined, bellmanford.EventEdgeExamined, bellmanford.EventEdgeExamined,
		bellmanford.EventRoundStarted,
		bellmanford.EventEdgeExamined, bellmanford.EventEdgeExamined, bellmanford.EventEdgeExamined,
		bellmanford.EventEarlyExit,
		bellmanford.EventRunCompleted,
	}
	require.Empty(t, cmp.Diff(want, kinds(res.Events)))

	// Round 1 updates every edge in order A→B, A→C, B→C; round 2 none.
	for i, upd := range []bool{true, true, true} {
		assert.Equal(t, upd, res.Events[2+i].Updated)
	}
	for i := 0; i < 3; i++ {
		assert.False(t, res.Events[6+i].Updated)
	}
	assert.Equal(t, 2, res.Events[9].Round)

	wantTable := bellmanford.Table{
		{ID: "A", Dist: 0, Reachable: true},
		{ID: "B", Dist: 4, Pred: "A", Reachable: true},
		{ID: "C", Dist: 6, Pred: "B", Reachable: true},
	}
	require.Empty(t, cmp.Diff(wantTable, res.Table))
	assert.Equal(t, []string{"A", "B", "C"}, res.Table.Path("C"))
}

func TestSolve_NegativeCycle(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", 1}, wedge{"B", "A", -3})
	res, err := bellmanford.Solve(context.Background(), g, "A")
	require.NoError(t, err)

	assert.Equal(t, bellmanford.OutcomeNegativeCycle, res.Outcome)
	require.NotNil(t, res.Culprit)
	assert.Equal(t, "A→B", arrow(*res.Culprit))

	want := []bellmanford.EventKind{
		bellmanford.EventInitialized,
		bellmanford.EventRoundStarted,
		bellmanford.EventEdgeExamined, bellmanford.EventEdgeExamined,
		bellmanford.EventFinalCheckStarted,
		bellmanford.EventNegativeCycle,
		bellmanford.EventRunCompleted,
	}
	require.Empty(t, cmp.Diff(want, kinds(res.Events)))
	assert.Equal(t, 2, res.Events[4].Round)
	assert.Equal(t, "A→B", arrow(*res.Events[5].Edge))

	a, _ := res.Table.Get("A")
	assert.Equal(t, int64(-2), a.Dist)
	assert.Equal(t, "B", a.Pred)
	assert.Nil(t, res.Table.Path("B"), "predecessor chain loops")
}

func TestSolve_FullRoundsShortestPaths(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", 1})
	res, err := bellmanford.Solve(context.Background(), g, "A")
	require.NoError(t, err)

	assert.Equal(t, bellmanford.OutcomeShortestPaths, res.Outcome)
	want := []bellmanford.EventKind{
		bellmanford.EventInitialized,
		bellmanford.EventRoundStarted,
		bellmanford.EventEdgeExamined,
		bellmanford.EventFinalCheckStarted,
		bellmanford.EventRunCompleted,
	}
	require.Empty(t, cmp.Diff(want, kinds(res.Events)))
}

func TestSolve_UnreachableVertex(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", 1}, wedge{"B", "C", 1}, wedge{"D", "A", 5})
	res, err := bellmanford.Solve(context.Background(), g, "A")
	require.NoError(t, err)

	assert.NotEqual(t, bellmanford.OutcomeNegativeCycle, res.Outcome)
	d, ok := res.Table.Get("D")
	require.True(t, ok)
	assert.False(t, d.Reachable)
	assert.Equal(t, bellmanford.Unreachable, d.Dist)
	assert.Empty(t, d.Pred)
	assert.Nil(t, res.Table.Path("D"))

	for _, ev := range res.Events {
		if ev.Kind == bellmanford.EventEdgeExamined && ev.Edge.From == "D" {
			assert.False(t, ev.Updated, "unreachable tail never relaxes")
		}
	}
}

func TestSolve_SingleVertex(t *testing.T) {
	t.Parallel()

	g := build(t, []string{"A"})
	res, err := bellmanford.Solve(context.Background(), g, "A")
	require.NoError(t, err)

	assert.Equal(t, bellmanford.OutcomeShortestPaths, res.Outcome)
	want := []bellmanford.EventKind{
		bellmanford.EventInitialized,
		bellmanford.EventFinalCheckStarted,
		bellmanford.EventRunCompleted,
	}
	require.Empty(t, cmp.Diff(want, kinds(res.Events)))
	assert.Equal(t, 0, res.Rounds)
}

func TestSolve_NoEdges(t *testing.T) {
	t.Parallel()

	g := build(t, []string{"A", "B"})
	res, err := bellmanford.Solve(context.Background(), g, "A")
	require.NoError(t, err)

	assert.Equal(t, bellmanford.OutcomeEarlyExit, res.Outcome)
	want := []bellmanford.EventKind{
		bellmanford.EventInitialized,
		bellmanford.EventRoundStarted,
		bellmanford.EventEarlyExit,
		bellmanford.EventRunCompleted,
	}
	require.Empty(t, cmp.Diff(want, kinds(res.Events)))
}

func TestSolve_EqualCostKeepsFirstPredecessor(t *testing.T) {
	t.Parallel()

	// A→B→D and A→C→D both cost 2; B's edge is examined first.
	g := build(t, nil,
		wedge{"A", "B", 1}, wedge{"A", "C", 1},
		wedge{"B", "D", 1}, wedge{"C", "D", 1},
	)
	res, err := bellmanford.Solve(context.Background(), g, "A")
	require.NoError(t, err)

	d, _ := res.Table.Get("D")
	assert.Equal(t, int64(2), d.Dist)
	assert.Equal(t, "B", d.Pred)
}

// Over generated graphs: a non-cycle outcome leaves no edge relaxable, and a
// cycle outcome names an edge that still relaxes in the final table.
func TestSolve_GeneratedGraphsConsistent(t *testing.T) {
	t.Parallel()

	p := generator.DefaultParams()
	for seed := int64(0); seed < 100; seed++ {
		g, err := generator.Generate(p, generator.WithSeed(seed))
		require.NoError(t, err)

		res, err := bellmanford.Solve(context.Background(), g.Graph, g.DefaultSource())
		require.NoError(t, err)

		dist := make(map[string]int64, len(res.Table))
		for _, e := range res.Table {
			dist[e.ID] = e.Dist
			assert.True(t, e.Reachable, "seed %d: ring makes every vertex reachable", seed)
		}

		relaxable := func(e core.Edge) bool { return dist[e.From]+e.Weight < dist[e.To] }
		switch res.Outcome {
		case bellmanford.OutcomeNegativeCycle:
			require.NotNil(t, res.Culprit)
			assert.True(t, relaxable(*res.Culprit), "seed %d", seed)
		default:
			for _, e := range g.Edges() {
				assert.False(t, relaxable(e), "seed %d: %s", seed, arrow(e))
			}
		}
	}
}

// ------------------------------------------------------------------------
// 4. Determinism and replay
// ------------------------------------------------------------------------

func TestRun_IdempotentEventSequence(t *testing.T) {
	t.Parallel()

	g, err := generator.Generate(generator.DefaultParams(), generator.WithSeed(7))
	require.NoError(t, err)

	first, err := bellmanford.Solve(context.Background(), g.Graph, g.DefaultSource())
	require.NoError(t, err)
	second, err := bellmanford.Solve(context.Background(), g.Graph, g.DefaultSource())
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(first, second))

	order, err := bellmanford.TraversalOrder(g.Graph, g.DefaultSource())
	require.NoError(t, err)
	r, err := bellmanford.NewRun(g.Graph, g.DefaultSource(), order)
	require.NoError(t, err)
	replay1, err := bellmanford.Collect(context.Background(), r)
	require.NoError(t, err)
	r.Reset()
	assert.Equal(t, bellmanford.StateInit, r.State())
	replay2, err := bellmanford.Collect(context.Background(), r)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(replay1.Events, replay2.Events))
	require.Empty(t, cmp.Diff(first.Events, replay1.Events))
}

// ------------------------------------------------------------------------
// 5. State machine, cancellation, Drive
// ------------------------------------------------------------------------

func TestRun_StateProgression(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", 1}, wedge{"B", "A", -3})
	order, err := bellmanford.TraversalOrder(g, "A")
	require.NoError(t, err)
	r, err := bellmanford.NewRun(g, "A", order)
	require.NoError(t, err)

	ctx := context.Background()
	assert.Equal(t, bellmanford.StateInit, r.State())
	assert.Equal(t, bellmanford.OutcomeNone, r.Outcome())
	for _, e := range r.Table() {
		assert.False(t, e.Reachable)
	}

	var states []bellmanford.State
	for {
		_, ok, err := r.Next(ctx)
		require.NoError(t, err)
		if !ok {
			break
		}
		states = append(states, r.State())
	}
	want := []bellmanford.State{
		bellmanford.StateRelaxing, // initialized
		bellmanford.StateRelaxing, // round 1
		bellmanford.StateRelaxing, // A→B
		bellmanford.StateRelaxing, // B→A
		bellmanford.StateFinalCheck,
		bellmanford.StateFinalCheck, // negative cycle
		bellmanford.StateDone,
	}
	require.Empty(t, cmp.Diff(want, states))
	assert.Equal(t, bellmanford.OutcomeNegativeCycle, r.Outcome())

	culprit, ok := r.Culprit()
	require.True(t, ok)
	assert.Equal(t, "A→B", arrow(culprit))

	_, ok, err = r.Next(ctx)
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestRun_CancelledMidRun(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", 4}, wedge{"B", "C", 2}, wedge{"A", "C", 10})
	order, err := bellmanford.TraversalOrder(g, "A")
	require.NoError(t, err)
	r, err := bellmanford.NewRun(g, "A", order)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	for i := 0; i < 3; i++ {
		_, ok, err := r.Next(ctx)
		require.NoError(t, err)
		require.True(t, ok)
	}
	cancel()

	_, ok, err := r.Next(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, err, bellmanford.ErrCancelled)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, bellmanford.StateCancelled, r.State())
	assert.Equal(t, bellmanford.OutcomeNone, r.Outcome())

	// Sticky even with a fresh context.
	_, _, err2 := r.Next(context.Background())
	assert.ErrorIs(t, err2, bellmanford.ErrCancelled)

	b, _ := r.Table().Get("B")
	assert.Equal(t, int64(4), b.Dist, "progress up to the cancellation is kept")
}

type recorder struct {
	bellmanford.NopObserver
	lines []string
}

func (r *recorder) OnRoundStart(round, total int) {
	r.lines = append(r.lines, "round")
}

func (r *recorder) OnEdgeExamined(_ int, e core.Edge, updated bool, _ bellmanford.Table) {
	mark := "="
	if updated {
		mark = "+"
	}
	r.lines = append(r.lines, mark+arrow(e))
}

func (r *recorder) OnEarlyExit(int) { r.lines = append(r.lines, "early") }

func (r *recorder) OnRunComplete(o bellmanford.Outcome, _ bellmanford.Table) {
	r.lines = append(r.lines, o.String())
}

func TestDrive_DispatchesInOrder(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", 4}, wedge{"B", "C", 2}, wedge{"A", "C", 10})
	order, err := bellmanford.TraversalOrder(g, "A")
	require.NoError(t, err)
	r, err := bellmanford.NewRun(g, "A", order)
	require.NoError(t, err)

	rec := &recorder{}
	res, err := bellmanford.Drive(context.Background(), r, rec, bellmanford.NoDelay{})
	require.NoError(t, err)
	assert.Equal(t, bellmanford.OutcomeEarlyExit, res.Outcome)
	assert.Len(t, res.Events, 11)

	want := []string{
		"round", "+A→B", "+A→C", "+B→C",
		"round", "=A→B", "=A→C", "=B→C",
		"early", "early_exit",
	}
	require.Empty(t, cmp.Diff(want, rec.lines))
}

func TestDrive_PacerCancellation(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", 4}, wedge{"B", "C", 2})
	order, err := bellmanford.TraversalOrder(g, "A")
	require.NoError(t, err)
	r, err := bellmanford.NewRun(g, "A", order)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	rec := &recorder{}
	res, err := bellmanford.Drive(ctx, r, rec, bellmanford.FixedDelay(time.Hour))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bellmanford.ErrCancelled)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, bellmanford.StateCancelled, r.State())
	assert.Equal(t, []string{"round"}, rec.lines, "no edge examined while waiting")
}

// failingPacer refuses to pace while the context stays live.
type failingPacer struct{ err error }

func (p failingPacer) Wait(context.Context) error { return p.err }

func TestDrive_PacerFailureCancelsRun(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", 4}, wedge{"B", "C", 2})
	order, err := bellmanford.TraversalOrder(g, "A")
	require.NoError(t, err)
	r, err := bellmanford.NewRun(g, "A", order)
	require.NoError(t, err)

	broken := errors.New("display detached")
	rec := &recorder{}
	res, err := bellmanford.Drive(context.Background(), r, rec, failingPacer{err: broken})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bellmanford.ErrCancelled)
	assert.ErrorIs(t, err, broken)
	assert.Equal(t, bellmanford.StateCancelled, r.State())
	assert.Equal(t, []string{"round"}, rec.lines, "no edge examined after the pacer failed")

	b, _ := r.Table().Get("B")
	assert.False(t, b.Reachable, "the first edge was never relaxed")

	_, _, err = r.Next(context.Background())
	assert.ErrorIs(t, err, broken, "cancellation is sticky")
}

func TestNewRun_WeightOverflow(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", math.MaxInt64 - 1}, wedge{"B", "C", 5})
	_, err := bellmanford.Solve(context.Background(), g, "A")
	assert.ErrorIs(t, err, bellmanford.ErrWeightOverflow)

	neg := build(t, nil, wedge{"A", "B", math.MinInt64}, wedge{"B", "C", 1})
	_, err = bellmanford.Solve(context.Background(), neg, "A")
	assert.ErrorIs(t, err, bellmanford.ErrWeightOverflow)

	// Σ|w| = 2·(MaxInt64/8) stays within (MaxInt64-1)/3 for three vertices.
	big := int64(math.MaxInt64 / 8)
	ok := build(t, nil, wedge{"A", "B", big}, wedge{"B", "C", -big})
	res, err := bellmanford.Solve(context.Background(), ok, "A")
	require.NoError(t, err)
	c, _ := res.Table.Get("C")
	assert.Equal(t, int64(0), c.Dist)
	assert.Equal(t, bellmanford.OutcomeEarlyExit, res.Outcome)
}

func TestFixedDelay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bellmanford.NoDelay{}, bellmanford.FixedDelay(0))
	assert.Panics(t, func() { bellmanford.FixedDelay(-time.Second) })

	start := time.Now()
	require.NoError(t, bellmanford.FixedDelay(5*time.Millisecond).Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "final_check", bellmanford.StateFinalCheck.String())
	assert.Equal(t, "negative_cycle", bellmanford.OutcomeNegativeCycle.String())
	assert.Equal(t, "edge_examined", bellmanford.EventEdgeExamined.String())
	assert.Equal(t, "state(42)", bellmanford.State(42).String())
}

func TestRun_EventsIterator(t *testing.T) {
	t.Parallel()

	g := build(t, nil, wedge{"A", "B", 1})
	order, err := bellmanford.TraversalOrder(g, "A")
	require.NoError(t, err)
	r, err := bellmanford.NewRun(g, "A", order)
	require.NoError(t, err)

	var got []bellmanford.EventKind
	for ev, err := range r.Events(context.Background()) {
		require.NoError(t, err)
		got = append(got, ev.Kind)
	}
	assert.Len(t, got, 5)
	assert.Equal(t, bellmanford.EventRunCompleted, got[len(got)-1])

	r.Reset()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var errs int
	for _, err := range r.Events(ctx) {
		assert.ErrorIs(t, err, bellmanford.ErrCancelled)
		errs++
	}
	assert.Equal(t, 1, errs)
}
