package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/katalvlaran/relaxviz/bellmanford"
	"github.com/katalvlaran/relaxviz/core"
	"github.com/katalvlaran/relaxviz/generator"
)

// Text writes a human-readable step log of a run. It implements
// bellmanford.Observer and session.GraphObserver.
type Text struct {
	mu sync.Mutex
	w  io.Writer
	// Tables prints the distance table after every successful relaxation.
	Tables bool
	// Mode selects the table format.
	Mode Mode
	err  error
}

// NewText returns a Text observer writing to w.
func NewText(w io.Writer) *Text { return &Text{w: w} }

// Err returns the first write error, if any.
func (t *Text) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

func (t *Text) printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func (t *Text) OnGraphGenerated(g *generator.Graph) {
	t.printf("%s", GraphSummary(g))
}

func (t *Text) OnInitialized(source string, _ bellmanford.Table) {
	t.printf("Initialization: Source '%s' distance is 0.\n\n", source)
}

func (t *Text) OnRoundStart(round, total int) {
	if round > 1 {
		t.printf("\n")
	}
	t.printf("--- Iteration %d ---\n", round)
}

func (t *Text) OnEdgeExamined(_ int, e core.Edge, updated bool, table bellmanford.Table) {
	if !updated {
		t.printf("No update for edge %s→%s.\n", e.From, e.To)
		return
	}
	t.printf("UPDATE: Edge %s→%s. New path found.\n", e.From, e.To)
	if t.Tables {
		t.printf("%s\n", DistanceTable(table, t.Mode))
	}
}

func (t *Text) OnEarlyExit(round int) {
	t.printf("\nNo updates in iteration %d. Terminating early.\n", round)
}

func (t *Text) OnFinalCheck(round int) {
	if round > 1 {
		t.printf("\n")
	}
	t.printf("--- Final Check (Iteration %d) ---\n", round)
}

func (t *Text) OnNegativeCycleDetected(e core.Edge) {
	t.printf("ERROR: Edge %s→%s can still be relaxed. Negative cycle exists!\n", e.From, e.To)
}

func (t *Text) OnRunComplete(o bellmanford.Outcome, table bellmanford.Table) {
	t.printf("\n%s\n%s\n", Title(o), DistanceTable(table, t.Mode))
}
