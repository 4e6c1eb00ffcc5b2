// Package render turns runs and graphs into terminal text: the step log of a
// run, the distance table and the traversal edge list.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/relaxviz/bellmanford"
	"github.com/katalvlaran/relaxviz/core"
	"github.com/katalvlaran/relaxviz/generator"
)

// Mode controls the table output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// Placeholders for unknown distance and missing predecessor.
const (
	Infinity = "∞"
	NoPred   = "—"
)

// Dist formats a distance, using Infinity for unreachable.
func Dist(e bellmanford.Entry) string {
	if !e.Reachable {
		return Infinity
	}
	return strconv.FormatInt(e.Dist, 10)
}

// Pred formats a predecessor, using NoPred when absent.
func Pred(e bellmanford.Entry) string {
	if e.Pred == "" {
		return NoPred
	}
	return e.Pred
}

// Path formats the predecessor chain from the source to id as "A → C → B".
// It yields NoPred when id is unreachable or its chain loops through a
// negative cycle.
func Path(t bellmanford.Table, id string) string {
	p := t.Path(id)
	if p == nil {
		return NoPred
	}
	return strings.Join(p, " → ")
}

// DistanceTable renders t as a table of distance, predecessor and path.
func DistanceTable(t bellmanford.Table, m Mode) string {
	w := table.NewWriter()
	w.AppendHeader(table.Row{"Vertex", "Distance", "Predecessor", "Path"})
	for _, e := range t {
		w.AppendRow(table.Row{e.ID, Dist(e), Pred(e), Path(t, e.ID)})
	}
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignCenter},
	})
	if m == Markdown {
		return w.RenderMarkdown()
	}
	w.SetStyle(table.StyleLight)
	return w.Render()
}

// EdgeLine formats one edge as "(A → B) : 5".
func EdgeLine(e core.Edge) string {
	return fmt.Sprintf("(%s → %s) : %d", e.From, e.To, e.Weight)
}

// EdgeList renders order one edge per line.
func EdgeList(order []core.Edge) string {
	var b strings.Builder
	for _, e := range order {
		b.WriteString(EdgeLine(e))
		b.WriteByte('\n')
	}
	return b.String()
}

// Title is the headline shown for a finished run.
func Title(o bellmanford.Outcome) string {
	switch o {
	case bellmanford.OutcomeNegativeCycle:
		return "Negative Weight Cycle Detected!"
	case bellmanford.OutcomeEarlyExit:
		return "Shortest Paths Found (Early Exit)!"
	case bellmanford.OutcomeShortestPaths:
		return "Final Shortest Paths Found!"
	default:
		return "Run Incomplete."
	}
}

// GraphSummary describes a generated graph: seed, counts and the ring.
func GraphSummary(g *generator.Graph) string {
	ring := append(append([]string(nil), g.Cycle...), g.DefaultSource())
	return fmt.Sprintf("Seed: %d\nVertices: %d  Edges: %d  Negative: %d\nCycle: %s\n",
		g.Seed, g.VertexCount(), g.EdgeCount(), g.Negatives, strings.Join(ring, " → "))
}
