package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relaxviz/bellmanford"
	"github.com/katalvlaran/relaxviz/bfs"
	"github.com/katalvlaran/relaxviz/dijkstra"
	"github.com/katalvlaran/relaxviz/generator"
	"github.com/katalvlaran/relaxviz/internal/logging"
)

// errVerifyFailed is returned when at least one seed breaks an invariant.
var errVerifyFailed = errors.New("verify: invariant violations found")

func newVerifyCmd(a *app) *cobra.Command {
	var flags struct {
		count     int
		parallel  int
		startSeed int64
	}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Generate many graphs and check every generation and run invariant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.count < 1 || flags.parallel < 1 {
				return fmt.Errorf("--count and --parallel must be positive")
			}
			sum, err := verify(cmd.Context(), a.cfg().Generator, flags.startSeed, flags.count, flags.parallel)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := table.NewWriter()
			w.SetStyle(table.StyleLight)
			w.AppendHeader(table.Row{"Outcome", "Graphs"})
			for _, o := range []bellmanford.Outcome{
				bellmanford.OutcomeEarlyExit, bellmanford.OutcomeShortestPaths, bellmanford.OutcomeNegativeCycle,
			} {
				w.AppendRow(table.Row{o.String(), sum.outcomes[o]})
			}
			w.AppendFooter(table.Row{"failures", len(sum.failures)})
			fmt.Fprintln(out, w.Render())

			fmt.Fprintf(out, "graphs: %d  failures: %d\n", flags.count, len(sum.failures))
			if len(sum.failures) == 0 {
				return nil
			}
			for _, f := range sum.failures {
				fmt.Fprintln(out, f)
			}
			return errVerifyFailed
		},
	}
	f := cmd.Flags()
	f.IntVar(&flags.count, "count", 1000, "Number of seeds to check")
	f.IntVar(&flags.parallel, "parallel", 4, "Concurrent workers")
	f.Int64Var(&flags.startSeed, "start-seed", 0, "First seed; seeds are consecutive")
	return cmd
}

type verifySummary struct {
	outcomes map[bellmanford.Outcome]int
	failures []string
}

// verify checks seeds [start, start+count) with at most parallel workers.
// Invariant violations are collected; only cancellation aborts.
func verify(ctx context.Context, p generator.Params, start int64, count, parallel int) (*verifySummary, error) {
	log := logging.New("verify")
	sum := &verifySummary{outcomes: make(map[bellmanford.Outcome]int)}
	var mu sync.Mutex
	record := func(o bellmanford.Outcome, failure string) {
		mu.Lock()
		defer mu.Unlock()
		if failure != "" {
			sum.failures = append(sum.failures, failure)
			return
		}
		sum.outcomes[o]++
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := 0; i < count; i++ {
		seed := start + int64(i)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := verifySeed(gctx, p, seed)
			if errors.Is(err, bellmanford.ErrCancelled) {
				return err
			}
			if err != nil {
				log.Warn("seed failed", "seed", seed, "error", err)
				record(o, fmt.Sprintf("seed %d: %v", seed, err))
				return nil
			}
			record(o, "")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(sum.failures)
	log.Info("verify complete", "graphs", count, "failures", len(sum.failures))
	return sum, nil
}

// verifySeed generates one graph, checks it, runs from its default source
// and cross-checks the final table against the outcome. Reachability must
// match a BFS from the source. Unless a negative cycle was found, the table is
// compared with Dijkstra on a copy whose negative weights are clamped to 0.
func verifySeed(ctx context.Context, p generator.Params, seed int64) (bellmanford.Outcome, error) {
	g, err := generator.Generate(p, generator.WithSeed(seed))
	if err != nil {
		return bellmanford.OutcomeNone, err
	}
	if err := generator.Check(g, p); err != nil {
		return bellmanford.OutcomeNone, err
	}
	res, err := bellmanford.Solve(ctx, g.Graph, g.DefaultSource())
	if err != nil {
		return bellmanford.OutcomeNone, err
	}

	walk, err := bfs.BFS(g.Graph, res.Source, bfs.WithContext(ctx))
	if err != nil {
		return res.Outcome, err
	}
	dist := make(map[string]int64, len(res.Table))
	for _, e := range res.Table {
		if e.Reachable != walk.Reached(e.ID) {
			return res.Outcome, fmt.Errorf("vertex %s: reachable=%t, bfs=%t", e.ID, e.Reachable, walk.Reached(e.ID))
		}
		if e.Reachable {
			dist[e.ID] = e.Dist
		}
	}
	if res.Outcome == bellmanford.OutcomeNegativeCycle {
		if g.Negatives == 0 {
			return res.Outcome, fmt.Errorf("negative cycle reported without negative edges")
		}
		return res.Outcome, nil
	}
	for _, e := range g.Edges() {
		du, ok := dist[e.From]
		if ok && du+e.Weight < dist[e.To] {
			return res.Outcome, fmt.Errorf("%s outcome but %s→%s still relaxes", res.Outcome, e.From, e.To)
		}
	}
	return res.Outcome, crossCheckDijkstra(g, res.Source, dist)
}

// crossCheckDijkstra compares Bellman-Ford distances with Dijkstra on a copy of
// g whose negative weights are raised to 0. Clamped distances bound the table
// from above; without negative edges they must match it exactly, along with
// every predecessor edge of the Dijkstra tree.
func crossCheckDijkstra(g *generator.Graph, source string, dist map[string]int64) error {
	clamped := g.Graph.Clone()
	weights := make(map[[2]string]int64, g.EdgeCount())
	for _, e := range g.Edges() {
		weights[[2]string{e.From, e.To}] = e.Weight
		if e.Weight < 0 {
			if err := clamped.SetWeight(e.ID, 0); err != nil {
				return err
			}
		}
	}
	ref, prev, err := dijkstra.Dijkstra(clamped, dijkstra.Source(source), dijkstra.WithReturnPath())
	if err != nil {
		return err
	}
	for id, d := range dist {
		if d > ref[id] {
			return fmt.Errorf("%s: bellman-ford=%d above clamped dijkstra=%d", id, d, ref[id])
		}
		if g.Negatives > 0 {
			continue
		}
		if ref[id] != d {
			return fmt.Errorf("%s: bellman-ford=%d dijkstra=%d", id, d, ref[id])
		}
		// Without negative edges the Dijkstra tree is tight on the table.
		if u := prev[id]; u != "" && dist[u]+weights[[2]string{u, id}] != d {
			return fmt.Errorf("%s: tree edge %s→%s is not tight", id, u, id)
		}
	}
	return nil
}
