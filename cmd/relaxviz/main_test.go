package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relaxviz/bellmanford"
	"github.com/katalvlaran/relaxviz/generator"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerateCmd(t *testing.T) {
	out, err := execute(t, "generate", "--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Seed: 42\n")
	assert.Contains(t, out, "Traversal order from ")
	assert.Contains(t, out, ") : ")

	again, err := execute(t, "generate", "--seed", "42")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	js, err := execute(t, "generate", "--seed", "42", "--json")
	require.NoError(t, err)
	assert.Contains(t, js, `"seed": 42`)
}

func TestOrderCmd(t *testing.T) {
	out, err := execute(t, "order", "--seed", "3", "--source", "D")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "Source: D", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "(D → "), lines[2])

	_, err = execute(t, "order", "--seed", "3", "--source", "Z")
	assert.ErrorIs(t, err, bellmanford.ErrInvalidSource)
}

func TestRunCmd(t *testing.T) {
	out, err := execute(t, "run", "--seed", "5", "--delay", "0s", "--source", "A")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialization: Source 'A' distance is 0.")
	assert.Contains(t, out, "--- Iteration 1 ---")
	assert.True(t,
		strings.Contains(out, "Negative Weight Cycle Detected!") ||
			strings.Contains(out, "Shortest Paths Found (Early Exit)!") ||
			strings.Contains(out, "Final Shortest Paths Found!"), out)
}

func TestVerifyCmd(t *testing.T) {
	out, err := execute(t, "verify", "--count", "50", "--parallel", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "graphs: 50  failures: 0")

	_, err = execute(t, "verify", "--count", "0")
	assert.Error(t, err)
}

func TestVerify_CountsEveryOutcome(t *testing.T) {
	sum, err := verify(context.Background(), generator.DefaultParams(), 100, 40, 3)
	require.NoError(t, err)
	total := 0
	for _, n := range sum.outcomes {
		total += n
	}
	assert.Equal(t, 40, total)
	assert.Empty(t, sum.failures)
}

func TestVerify_NonNegativeGraphsMatchDijkstra(t *testing.T) {
	p := generator.DefaultParams()
	p.Negatives = generator.Range{Min: 0, Max: 0}
	sum, err := verify(context.Background(), p, 1, 30, 2)
	require.NoError(t, err)
	assert.Empty(t, sum.failures)
	assert.Zero(t, sum.outcomes[bellmanford.OutcomeNegativeCycle])
}

func TestCrossCheckDijkstra(t *testing.T) {
	solve := func(p generator.Params, seed int64) (*generator.Graph, *bellmanford.Result) {
		g, err := generator.Generate(p, generator.WithSeed(seed))
		require.NoError(t, err)
		res, err := bellmanford.Solve(context.Background(), g.Graph, g.DefaultSource())
		require.NoError(t, err)
		return g, res
	}
	distOf := func(res *bellmanford.Result) map[string]int64 {
		dist := make(map[string]int64, len(res.Table))
		for _, e := range res.Table {
			dist[e.ID] = e.Dist
		}
		return dist
	}

	p := generator.DefaultParams()
	p.Negatives = generator.Range{Min: 0, Max: 0}
	g, res := solve(p, 3)
	dist := distOf(res)
	require.NoError(t, crossCheckDijkstra(g, res.Source, dist))

	var other string
	for id := range dist {
		if id != res.Source {
			other = id
			break
		}
	}
	dist[other]--
	assert.Error(t, crossCheckDijkstra(g, res.Source, dist))
	dist[other] += 2
	assert.Error(t, crossCheckDijkstra(g, res.Source, dist))

	// Negative edges: the clamped copy still bounds the table, and the
	// generated graph keeps its own weights.
	for seed := int64(1); seed <= 20; seed++ {
		g, res := solve(generator.DefaultParams(), seed)
		if res.Outcome == bellmanford.OutcomeNegativeCycle {
			continue
		}
		before := g.Edges()
		require.NoError(t, crossCheckDijkstra(g, res.Source, distOf(res)), "seed %d", seed)
		assert.Equal(t, before, g.Edges(), "seed %d", seed)
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relaxviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
generator:
  node_count: 4
  alphabet: WXYZ
  edges: {min: 5, max: 6}
  negatives: {min: 1, max: 1}
log:
  level: warn
`), 0o644))

	out, err := execute(t, "--config", path, "generate", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Vertices: 4")

	_, err = execute(t, "--log-level", "loud", "generate")
	assert.Error(t, err)
	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "generate")
	assert.Error(t, err)
}
