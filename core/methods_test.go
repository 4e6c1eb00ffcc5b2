// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relaxviz/core"
)

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // no-op
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.False(t, g.HasVertex("Z"))
}

// TestGraph_AddEdgeConstraints covers every AddEdge rejection path.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	t.Run("unweighted rejects weight", func(t *testing.T) {
		g := core.NewGraph()
		_, err := g.AddEdge("A", "B", 3)
		assert.ErrorIs(t, err, core.ErrBadWeight)
	})
	t.Run("empty endpoint", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, err := g.AddEdge("", "B", 3)
		assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	})
	t.Run("loop", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, err := g.AddEdge("A", "A", 1)
		assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	})
	t.Run("duplicate", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, err := g.AddEdge("A", "B", 1)
		require.NoError(t, err)
		_, err = g.AddEdge("A", "B", 2)
		assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
		assert.Equal(t, 1, g.EdgeCount())
	})
	t.Run("anti-parallel", func(t *testing.T) {
		g := core.NewGraph(core.WithWeighted())
		_, _ = g.AddEdge("A", "B", 1)
		_, err := g.AddEdge("B", "A", 1)
		assert.NoError(t, err, "anti-parallel edges are allowed by default")
		assert.True(t, g.AntiParallel())

		strict := core.NewGraph(core.WithWeighted(), core.WithoutAntiParallel())
		_, _ = strict.AddEdge("A", "B", 1)
		_, err = strict.AddEdge("B", "A", 1)
		assert.ErrorIs(t, err, core.ErrAntiParallelNotAllowed)
		assert.False(t, strict.AntiParallel())
	})
}

// TestGraph_EdgesOrder anchors insertion-order stability past e9.
func TestGraph_EdgesOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	ids := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"}
	for i := 0; i+1 < len(ids); i++ {
		_, err := g.AddEdge(ids[i], ids[i+1], int64(i))
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, len(ids)-1)
	for i, e := range edges {
		assert.Equal(t, ids[i], e.From)
		assert.Equal(t, int64(i), e.Weight)
	}
	assert.Equal(t, "e10", edges[9].ID)
	assert.Equal(t, len(ids)-1, g.EdgeCount())
}

// TestGraph_Outgoing verifies destination ordering and vertex validation.
func TestGraph_Outgoing(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "D", 1)
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 3)
	_, _ = g.AddEdge("C", "A", 4)

	out, err := g.Outgoing("A")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"B", "C", "D"}, []string{out[0].To, out[1].To, out[2].To})

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, ids)

	_, err = g.Outgoing("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Outgoing("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	leaf, err := g.Outgoing("D")
	require.NoError(t, err)
	assert.Empty(t, leaf)
}

// TestGraph_SetWeightAndGetEdge checks in-place weight updates.
func TestGraph_SetWeightAndGetEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 7)
	require.NoError(t, err)

	require.NoError(t, g.SetWeight(eid, -4))
	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), e.Weight)

	assert.ErrorIs(t, g.SetWeight("e99", 1), core.ErrEdgeNotFound)
	_, err = g.GetEdge("e99")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	unweighted := core.NewGraph()
	uid, _ := unweighted.AddEdge("A", "B", 0)
	assert.ErrorIs(t, unweighted.SetWeight(uid, 2), core.ErrBadWeight)
}

// TestGraph_Degree counts in/out edges per vertex.
func TestGraph_Degree(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "A", 1)

	in, out, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 2, out)

	_, _, err = g.Degree("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_CloneIsDeep verifies clones share no edge storage with the source.
func TestGraph_CloneIsDeep(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithoutAntiParallel())
	eid, _ := g.AddEdge("A", "B", 5)

	c := g.Clone()
	require.NoError(t, c.SetWeight(eid, 1))

	orig, _ := g.GetEdge(eid)
	assert.Equal(t, int64(5), orig.Weight)
	assert.False(t, c.AntiParallel())

	next, err := c.AddEdge("B", "C", 1)
	require.NoError(t, err)
	assert.Equal(t, "e2", next, "clone continues the edge ID sequence")
}

// TestGraph_ConcurrentAddEdge hammers AddEdge from several goroutines.
func TestGraph_ConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	const workers, perWorker = 8, 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_, _ = g.AddEdge("A", "V"+strconv.Itoa(w*perWorker+i), int64(i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, g.EdgeCount())
}
