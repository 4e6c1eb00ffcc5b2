// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: heap-driven runner for single-source shortest paths.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/relaxviz/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map when WithReturnPath is set, nil otherwise.
//     prev[v] == "" for the source and for unreachable v.
//   - err:  one of the sentinel errors on invalid input.
//
// Preconditions, checked in order:
//  1. Source non-empty (ErrEmptySource).
//  2. g non-nil (ErrNilGraph).
//  3. g weighted (ErrUnweightedGraph).
//  4. Source present (ErrVertexNotFound).
//  5. No negative edge (ErrNegativeWeight).
//  6. Σw below math.MaxInt64 (ErrWeightOverflow).
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Fail fast on negative weights; every shortest path is simple, so
	// Σw bounds every distance.
	var sum int64
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		if e.Weight > math.MaxInt64-1-sum {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrWeightOverflow, e.From, e.To, e.Weight)
		}
		sum += e.Weight
	}

	// 4) Run
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

// init sets every distance to +∞ and pushes Source at 0.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.MaxInt64
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process settles vertices in increasing distance until the heap drains.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax improves every successor of the settled vertex u.
func (r *runner) relax(u string) error {
	out, err := r.g.Outgoing(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get edges of %q: %w", u, err)
	}
	for _, e := range out {
		nd := r.dist[u] + e.Weight
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}

	return nil
}

// nodeItem is one (vertex, tentative distance) heap entry.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Outdated entries stay in
// the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
