// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: queue-driven breadth-first walk and the reachability helpers built on it.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/relaxviz/core"
)

// queueItem pairs a vertex ID with its hop count.
type queueItem struct {
	id   string
	hops int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS walks g from startID following edge direction.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input and
// ctx.Err() on cancellation.
func BFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, startID)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start: startID,
			Order: make([]string, 0, n),
			Hops:  make(map[string]int, n),
		},
	}
	w.enqueue(startID, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id as discovered at hops.
func (w *walker) enqueue(id string, hops int) {
	w.res.Hops[id] = hops
	w.queue = append(w.queue, queueItem{id: id, hops: hops})
}

// loop drains the queue in FIFO order.
func (w *walker) loop() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues every undiscovered successor of item.
func (w *walker) expand(item queueItem) error {
	next, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, to := range next {
		if _, seen := w.res.Hops[to]; seen {
			continue
		}
		w.enqueue(to, item.hops+1)
	}

	return nil
}

// Unreached returns, in sorted order, the vertices of g that startID cannot
// reach along directed edges.
func Unreached(g *core.Graph, startID string, opts ...Option) ([]string, error) {
	res, err := BFS(g, startID, opts...)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, id := range g.Vertices() {
		if !res.Reached(id) {
			out = append(out, id)
		}
	}

	return out, nil
}

// StronglyConnected reports whether every vertex of g reaches every other.
// It runs one BFS from a root on g and one on its reverse. An empty graph is
// trivially strongly connected.
func StronglyConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	ids := g.Vertices()
	if len(ids) == 0 {
		return true, nil
	}
	root := ids[0]
	if missing, err := Unreached(g, root); err != nil || len(missing) > 0 {
		return false, err
	}

	rev := core.NewGraph()
	for _, id := range ids {
		if err := rev.AddVertex(id); err != nil {
			return false, err
		}
	}
	for _, e := range g.Edges() {
		if _, err := rev.AddEdge(e.To, e.From, 0); err != nil {
			return false, err
		}
	}
	missing, err := Unreached(rev, root)
	if err != nil {
		return false, err
	}

	return len(missing) == 0, nil
}
