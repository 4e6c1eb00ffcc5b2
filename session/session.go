// SPDX-License-Identifier: MIT
//
// File: session.go
// Role: Session state, graph generation and source selection.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/katalvlaran/relaxviz/bellmanford"
	"github.com/katalvlaran/relaxviz/core"
	"github.com/katalvlaran/relaxviz/generator"
	"github.com/katalvlaran/relaxviz/internal/metrics"
)

// Sentinel errors returned by Session operations.
var (
	// ErrNoGraph indicates an operation that needs a generated graph.
	ErrNoGraph = errors.New("session: no graph generated")

	// ErrRunInProgress indicates Run was called while another run is active.
	ErrRunInProgress = errors.New("session: run in progress")
)

// GraphObserver is notified after every successful generation.
type GraphObserver interface {
	OnGraphGenerated(g *generator.Graph)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(s *Session) { s.log = l }
}

// WithGraphObserver registers obs for OnGraphGenerated. Panics on nil.
func WithGraphObserver(obs GraphObserver) Option {
	if obs == nil {
		panic("session: WithGraphObserver(nil)")
	}
	return func(s *Session) { s.graphObs = append(s.graphObs, obs) }
}

// Session is one visualizer's state. The zero value is not usable; call New.
type Session struct {
	mu       sync.Mutex
	log      *slog.Logger
	params   generator.Params
	graphObs []GraphObserver

	graph  *generator.Graph
	source string
	order  []core.Edge

	// Current or last run.
	runID   string
	cancel  context.CancelFunc // non-nil while a run is active
	state   bellmanford.State
	round   int
	total   int
	outcome bellmanford.Outcome
}

// New returns an empty session generating with params.
func New(params generator.Params, opts ...Option) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s := &Session{log: slog.Default(), params: params}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Params returns the parameters used by the next Generate.
func (s *Session) Params() generator.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// SetParams validates and stores params for subsequent generations.
// The current graph is kept.
func (s *Session) SetParams(p generator.Params) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.mu.Lock()
	s.params = p
	s.mu.Unlock()
	s.log.Info("generator params updated", "nodes", p.NodeCount, "edges", p.Edges.String())
	return nil
}

// Generate replaces the graph wholesale and returns a copy of it. A nil seed
// draws a fresh one. Any in-flight run is cancelled; the source resets to the
// graph's default.
func (s *Session) Generate(ctx context.Context, seed *int64) (*generator.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	p := s.params
	s.mu.Unlock()

	opts := []generator.Option{generator.WithLogger(s.log)}
	if seed != nil {
		opts = append(opts, generator.WithSeed(*seed))
	}
	g, err := generator.Generate(p, opts...)
	if err != nil {
		metrics.GenerationFailures.Inc()
		return nil, fmt.Errorf("session: %w", err)
	}
	source := g.DefaultSource()
	order, err := bellmanford.TraversalOrder(g.Graph, source)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s.mu.Lock()
	s.abortLocked()
	s.graph, s.source, s.order = g, source, order
	s.clearRunLocked()
	observers := append([]GraphObserver(nil), s.graphObs...)
	s.mu.Unlock()

	metrics.GraphsGenerated.Inc()
	s.log.Info("graph generated",
		"seed", g.Seed, "vertices", g.VertexCount(), "edges", g.EdgeCount(), "source", source)
	view := g.Clone()
	for _, obs := range observers {
		obs.OnGraphGenerated(view)
	}
	return view, nil
}

// Graph returns a copy of the current graph, or ErrNoGraph. Runs keep using
// the session's own graph whatever the caller does with the copy.
func (s *Session) Graph() (*generator.Graph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.graph == nil {
		return nil, ErrNoGraph
	}
	return s.graph.Clone(), nil
}

// SetSource selects the run source and recomputes the traversal order.
// Input is trimmed and, failing an exact match, upper-cased.
func (s *Session) SetSource(id string) ([]core.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.graph == nil {
		return nil, ErrNoGraph
	}
	src, order, err := s.resolveLocked(id)
	if err != nil {
		return nil, err
	}
	s.source, s.order = src, order
	return append([]core.Edge(nil), order...), nil
}

// Source returns the currently selected source ("" without a graph).
func (s *Session) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Order returns the resolved source ID and its traversal order without
// changing the selected source. An empty id means the selected source.
func (s *Session) Order(id string) (string, []core.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.graph == nil {
		return "", nil, ErrNoGraph
	}
	if id == "" {
		return s.source, append([]core.Edge(nil), s.order...), nil
	}
	return s.resolveLocked(id)
}

// Reset drops the graph and any run, cancelling it if active.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abortLocked()
	s.graph, s.source, s.order = nil, "", nil
	s.clearRunLocked()
	s.log.Info("session reset")
}

// resolveLocked normalizes id and builds its traversal order.
func (s *Session) resolveLocked(id string) (string, []core.Edge, error) {
	src := strings.TrimSpace(id)
	if !s.graph.HasVertex(src) {
		if up := strings.ToUpper(src); s.graph.HasVertex(up) {
			src = up
		}
	}
	order, err := bellmanford.TraversalOrder(s.graph.Graph, src)
	if err != nil {
		if errors.Is(err, bellmanford.ErrEmptySource) {
			return "", nil, fmt.Errorf("%w: empty source", bellmanford.ErrInvalidSource)
		}
		return "", nil, err
	}
	return src, order, nil
}

// abortLocked cancels the active run and detaches it from the session.
func (s *Session) abortLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) clearRunLocked() {
	s.runID = ""
	s.state = bellmanford.StateInit
	s.round, s.total = 0, 0
	s.outcome = bellmanford.OutcomeNone
}
