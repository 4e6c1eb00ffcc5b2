// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Params, Range, Graph and sentinel errors.

package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/relaxviz/core"
)

// ErrConstraintUnsatisfiable indicates that the requested node/edge/negative
// counts cannot be met without breaking the graph invariants, either at
// validation time or because a sampling loop exhausted MaxAttempts.
var ErrConstraintUnsatisfiable = errors.New("generator: generation constraint unsatisfiable")

// Defaults for the six-node demo.
const (
	DefaultNodeCount   = 6
	DefaultAlphabet    = "ABCDEF"
	DefaultMaxAttempts = 10_000
)

// Range is a closed integer interval [Min, Max].
type Range struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// String renders the interval as "[min,max]".
func (r Range) String() string { return fmt.Sprintf("[%d,%d]", r.Min, r.Max) }

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

// Params configures one generation.
type Params struct {
	NodeCount       int    `yaml:"node_count" json:"node_count"`
	Alphabet        string `yaml:"alphabet" json:"alphabet"`
	Edges           Range  `yaml:"edges" json:"edges"`
	Negatives       Range  `yaml:"negatives" json:"negatives"`
	CycleWeights    Range  `yaml:"cycle_weights" json:"cycle_weights"`
	ExtraWeights    Range  `yaml:"extra_weights" json:"extra_weights"`
	NegativeWeights Range  `yaml:"negative_weights" json:"negative_weights"`
	MaxAttempts     int    `yaml:"max_attempts" json:"max_attempts"`
}

// DefaultParams returns the six-node demo configuration.
func DefaultParams() Params {
	return Params{
		NodeCount:       DefaultNodeCount,
		Alphabet:        DefaultAlphabet,
		Edges:           Range{Min: 10, Max: 13},
		Negatives:       Range{Min: 1, Max: 3},
		CycleWeights:    Range{Min: 1, Max: 99},
		ExtraWeights:    Range{Min: 0, Max: 99},
		NegativeWeights: Range{Min: -10, Max: -1},
		MaxAttempts:     DefaultMaxAttempts,
	}
}

// Graph is one generated demo graph. Topology is fixed after Generate returns.
type Graph struct {
	*core.Graph

	// Cycle is the shuffled vertex order closed into the connectivity ring:
	// Cycle[i] → Cycle[(i+1)%len(Cycle)] is an edge for every i.
	Cycle []string

	// Seed reproduces this graph with the same Params.
	Seed int64

	// Target is the edge count drawn from Params.Edges.
	Target int

	// Negatives is the negative-edge count drawn from Params.Negatives.
	Negatives int
}

// DefaultSource is the vertex a fresh run starts from: the first vertex of
// the generation order. Empty for a nil or cycle-less graph.
func (g *Graph) DefaultSource() string {
	if g == nil || len(g.Cycle) == 0 {
		return ""
	}

	return g.Cycle[0]
}

// Clone returns a deep copy whose weights can be changed without touching g.
func (g *Graph) Clone() *Graph {
	if g == nil {
		return nil
	}
	c := *g
	c.Graph = g.Graph.Clone()
	c.Cycle = append([]string(nil), g.Cycle...)

	return &c
}
