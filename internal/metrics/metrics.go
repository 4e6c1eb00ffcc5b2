// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GraphsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relaxviz_graphs_generated_total",
		Help: "Total number of graphs generated successfully.",
	})

	GenerationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relaxviz_generation_failures_total",
		Help: "Total number of generations that could not satisfy their constraints.",
	})

	RunsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relaxviz_runs_started_total",
		Help: "Total number of shortest-path runs started.",
	})

	RunsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "relaxviz_runs_completed_total",
		Help: "Total number of runs finished, labelled by outcome (or cancelled).",
	}, []string{"outcome"})

	EdgesExamined = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relaxviz_edges_examined_total",
		Help: "Total number of edge examinations across all runs.",
	})

	Relaxations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "relaxviz_relaxations_total",
		Help: "Total number of edge examinations that lowered a distance.",
	})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "relaxviz_run_duration_ms",
		Help:    "Wall-clock run duration in milliseconds, pacing included.",
		Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000, 30000, 60000},
	})

	ActiveRuns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "relaxviz_active_runs",
		Help: "Number of runs currently in progress.",
	})
)
