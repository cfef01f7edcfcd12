// Package metrics holds the Prometheus collectors reported by the growth engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IterationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sirg_iterations_total",
		Help: "Total number of completed growth iterations.",
	})

	CandidatesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sirg_candidates_generated_total",
		Help: "Total number of candidate graphs generated, labelled by attachment strategy.",
	}, []string{"strategy"})

	AttachAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sirg_attach_attempts",
		Help:    "Node draws needed to find a conflict-free interior selection.",
		Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512, 1024},
	})

	IterationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sirg_iteration_duration_ms",
		Help:    "Wall time of one growth iteration in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 10000},
	})

	GraphNodes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sirg_graph_nodes",
		Help: "Node count of the current surviving graph.",
	})

	ConnectEdges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sirg_connect_edges_total",
		Help: "Total number of edges added by the connecting phase.",
	})

	RunErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sirg_run_errors_total",
		Help: "Total number of failed growth runs, labelled by phase.",
	}, []string{"phase"})
)
