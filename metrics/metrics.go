// Package metrics defines Prometheus metrics for valvenet solves.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SolveDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "valvenet_solve_duration_seconds",
			Help:    "Solve duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	SearchStatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valvenet_search_states_total",
			Help: "Total search states expanded by the budgeted maximizer",
		},
		[]string{"mode"},
	)

	PartitionsEvaluatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valvenet_partitions_evaluated_total",
			Help: "Total dual-agent splits scored, by strategy",
		},
		[]string{"strategy"},
	)

	GraphNodes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "valvenet_graph_nodes",
			Help: "Node count of the most recently loaded graph",
		},
	)

	ActiveNodes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "valvenet_active_nodes",
			Help: "Active (nonzero reward) node count of the most recently loaded graph",
		},
	)
)

func init() {
	prometheus.MustRegister(
		SolveDuration, SearchStatesTotal, PartitionsEvaluatedTotal,
		GraphNodes, ActiveNodes,
	)
}

// WriteFile dumps every metric of the default registry to path in the
// Prometheus text exposition format (node_exporter textfile collector).
func WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
