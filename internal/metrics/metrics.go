package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mathcalc_evaluations_total",
			Help: "Total number of evaluated expressions",
		},
		[]string{"status"}, // success, error
	)

	EvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mathcalc_evaluation_duration_seconds",
			Help:    "Postfix evaluation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RegisteredSymbols = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "mathcalc_registered_symbols",
			Help: "Current number of registered symbols per kind",
		},
		[]string{"kind"}, // operator, function, constant
	)

	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mathcalc_queue_depth",
			Help: "Expressions waiting for evaluation",
		},
	)
)

// UpdateSymbolCounts refreshes the per-kind registry gauges.
func UpdateSymbolCounts(operators, functions, constants int) {
	RegisteredSymbols.WithLabelValues("operator").Set(float64(operators))
	RegisteredSymbols.WithLabelValues("function").Set(float64(functions))
	RegisteredSymbols.WithLabelValues("constant").Set(float64(constants))
}
