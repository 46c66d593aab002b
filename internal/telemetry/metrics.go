package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ComparisonsTotal counts comparison runs by outcome: success,
	// validation_error, or provider_error.
	ComparisonsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchlens_comparisons_total",
			Help: "Total number of comparison runs",
		},
		[]string{"outcome"},
	)

	// ComparisonDuration tracks how long a full comparison takes,
	// including both outbound provider calls.
	ComparisonDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "searchlens_comparison_duration_seconds",
			Help:    "Comparison execution duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// ProviderErrorsTotal counts upstream failures by kind: fatal,
	// partial, answer, or traditional.
	ProviderErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchlens_provider_errors_total",
			Help: "Total number of upstream provider errors",
		},
		[]string{"kind"},
	)
)
