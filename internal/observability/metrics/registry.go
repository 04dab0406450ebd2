// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Parsing metrics track response classification and record assembly.
var (
	// ResponsesParsedTotal counts parsed top-level responses by outcome
	ResponsesParsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "responses_parsed_total",
			Help: "Total number of parsed API responses by outcome",
		},
		[]string{"outcome"},
	)

	// RecordsAssembledTotal counts article records that survived validation
	RecordsAssembledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "records_assembled_total",
			Help: "Total number of article records assembled from responses",
		},
	)

	// FragmentsDroppedTotal counts rejected fragments by failure classification
	FragmentsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fragments_dropped_total",
			Help: "Total number of fragments dropped during record assembly",
		},
		[]string{"kind"},
	)

	// ParseDuration measures response parsing duration in seconds
	ParseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parse_duration_seconds",
			Help:    "API response parsing duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
	)
)

// Transport metrics track the upstream fetch collaborator.
var (
	// FetchAttemptsTotal counts upstream fetches by status
	FetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fetch_attempts_total",
			Help: "Total number of upstream fetch attempts by status",
		},
		[]string{"status"},
	)

	// FetchDuration measures upstream fetch duration in seconds
	FetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fetch_duration_seconds",
			Help:    "Upstream fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Worker metrics track scheduled ingest runs.
var (
	// IngestRunsTotal counts completed ingest runs by status
	IngestRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_runs_total",
			Help: "Total number of ingest runs by status",
		},
		[]string{"status"},
	)

	// IngestRunDuration measures complete ingest run duration in seconds
	IngestRunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ingest_run_duration_seconds",
			Help:    "Ingest run duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
	)

	// ConfigFallbacksTotal counts configuration values replaced by defaults
	ConfigFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "config_fallbacks_total",
			Help: "Total number of configuration fallbacks applied",
		},
		[]string{"key"},
	)
)
