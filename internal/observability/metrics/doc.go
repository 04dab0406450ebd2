// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - Parsing metrics (response outcomes, assembled records, dropped fragments)
//   - Transport metrics (fetch attempts and durations)
//   - Worker metrics (ingest runs, configuration fallbacks)
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint of the worker's metrics server.
//
// Example usage:
//
//	import "newswire/internal/observability/metrics"
//
//	func parseOne(document any) {
//	    start := time.Now()
//	    // ... parse the document ...
//	    metrics.RecordParseDuration(time.Since(start))
//	    metrics.RecordResponseOutcome(metrics.OutcomeOK)
//	}
package metrics
