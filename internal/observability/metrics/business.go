package metrics

import "time"

// Response outcome labels for RecordResponseOutcome.
const (
	OutcomeOK           = "ok"
	OutcomeAPIError     = "api_error"
	OutcomeUnrecognized = "unrecognized"
)

// RecordResponseOutcome records the classification outcome of one parsed
// top-level response.
func RecordResponseOutcome(outcome string) {
	ResponsesParsedTotal.WithLabelValues(outcome).Inc()
}

// RecordRecordsAssembled records how many article records survived
// validation in one response.
func RecordRecordsAssembled(count int) {
	RecordsAssembledTotal.Add(float64(count))
}

// RecordFragmentDropped records one rejected fragment by its failure
// classification (author_malformed, source_malformed, article_malformed,
// unrecognized_article_shape).
func RecordFragmentDropped(kind string) {
	FragmentsDroppedTotal.WithLabelValues(kind).Inc()
}

// RecordParseDuration records the time taken to classify and assemble one
// response document.
func RecordParseDuration(duration time.Duration) {
	ParseDuration.Observe(duration.Seconds())
}

// RecordFetch records one upstream fetch attempt with its duration.
func RecordFetch(duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	FetchAttemptsTotal.WithLabelValues(status).Inc()
	FetchDuration.Observe(duration.Seconds())
}

// RecordIngestRun records one completed scheduled ingest run.
func RecordIngestRun(duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	IngestRunsTotal.WithLabelValues(status).Inc()
	IngestRunDuration.Observe(duration.Seconds())
}

// RecordConfigFallback records that a configuration value failed validation
// and its default was applied.
func RecordConfigFallback(key string) {
	ConfigFallbacksTotal.WithLabelValues(key).Inc()
}
