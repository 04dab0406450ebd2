// Package notify dispatches ingest run summaries to notification channels.
// Delivery is asynchronous and best-effort: a failing channel is logged and
// never fails the ingest run that produced the summary.
package notify

import (
	"context"
	"time"
)

// RunSummary describes the outcome of one ingest run against one endpoint.
type RunSummary struct {
	RunID        string
	Endpoint     string
	TotalResults int
	Records      int
	Dropped      int
	Duration     time.Duration

	// Err is set when the run failed fatally (transport failure or a
	// top-level ResponseError). Successful runs leave it nil even when
	// items were dropped.
	Err error
}

// Failed reports whether the run ended with a fatal error.
func (s RunSummary) Failed() bool {
	return s.Err != nil
}

// Channel delivers a run summary to one destination (Slack, Discord, ...).
// Implementations handle their own rate limiting and retries.
type Channel interface {
	// Name identifies the channel in logs and health reporting.
	Name() string

	// Notify delivers the summary. It must respect ctx cancellation and
	// return a non-nil error only after exhausting its own retries.
	Notify(ctx context.Context, summary RunSummary) error
}
