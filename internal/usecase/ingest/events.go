package ingest

import (
	"context"
	"log/slog"
	"sync"

	"newswire/internal/observability/metrics"
)

// FailureKind classifies a recoverable per-item failure.
type FailureKind string

// Failure classifications emitted by the builders and the assembler.
const (
	// KindAuthorMalformed marks an author field that was present but could
	// not be split into exactly two name components.
	KindAuthorMalformed FailureKind = "author_malformed"

	// KindSourceMalformed marks a source fragment missing the id or name
	// key, or carrying them with the wrong types.
	KindSourceMalformed FailureKind = "source_malformed"

	// KindArticleMalformed marks an article fragment whose shape matched
	// but whose strict fields failed type checks or timestamp parsing.
	KindArticleMalformed FailureKind = "article_malformed"

	// KindUnrecognizedShape marks an article fragment that did not match
	// the expected shape at all. This usually signals a stale schema
	// rather than bad data.
	KindUnrecognizedShape FailureKind = "unrecognized_article_shape"
)

// FailureEvent describes one rejected fragment. The batch always completes;
// these events are the only trace a dropped item leaves behind.
type FailureEvent struct {
	Kind FailureKind
	Raw  any
}

// EventSink receives recoverable failure events from the parsing pipeline.
// Implementations must be safe for concurrent use: parallel assembly emits
// from multiple goroutines.
type EventSink interface {
	Emit(ctx context.Context, event FailureEvent)
}

// SlogSink logs failure events as structured records. Soft failures are
// diagnostics, not errors, so they log at Info level.
type SlogSink struct {
	Logger *slog.Logger
}

// NewSlogSink creates a SlogSink writing to the given logger.
// A nil logger falls back to slog.Default at emit time.
func NewSlogSink(logger *slog.Logger) *SlogSink {
	return &SlogSink{Logger: logger}
}

// Emit logs the event with its classification and the offending fragment.
func (s *SlogSink) Emit(ctx context.Context, event FailureEvent) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "dropped malformed fragment",
		slog.String("kind", string(event.Kind)),
		slog.Any("raw", event.Raw))
}

// MetricsSink counts failure events in Prometheus, labeled by kind.
type MetricsSink struct{}

// Emit increments the drop counter for the event's classification.
func (MetricsSink) Emit(_ context.Context, event FailureEvent) {
	metrics.RecordFragmentDropped(string(event.Kind))
}

// MultiSink fans each event out to every sink in order.
type MultiSink []EventSink

// Emit forwards the event to all member sinks.
func (m MultiSink) Emit(ctx context.Context, event FailureEvent) {
	for _, sink := range m {
		sink.Emit(ctx, event)
	}
}

// NopSink discards all events. Useful in tests and benchmarks.
type NopSink struct{}

// Emit does nothing.
func (NopSink) Emit(context.Context, FailureEvent) {}

// CountingSink tallies failure events per kind. It is safe for concurrent
// use and is typically combined with other sinks through a MultiSink to
// build per-run drop summaries.
type CountingSink struct {
	mu     sync.Mutex
	counts map[FailureKind]int
}

// NewCountingSink creates an empty CountingSink.
func NewCountingSink() *CountingSink {
	return &CountingSink{counts: make(map[FailureKind]int)}
}

// Emit increments the tally for the event's kind.
func (c *CountingSink) Emit(_ context.Context, event FailureEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[event.Kind]++
}

// Counts returns a snapshot of the tallies per kind.
func (c *CountingSink) Counts() map[FailureKind]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[FailureKind]int, len(c.counts))
	for kind, n := range c.counts {
		out[kind] = n
	}
	return out
}

// Total returns the total number of events seen.
func (c *CountingSink) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}
