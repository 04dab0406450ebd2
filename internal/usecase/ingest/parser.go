package ingest

import "context"

// Parser validates raw API documents and assembles typed records from them.
// It holds no state across calls: parsing the same document twice yields
// structurally equal results. The zero value is usable and discards failure
// diagnostics.
type Parser struct {
	events      EventSink
	parallelism int
}

// NewParser creates a Parser that reports recoverable failures to the given
// sink. A nil sink discards the events.
func NewParser(events EventSink) *Parser {
	return &Parser{events: events}
}

// WithParallelism returns a copy of the parser that assembles article
// fragments across up to n concurrent workers. Record order in the result
// always mirrors the input array regardless of execution order. Values of
// n below 2 keep assembly sequential.
func (p *Parser) WithParallelism(n int) *Parser {
	clone := *p
	clone.parallelism = n
	return &clone
}

func (p *Parser) emit(ctx context.Context, kind FailureKind, raw any) {
	if p.events == nil {
		return
	}
	p.events.Emit(ctx, FailureEvent{Kind: kind, Raw: raw})
}
