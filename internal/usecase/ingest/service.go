package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newswire/internal/domain/entity"
	"newswire/internal/observability/metrics"
	"newswire/internal/observability/tracing"
)

// Fetcher supplies a decoded JSON document obtained via HTTP GET from a
// caller-supplied URL. Network concerns (timeouts, retries, status codes)
// belong behind this interface, not to the parsing core.
type Fetcher interface {
	FetchJSON(ctx context.Context, url string) (any, error)
}

// Service wires the transport collaborator to the parsing pipeline and
// records parse metrics around it.
type Service struct {
	Fetcher Fetcher
	Parser  *Parser
}

// NewService creates an ingest Service from a transport collaborator and a
// configured parser.
func NewService(fetcher Fetcher, parser *Parser) Service {
	return Service{Fetcher: fetcher, Parser: parser}
}

// FetchTopHeadlines retrieves the document at url and parses it into an
// APIResult. Transport failures and fatal response classifications are
// returned as errors; per-item failures only shorten the record list.
func (s Service) FetchTopHeadlines(ctx context.Context, url string) (*entity.APIResult, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "ingest.FetchTopHeadlines")
	defer span.End()

	start := time.Now()
	document, err := s.Fetcher.FetchJSON(ctx, url)
	metrics.RecordFetch(time.Since(start), err == nil)
	if err != nil {
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}

	return s.Parse(ctx, document)
}

// Parse runs the classifier over an already-fetched document, recording
// parse duration and outcome metrics.
func (s Service) Parse(ctx context.Context, document any) (*entity.APIResult, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "ingest.Parse")
	defer span.End()

	start := time.Now()
	result, err := s.Parser.ParseResponse(ctx, document)
	metrics.RecordParseDuration(time.Since(start))

	if err != nil {
		outcome := metrics.OutcomeAPIError
		var respErr *ResponseError
		if errors.As(err, &respErr) && respErr.Unrecognized() {
			outcome = metrics.OutcomeUnrecognized
		}
		metrics.RecordResponseOutcome(outcome)
		return nil, err
	}

	metrics.RecordResponseOutcome(metrics.OutcomeOK)
	metrics.RecordRecordsAssembled(result.Len())
	return result, nil
}
