package ingest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswire/internal/usecase/ingest"
	"newswire/tests/fixtures"
)

// stubFetcher hands back a canned document or a forced error.
type stubFetcher struct {
	document any
	err      error
	gotURL   string
}

func (s *stubFetcher) FetchJSON(_ context.Context, url string) (any, error) {
	s.gotURL = url
	return s.document, s.err
}

func TestService_FetchTopHeadlines_success(t *testing.T) {
	stub := &stubFetcher{
		document: fixtures.HeadlinesResponse(2,
			fixtures.ValidArticle(nil),
			fixtures.ValidArticle(map[string]any{"title": "second"}),
		),
	}
	svc := ingest.NewService(stub, ingest.NewParser(ingest.NopSink{}))

	result, err := svc.FetchTopHeadlines(context.Background(), "https://news.example.com/v2/top-headlines")

	require.NoError(t, err)
	assert.Equal(t, "https://news.example.com/v2/top-headlines", stub.gotURL)
	assert.Equal(t, 2, result.Len())
	assert.Equal(t, 2, result.Metadata().TotalResults)
}

func TestService_FetchTopHeadlines_transportError(t *testing.T) {
	transportErr := errors.New("connection refused")
	stub := &stubFetcher{err: transportErr}
	svc := ingest.NewService(stub, ingest.NewParser(ingest.NopSink{}))

	result, err := svc.FetchTopHeadlines(context.Background(), "https://news.example.com")

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, transportErr, "transport errors must stay unwrappable")
}

func TestService_FetchTopHeadlines_apiError(t *testing.T) {
	stub := &stubFetcher{document: fixtures.ErrorResponse("rateLimited", "too many requests")}
	svc := ingest.NewService(stub, ingest.NewParser(ingest.NopSink{}))

	result, err := svc.FetchTopHeadlines(context.Background(), "https://news.example.com")

	assert.Nil(t, result)
	var respErr *ingest.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "rateLimited", respErr.Code)
	assert.False(t, respErr.Unrecognized())
}

func TestService_Parse_unrecognizedDocument(t *testing.T) {
	svc := ingest.NewService(&stubFetcher{}, ingest.NewParser(ingest.NopSink{}))

	result, err := svc.Parse(context.Background(), "totally not a response")

	assert.Nil(t, result)
	var respErr *ingest.ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.True(t, respErr.Unrecognized())
}
