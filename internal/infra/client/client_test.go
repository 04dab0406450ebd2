package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"newswire/internal/resilience/circuitbreaker"
	"newswire/internal/resilience/retry"
)

// newTestClient builds a client that talks to local test servers without
// the SSRF guard and without multi-second retry delays.
func newTestClient(timeout time.Duration) *Client {
	cfg := DefaultConfig()
	cfg.Timeout = timeout
	cfg.DenyPrivateIPs = false
	return &Client{
		httpClient:     &http.Client{Timeout: timeout},
		config:         cfg,
		circuitBreaker: circuitbreaker.New(circuitbreaker.HeadlineFetchConfig()),
		retryConfig: retry.Config{
			MaxAttempts:  3,
			InitialDelay: 5 * time.Millisecond,
			MaxDelay:     20 * time.Millisecond,
			Multiplier:   2.0,
		},
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

func TestClient_FetchJSON_success(t *testing.T) {
	var gotUserAgent, gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":1,"articles":[]}`))
	}))
	defer server.Close()

	c := newTestClient(5 * time.Second)
	document, err := c.FetchJSON(context.Background(), server.URL)

	require.NoError(t, err)
	asMap, ok := document.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", asMap["status"])
	assert.Equal(t, float64(1), asMap["totalResults"], "numbers decode as float64")
	assert.Equal(t, "newswire/1.0", gotUserAgent)
	assert.Equal(t, "application/json", gotAccept)
}

func TestClient_FetchJSON_retriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	}))
	defer server.Close()

	c := newTestClient(5 * time.Second)
	document, err := c.FetchJSON(context.Background(), server.URL)

	require.NoError(t, err)
	assert.NotNil(t, document)
	assert.Equal(t, int32(3), calls.Load(), "5xx responses are retried")
}

func TestClient_FetchJSON_clientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestClient(5 * time.Second)
	_, err := c.FetchJSON(context.Background(), server.URL)

	require.Error(t, err)
	var httpErr *retry.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load(), "4xx responses fail immediately")
}

func TestClient_FetchJSON_malformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ok", truncated`))
	}))
	defer server.Close()

	c := newTestClient(5 * time.Second)
	_, err := c.FetchJSON(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response body")
}

func TestClient_FetchJSON_invalidURL(t *testing.T) {
	c := newTestClient(time.Second)

	_, err := c.FetchJSON(context.Background(), "ftp://news.example.com/feed")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidURL)
}

func TestClient_FetchJSON_contextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := newTestClient(5 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.FetchJSON(ctx, server.URL)

	require.Error(t, err)
}

func TestNew_appliesBodyCapDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBodyBytes = 0

	c := New(cfg)

	assert.Equal(t, int64(DefaultMaxBodyBytes), c.config.MaxBodyBytes)
}
