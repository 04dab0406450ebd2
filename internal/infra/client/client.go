// Package client implements the HTTP transport collaborator for the
// ingestion pipeline. It retrieves a raw JSON document from a headline
// endpoint via HTTP GET and hands the decoded value to the parsing core;
// retries, circuit breaking, and rate limiting all live here, not in the
// parser.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"newswire/internal/resilience/circuitbreaker"
	"newswire/internal/resilience/retry"
)

// DefaultMaxBodyBytes limits response body reads to prevent memory
// exhaustion from a misbehaving endpoint.
const DefaultMaxBodyBytes = 10 << 20 // 10 MiB

// Config holds configuration for the headline endpoint client.
type Config struct {
	// Timeout is the HTTP request timeout for one attempt
	Timeout time.Duration

	// UserAgent is sent with every request
	UserAgent string

	// MaxBodyBytes caps how much of the response body is read
	MaxBodyBytes int64

	// RequestsPerSecond is the sustained client-side request rate
	RequestsPerSecond float64

	// Burst is the token bucket burst capacity
	Burst int

	// DenyPrivateIPs blocks requests to private, loopback, and link-local
	// addresses. Disable only in tests against local servers.
	DenyPrivateIPs bool
}

// DefaultConfig returns a Config suitable for public news endpoints.
func DefaultConfig() Config {
	return Config{
		Timeout:           30 * time.Second,
		UserAgent:         "newswire/1.0",
		MaxBodyBytes:      DefaultMaxBodyBytes,
		RequestsPerSecond: 2.0,
		Burst:             5,
		DenyPrivateIPs:    true,
	}
}

// Client fetches and decodes JSON documents from headline endpoints.
// It is safe for concurrent use.
type Client struct {
	httpClient     *http.Client
	config         Config
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	limiter        *rate.Limiter
}

// New creates a Client with the given configuration. Circuit breaker and
// retry behavior follow the headline-fetch profiles.
func New(cfg Config) *Client {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		config:         cfg,
		circuitBreaker: circuitbreaker.New(circuitbreaker.HeadlineFetchConfig()),
		retryConfig:    retry.HeadlineFetchConfig(),
		limiter:        rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}

// FetchJSON retrieves the document at url and decodes the response body as
// JSON. The decoded value is handed to the caller untyped; classification
// and validation are the parser's job.
func (c *Client) FetchJSON(ctx context.Context, url string) (any, error) {
	if err := validateURL(url, c.config.DenyPrivateIPs); err != nil {
		return nil, fmt.Errorf("URL validation failed: %w", err)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var document any

	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		result, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doFetch(ctx, url)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("headline fetch circuit breaker open, request rejected",
					slog.String("url", url),
					slog.String("state", c.circuitBreaker.State().String()))
			}
			return err
		}
		document = result
		return nil
	})
	if retryErr != nil {
		return nil, retryErr
	}

	return document, nil
}

// doFetch performs one GET attempt without retry or circuit breaker.
func (c *Client) doFetch(ctx context.Context, url string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status: %s", resp.Status),
		}
	}

	limitedReader := io.LimitReader(resp.Body, c.config.MaxBodyBytes)
	var document any
	if err := json.NewDecoder(limitedReader).Decode(&document); err != nil {
		return nil, fmt.Errorf("decode response body: %w", err)
	}

	return document, nil
}
