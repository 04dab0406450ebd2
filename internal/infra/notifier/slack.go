package notifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"newswire/internal/resilience/retry"
	"newswire/internal/usecase/notify"
)

// SlackConfig contains configuration for Slack webhook notifications.
type SlackConfig struct {
	// Enabled indicates whether Slack notifications are enabled
	Enabled bool

	// WebhookURL is the Slack Incoming Webhook URL (includes authentication token)
	WebhookURL string

	// Timeout is the HTTP request timeout for Slack API calls
	Timeout time.Duration
}

// SlackChannel sends run summaries to Slack via Incoming Webhook.
// Slack webhooks allow roughly one message per second, so the channel
// rate-limits itself to that.
type SlackChannel struct {
	config      SlackConfig
	httpClient  *http.Client
	limiter     *rate.Limiter
	retryConfig retry.Config
}

// NewSlackChannel creates a SlackChannel with the specified configuration.
func NewSlackChannel(config SlackConfig) *SlackChannel {
	return &SlackChannel{
		config:      config,
		httpClient:  &http.Client{Timeout: config.Timeout},
		limiter:     rate.NewLimiter(1.0, 1),
		retryConfig: retry.WebhookConfig(),
	}
}

// slackPayload is the minimal Incoming Webhook message body.
type slackPayload struct {
	Text string `json:"text"`
}

// Name identifies the channel in logs.
func (s *SlackChannel) Name() string {
	return "slack"
}

// Notify posts the run summary to the webhook, waiting on the rate limiter
// and retrying transient failures.
func (s *SlackChannel) Notify(ctx context.Context, summary notify.RunSummary) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("slack rate limit wait: %w", err)
	}

	payload := slackPayload{Text: summaryText(summary)}
	return retry.WithBackoff(ctx, s.retryConfig, func() error {
		return postWebhook(ctx, s.httpClient, s.config.WebhookURL, payload)
	})
}
