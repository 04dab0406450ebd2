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

// discordMaxContentLength is Discord's hard limit on message content.
const discordMaxContentLength = 2000

// DiscordConfig contains configuration for Discord webhook notifications.
type DiscordConfig struct {
	// Enabled indicates whether Discord notifications are enabled
	Enabled bool

	// WebhookURL is the Discord webhook URL
	WebhookURL string

	// Timeout is the HTTP request timeout for Discord API calls
	Timeout time.Duration
}

// DiscordChannel sends run summaries to Discord via webhook.
type DiscordChannel struct {
	config      DiscordConfig
	httpClient  *http.Client
	limiter     *rate.Limiter
	retryConfig retry.Config
}

// NewDiscordChannel creates a DiscordChannel with the specified configuration.
func NewDiscordChannel(config DiscordConfig) *DiscordChannel {
	return &DiscordChannel{
		config:      config,
		httpClient:  &http.Client{Timeout: config.Timeout},
		limiter:     rate.NewLimiter(2.0, 5),
		retryConfig: retry.WebhookConfig(),
	}
}

// discordPayload is the minimal webhook message body.
type discordPayload struct {
	Content string `json:"content"`
}

// Name identifies the channel in logs.
func (d *DiscordChannel) Name() string {
	return "discord"
}

// Notify posts the run summary to the webhook, waiting on the rate limiter
// and retrying transient failures.
func (d *DiscordChannel) Notify(ctx context.Context, summary notify.RunSummary) error {
	if err := d.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("discord rate limit wait: %w", err)
	}

	content := summaryText(summary)
	if len(content) > discordMaxContentLength {
		content = content[:discordMaxContentLength-3] + "..."
	}

	payload := discordPayload{Content: content}
	return retry.WithBackoff(ctx, d.retryConfig, func() error {
		return postWebhook(ctx, d.httpClient, d.config.WebhookURL, payload)
	})
}
