package notifier

import (
	"time"

	"newswire/pkg/config"
)

// LoadSlackConfigFromEnv loads Slack webhook configuration from environment
// variables. The channel is enabled only when both NOTIFY_SLACK_ENABLED is
// true and a webhook URL is set.
//
// Environment variables:
//   - NOTIFY_SLACK_ENABLED: enable Slack notifications (default: false)
//   - NOTIFY_SLACK_WEBHOOK_URL: Slack Incoming Webhook URL
//   - NOTIFY_SLACK_TIMEOUT: HTTP timeout for webhook calls (default: 10s)
func LoadSlackConfigFromEnv() SlackConfig {
	cfg := SlackConfig{
		Enabled:    config.GetEnvBool("NOTIFY_SLACK_ENABLED", false),
		WebhookURL: config.GetEnvString("NOTIFY_SLACK_WEBHOOK_URL", ""),
		Timeout:    config.GetEnvDuration("NOTIFY_SLACK_TIMEOUT", 10*time.Second),
	}
	if cfg.WebhookURL == "" {
		cfg.Enabled = false
	}
	return cfg
}

// LoadDiscordConfigFromEnv loads Discord webhook configuration from
// environment variables, with the same enablement rule as Slack.
//
// Environment variables:
//   - NOTIFY_DISCORD_ENABLED: enable Discord notifications (default: false)
//   - NOTIFY_DISCORD_WEBHOOK_URL: Discord webhook URL
//   - NOTIFY_DISCORD_TIMEOUT: HTTP timeout for webhook calls (default: 10s)
func LoadDiscordConfigFromEnv() DiscordConfig {
	cfg := DiscordConfig{
		Enabled:    config.GetEnvBool("NOTIFY_DISCORD_ENABLED", false),
		WebhookURL: config.GetEnvString("NOTIFY_DISCORD_WEBHOOK_URL", ""),
		Timeout:    config.GetEnvDuration("NOTIFY_DISCORD_TIMEOUT", 10*time.Second),
	}
	if cfg.WebhookURL == "" {
		cfg.Enabled = false
	}
	return cfg
}
