// Package notifier provides notification channel implementations for ingest
// run summaries. It currently supports Slack and Discord incoming webhooks
// plus a no-op channel for when notifications are disabled. All channels
// rate-limit and retry internally.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"newswire/internal/resilience/retry"
	"newswire/internal/usecase/notify"
)

// summaryText renders a run summary as a single human-readable line, shared
// by the webhook channels.
func summaryText(summary notify.RunSummary) string {
	if summary.Failed() {
		return fmt.Sprintf("ingest run %s failed for %s: %v",
			summary.RunID, summary.Endpoint, summary.Err)
	}
	return fmt.Sprintf("ingest run %s: %s returned %d results, kept %d records, dropped %d fragments in %s",
		summary.RunID, summary.Endpoint, summary.TotalResults,
		summary.Records, summary.Dropped, summary.Duration.Round(time.Millisecond))
}

// postWebhook sends a JSON payload to a webhook URL. Non-2xx statuses are
// translated into retry.HTTPError so the retry package can distinguish
// retryable failures (429, 5xx) from permanent ones.
func postWebhook(ctx context.Context, client *http.Client, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("webhook returned %s", resp.Status),
		}
	}

	return nil
}
