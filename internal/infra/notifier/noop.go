package notifier

import (
	"context"

	"newswire/internal/usecase/notify"
)

// NoopChannel discards all notifications. It stands in when no webhook is
// configured so callers never need a nil check.
type NoopChannel struct{}

// Name identifies the channel in logs.
func (NoopChannel) Name() string {
	return "noop"
}

// Notify does nothing and always succeeds.
func (NoopChannel) Notify(context.Context, notify.RunSummary) error {
	return nil
}
