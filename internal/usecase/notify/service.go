package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	// workerSlotTimeout bounds how long a dispatch waits for a free worker
	// slot before the summary is dropped.
	workerSlotTimeout = 5 * time.Second

	// deliveryTimeout bounds one channel delivery, independent of the
	// caller's context lifetime.
	deliveryTimeout = 30 * time.Second
)

// Service fans run summaries out to all configured channels without
// blocking the caller.
type Service struct {
	channels []Channel
	slots    chan struct{}
	wg       sync.WaitGroup
}

// NewService creates a notification service. maxConcurrent bounds the
// number of in-flight deliveries across all channels.
func NewService(channels []Channel, maxConcurrent int) *Service {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Service{
		channels: channels,
		slots:    make(chan struct{}, maxConcurrent),
	}
}

// NotifyRunSummary dispatches the summary to every channel in background
// goroutines and returns immediately. Delivery failures are logged, never
// propagated.
func (s *Service) NotifyRunSummary(ctx context.Context, summary RunSummary) {
	logger := slog.Default()

	for _, channel := range s.channels {
		select {
		case s.slots <- struct{}{}:
		case <-time.After(workerSlotTimeout):
			logger.Warn("notification dropped, no worker slot available",
				slog.String("channel", channel.Name()),
				slog.String("run_id", summary.RunID))
			continue
		}

		s.wg.Add(1)
		go func(ch Channel) {
			defer s.wg.Done()
			defer func() { <-s.slots }()

			// Deliveries outlive the ingest run's context on purpose: the
			// summary should still go out after the run completes.
			deliveryCtx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
			defer cancel()

			if err := ch.Notify(deliveryCtx, summary); err != nil {
				logger.Warn("run summary notification failed",
					slog.String("channel", ch.Name()),
					slog.String("run_id", summary.RunID),
					slog.Any("error", err))
				return
			}
			logger.Debug("run summary notification sent",
				slog.String("channel", ch.Name()),
				slog.String("run_id", summary.RunID))
		}(channel)
	}
}

// Shutdown waits for in-flight deliveries to finish or the context to
// expire.
func (s *Service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notify shutdown: %w", ctx.Err())
	}
}
