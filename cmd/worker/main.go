package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	appconfig "newswire/internal/config"
	"newswire/internal/infra/client"
	"newswire/internal/infra/notifier"
	workerPkg "newswire/internal/infra/worker"
	"newswire/internal/observability/logging"
	"newswire/internal/observability/metrics"
	"newswire/internal/observability/tracing"
	"newswire/internal/usecase/ingest"
	"newswire/internal/usecase/notify"
	"newswire/pkg/config"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	// Shut down cleanly on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing := tracing.InitTracerProvider("newswire-worker")
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("failed to shut down tracer provider", slog.Any("error", err))
		}
	}()

	workerConfig := loadWorkerConfig(logger)
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Int("endpoints", len(workerConfig.Endpoints)),
		slog.Duration("run_timeout", workerConfig.RunTimeout),
		slog.Int("parse_parallelism", workerConfig.ParseParallelism),
		slog.Int("metrics_port", workerConfig.MetricsPort),
		slog.Int("health_port", workerConfig.HealthPort))

	notifyService := setupNotifyService(logger, workerConfig)
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := notifyService.Shutdown(shutdownCtx); err != nil {
			logger.Error("notify service shutdown failed", slog.Any("error", err))
		}
	}()

	fetchClient := client.New(client.LoadConfigFromEnv())

	r := &runner{
		cfg:     workerConfig,
		fetcher: fetchClient,
		notify:  notifyService,
		logger:  logger,
	}

	// Metrics server
	startMetricsServer(ctx, logger, workerConfig.MetricsPort)

	// Health check server
	healthServer := workerPkg.NewHealthServer(listenAddr(workerConfig.HealthPort), logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	startCronWorker(ctx, logger, r, workerConfig, healthServer)
}

// loadWorkerConfig loads worker configuration from the environment, applies
// the YAML endpoints file when configured, and exits on an unusable result.
func loadWorkerConfig(logger *slog.Logger) workerPkg.Config {
	workerConfig := workerPkg.LoadConfigFromEnv(logger)

	if path := config.GetEnvString("ENDPOINTS_CONFIG_PATH", ""); path != "" {
		endpointsConfig, err := appconfig.LoadEndpointsConfig(path)
		if err != nil {
			logger.Error("failed to load endpoints file",
				slog.String("path", path), slog.Any("error", err))
			os.Exit(1)
		}
		workerConfig.Endpoints = endpointsConfig.URLs()
		logger.Info("endpoints loaded from file",
			slog.String("path", path),
			slog.Int("count", len(workerConfig.Endpoints)))
	}

	if err := workerConfig.Validate(); err != nil {
		logger.Error("invalid worker configuration", slog.Any("error", err))
		os.Exit(1)
	}

	return workerConfig
}

// setupNotifyService wires the configured notification channels. With no
// webhook configured, a no-op channel stands in.
func setupNotifyService(logger *slog.Logger, cfg workerPkg.Config) *notify.Service {
	var channels []notify.Channel

	slackConfig := notifier.LoadSlackConfigFromEnv()
	if slackConfig.Enabled {
		channels = append(channels, notifier.NewSlackChannel(slackConfig))
		logger.Info("Slack channel initialized", slog.String("status", "enabled"))
	} else {
		logger.Info("Slack channel disabled")
	}

	discordConfig := notifier.LoadDiscordConfigFromEnv()
	if discordConfig.Enabled {
		channels = append(channels, notifier.NewDiscordChannel(discordConfig))
		logger.Info("Discord channel initialized", slog.String("status", "enabled"))
	} else {
		logger.Info("Discord channel disabled")
	}

	if len(channels) == 0 {
		channels = append(channels, notifier.NoopChannel{})
	}

	return notify.NewService(channels, cfg.NotifyMaxConcurrent)
}

// startCronWorker starts the cron scheduler and blocks until shutdown.
func startCronWorker(ctx context.Context, logger *slog.Logger, r *runner, cfg workerPkg.Config, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		r.runOnce(ctx)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	// Mark as ready after cron is set up
	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", cfg.CronSchedule),
		slog.String("timezone", cfg.Timezone))

	if config.GetEnvBool("RUN_ON_START", true) {
		r.runOnce(ctx)
	}

	<-ctx.Done()
	logger.Info("shutdown signal received")
	cronCtx := c.Stop()
	<-cronCtx.Done()
}

// runner executes one ingest run across all configured endpoints.
type runner struct {
	cfg     workerPkg.Config
	fetcher *client.Client
	notify  *notify.Service
	logger  *slog.Logger
}

// runOnce ingests every configured endpoint once, recording metrics and
// dispatching a run summary per endpoint.
func (r *runner) runOnce(ctx context.Context) {
	startTime := time.Now()
	runID := logging.NewRunID()

	ctx = logging.WithRunIDContext(ctx, runID)
	logger := logging.WithRunID(ctx, r.logger)

	ctx, cancel := context.WithTimeout(ctx, r.cfg.RunTimeout)
	defer cancel()

	logger.Info("ingest run started", slog.Int("endpoints", len(r.cfg.Endpoints)))

	success := true
	for _, endpoint := range r.cfg.Endpoints {
		if ctx.Err() != nil {
			logger.Warn("ingest run aborted", slog.Any("error", ctx.Err()))
			success = false
			break
		}
		if !r.ingestEndpoint(ctx, logger, runID, endpoint) {
			success = false
		}
	}

	metrics.RecordIngestRun(time.Since(startTime), success)
	logger.Info("ingest run completed",
		slog.Bool("success", success),
		slog.Duration("duration", time.Since(startTime)))
}

// ingestEndpoint fetches and parses one endpoint, returning false on a
// fatal failure. Per-item drops are counted into the run summary only.
func (r *runner) ingestEndpoint(ctx context.Context, logger *slog.Logger, runID, endpoint string) bool {
	counting := ingest.NewCountingSink()
	sink := ingest.MultiSink{ingest.NewSlogSink(logger), ingest.MetricsSink{}, counting}
	parser := ingest.NewParser(sink).WithParallelism(r.cfg.ParseParallelism)
	service := ingest.NewService(r.fetcher, parser)

	startTime := time.Now()
	result, err := service.FetchTopHeadlines(ctx, endpoint)

	summary := notify.RunSummary{
		RunID:    runID,
		Endpoint: endpoint,
		Dropped:  counting.Total(),
		Duration: time.Since(startTime),
		Err:      err,
	}

	if err != nil {
		logger.Error("endpoint ingest failed",
			slog.String("endpoint", endpoint),
			slog.Any("error", err))
		r.notify.NotifyRunSummary(ctx, summary)
		return false
	}

	summary.TotalResults = result.Metadata().TotalResults
	summary.Records = result.Len()

	logger.Info("endpoint ingest completed",
		slog.String("endpoint", endpoint),
		slog.Int("total_results", summary.TotalResults),
		slog.Int("records", summary.Records),
		slog.Int("dropped", summary.Dropped),
		slog.Duration("duration", summary.Duration))

	r.notify.NotifyRunSummary(ctx, summary)
	return true
}
