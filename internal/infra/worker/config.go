// Package worker provides the operational scaffolding for the scheduled
// ingest worker: configuration loading with fail-open fallbacks and the
// health check server.
package worker

import (
	"fmt"
	"log/slog"
	"time"

	"newswire/internal/observability/metrics"
	"newswire/pkg/config"
)

// Config holds the configuration for the ingest worker.
//
// Loading follows a fail-open strategy: invalid values are replaced with
// their defaults, logged, and counted in metrics, so the worker always
// starts with a valid configuration.
type Config struct {
	// CronSchedule is the five-field cron expression for scheduled runs.
	// Default: "*/30 * * * *" (every 30 minutes)
	CronSchedule string

	// Timezone is the IANA timezone name for cron scheduling.
	// Default: "UTC"
	Timezone string

	// Endpoints is the list of headline endpoint URLs to ingest. It may be
	// set directly via HEADLINE_ENDPOINTS or loaded from a YAML file via
	// ENDPOINTS_CONFIG_PATH (the file wins when both are set).
	Endpoints []string

	// RunTimeout is the maximum duration for one complete ingest run
	// across all endpoints. Default: 10 minutes
	RunTimeout time.Duration

	// ParseParallelism is the number of concurrent workers used to
	// assemble article fragments within one response. Values below 2 keep
	// assembly sequential. Default: 1
	ParseParallelism int

	// NotifyMaxConcurrent bounds concurrent notification deliveries.
	// Default: 4
	NotifyMaxConcurrent int

	// MetricsPort is the port for the Prometheus metrics server.
	// Default: 9090
	MetricsPort int

	// HealthPort is the port for the health check server. Default: 9091
	HealthPort int
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() Config {
	return Config{
		CronSchedule:        "*/30 * * * *",
		Timezone:            "UTC",
		RunTimeout:          10 * time.Minute,
		ParseParallelism:    1,
		NotifyMaxConcurrent: 4,
		MetricsPort:         9090,
		HealthPort:          9091,
	}
}

// Validate checks all configuration fields, collecting every violation.
func (c *Config) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidatePositiveDuration(c.RunTimeout); err != nil {
		errs = append(errs, fmt.Errorf("run timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.ParseParallelism, 1, 64); err != nil {
		errs = append(errs, fmt.Errorf("parse parallelism: %w", err))
	}
	if err := config.ValidateIntRange(c.NotifyMaxConcurrent, 1, 50); err != nil {
		errs = append(errs, fmt.Errorf("notify max concurrent: %w", err))
	}
	if err := config.ValidateIntRange(c.MetricsPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("metrics port: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}
	if len(c.Endpoints) == 0 {
		errs = append(errs, fmt.Errorf("endpoints: at least one endpoint is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv loads worker configuration from environment variables
// with fail-open fallbacks: an invalid value is replaced by its default,
// logged, and counted, so the returned Config is always valid except for
// the endpoint list, which has no sensible default and must be provided.
//
// Environment variables:
//   - CRON_SCHEDULE: cron expression (default: "*/30 * * * *")
//   - WORKER_TIMEZONE: IANA timezone name (default: "UTC")
//   - HEADLINE_ENDPOINTS: comma-separated endpoint URLs
//   - RUN_TIMEOUT: duration string, e.g. "10m"
//   - PARSE_PARALLELISM: integer 1-64 (default: 1)
//   - NOTIFY_MAX_CONCURRENT: integer 1-50 (default: 4)
//   - METRICS_PORT / WORKER_HEALTH_PORT: ports 1024-65535
func LoadConfigFromEnv(logger *slog.Logger) Config {
	defaults := DefaultConfig()
	cfg := defaults

	cfg.CronSchedule = config.GetEnvString("CRON_SCHEDULE", defaults.CronSchedule)
	if err := config.ValidateCronSchedule(cfg.CronSchedule); err != nil {
		fallback(logger, "CRON_SCHEDULE", cfg.CronSchedule, defaults.CronSchedule, err)
		cfg.CronSchedule = defaults.CronSchedule
	}

	cfg.Timezone = config.GetEnvString("WORKER_TIMEZONE", defaults.Timezone)
	if err := config.ValidateTimezone(cfg.Timezone); err != nil {
		fallback(logger, "WORKER_TIMEZONE", cfg.Timezone, defaults.Timezone, err)
		cfg.Timezone = defaults.Timezone
	}

	cfg.RunTimeout = config.GetEnvDuration("RUN_TIMEOUT", defaults.RunTimeout)
	if err := config.ValidatePositiveDuration(cfg.RunTimeout); err != nil {
		fallback(logger, "RUN_TIMEOUT", cfg.RunTimeout.String(), defaults.RunTimeout.String(), err)
		cfg.RunTimeout = defaults.RunTimeout
	}

	cfg.ParseParallelism = config.GetEnvInt("PARSE_PARALLELISM", defaults.ParseParallelism)
	if err := config.ValidateIntRange(cfg.ParseParallelism, 1, 64); err != nil {
		fallback(logger, "PARSE_PARALLELISM", fmt.Sprint(cfg.ParseParallelism), fmt.Sprint(defaults.ParseParallelism), err)
		cfg.ParseParallelism = defaults.ParseParallelism
	}

	cfg.NotifyMaxConcurrent = config.GetEnvInt("NOTIFY_MAX_CONCURRENT", defaults.NotifyMaxConcurrent)
	if err := config.ValidateIntRange(cfg.NotifyMaxConcurrent, 1, 50); err != nil {
		fallback(logger, "NOTIFY_MAX_CONCURRENT", fmt.Sprint(cfg.NotifyMaxConcurrent), fmt.Sprint(defaults.NotifyMaxConcurrent), err)
		cfg.NotifyMaxConcurrent = defaults.NotifyMaxConcurrent
	}

	cfg.MetricsPort = config.GetEnvInt("METRICS_PORT", defaults.MetricsPort)
	if err := config.ValidateIntRange(cfg.MetricsPort, 1024, 65535); err != nil {
		fallback(logger, "METRICS_PORT", fmt.Sprint(cfg.MetricsPort), fmt.Sprint(defaults.MetricsPort), err)
		cfg.MetricsPort = defaults.MetricsPort
	}

	cfg.HealthPort = config.GetEnvInt("WORKER_HEALTH_PORT", defaults.HealthPort)
	if err := config.ValidateIntRange(cfg.HealthPort, 1024, 65535); err != nil {
		fallback(logger, "WORKER_HEALTH_PORT", fmt.Sprint(cfg.HealthPort), fmt.Sprint(defaults.HealthPort), err)
		cfg.HealthPort = defaults.HealthPort
	}

	// The endpoint list has no sensible default. A YAML endpoints file
	// (ENDPOINTS_CONFIG_PATH) may replace this after loading; callers run
	// Validate once the final list is known.
	cfg.Endpoints = config.GetEnvStringList("HEADLINE_ENDPOINTS", nil)

	return cfg
}

// fallback logs a configuration fallback and records it in metrics.
func fallback(logger *slog.Logger, envKey, invalid, used string, err error) {
	logger.Warn("configuration fallback applied",
		slog.String("env_key", envKey),
		slog.String("invalid_value", invalid),
		slog.String("default_value", used),
		slog.String("error", err.Error()))
	metrics.RecordConfigFallback(envKey)
}
