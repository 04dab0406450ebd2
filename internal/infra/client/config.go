package client

import "newswire/pkg/config"

// LoadConfigFromEnv builds a client Config from environment variables,
// falling back to the defaults for anything unset or invalid.
//
// Environment variables:
//   - FETCH_TIMEOUT: HTTP request timeout per attempt (default: 30s)
//   - FETCH_USER_AGENT: User-Agent header value (default: "newswire/1.0")
//   - FETCH_MAX_BODY_BYTES: response body size cap (default: 10485760)
//   - FETCH_REQUESTS_PER_SECOND: sustained request rate (default: 2)
//   - FETCH_BURST: token bucket burst capacity (default: 5)
//   - FETCH_DENY_PRIVATE_IPS: block private/loopback endpoint hosts (default: true)
func LoadConfigFromEnv() Config {
	defaults := DefaultConfig()

	cfg := Config{
		Timeout:           config.GetEnvDuration("FETCH_TIMEOUT", defaults.Timeout),
		UserAgent:         config.GetEnvString("FETCH_USER_AGENT", defaults.UserAgent),
		MaxBodyBytes:      int64(config.GetEnvInt("FETCH_MAX_BODY_BYTES", int(defaults.MaxBodyBytes))),
		RequestsPerSecond: config.GetEnvFloat("FETCH_REQUESTS_PER_SECOND", defaults.RequestsPerSecond),
		Burst:             config.GetEnvInt("FETCH_BURST", defaults.Burst),
		DenyPrivateIPs:    config.GetEnvBool("FETCH_DENY_PRIVATE_IPS", defaults.DenyPrivateIPs),
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaults.MaxBodyBytes
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaults.RequestsPerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaults.Burst
	}

	return cfg
}
