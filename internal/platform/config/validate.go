package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Webhook.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text", "console":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text, console; got %q", l.Format))
	}

	if l.File != "" && l.MaxSizeMB < 1 {
		errs = append(errs, fmt.Errorf("log.max_size_mb must be >= 1 when log.file is set, got %d", l.MaxSizeMB))
	}

	return errors.Join(errs...)
}

func (w *WebhookConfig) validate() error {
	var errs []error

	if w.EndpointURL == "" {
		errs = append(errs, errors.New("webhook.endpoint_url must not be empty"))
	} else if u, err := url.Parse(w.EndpointURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("webhook.endpoint_url must be an absolute http(s) URL, got %q", w.EndpointURL))
	}
	if w.AuthToken != "" && w.AuthHeader == "" {
		errs = append(errs, errors.New("webhook.auth_header must not be empty when webhook.auth_token is set"))
	}
	if w.Timeout <= 0 {
		errs = append(errs, errors.New("webhook.timeout must be positive"))
	}
	if w.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("webhook.rate_limit.requests_per_second must not be negative, got %f",
			w.RateLimit.RequestsPerSecond))
	}
	if w.RateLimit.RequestsPerSecond > 0 && w.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("webhook.rate_limit.burst_size must be >= 1, got %d", w.RateLimit.BurstSize))
	}
	if w.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("webhook.circuit_breaker.max_failures must be >= 1, got %d",
			w.CircuitBreaker.MaxFailures))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty when telemetry is enabled"))
	}

	return errors.Join(errs...)
}
