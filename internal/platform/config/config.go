// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	CORS      CORSConfig      `koanf:"cors"`
	Webhook   WebhookConfig   `koanf:"webhook"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings. When File is set, logs are
// also written to a size-rotated file.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
}

// CORSConfig controls which browser origins may call the API.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
	MaxAge         int      `koanf:"max_age"`
}

// WebhookConfig holds settings for the donation webhook the service posts to.
// AuthToken is sent in the AuthHeader header when non-empty.
type WebhookConfig struct {
	EndpointURL    string               `koanf:"endpoint_url"`
	AuthHeader     string               `koanf:"auth_header"`
	AuthToken      string               `koanf:"auth_token"`
	Timeout        time.Duration        `koanf:"timeout"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
