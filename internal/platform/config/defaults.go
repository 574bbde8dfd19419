package config

const (
	defaultServerPort = 8080

	defaultLogMaxSizeMB  = 50
	defaultLogMaxBackups = 3

	defaultCORSMaxAge = 300

	defaultRateLimitBurst = 1

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "30s",
		"server.idle_timeout":  "120s",

		"log.level":       "info",
		"log.format":      "json",
		"log.file":        "",
		"log.max_size_mb": defaultLogMaxSizeMB,
		"log.max_backups": defaultLogMaxBackups,

		"cors.allowed_origins": []string{"*"},
		"cors.max_age":         defaultCORSMaxAge,

		"webhook.endpoint_url":                    "http://localhost:8081/donations",
		"webhook.auth_header":                     "Authorization",
		"webhook.auth_token":                      "",
		"webhook.timeout":                         "15s",
		"webhook.rate_limit.requests_per_second":  0,
		"webhook.rate_limit.burst_size":           defaultRateLimitBurst,
		"webhook.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"webhook.circuit_breaker.timeout":         "30s",
		"webhook.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "donation-service",
	}
}
