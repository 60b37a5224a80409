// Package config provides 12-factor configuration management for the elliptic CLI.
//
// Configuration is loaded from environment variables with sensible defaults.
// CLI flags can override environment variables.
//
// Configuration Sections:
//   - Logging: Log level and output format
//   - Metrics: Prometheus collection and metric namespace
//   - Output: Result encoding (json, yaml, toml)
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	logger, err := logging.New(logging.Config{Level: cfg.Logging.Level})
//
// Environment Variables:
//   - LOG_LEVEL, LOG_DEV
//   - METRICS_ENABLED, METRICS_NAMESPACE
//   - OUTPUT_FORMAT
package config
