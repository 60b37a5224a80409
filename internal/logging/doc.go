// Package logging provides structured logging using uber/zap.
//
// Two modes are supported:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Both write to stderr by default; the CLI reserves stdout for results.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	reporter := elliptic.NewLogReporter(logger.Component("elliptic"))
package logging
