// Package logging provides structured logging utilities for brokerlint.
//
// # Overview
//
// This package wraps the standard library slog package with project
// defaults for consistent logging across commands. It supports
// environment-based log level configuration, module/version context
// injection, and automatic source location tracking for debug logs.
//
// All logs are written to stderr in JSON format so that log output never
// interleaves with validation reports on stdout.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("brokerlint", version)
//
//	    slog.Info("validating", "path", "brokers/spokeo.toml")
//	    slog.Debug("detailed state", "record", record)
//	    slog.Error("validation failed", "error", err)
//	}
//
// Setting an explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("brokerlint", version, "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug brokerlint validate brokers/*.toml
//
// If LOG_LEVEL is not set, defaults to INFO level.
package logging
