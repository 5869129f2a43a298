// Package cli implements the command-line interface for brokerlint.
//
// # Overview
//
// brokerlint validates broker definition TOML files against the schema
// used by the data-removal pipeline. It is designed to run as a pre-commit
// hook or CI gate: all violations in a file are reported together, and the
// exit code reflects the aggregate outcome.
//
// # Commands
//
// validate - Validate broker definition files:
//
//	brokerlint validate [--format text|yaml|json|table] [--workers N] [--watch] <file.toml>...
//
// Prints one status line per file (OK, ERROR, SKIP) with indented
// diagnostic bullets for invalid files. Exit code 0 only when every
// non-skipped path existed and validated cleanly.
//
// rules - Print the active rule registry:
//
//	brokerlint rules [--format yaml|json|table]
//
// Lists required fields per section and the allowed enumeration values.
//
// # Global Flags
//
//	--log-level    Log verbosity: debug, info, warn, error (also LOG_LEVEL)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Exit Codes
//
//	0  All validated files passed
//	1  Any file invalid or missing, or invalid invocation
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/broker - TOML document loading
//   - pkg/rules - static rule registry
//   - pkg/validator - section validators and orchestration
//   - pkg/runner - batch iteration and aggregation
//   - pkg/serializer - report formatting
//   - pkg/logging - structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/spectral-hq/brokerlint/pkg/cli.version=1.0.0'"
package cli
