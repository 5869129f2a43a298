/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/
package cli

import "github.com/urfave/cli/v3"

// formatText is the default line-oriented gate report, not a serializer
// format.
const formatText = "text"

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "Output file path (default: stdout)",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"t"},
	Value:   formatText,
	Usage:   "Output format: text, yaml, json, table",
}

var rulesFormatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"t"},
	Value:   "yaml",
	Usage:   "Output format: yaml, json, table",
}

var logLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Usage:   "Log level (debug, info, warn, error)",
	Value:   "info",
	Sources: cli.EnvVars("LOG_LEVEL"),
}

var workersFlag = &cli.IntFlag{
	Name:  "workers",
	Usage: "Maximum number of files validated concurrently",
	Value: 1,
}

var watchFlag = &cli.BoolFlag{
	Name:    "watch",
	Aliases: []string{"w"},
	Usage:   "Keep running and re-validate when any target file changes",
}
