/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/spectral-hq/brokerlint/pkg/logging"
)

const (
	name           = "brokerlint"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Run executes the brokerlint command tree. It is called by main.main()
// with os.Args; a non-nil return means the process should exit non-zero.
func Run(ctx context.Context, args []string) error {
	root := &cli.Command{
		Name:    name,
		Usage:   "Broker definition schema validator",
		Version: version,
		Description: fmt.Sprintf(`brokerlint - broker definition schema validator

Version: %s
Commit:  %s
Built:   %s

Validates broker definition TOML files against the schema before they are
accepted into the data-removal pipeline: required fields, enumeration
values, and format rules. Intended as a pre-commit and CI gate.`, version, commit, date),
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Commands: []*cli.Command{
			validateCmd(),
			rulesCmd(),
		},
	}

	return root.Run(ctx, args)
}

// initLogger configures slog once flags are parsed so --log-level takes
// effect before any command logic runs.
func initLogger(cmd *cli.Command) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
}
