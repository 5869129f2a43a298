/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/spectral-hq/brokerlint/pkg/rules"
	"github.com/spectral-hq/brokerlint/pkg/serializer"
)

func rulesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "rules",
		EnableShellCompletion: true,
		Usage:                 "Print the active validation rule registry",
		Description: `Print the rule registry used for validation: required fields per section
and the allowed values for category, removal method, and jurisdiction.

Useful when writing a new broker definition without digging through the
schema reference document.

# Examples

Human-readable listing:
  brokerlint rules --format table

Machine-readable registry for tooling:
  brokerlint rules --format json`,
		Flags: []cli.Flag{
			outputFlag,
			rulesFormatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, rules.NewRuleSet(version))
		},
	}
}
