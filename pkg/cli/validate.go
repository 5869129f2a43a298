/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/spectral-hq/brokerlint/pkg/errors"
	"github.com/spectral-hq/brokerlint/pkg/runner"
	"github.com/spectral-hq/brokerlint/pkg/serializer"
	"github.com/spectral-hq/brokerlint/pkg/watcher"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate broker definition files against the schema",
		ArgsUsage:             "<file.toml> [file.toml ...]",
		Description: `Validate one or more broker definition TOML files.

Each file is checked for required fields, enumeration values (category,
removal method, jurisdiction), and format rules (broker id, domain,
removal url). All violations in a file are reported together so a
contributor can fix everything in one pass.

Per file, one of the following lines is printed:

  OK: <path>                          valid record
  ERROR: <path>                       invalid record, diagnostics follow
  ERROR: File not found: <path>       path did not resolve
  SKIP: <path> (documentation)        skip-list match, excluded from outcome

The exit code is 0 only when every non-skipped path existed and validated
cleanly, which makes the command usable directly as a pre-commit or CI
gate.

# Examples

Validate definitions before committing:
  brokerlint validate brokers/*.toml

Machine-readable report for CI:
  brokerlint validate --format json --output report.json brokers/*.toml

Re-validate on every save while editing:
  brokerlint validate --watch brokers/spokeo.toml`,
		Flags: []cli.Flag{
			workersFlag,
			watchFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogger(cmd)

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				return errors.New(errors.ErrCodeUsage,
					"usage: brokerlint validate <file.toml> [file2.toml ...]")
			}

			format := cmd.String("format")
			if format != formatText && serializer.Format(format).IsUnknown() {
				return fmt.Errorf("unknown output format: %q", format)
			}

			run := runner.New(
				runner.WithVersion(version),
				runner.WithWorkers(int(cmd.Int("workers"))),
			)

			emit := func(res *runner.BatchResult) error {
				if format == formatText {
					return writeTextReport(res, cmd.String("output"))
				}
				ser := serializer.NewFileWriterOrStdout(serializer.Format(format), cmd.String("output"))
				defer func() {
					if err := ser.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}()
				return ser.Serialize(ctx, res)
			}

			res, err := run.Run(ctx, paths)
			if err != nil {
				return err
			}
			if err := emit(res); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			if cmd.Bool("watch") {
				w, err := watcher.New(paths, 0)
				if err != nil {
					return err
				}
				return w.Watch(ctx, func() {
					res, err := run.Run(ctx, paths)
					if err != nil {
						slog.Error("re-validation failed", "error", err)
						return
					}
					if err := emit(res); err != nil {
						slog.Error("failed to write report", "error", err)
					}
				})
			}

			if !res.Valid {
				failed := res.Summary.Invalid + res.Summary.Missing
				return fmt.Errorf("validation failed: %d file(s) did not pass", failed)
			}
			return nil
		},
	}
}

// writeTextReport prints the line-oriented gate report to stdout, or to a
// file when --output is set.
func writeTextReport(res *runner.BatchResult, path string) error {
	if strings.TrimSpace(path) == "" {
		return res.WriteText(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Warn("failed to close output file", "error", cerr)
		}
	}()
	return res.WriteText(f)
}
