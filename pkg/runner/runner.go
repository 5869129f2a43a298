/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package runner

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/spectral-hq/brokerlint/pkg/broker"
	"github.com/spectral-hq/brokerlint/pkg/errors"
	"github.com/spectral-hq/brokerlint/pkg/header"
	"github.com/spectral-hq/brokerlint/pkg/validator"
)

// APIVersion is the API version for serialized validation reports.
const APIVersion = "brokerlint.spectral.dev/v1alpha1"

// DefaultSkipList holds base names excluded from validation: the schema
// reference document and the documentation index. Skipped files never
// affect the aggregate outcome.
var DefaultSkipList = []string{"schema.toml", "README.md"}

// Runner validates a batch of broker definition files and aggregates the
// per-file outcomes into one ordered report.
type Runner struct {
	version   string
	workers   int
	skip      map[string]struct{}
	validator *validator.Validator
}

// Option is a functional option for configuring Runner instances.
type Option func(*Runner)

// WithVersion returns an Option that sets the tool version stamped onto
// reports.
func WithVersion(version string) Option {
	return func(r *Runner) {
		r.version = version
	}
}

// WithWorkers returns an Option that sets the maximum number of files
// validated concurrently. Values below one run sequentially. Printed
// output order is always the input order regardless of this setting.
func WithWorkers(workers int) Option {
	return func(r *Runner) {
		r.workers = workers
	}
}

// WithSkipList returns an Option that replaces the default skip-list.
func WithSkipList(names ...string) Option {
	return func(r *Runner) {
		r.skip = make(map[string]struct{}, len(names))
		for _, n := range names {
			r.skip[n] = struct{}{}
		}
	}
}

// New creates a new Runner with the provided options.
func New(opts ...Option) *Runner {
	r := &Runner{
		workers: 1,
	}
	r.skip = make(map[string]struct{}, len(DefaultSkipList))
	for _, n := range DefaultSkipList {
		r.skip[n] = struct{}{}
	}
	for _, opt := range opts {
		opt(r)
	}
	r.validator = validator.New(validator.WithVersion(r.version))
	return r
}

// Run validates every path and returns the aggregated report. File results
// appear in argument order. An unreadable or malformed file fails that
// file only; the rest of the batch still runs. Run returns an error only
// when the context is canceled.
func (r *Runner) Run(ctx context.Context, paths []string) (*BatchResult, error) {
	result := &BatchResult{
		Files: make([]FileResult, len(paths)),
	}
	result.Init(header.KindValidationReport, APIVersion, r.version)

	workers := r.workers
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			result.Files[i] = r.checkFile(path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, f := range result.Files {
		result.Summary.Total++
		switch f.Status {
		case StatusOK:
			result.Summary.Valid++
		case StatusInvalid:
			result.Summary.Invalid++
		case StatusSkipped:
			result.Summary.Skipped++
		case StatusMissing:
			result.Summary.Missing++
		}
	}
	result.Valid = result.Summary.Invalid == 0 && result.Summary.Missing == 0

	slog.Debug("batch completed",
		"total", result.Summary.Total,
		"valid", result.Summary.Valid,
		"invalid", result.Summary.Invalid,
		"skipped", result.Summary.Skipped,
		"missing", result.Summary.Missing)

	return result, nil
}

// checkFile validates a single path: skip-list match, load, validate.
func (r *Runner) checkFile(path string) FileResult {
	if _, skip := r.skip[filepath.Base(path)]; skip {
		slog.Debug("skipping documentation file", "path", path)
		return FileResult{Path: path, Status: StatusSkipped}
	}

	rec, err := broker.Load(path)
	if err != nil {
		var structured *errors.StructuredError
		if stderrors.As(err, &structured) && structured.Code == errors.ErrCodeNotFound {
			return FileResult{Path: path, Status: StatusMissing}
		}

		// Syntax and read failures are terminal for the file: there is no
		// addressable structure left to validate.
		msg := err.Error()
		if structured != nil {
			msg = structured.Message
			if structured.Cause != nil {
				msg = fmt.Sprintf("%s: %v", structured.Message, structured.Cause)
			}
		}
		return FileResult{
			Path:   path,
			Status: StatusInvalid,
			Diagnostics: []validator.Diagnostic{
				{Kind: validator.KindSyntax, Message: msg},
			},
		}
	}

	res := r.validator.Validate(rec)
	if !res.Valid() {
		return FileResult{Path: path, Status: StatusInvalid, Diagnostics: res.Diagnostics}
	}
	return FileResult{Path: path, Status: StatusOK}
}
