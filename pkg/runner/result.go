/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package runner

import (
	"fmt"
	"io"

	"github.com/spectral-hq/brokerlint/pkg/header"
	"github.com/spectral-hq/brokerlint/pkg/validator"
)

// Status represents the per-file outcome.
type Status string

const (
	// StatusOK indicates the file validated without diagnostics.
	StatusOK Status = "ok"

	// StatusInvalid indicates the file produced diagnostics.
	StatusInvalid Status = "invalid"

	// StatusSkipped indicates the file matched the skip-list and was
	// excluded from the aggregate outcome.
	StatusSkipped Status = "skipped"

	// StatusMissing indicates the path did not resolve.
	StatusMissing Status = "missing"
)

// FileResult is the outcome for a single path in the batch.
type FileResult struct {
	// Path is the file path as given on the command line.
	Path string `json:"path" yaml:"path"`

	// Status is the per-file outcome.
	Status Status `json:"status" yaml:"status"`

	// Diagnostics holds every violation for the file, in detection order.
	Diagnostics []validator.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Summary contains aggregate statistics for a batch.
type Summary struct {
	// Total is the number of paths processed, skipped included.
	Total int `json:"total" yaml:"total"`

	// Valid is the count of files that validated cleanly.
	Valid int `json:"valid" yaml:"valid"`

	// Invalid is the count of files with diagnostics.
	Invalid int `json:"invalid" yaml:"invalid"`

	// Skipped is the count of skip-list matches.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Missing is the count of paths that did not resolve.
	Missing int `json:"missing" yaml:"missing"`
}

// BatchResult is the aggregated outcome for one batch run.
type BatchResult struct {
	header.Header `json:",inline" yaml:",inline"`

	// Files holds per-file results in argument order.
	Files []FileResult `json:"files" yaml:"files"`

	// Summary contains aggregate statistics.
	Summary Summary `json:"summary" yaml:"summary"`

	// Valid is true when every non-skipped path existed and validated
	// cleanly. This drives the process exit code.
	Valid bool `json:"valid" yaml:"valid"`
}

// WriteText renders the batch as the line-oriented gate report: one line
// per file, diagnostics as indented bullets. This is the stable format
// automation greps and humans read.
func (b *BatchResult) WriteText(w io.Writer) error {
	for _, f := range b.Files {
		switch f.Status {
		case StatusSkipped:
			if _, err := fmt.Fprintf(w, "SKIP: %s (documentation)\n", f.Path); err != nil {
				return err
			}
		case StatusMissing:
			if _, err := fmt.Fprintf(w, "ERROR: File not found: %s\n", f.Path); err != nil {
				return err
			}
		case StatusOK:
			if _, err := fmt.Fprintf(w, "OK: %s\n", f.Path); err != nil {
				return err
			}
		case StatusInvalid:
			if _, err := fmt.Fprintf(w, "ERROR: %s\n", f.Path); err != nil {
				return err
			}
			for _, d := range f.Diagnostics {
				if _, err := fmt.Fprintf(w, "  - %s\n", d.Message); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
