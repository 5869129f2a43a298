// Package runner iterates a batch of broker definition files, applies the
// skip-list, validates each file, and aggregates per-file outcomes into a
// single ordered report with a pass/fail verdict.
//
// A missing or malformed file is terminal for that file only; the rest of
// the batch is still processed. The batch fails when any non-skipped file
// produced diagnostics or did not exist.
//
// Files may be validated concurrently (WithWorkers); results are indexed
// by argument position so the printed report is byte-identical to a
// sequential run. No state is shared across files beyond the read-only
// rule registry.
package runner
