/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package validator

// Result is the validation outcome for a single document: the ordered
// diagnostic sequence. An empty sequence means the document is valid.
type Result struct {
	// Diagnostics holds every violation in detection order.
	Diagnostics []Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

// NewResult creates a Result with an initialized diagnostic slice.
func NewResult() *Result {
	return &Result{
		Diagnostics: make([]Diagnostic, 0),
	}
}

// Valid reports whether the document produced no diagnostics.
func (r *Result) Valid() bool {
	return len(r.Diagnostics) == 0
}

// Append adds diagnostics preserving detection order.
func (r *Result) Append(diags ...Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, diags...)
}

// CountByKind returns the number of diagnostics per kind.
func (r *Result) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, d := range r.Diagnostics {
		counts[d.Kind]++
	}
	return counts
}
