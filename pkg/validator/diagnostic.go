/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package validator

// Kind classifies a diagnostic by the rule group that produced it.
type Kind string

const (
	// KindSyntax indicates the document could not be parsed.
	KindSyntax Kind = "syntax"

	// KindMissingField indicates a required section or field is absent.
	KindMissingField Kind = "missing-field"

	// KindInvalidEnum indicates a value outside its allowed set.
	KindInvalidEnum Kind = "invalid-enum"

	// KindInvalidFormat indicates a value with the wrong shape.
	KindInvalidFormat Kind = "invalid-format"
)

// Diagnostic describes exactly one validation violation. Diagnostics are
// immutable once created and collected in detection order, so repeated
// runs over the same document produce identical output.
type Diagnostic struct {
	// Kind is the violation classification.
	Kind Kind `json:"kind" yaml:"kind"`

	// Message is the human-readable description, with the offending value
	// quoted and the allowed set listed where applicable.
	Message string `json:"message" yaml:"message"`
}

// String returns the human-readable message.
func (d Diagnostic) String() string {
	return d.Message
}
