/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"log/slog"

	"github.com/spectral-hq/brokerlint/pkg/broker"
	"github.com/spectral-hq/brokerlint/pkg/rules"
)

// Validator runs every rule group against a parsed broker record and
// accumulates diagnostics. It is stateless apart from configuration and
// safe for concurrent use.
type Validator struct {
	// Version is the validator version (typically the CLI version).
	Version string
}

// Option is a functional option for configuring Validator instances.
type Option func(*Validator)

// WithVersion returns an Option that sets the Validator version string.
func WithVersion(version string) Option {
	return func(v *Validator) {
		v.Version = version
	}
}

// New creates a new Validator with the provided options.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate runs both validation phases over the record and returns the
// ordered diagnostic sequence. Phase one checks the required-field
// manifest; phase two runs each section validator on every section that
// is present, even when earlier phases already reported problems.
// Unknown top-level sections are accepted silently; the schema is
// forward-compatible.
func (v *Validator) Validate(rec broker.Record) *Result {
	result := NewResult()

	result.Append(v.checkRequired(rec)...)

	if section, ok := rec.Section(rules.SectionBroker); ok {
		result.Append(CheckBroker(section)...)
	}
	if section, ok := rec.Section(rules.SectionRemoval); ok {
		result.Append(CheckRemoval(section)...)
	}
	if entries, ok := rec.List(rules.SectionJurisdictions); ok {
		result.Append(CheckJurisdictions(entries)...)
	}

	slog.Debug("validation completed",
		"sections", len(rec),
		"diagnostics", len(result.Diagnostics),
		"valid", result.Valid())

	return result
}

// checkRequired emits one diagnostic per missing required section and one
// per missing required field, in manifest order. Enumeration and format
// rules are not consulted here. A section present with a non-table value
// reports every one of its required fields as missing; the fields are
// certainly absent.
func (v *Validator) checkRequired(rec broker.Record) []Diagnostic {
	var diags []Diagnostic

	for _, section := range rules.RequiredSections() {
		if !rec.Has(section) {
			diags = append(diags, Diagnostic{
				Kind:    KindMissingField,
				Message: fmt.Sprintf("Missing required section: [%s]", section),
			})
			continue
		}

		fields, _ := rec.Section(section)
		for _, field := range rules.RequiredFields(section) {
			if _, ok := fields[field]; !ok {
				diags = append(diags, Diagnostic{
					Kind:    KindMissingField,
					Message: fmt.Sprintf("Missing required field: %s.%s", section, field),
				})
			}
		}
	}

	return diags
}
