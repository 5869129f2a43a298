// Package validator checks parsed broker definition records against the
// rule registry and produces ordered diagnostics.
//
// # Overview
//
// Validation runs in two phases, both always executed:
//
//  1. Required-field phase: every section in the registry manifest is
//     checked for presence, then each of its required fields.
//  2. Section-validation phase: each known section that is present is
//     handed to its section validator (identity, removal procedure,
//     jurisdiction list) for enumeration and format checks.
//
// Diagnostics concatenate in phase order, then section order, then
// detection order within a section, so output is deterministic.
//
// # Accumulation
//
// No validator stops at the first problem in its section, and a failure
// in one section never suppresses checks in another. A record missing
// broker.name with a bad category and two bad removal methods yields four
// diagnostics in one run. This maximizes diagnostic yield for a commit
// gate that humans read once and want fixed in a single pass.
//
// # Usage
//
//	v := validator.New(validator.WithVersion(version))
//	result := v.Validate(record)
//	if !result.Valid() {
//	    for _, d := range result.Diagnostics {
//	        fmt.Printf("  - %s\n", d)
//	    }
//	}
package validator
