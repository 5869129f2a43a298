// Package broker loads broker definition documents from TOML into an
// in-memory Record for validation.
//
// Parsing is the only fail-fast path in the system: a document with
// invalid syntax yields a single terminal error and no Record. Everything
// downstream (field presence, enumerations, formats) accumulates
// diagnostics instead of failing fast.
package broker
