// Package rules is the static rule registry for broker definition
// validation: the required-field manifest per section and the closed
// enumeration sets for category, removal method, and jurisdiction values.
//
// All tables are process-wide, immutable, and initialized at startup, so
// they are safe to read from any number of goroutines without locking.
// Lookups never fail; unknown sections and values simply return empty
// results or false.
package rules
