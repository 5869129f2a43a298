// Package header provides common metadata headers for serialized
// brokerlint resources such as validation reports and rule sets.
//
// Headers follow Kubernetes-style resource conventions (kind, apiVersion,
// metadata) so that reports emitted by different tool versions remain
// distinguishable and machine-diffable. Each Init stamps a unique run
// identifier so reports from repeated CI runs can be correlated.
package header
