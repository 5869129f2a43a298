/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package header

import (
	"time"

	"github.com/google/uuid"
)

// Kind represents the type of brokerlint resource.
type Kind string

// Valid Kind constants for all resource types.
const (
	KindValidationReport Kind = "ValidationReport"
	KindRuleSet          Kind = "RuleSet"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k *Kind) IsValid() bool {
	switch *k {
	case KindValidationReport, KindRuleSet:
		return true
	default:
		return false
	}
}

// Header contains metadata and versioning information for serialized
// brokerlint resources. It follows Kubernetes-style resource conventions
// with Kind, APIVersion, and Metadata fields.
type Header struct {
	// Kind is the type of the resource.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the resource.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the resource.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Init initializes the Header with the specified kind, apiVersion, and
// tool version. Metadata is populated with a timestamp, the tool version,
// and a unique run identifier.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = make(map[string]string)

	h.Metadata["timestamp"] = time.Now().UTC().Format(time.RFC3339)
	h.Metadata["runId"] = uuid.NewString()
	if version != "" {
		h.Metadata["version"] = version
	}
}
