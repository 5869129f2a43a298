package header

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderInit(t *testing.T) {
	var h Header
	h.Init(KindValidationReport, "brokerlint.spectral.dev/v1alpha1", "1.2.3")

	assert.Equal(t, KindValidationReport, h.Kind)
	assert.Equal(t, "brokerlint.spectral.dev/v1alpha1", h.APIVersion)
	assert.Equal(t, "1.2.3", h.Metadata["version"])

	_, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err)

	_, err = uuid.Parse(h.Metadata["runId"])
	require.NoError(t, err)
}

func TestHeaderInitEmptyVersion(t *testing.T) {
	var h Header
	h.Init(KindRuleSet, "brokerlint.spectral.dev/v1alpha1", "")

	_, ok := h.Metadata["version"]
	assert.False(t, ok)
}

func TestKindIsValid(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		want bool
	}{
		{name: "validation report", kind: KindValidationReport, want: true},
		{name: "rule set", kind: KindRuleSet, want: true},
		{name: "unknown", kind: Kind("Snapshot"), want: false},
		{name: "empty", kind: Kind(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsValid())
		})
	}
}
