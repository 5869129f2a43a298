package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spectral-hq/brokerlint/pkg/header"
)

func TestRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    []string
	}{
		{
			name:    "broker section",
			section: SectionBroker,
			want:    []string{"id", "name", "domain", "category"},
		},
		{
			name:    "removal section",
			section: SectionRemoval,
			want:    []string{"method"},
		},
		{
			name:    "jurisdictions has no required fields",
			section: SectionJurisdictions,
			want:    nil,
		},
		{
			name:    "unknown section",
			section: "metadata",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiredFields(tt.section))
		})
	}
}

func TestRequiredSections(t *testing.T) {
	assert.Equal(t, []string{SectionBroker, SectionRemoval}, RequiredSections())
}

func TestEnumerationMembership(t *testing.T) {
	assert.True(t, IsValidCategory("people-search"))
	assert.True(t, IsValidCategory("other"))
	assert.False(t, IsValidCategory("People-Search"))
	assert.False(t, IsValidCategory("telemetry"))
	assert.False(t, IsValidCategory(""))

	assert.True(t, IsValidRemovalMethod("web-form"))
	assert.True(t, IsValidRemovalMethod("account-required"))
	assert.False(t, IsValidRemovalMethod("fax"))

	assert.True(t, IsValidJurisdiction("gdpr"))
	assert.True(t, IsValidJurisdiction("global"))
	assert.False(t, IsValidJurisdiction("pipeda"))
}

func TestEnumerationsSorted(t *testing.T) {
	assert.Equal(t, []string{
		"background-check",
		"data-aggregator",
		"financial",
		"government-records",
		"marketing",
		"other",
		"people-search",
		"social-media",
	}, Categories())

	assert.Equal(t, []string{
		"account-required",
		"api",
		"email",
		"mail",
		"phone",
		"web-form",
	}, RemovalMethods())

	assert.Equal(t, []string{
		"ccpa",
		"cpa",
		"ctdpa",
		"gdpr",
		"global",
		"ucpa",
		"vcdpa",
	}, Jurisdictions())
}

func TestMutationSafety(t *testing.T) {
	// Callers must not be able to alter the registry through returned slices.
	fields := RequiredFields(SectionBroker)
	fields[0] = "mutated"
	assert.Equal(t, []string{"id", "name", "domain", "category"}, RequiredFields(SectionBroker))

	sections := RequiredSections()
	sections[0] = "mutated"
	assert.Equal(t, []string{SectionBroker, SectionRemoval}, RequiredSections())
}

func TestNewRuleSet(t *testing.T) {
	rs := NewRuleSet("1.0.0")
	require.NotNil(t, rs)

	assert.Equal(t, header.KindRuleSet, rs.Kind)
	assert.Equal(t, APIVersion, rs.APIVersion)
	assert.Equal(t, "1.0.0", rs.Metadata["version"])
	assert.Equal(t, []string{"id", "name", "domain", "category"}, rs.Required[SectionBroker])
	assert.Equal(t, []string{"method"}, rs.Required[SectionRemoval])
	assert.Len(t, rs.Categories, 8)
	assert.Len(t, rs.RemovalMethods, 6)
	assert.Len(t, rs.Jurisdictions, 7)
}
