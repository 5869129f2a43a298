package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	allCategories     = "background-check, data-aggregator, financial, government-records, marketing, other, people-search, social-media"
	allRemovalMethods = "account-required, api, email, mail, phone, web-form"
	allJurisdictions  = "ccpa, cpa, ctdpa, gdpr, global, ucpa, vcdpa"
)

func TestCheckBrokerCategory(t *testing.T) {
	tests := []struct {
		name     string
		section  map[string]any
		want     []string
		wantKind Kind
	}{
		{
			name:    "valid category",
			section: map[string]any{"category": "people-search"},
			want:    nil,
		},
		{
			name:    "absent category is not checked here",
			section: map[string]any{},
			want:    nil,
		},
		{
			name:     "invalid category lists allowed set sorted",
			section:  map[string]any{"category": "telemetry"},
			want:     []string{"Invalid category 'telemetry'. Must be one of: " + allCategories},
			wantKind: KindInvalidEnum,
		},
		{
			name:     "case sensitive",
			section:  map[string]any{"category": "People-Search"},
			want:     []string{"Invalid category 'People-Search'. Must be one of: " + allCategories},
			wantKind: KindInvalidEnum,
		},
		{
			name:     "non-string category",
			section:  map[string]any{"category": int64(7)},
			want:     []string{"Invalid category '7'. Must be one of: " + allCategories},
			wantKind: KindInvalidEnum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := CheckBroker(tt.section)
			require.Len(t, diags, len(tt.want))
			for i, msg := range tt.want {
				assert.Equal(t, msg, diags[i].Message)
				assert.Equal(t, tt.wantKind, diags[i].Kind)
			}
		})
	}
}

func TestCheckBrokerDomain(t *testing.T) {
	tests := []struct {
		name    string
		domain  any
		wantLen int
	}{
		{name: "bare hostname", domain: "spokeo.com", wantLen: 0},
		{name: "subdomain", domain: "www.spokeo.com", wantLen: 0},
		{name: "https url", domain: "https://spokeo.com", wantLen: 1},
		{name: "http url", domain: "http://spokeo.com", wantLen: 1},
		{name: "empty string", domain: "", wantLen: 1},
		{name: "contains space", domain: "spokeo .com", wantLen: 1},
		{name: "non-string", domain: true, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := CheckBroker(map[string]any{"domain": tt.domain})
			require.Len(t, diags, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, KindInvalidFormat, diags[0].Kind)
				assert.Contains(t, diags[0].Message, "Should be just the domain")
			}
		})
	}
}

func TestCheckBrokerID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want []string
	}{
		{
			name: "valid lowercase with hyphen",
			id:   "spokeo-1",
			want: nil,
		},
		{
			name: "valid with underscore",
			id:   "been_verified",
			want: nil,
		},
		{
			name: "uppercase only",
			id:   "Spokeo-1",
			want: []string{"Broker ID 'Spokeo-1' must be lowercase."},
		},
		{
			name: "non-alphanumeric only",
			id:   "spokeo!",
			want: []string{"Invalid broker ID 'spokeo!'. Use lowercase alphanumeric with hyphens."},
		},
		{
			name: "both checks fire independently",
			id:   "Spokeo!",
			want: []string{
				"Invalid broker ID 'Spokeo!'. Use lowercase alphanumeric with hyphens.",
				"Broker ID 'Spokeo!' must be lowercase.",
			},
		},
		{
			name: "empty id fails alphanumeric",
			id:   "",
			want: []string{"Invalid broker ID ''. Use lowercase alphanumeric with hyphens."},
		},
		{
			name: "separators only fails alphanumeric",
			id:   "-_-",
			want: []string{"Invalid broker ID '-_-'. Use lowercase alphanumeric with hyphens."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := CheckBroker(map[string]any{"id": tt.id})
			require.Len(t, diags, len(tt.want))
			for i, msg := range tt.want {
				assert.Equal(t, msg, diags[i].Message)
			}
		})
	}
}

func TestCheckRemovalMethod(t *testing.T) {
	tests := []struct {
		name    string
		section map[string]any
		want    []string
	}{
		{
			name:    "valid single string",
			section: map[string]any{"method": "email"},
			want:    nil,
		},
		{
			name:    "valid array",
			section: map[string]any{"method": []any{"web-form", "email"}},
			want:    nil,
		},
		{
			name:    "invalid single string",
			section: map[string]any{"method": "fax"},
			want:    []string{"Invalid removal method 'fax'. Must be one of: " + allRemovalMethods},
		},
		{
			name:    "each invalid array entry reported in order",
			section: map[string]any{"method": []any{"fax", "email", "carrier-pigeon"}},
			want: []string{
				"Invalid removal method 'fax'. Must be one of: " + allRemovalMethods,
				"Invalid removal method 'carrier-pigeon'. Must be one of: " + allRemovalMethods,
			},
		},
		{
			name:    "wrong shape skips enum checking",
			section: map[string]any{"method": int64(3)},
			want:    []string{"removal.method must be a string or array of strings"},
		},
		{
			name:    "non-string array entry",
			section: map[string]any{"method": []any{"email", int64(1)}},
			want:    []string{"Invalid removal method '1'. Must be one of: " + allRemovalMethods},
		},
		{
			name:    "absent method not checked here",
			section: map[string]any{},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := CheckRemoval(tt.section)
			require.Len(t, diags, len(tt.want))
			for i, msg := range tt.want {
				assert.Equal(t, msg, diags[i].Message)
			}
		})
	}
}

func TestCheckRemovalURL(t *testing.T) {
	tests := []struct {
		name    string
		url     any
		wantLen int
	}{
		{name: "https url", url: "https://www.spokeo.com/optout", wantLen: 0},
		{name: "http url", url: "http://spokeo.com/optout", wantLen: 0},
		{name: "bare hostname", url: "spokeo.com/optout", wantLen: 1},
		{name: "other scheme", url: "ftp://spokeo.com", wantLen: 1},
		{name: "non-string", url: int64(1), wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := CheckRemoval(map[string]any{"url": tt.url})
			require.Len(t, diags, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, KindInvalidFormat, diags[0].Kind)
				assert.Contains(t, diags[0].Message, "removal.url must be a full URL")
			}
		})
	}
}

func TestCheckJurisdictions(t *testing.T) {
	tests := []struct {
		name    string
		entries []any
		want    []string
	}{
		{
			name: "valid laws",
			entries: []any{
				map[string]any{"law": "ccpa"},
				map[string]any{"law": "gdpr", "note": "EU residents"},
			},
			want: nil,
		},
		{
			name: "invalid law named",
			entries: []any{
				map[string]any{"law": "pipeda"},
			},
			want: []string{"Invalid jurisdiction 'pipeda'. Must be one of: " + allJurisdictions},
		},
		{
			name: "entries without law are ignored",
			entries: []any{
				map[string]any{"note": "pending review"},
				"not-a-mapping",
				int64(42),
				map[string]any{"law": "bogus"},
			},
			want: []string{"Invalid jurisdiction 'bogus'. Must be one of: " + allJurisdictions},
		},
		{
			name:    "empty sequence",
			entries: []any{},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := CheckJurisdictions(tt.entries)
			require.Len(t, diags, len(tt.want))
			for i, msg := range tt.want {
				assert.Equal(t, msg, diags[i].Message)
				assert.Equal(t, KindInvalidEnum, diags[i].Kind)
			}
		})
	}
}
