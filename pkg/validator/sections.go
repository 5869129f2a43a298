/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"fmt"
	"strings"

	"github.com/spectral-hq/brokerlint/pkg/rules"
)

// CheckBroker validates the broker identity section. Field presence is
// handled by the required-field phase; each check here only fires when
// its field is present. Checks are additive: an id can fail both the
// alphanumeric check and the lowercase check.
func CheckBroker(section map[string]any) []Diagnostic {
	var diags []Diagnostic

	if v, ok := section["category"]; ok {
		if s, isStr := v.(string); !isStr || !rules.IsValidCategory(s) {
			diags = append(diags, Diagnostic{
				Kind: KindInvalidEnum,
				Message: fmt.Sprintf("Invalid category '%v'. Must be one of: %s",
					v, strings.Join(rules.Categories(), ", ")),
			})
		}
	}

	if v, ok := section["domain"]; ok {
		s, isStr := v.(string)
		if !isStr || s == "" || strings.Contains(s, " ") || strings.HasPrefix(s, "http") {
			diags = append(diags, Diagnostic{
				Kind:    KindInvalidFormat,
				Message: fmt.Sprintf("Invalid domain '%v'. Should be just the domain (e.g., 'spokeo.com')", v),
			})
		}
	}

	if v, ok := section["id"]; ok {
		s, isStr := v.(string)
		if !isStr {
			diags = append(diags, Diagnostic{
				Kind:    KindInvalidFormat,
				Message: fmt.Sprintf("Invalid broker ID '%v'. Use lowercase alphanumeric with hyphens.", v),
			})
		} else {
			stripped := strings.NewReplacer("-", "", "_", "").Replace(s)
			if !isAlphanumeric(stripped) {
				diags = append(diags, Diagnostic{
					Kind:    KindInvalidFormat,
					Message: fmt.Sprintf("Invalid broker ID '%s'. Use lowercase alphanumeric with hyphens.", s),
				})
			}
			if s != strings.ToLower(s) {
				diags = append(diags, Diagnostic{
					Kind:    KindInvalidFormat,
					Message: fmt.Sprintf("Broker ID '%s' must be lowercase.", s),
				})
			}
		}
	}

	return diags
}

// CheckRemoval validates the removal procedure section. The method field
// is polymorphic: a single string or an ordered array of strings. Any
// other shape yields one diagnostic and skips enum-checking that field;
// each invalid entry in an array gets its own diagnostic in list order.
func CheckRemoval(section map[string]any) []Diagnostic {
	var diags []Diagnostic

	if v, ok := section["method"]; ok {
		var methods []any
		switch m := v.(type) {
		case string:
			methods = []any{m}
		case []any:
			methods = m
		default:
			diags = append(diags, Diagnostic{
				Kind:    KindInvalidFormat,
				Message: "removal.method must be a string or array of strings",
			})
		}

		for _, m := range methods {
			if s, isStr := m.(string); !isStr || !rules.IsValidRemovalMethod(s) {
				diags = append(diags, Diagnostic{
					Kind: KindInvalidEnum,
					Message: fmt.Sprintf("Invalid removal method '%v'. Must be one of: %s",
						m, strings.Join(rules.RemovalMethods(), ", ")),
				})
			}
		}
	}

	if v, ok := section["url"]; ok {
		s, isStr := v.(string)
		if !isStr || !(strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")) {
			diags = append(diags, Diagnostic{
				Kind:    KindInvalidFormat,
				Message: fmt.Sprintf("removal.url must be a full URL, got '%v'", v),
			})
		}
	}

	return diags
}

// CheckJurisdictions validates the jurisdictions sequence. Entries that
// are not mappings or carry no law field are silently ignored; the schema
// permits heterogeneous metadata per entry.
func CheckJurisdictions(entries []any) []Diagnostic {
	var diags []Diagnostic

	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		law, ok := m["law"]
		if !ok {
			continue
		}
		if s, isStr := law.(string); !isStr || !rules.IsValidJurisdiction(s) {
			diags = append(diags, Diagnostic{
				Kind: KindInvalidEnum,
				Message: fmt.Sprintf("Invalid jurisdiction '%v'. Must be one of: %s",
					law, strings.Join(rules.Jurisdictions(), ", ")),
			})
		}
	}

	return diags
}

// isAlphanumeric reports whether s is non-empty ASCII letters and digits.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
