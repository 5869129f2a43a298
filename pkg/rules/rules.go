/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package rules

import (
	"sort"

	"github.com/spectral-hq/brokerlint/pkg/header"
)

// Section names recognized by the validator.
const (
	SectionBroker        = "broker"
	SectionRemoval       = "removal"
	SectionJurisdictions = "jurisdictions"
)

// APIVersion is the API version for serialized rule sets.
const APIVersion = "brokerlint.spectral.dev/v1alpha1"

// requiredSections lists sections with required fields, in manifest order.
// Order is significant: missing-field diagnostics are reported in this order.
var requiredSections = []string{SectionBroker, SectionRemoval}

// requiredFields maps section name to its required field names, in order.
var requiredFields = map[string][]string{
	SectionBroker:  {"id", "name", "domain", "category"},
	SectionRemoval: {"method"},
}

// validCategories is the closed set of broker categories.
var validCategories = map[string]struct{}{
	"people-search":      {},
	"background-check":   {},
	"data-aggregator":    {},
	"marketing":          {},
	"social-media":       {},
	"government-records": {},
	"financial":          {},
	"other":              {},
}

// validRemovalMethods is the closed set of removal procedure methods.
var validRemovalMethods = map[string]struct{}{
	"web-form":         {},
	"email":            {},
	"mail":             {},
	"phone":            {},
	"api":              {},
	"account-required": {},
}

// validJurisdictions is the closed set of privacy-law jurisdiction codes.
var validJurisdictions = map[string]struct{}{
	"ccpa":   {},
	"gdpr":   {},
	"vcdpa":  {},
	"cpa":    {},
	"ctdpa":  {},
	"ucpa":   {},
	"global": {},
}

// RequiredSections returns the section names that carry required fields,
// in manifest order.
func RequiredSections() []string {
	out := make([]string, len(requiredSections))
	copy(out, requiredSections)
	return out
}

// RequiredFields returns the required field names for a section, in
// manifest order. Unknown sections return nil.
func RequiredFields(section string) []string {
	fields, ok := requiredFields[section]
	if !ok {
		return nil
	}
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// IsValidCategory reports whether v is a recognized broker category.
func IsValidCategory(v string) bool {
	_, ok := validCategories[v]
	return ok
}

// IsValidRemovalMethod reports whether v is a recognized removal method.
func IsValidRemovalMethod(v string) bool {
	_, ok := validRemovalMethods[v]
	return ok
}

// IsValidJurisdiction reports whether v is a recognized jurisdiction code.
func IsValidJurisdiction(v string) bool {
	_, ok := validJurisdictions[v]
	return ok
}

// Categories returns all valid broker categories sorted alphabetically.
func Categories() []string {
	return sortedKeys(validCategories)
}

// RemovalMethods returns all valid removal methods sorted alphabetically.
func RemovalMethods() []string {
	return sortedKeys(validRemovalMethods)
}

// Jurisdictions returns all valid jurisdiction codes sorted alphabetically.
func Jurisdictions() []string {
	return sortedKeys(validJurisdictions)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// RuleSet is a serializable snapshot of the rule registry, used by the
// rules command so contributors can discover valid values without reading
// source or the schema reference document.
type RuleSet struct {
	header.Header `json:",inline" yaml:",inline"`

	// Required maps section name to its required field names.
	Required map[string][]string `json:"required" yaml:"required"`

	// Categories lists valid broker categories.
	Categories []string `json:"categories" yaml:"categories"`

	// RemovalMethods lists valid removal methods.
	RemovalMethods []string `json:"removalMethods" yaml:"removalMethods"`

	// Jurisdictions lists valid jurisdiction codes.
	Jurisdictions []string `json:"jurisdictions" yaml:"jurisdictions"`
}

// NewRuleSet builds a RuleSet snapshot of the active registry.
func NewRuleSet(version string) *RuleSet {
	rs := &RuleSet{
		Required:       make(map[string][]string, len(requiredFields)),
		Categories:     Categories(),
		RemovalMethods: RemovalMethods(),
		Jurisdictions:  Jurisdictions(),
	}
	for _, section := range requiredSections {
		rs.Required[section] = RequiredFields(section)
	}
	rs.Init(header.KindRuleSet, APIVersion, version)
	return rs
}
