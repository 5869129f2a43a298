/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package broker

import "sort"

// Record is a parsed broker definition document: a mapping from top-level
// section name to section content. Table sections decode to
// map[string]any, array-of-table sections to []any. A Record is built,
// validated, and discarded per file; nothing retains it across files.
type Record map[string]any

// Has reports whether the record contains a top-level section.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Section returns the named section as a mapping. The second return is
// false when the section is absent or is not a table.
func (r Record) Section(name string) (map[string]any, bool) {
	v, ok := r[name]
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	return m, ok
}

// List returns the named section as an ordered sequence. The second
// return is false when the section is absent or is not an array.
// go-toml decodes plain arrays to []any but arrays of tables to
// []map[string]any; both shapes normalize to []any here.
func (r Record) List(name string) ([]any, bool) {
	v, ok := r[name]
	if !ok {
		return nil, false
	}
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	}
	return nil, false
}

// Sections returns all top-level section names sorted alphabetically.
func (r Record) Sections() []string {
	out := make([]string, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
