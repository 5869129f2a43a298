/*
Copyright © 2025 Spectral Privacy
SPDX-License-Identifier: Apache-2.0
*/

package broker

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spectral-hq/brokerlint/pkg/errors"
)

// Parse decodes a broker definition from raw TOML bytes. On syntax failure
// it returns a SYNTAX_ERROR structured error and no record; a malformed
// document has no addressable structure to validate against.
func Parse(data []byte) (Record, error) {
	var rec Record
	if err := toml.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSyntax, "Invalid TOML syntax", err)
	}
	return rec, nil
}

// Load reads and parses a broker definition file. A path that does not
// resolve returns a FILE_NOT_FOUND structured error; any other read
// failure is reported as INTERNAL.
func Load(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, "File not found", err)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to read file", err)
	}
	return Parse(data)
}
