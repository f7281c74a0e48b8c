// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import "encoding/json"

// Serialize renders m as the bytes written to manifest.json. Field
// order within the top-level object follows the struct's declared
// order; map keys (decimal string indices) are rendered in
// lexicographic order by encoding/json's own map handling. Both are
// stable across calls, so two Serialize calls over equal Manifest
// values produce byte-identical output.
func Serialize(m *Manifest) ([]byte, error) {
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
