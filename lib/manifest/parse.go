// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Parse decodes a manifest.json document into a Manifest. The
// manifest is plain JSON — the one artifact in an archive a human or
// a third-party tool is expected to open directly — and unknown
// fields are rejected so a
// manifest written by a newer BlockFrame version is never silently
// misread by an older one.
//
// Parse does not call Validate; callers that need a manifest known to
// satisfy the tier/shape invariants should call Validate explicitly.
func Parse(data []byte) (*Manifest, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("manifest: trailing data after manifest document")
	}

	return &m, nil
}
