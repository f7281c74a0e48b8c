// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import "errors"

// ErrSchemaMismatch is returned by Validate when a manifest lacks the
// hierarchical hash fields its declared tier requires — most commonly
// a pre-migration archive whose merkle_tree populates the wrong map
// for its tier (e.g. leaves populated for a tier-2 file, segments
// left empty). This is a documented breaking change: there is no
// automatic upgrade path, the archive must be re-committed.
var ErrSchemaMismatch = errors.New("manifest: schema mismatch (missing hierarchical hashes for this tier)")

// ErrMalformedHash is returned by Validate when a hash field is
// missing or zero where the manifest's tier requires it to be set.
var ErrMalformedHash = errors.New("manifest: malformed or missing hash")

// ErrNonContiguousIndices is returned by Validate when the
// tier-appropriate map's keys are not exactly {0, 1, ..., n-1}.
var ErrNonContiguousIndices = errors.New("manifest: indices are not contiguous starting at 0")

// ErrTierEncodingMismatch is returned by Validate when erasure_coding
// does not match the shape required by the declared tier: (1,3) for
// tiers 1 and 2, (30,3) for tier 3.
var ErrTierEncodingMismatch = errors.New("manifest: erasure_coding does not match tier")

// ErrInvalidTier is returned by Validate when the tier field is not
// one of {1, 2, 3}.
var ErrInvalidTier = errors.New("manifest: tier must be 1, 2, or 3")
