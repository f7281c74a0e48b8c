// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"strconv"

	"github.com/blockframe/blockframe/lib/digest"
)

// Validate checks that m satisfies the shape invariants required of
// every manifest: the tier is one of {1,2,3}, the erasure-coding
// parameters match that tier, the root hash and identity hash are
// set, exactly the tier-appropriate map in MerkleTree is populated
// with contiguous 0-based indices, and the other two maps are empty.
//
// Validate deliberately does not re-derive any hash: it checks shape,
// not cryptographic correctness. A manifest can pass Validate and
// still fail a Merkle proof replay against on-disk data — that is
// filestore.Repair's job, not this one's.
func Validate(m *Manifest) error {
	switch m.Tier {
	case TierTiny, TierSegmented, TierBlocked:
	default:
		return fmt.Errorf("manifest: %w: got %d", ErrInvalidTier, m.Tier)
	}

	if err := validateErasureCoding(m.Tier, m.ErasureCoding); err != nil {
		return err
	}

	if m.Name == "" {
		return fmt.Errorf("manifest: name is empty")
	}
	if m.Size < 0 {
		return fmt.Errorf("manifest: size is negative: %d", m.Size)
	}
	if m.OriginalHash.Zero() {
		return fmt.Errorf("manifest: %w: original_hash is zero", ErrMalformedHash)
	}
	if m.MerkleTree.Root.Zero() {
		return fmt.Errorf("manifest: %w: merkle_tree.root is zero", ErrMalformedHash)
	}

	active, others, err := activeAndOtherSizes(m.Tier, &m.MerkleTree)
	if err != nil {
		return err
	}
	for _, n := range others {
		if n > 0 {
			return fmt.Errorf("manifest: %w: a non-active merkle_tree map is populated for %s", ErrSchemaMismatch, m.Tier)
		}
	}
	if active == 0 {
		return fmt.Errorf("manifest: %w: no hierarchical hashes recorded for %s", ErrSchemaMismatch, m.Tier)
	}

	return validateContiguous(m.Tier, &m.MerkleTree)
}

func validateErasureCoding(tier Tier, ec ErasureCoding) error {
	wantData, wantParity := 1, 3
	if tier == TierBlocked {
		wantData = 30
	}
	if ec.DataShards != wantData || ec.ParityShards != wantParity {
		return fmt.Errorf("manifest: %w: %s requires (%d,%d), got (%d,%d)",
			ErrTierEncodingMismatch, tier, wantData, wantParity, ec.DataShards, ec.ParityShards)
	}
	return nil
}

// activeAndOtherSizes returns the size of the map the declared tier
// should populate, and the sizes of the other two (which must be 0).
func activeAndOtherSizes(tier Tier, mt *MerkleTree) (active int, others []int, err error) {
	switch tier {
	case TierTiny:
		return len(mt.Leaves), []int{len(mt.Segments), len(mt.Blocks)}, nil
	case TierSegmented:
		return len(mt.Segments), []int{len(mt.Leaves), len(mt.Blocks)}, nil
	case TierBlocked:
		return len(mt.Blocks), []int{len(mt.Leaves), len(mt.Segments)}, nil
	default:
		return 0, nil, fmt.Errorf("manifest: %w: got %d", ErrInvalidTier, tier)
	}
}

// validateContiguous checks that the tier-appropriate map's string
// keys parse as decimal integers forming exactly {0, 1, ..., n-1}.
func validateContiguous(tier Tier, mt *MerkleTree) error {
	var keys []string
	switch tier {
	case TierTiny:
		keys = mapKeys(mt.Leaves)
	case TierSegmented:
		keys = mapKeysSeg(mt.Segments)
	case TierBlocked:
		keys = mapKeysBlock(mt.Blocks)
	}

	seen := make(map[int]bool, len(keys))
	for _, k := range keys {
		n, err := strconv.Atoi(k)
		if err != nil || n < 0 {
			return fmt.Errorf("manifest: %w: key %q is not a non-negative decimal index", ErrNonContiguousIndices, k)
		}
		seen[n] = true
	}
	for i := 0; i < len(keys); i++ {
		if !seen[i] {
			return fmt.Errorf("manifest: %w: missing index %d among %d entries", ErrNonContiguousIndices, i, len(keys))
		}
	}
	return nil
}

func mapKeys(m map[string]digest.Hash) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func mapKeysSeg(m map[string]SegmentHashes) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func mapKeysBlock(m map[string]BlockHashes) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
