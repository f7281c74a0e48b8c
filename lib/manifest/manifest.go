// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"time"

	"github.com/blockframe/blockframe/lib/digest"
)

// Tier identifies which encoding strategy produced an archive. Tier
// is derived from file size at commit time and never changes
// afterward.
type Tier int

const (
	// TierTiny is whole-file RS(1,3): one data shard equal to the
	// file (padded to segment size), three parity shards.
	TierTiny Tier = 1

	// TierSegmented is per-segment RS(1,3): each segment gets three
	// independent parity shards.
	TierSegmented Tier = 2

	// TierBlocked is per-block RS(30,3): 30 data segments plus 3
	// block parity shards per block.
	TierBlocked Tier = 3
)

// String renders the tier as a short label for logs and CLI output.
func (t Tier) String() string {
	switch t {
	case TierTiny:
		return "tier-1"
	case TierSegmented:
		return "tier-2"
	case TierBlocked:
		return "tier-3"
	default:
		return "tier-unknown"
	}
}

// ErasureCoding records the Reed-Solomon shape used to encode this
// archive: (1,3) for tiers 1 and 2, (30,3) for tier 3.
type ErasureCoding struct {
	DataShards   int `json:"data_shards"`
	ParityShards int `json:"parity_shards"`
}

// SegmentHashes holds the per-segment hashes recorded for a tier-2
// archive: the hash of the unpadded on-disk segment data, plus the
// three independently-recorded parity hashes. The parity hashes are
// not assumed to equal the data hash even though, for the standard
// RS(1,3) construction used here, they happen to for full-length
// segments (a short final segment's data hash covers only its
// unpadded bytes, while its parity covers the padded shard).
type SegmentHashes struct {
	Data   digest.Hash    `json:"data"`
	Parity [3]digest.Hash `json:"parity"`
}

// BlockHashes holds the per-block hashes recorded for a tier-3
// archive: the hash of each real (non-padding) on-disk segment in the
// block, in order, plus the three block parity hashes. A short tail
// block records fewer than 30 segment hashes — virtual zero-padded
// positions are never recorded here; they are reconstructed
// deterministically during repair.
type BlockHashes struct {
	Segments []digest.Hash  `json:"segments"`
	Parity   [3]digest.Hash `json:"parity"`
}

// MerkleTree holds the hierarchical hash tree over an archive's
// segments and parity. Exactly one of Leaves, Segments, Blocks is
// non-empty, matching the archive's Tier: Leaves for tier 1, Segments
// for tier 2, Blocks for tier 3. The others are present (so the JSON
// document has a stable shape) but empty.
type MerkleTree struct {
	// Leaves holds the file-level tree's leaves for tier 1, keyed by
	// decimal string index. For tier 1 this is always {"0": H(data)}.
	Leaves map[string]digest.Hash `json:"leaves"`

	// Segments holds per-segment hashes for tier 2, keyed by decimal
	// string segment index.
	Segments map[string]SegmentHashes `json:"segments"`

	// Blocks holds per-block hashes for tier 3, keyed by decimal
	// string block index.
	Blocks map[string]BlockHashes `json:"blocks"`

	// Root is the root of the file-level Merkle tree over the
	// tier-appropriate leaves: for tier 1 the single data leaf, for
	// tier 2 the per-segment mini-tree roots, for tier 3 the per-block
	// mini-tree roots.
	Root digest.Hash `json:"root"`
}

// Manifest is the typed mirror of an archive's manifest.json: the
// archive's identity, tier, erasure-coding parameters, and the
// hierarchical Merkle hash tree binding its segments and parity
// together.
type Manifest struct {
	Name           string        `json:"name"`
	Size           int64         `json:"size"`
	OriginalHash   digest.Hash   `json:"original_hash"`
	Tier           Tier          `json:"tier"`
	SegmentSize    int64         `json:"segment_size"`
	TimeOfCreation time.Time     `json:"time_of_creation"`
	ErasureCoding  ErasureCoding `json:"erasure_coding"`
	MerkleTree     MerkleTree    `json:"merkle_tree"`
}

// NewEmptyMerkleTree returns a MerkleTree with all three maps
// allocated (but empty), the shape every manifest's merkle_tree field
// must have before the tier-appropriate map is populated.
func NewEmptyMerkleTree() MerkleTree {
	return MerkleTree{
		Leaves:   map[string]digest.Hash{},
		Segments: map[string]SegmentHashes{},
		Blocks:   map[string]BlockHashes{},
	}
}
