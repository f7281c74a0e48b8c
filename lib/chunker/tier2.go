// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chunker

import (
	"fmt"
	"path/filepath"

	"github.com/blockframe/blockframe/lib/archive"
	"github.com/blockframe/blockframe/lib/digest"
	"github.com/blockframe/blockframe/lib/erasure"
	"github.com/blockframe/blockframe/lib/manifest"
	"github.com/blockframe/blockframe/lib/merkletree"
)

// commitSegmented implements the per-segment RS(1,3) path for files
// from 10 MiB up to (not including) 1 GiB: each segment gets three
// independent parity shards, and a per-segment mini-tree feeds a
// file-level tree whose root anchors the manifest.
func commitSegmented(archiveRoot, path, name string, size int64) (*manifest.Manifest, string, error) {
	mapping, err := openMapping(path)
	if err != nil {
		return nil, "", err
	}
	defer mapping.Close()

	// Segments are contiguous slices covering the whole file, so
	// hashing the mapping in one shot equals streaming the hasher
	// over each segment boundary in order.
	originalHash := digest.HashBytes(mapping.Bytes()[:size])
	archiveDir := filepath.Join(archiveRoot, archive.DirName(name, originalHash.String()))

	n := numSegments(size)
	mt := manifest.NewEmptyMerkleTree()
	leafHashes := make([]digest.Hash, n)

	for i := 0; i < n; i++ {
		start, end := segmentBounds(size, i)
		unpadded := mapping.Bytes()[start:end]
		padded := padSegment(unpadded)

		shards, err := erasure.Encode([][]byte{padded}, 3)
		if err != nil {
			return nil, "", fmt.Errorf("chunker: encoding parity for segment %d: %w", i, err)
		}

		if err := archive.WriteFileAtomic(archive.Tier2SegmentPath(archiveDir, i), unpadded, 0o644); err != nil {
			return nil, "", fmt.Errorf("chunker: writing segment_%d.dat: %w", i, err)
		}

		dataHash := digest.HashBytes(unpadded)
		var parityHashes [3]digest.Hash
		for k, shard := range shards {
			parityHashes[k] = digest.HashBytes(shard)
			if err := archive.WriteFileAtomic(archive.Tier2ParityPath(archiveDir, i, k), shard, 0o644); err != nil {
				return nil, "", fmt.Errorf("chunker: writing segment_%d_parity_%d.dat: %w", i, k, err)
			}
		}

		leaves := []digest.Hash{dataHash, parityHashes[0], parityHashes[1], parityHashes[2]}
		segTree, err := merkletree.BuildFromHashes(leaves)
		if err != nil {
			return nil, "", fmt.Errorf("chunker: building mini-tree for segment %d: %w", i, err)
		}
		leafHashes[i] = segTree.Root()

		mt.Segments[fmt.Sprint(i)] = manifest.SegmentHashes{Data: dataHash, Parity: parityHashes}
	}

	tree, err := merkletree.BuildFromHashes(leafHashes)
	if err != nil {
		return nil, "", fmt.Errorf("chunker: building file-level tree: %w", err)
	}
	mt.Root = tree.Root()

	m := &manifest.Manifest{
		OriginalHash:  originalHash,
		ErasureCoding: manifest.ErasureCoding{DataShards: 1, ParityShards: 3},
		MerkleTree:    mt,
	}
	return m, archiveDir, nil
}
