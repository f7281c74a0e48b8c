// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chunker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blockframe/blockframe/lib/archive"
	"github.com/blockframe/blockframe/lib/digest"
	"github.com/blockframe/blockframe/lib/erasure"
	"github.com/blockframe/blockframe/lib/manifest"
	"github.com/blockframe/blockframe/lib/merkletree"
)

// commitTiny implements the whole-file RS(1,3) path for files under
// 10 MiB: one data shard (the file, zero-padded to segment size) and
// three parity shards.
func commitTiny(archiveRoot, path, name string, size int64) (*manifest.Manifest, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("chunker: reading %s: %w", path, err)
	}

	originalHash := digest.HashBytes(raw)
	archiveDir := filepath.Join(archiveRoot, archive.DirName(name, originalHash.String()))

	padded := padSegment(raw)

	shards, err := erasure.Encode([][]byte{padded}, 3)
	if err != nil {
		return nil, "", fmt.Errorf("chunker: encoding tier-1 parity: %w", err)
	}

	if err := archive.WriteFileAtomic(archive.Tier1DataPath(archiveDir), padded, 0o644); err != nil {
		return nil, "", fmt.Errorf("chunker: writing data.dat: %w", err)
	}
	for k, shard := range shards {
		if err := archive.WriteFileAtomic(archive.Tier1ParityPath(archiveDir, k), shard, 0o644); err != nil {
			return nil, "", fmt.Errorf("chunker: writing parity_%d.dat: %w", k, err)
		}
	}

	leafHash := digest.HashBytes(padded)
	tree, err := merkletree.BuildFromHashes([]digest.Hash{leafHash})
	if err != nil {
		return nil, "", fmt.Errorf("chunker: building tier-1 merkle tree: %w", err)
	}

	mt := manifest.NewEmptyMerkleTree()
	mt.Leaves["0"] = leafHash
	mt.Root = tree.Root()

	m := &manifest.Manifest{
		OriginalHash:  originalHash,
		ErasureCoding: manifest.ErasureCoding{DataShards: 1, ParityShards: 3},
		MerkleTree:    mt,
	}
	return m, archiveDir, nil
}
