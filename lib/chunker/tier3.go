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
	"github.com/blockframe/blockframe/lib/mmap"
	"github.com/blockframe/blockframe/lib/workerpool"
)

// zeroSegment is a SegmentSize buffer of zeros, used both as the RS
// input for virtual tail-block positions and as the merkle leaf for
// those same positions — there is no on-disk file behind them.
var zeroSegment = make([]byte, SegmentSize)
var zeroSegmentHash = digest.HashBytes(zeroSegment)

// commitBlocked implements the per-block RS(30,3) path for files at
// or above 1 GiB: segments are grouped into blocks of 30, each block
// independently RS-encoded and hashed, with block mini-tree roots
// feeding the file-level tree.
func commitBlocked(archiveRoot, path, name string, size int64, pool *workerpool.Pool) (*manifest.Manifest, string, error) {
	mapping, err := openMapping(path)
	if err != nil {
		return nil, "", err
	}
	defer mapping.Close()

	originalHash := digest.HashBytes(mapping.Bytes()[:size])
	archiveDir := filepath.Join(archiveRoot, archive.DirName(name, originalHash.String()))

	totalSegments := numSegments(size)
	numBlocks := (totalSegments + SegmentsPerBlock - 1) / SegmentsPerBlock
	if numBlocks == 0 {
		numBlocks = 1
	}

	for b := 0; b < numBlocks; b++ {
		blockDir := archive.Tier3BlockDir(archiveDir, b)
		if err := os.MkdirAll(filepath.Join(blockDir, "segments"), 0o755); err != nil {
			return nil, "", fmt.Errorf("chunker: creating block %d segments dir: %w", b, err)
		}
		if err := os.MkdirAll(filepath.Join(blockDir, "parity"), 0o755); err != nil {
			return nil, "", fmt.Errorf("chunker: creating block %d parity dir: %w", b, err)
		}
	}

	blockHashes := make([]manifest.BlockHashes, numBlocks)
	blockRoots := make([]digest.Hash, numBlocks)

	errs := pool.Run(numBlocks, func(b int) error {
		return commitBlock(archiveDir, mapping, size, b, totalSegments, blockHashes, blockRoots)
	})
	for b, err := range errs {
		if err != nil {
			return nil, "", fmt.Errorf("chunker: committing block %d: %w", b, err)
		}
	}

	tree, err := merkletree.BuildFromHashes(blockRoots)
	if err != nil {
		return nil, "", fmt.Errorf("chunker: building file-level tree: %w", err)
	}

	mt := manifest.NewEmptyMerkleTree()
	for b, bh := range blockHashes {
		mt.Blocks[fmt.Sprint(b)] = bh
	}
	mt.Root = tree.Root()

	m := &manifest.Manifest{
		OriginalHash:  originalHash,
		ErasureCoding: manifest.ErasureCoding{DataShards: SegmentsPerBlock, ParityShards: 3},
		MerkleTree:    mt,
	}
	return m, archiveDir, nil
}

// commitBlock encodes and writes block b: up to 30 real on-disk
// segments (the final block of the final file may hold fewer), three
// parity shards, and a 33-leaf mini-tree whose root is written into
// blockRoots[b]. Virtual tail positions beyond the real segment count
// are zero-padded for encoding and hashed as zeroSegmentHash for the
// tree, but never written to disk and never recorded in
// blockHashes[b].Segments.
func commitBlock(archiveDir string, mapping *mmap.Mapping, fileSize int64, b, totalSegments int, blockHashes []manifest.BlockHashes, blockRoots []digest.Hash) error {
	firstSeg := b * SegmentsPerBlock
	realCount := totalSegments - firstSeg
	if realCount > SegmentsPerBlock {
		realCount = SegmentsPerBlock
	}
	if realCount < 0 {
		realCount = 0
	}

	shards := make([][]byte, SegmentsPerBlock)
	treeLeaves := make([]digest.Hash, SegmentsPerBlock+3)
	segmentHashes := make([]digest.Hash, realCount)

	for j := 0; j < SegmentsPerBlock; j++ {
		if j < realCount {
			start, end := segmentBounds(fileSize, firstSeg+j)
			unpadded := mapping.Bytes()[start:end]
			padded := padSegment(unpadded)
			shards[j] = padded

			dataHash := digest.HashBytes(unpadded)
			segmentHashes[j] = dataHash
			treeLeaves[j] = dataHash

			if err := archive.WriteFileAtomic(archive.Tier3SegmentPath(archiveDir, b, j), unpadded, 0o644); err != nil {
				return fmt.Errorf("writing segment_%d.dat: %w", j, err)
			}
			continue
		}
		shards[j] = zeroSegment
		treeLeaves[j] = zeroSegmentHash
	}

	parityShards, err := erasure.Encode(shards, 3)
	if err != nil {
		return fmt.Errorf("encoding block parity: %w", err)
	}

	var parityHashes [3]digest.Hash
	for k, shard := range parityShards {
		parityHashes[k] = digest.HashBytes(shard)
		treeLeaves[SegmentsPerBlock+k] = parityHashes[k]
		if err := archive.WriteFileAtomic(archive.Tier3ParityPath(archiveDir, b, k), shard, 0o644); err != nil {
			return fmt.Errorf("writing parity_%d.dat: %w", k, err)
		}
	}

	blockTree, err := merkletree.BuildFromHashes(treeLeaves)
	if err != nil {
		return fmt.Errorf("building block mini-tree: %w", err)
	}

	blockHashes[b] = manifest.BlockHashes{Segments: segmentHashes, Parity: parityHashes}
	blockRoots[b] = blockTree.Root()
	return nil
}
