// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package archive

import (
	"fmt"
	"path/filepath"
)

// ManifestFile is the fixed filename of an archive's manifest
// document within its archive directory.
const ManifestFile = "manifest.json"

// DirName returns the archive directory's name for a committed file:
// "{name}_{hash}", where hash is the hex-encoded original file hash.
// The hash suffix means two files with the same base name but
// different content never collide, and an unchanged file's directory
// name is stable under re-commit.
func DirName(name string, originalHashHex string) string {
	return fmt.Sprintf("%s_%s", name, originalHashHex)
}

// ManifestPath returns the path to archiveDir's manifest.json.
func ManifestPath(archiveDir string) string {
	return filepath.Join(archiveDir, ManifestFile)
}

// Tier1 layout: a single data shard plus three whole-file parity
// shards, all directly inside the archive directory.

// Tier1DataPath returns the path to the tier-1 padded data shard.
func Tier1DataPath(archiveDir string) string {
	return filepath.Join(archiveDir, "data.dat")
}

// Tier1ParityPath returns the path to the tier-1 parity shard k (0..2).
func Tier1ParityPath(archiveDir string, k int) string {
	return filepath.Join(archiveDir, fmt.Sprintf("parity_%d.dat", k))
}

// Tier2 layout: segments/segment_{i}.dat, parity/segment_{i}_parity_{k}.dat.

// Tier2SegmentPath returns the path to tier-2 segment i's on-disk
// (unpadded) data file.
func Tier2SegmentPath(archiveDir string, i int) string {
	return filepath.Join(archiveDir, "segments", fmt.Sprintf("segment_%d.dat", i))
}

// Tier2ParityPath returns the path to tier-2 segment i's parity shard k.
func Tier2ParityPath(archiveDir string, i, k int) string {
	return filepath.Join(archiveDir, "parity", fmt.Sprintf("segment_%d_parity_%d.dat", i, k))
}

// Tier3 layout: blocks/block_{b}/segments/segment_{j}.dat,
// blocks/block_{b}/parity/parity_{k}.dat.

// Tier3BlockDir returns the directory holding block b's segments and
// parity subdirectories.
func Tier3BlockDir(archiveDir string, b int) string {
	return filepath.Join(archiveDir, "blocks", fmt.Sprintf("block_%d", b))
}

// Tier3SegmentPath returns the path to block b's segment j on-disk
// (unpadded) data file.
func Tier3SegmentPath(archiveDir string, b, j int) string {
	return filepath.Join(Tier3BlockDir(archiveDir, b), "segments", fmt.Sprintf("segment_%d.dat", j))
}

// Tier3ParityPath returns the path to block b's parity shard k.
func Tier3ParityPath(archiveDir string, b, k int) string {
	return filepath.Join(Tier3BlockDir(archiveDir, b), "parity", fmt.Sprintf("parity_%d.dat", k))
}
