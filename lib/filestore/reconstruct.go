// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package filestore

import (
	"fmt"
	"io"
	"os"

	"github.com/blockframe/blockframe/lib/archive"
	"github.com/blockframe/blockframe/lib/digest"
	"github.com/blockframe/blockframe/lib/manifest"
)

// Reconstruct reassembles file's original contents at outputPath: a
// straight concatenation of on-disk segment bytes (or, for tier 1, a
// copy of data.dat truncated to size), verified against
// original_hash before the output is considered final. Reconstruct
// does not repair anything — a missing or corrupt unit surfaces as
// ErrReconstructionHashMismatch or a read error, and callers should
// run Repair first.
func Reconstruct(file *File, outputPath string) error {
	m := file.Manifest

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("filestore: creating %s: %w", outputPath, err)
	}
	defer out.Close()

	hashWriter, sum := digest.NewWriter()

	switch m.Tier {
	case manifest.TierTiny:
		// data.dat is zero-padded to segment size on disk; only the
		// first m.Size bytes are real file content, so the padding
		// must be dropped before it ever reaches the hash or the
		// output file, not truncated off afterward.
		dataPath := archive.Tier1DataPath(file.ArchiveDir)
		padded, err := os.ReadFile(dataPath)
		if err != nil {
			return fmt.Errorf("filestore: reading %s: %w", dataPath, err)
		}
		if int64(len(padded)) > m.Size {
			padded = padded[:m.Size]
		}
		if err := writeBytes(padded, hashWriter, out); err != nil {
			return err
		}
	case manifest.TierSegmented:
		n := len(m.MerkleTree.Segments)
		for i := 0; i < n; i++ {
			if err := copySegment(archive.Tier2SegmentPath(file.ArchiveDir, i), hashWriter, out); err != nil {
				return err
			}
		}
	case manifest.TierBlocked:
		numBlocks := len(m.MerkleTree.Blocks)
		for b := 0; b < numBlocks; b++ {
			bh := m.MerkleTree.Blocks[fmt.Sprint(b)]
			for j := range bh.Segments {
				if err := copySegment(archive.Tier3SegmentPath(file.ArchiveDir, b, j), hashWriter, out); err != nil {
					return err
				}
			}
		}
	default:
		return fmt.Errorf("filestore: invalid tier %d", m.Tier)
	}

	if err := out.Truncate(m.Size); err != nil {
		return fmt.Errorf("filestore: truncating %s to %d bytes: %w", outputPath, m.Size, err)
	}

	if got := sum(); got != m.OriginalHash {
		os.Remove(outputPath)
		return fmt.Errorf("%w: got %s, want %s", ErrReconstructionHashMismatch, got, m.OriginalHash)
	}

	return nil
}

// copySegment reads srcPath fully and writes it to both hashWriter
// (accumulating the running original-file hash) and out.
func copySegment(srcPath string, hashWriter io.Writer, out *os.File) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("filestore: reading %s: %w", srcPath, err)
	}
	return writeBytes(data, hashWriter, out)
}

// writeBytes writes data to both hashWriter (accumulating the running
// original-file hash) and out.
func writeBytes(data []byte, hashWriter io.Writer, out *os.File) error {
	if _, err := hashWriter.Write(data); err != nil {
		return fmt.Errorf("filestore: hashing reconstructed bytes: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("filestore: writing reconstructed output: %w", err)
	}
	return nil
}
