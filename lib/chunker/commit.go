// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chunker

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/blockframe/blockframe/lib/archive"
	"github.com/blockframe/blockframe/lib/manifest"
	"github.com/blockframe/blockframe/lib/mmap"
	"github.com/blockframe/blockframe/lib/workerpool"
)

// ErrEmptyFile is returned by Commit when the input file has zero
// bytes. An empty file has no content to hash meaningfully as a
// single data shard, so zero-byte files are unsupported.
var ErrEmptyFile = errors.New("chunker: zero-byte files are not supported")

// Commit ingests the file at path, writes a self-describing archive
// directory under archiveRoot, and returns the resulting manifest. The
// archive directory name is "{base name}_{original hash hex}"; commit
// is therefore idempotent for unchanged files and produces a distinct
// directory for any content change.
//
// pool sizes tier-3 block parallelism; a nil pool defaults to
// runtime.NumCPU() workers via workerpool.New(0).
func Commit(archiveRoot, path string, pool *workerpool.Pool) (*manifest.Manifest, error) {
	if pool == nil {
		pool = workerpool.New(0)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("chunker: stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("chunker: %s is a directory", path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("chunker: %s is empty: %w", path, ErrEmptyFile)
	}
	size := info.Size()
	name := filepath.Base(path)
	tier := SelectTier(size)

	var m *manifest.Manifest
	var archiveDir string

	switch tier {
	case manifest.TierTiny:
		m, archiveDir, err = commitTiny(archiveRoot, path, name, size)
	case manifest.TierSegmented:
		m, archiveDir, err = commitSegmented(archiveRoot, path, name, size)
	case manifest.TierBlocked:
		m, archiveDir, err = commitBlocked(archiveRoot, path, name, size, pool)
	default:
		return nil, fmt.Errorf("chunker: unreachable tier %d", tier)
	}
	if err != nil {
		return nil, err
	}

	m.Name = name
	m.Size = size
	m.Tier = tier
	m.SegmentSize = SegmentSize
	m.TimeOfCreation = time.Now().UTC()

	if err := manifest.Validate(m); err != nil {
		return nil, fmt.Errorf("chunker: built manifest failed validation: %w", err)
	}

	data, err := manifest.Serialize(m)
	if err != nil {
		return nil, fmt.Errorf("chunker: serializing manifest: %w", err)
	}
	if err := archive.WriteFileAtomic(archive.ManifestPath(archiveDir), data, 0o644); err != nil {
		return nil, fmt.Errorf("chunker: writing manifest: %w", err)
	}

	return m, nil
}

// openMapping memory-maps path for the segmented and blocked tiers.
// It is factored out so both tiers share the same error wrapping;
// the empty-file check lives in Commit and in mmap.Open.
func openMapping(path string) (*mmap.Mapping, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("chunker: mapping %s: %w", path, err)
	}
	return m, nil
}
