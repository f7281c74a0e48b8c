// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package filestore

import (
	"fmt"
	"os"

	"github.com/blockframe/blockframe/lib/archive"
	"github.com/blockframe/blockframe/lib/digest"
	"github.com/blockframe/blockframe/lib/manifest"
)

// ReadSegment returns the unpadded on-disk bytes of segment index i
// (tier 1's single implicit segment is index 0) and reports whether
// they verify against the manifest. This is a consciously asymmetric
// integrity contract: tiers 1 and 2 are cheap to verify per read (a
// single hash over the bytes already being read), so ReadSegment does
// it every time. Tier 3 has no equivalent O(1) check — verifying a
// block would mean reading all 30 of its segments — so ReadSegment
// returns tier-3 bytes unverified and callers rely on a periodic
// health scan (see FileStore.GetAll + Repair run on a schedule)
// instead of a per-read check.
func ReadSegment(file *File, index int) (data []byte, verified bool, err error) {
	m := file.Manifest

	switch m.Tier {
	case manifest.TierTiny:
		data, err = os.ReadFile(archive.Tier1DataPath(file.ArchiveDir))
		if err != nil {
			return nil, false, fmt.Errorf("filestore: reading data.dat: %w", err)
		}
		size := m.Size
		if size > int64(len(data)) {
			size = int64(len(data))
		}
		unpadded := data[:size]
		return unpadded, digest.HashBytes(data) == m.MerkleTree.Leaves["0"], nil

	case manifest.TierSegmented:
		want, ok := m.MerkleTree.Segments[fmt.Sprint(index)]
		if !ok {
			return nil, false, fmt.Errorf("filestore: segment %d not recorded in manifest", index)
		}
		data, err = os.ReadFile(archive.Tier2SegmentPath(file.ArchiveDir, index))
		if err != nil {
			return nil, false, fmt.Errorf("filestore: reading segment %d: %w", index, err)
		}
		return data, digest.HashBytes(data) == want.Data, nil

	case manifest.TierBlocked:
		segmentsPerBlock := m.ErasureCoding.DataShards
		block := index / segmentsPerBlock
		within := index % segmentsPerBlock
		data, err = os.ReadFile(archive.Tier3SegmentPath(file.ArchiveDir, block, within))
		if err != nil {
			return nil, false, fmt.Errorf("filestore: reading block %d segment %d: %w", block, within, err)
		}
		return data, false, nil

	default:
		return nil, false, fmt.Errorf("filestore: invalid tier %d", m.Tier)
	}
}
