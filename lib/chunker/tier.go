// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chunker

import "github.com/blockframe/blockframe/lib/manifest"

const (
	// SegmentSize is the fixed shard size used by every tier. In
	// tiers 2 and 3 the final segment of a file may be shorter on
	// disk; it is zero-padded to SegmentSize only for the
	// Reed-Solomon input, never on disk. Tier 1 stores its single
	// data shard (data.dat) padded to SegmentSize.
	SegmentSize = 32 * 1024 * 1024

	// SegmentsPerBlock is the fixed group size for tier-3 blocking.
	// The final block may hold fewer real segments; it is still
	// encoded as SegmentsPerBlock data shards with the tail
	// zero-padded.
	SegmentsPerBlock = 30

	// tier1Ceiling is the exclusive upper bound of tier 1 (whole-file
	// RS(1,3)).
	tier1Ceiling = 10 * 1024 * 1024

	// tier2Ceiling is the exclusive upper bound of tier 2
	// (per-segment RS(1,3)). At and above this size, tier 3 applies.
	tier2Ceiling = 1 << 30
)

// SelectTier returns the encoding tier for a file of the given size:
// tier 1 below 10 MiB, tier 2 from 10 MiB up to (not including) 1 GiB,
// tier 3 at 1 GiB and above.
func SelectTier(size int64) manifest.Tier {
	switch {
	case size < tier1Ceiling:
		return manifest.TierTiny
	case size < tier2Ceiling:
		return manifest.TierSegmented
	default:
		return manifest.TierBlocked
	}
}

// numSegments returns the number of SegmentSize-wide segments needed
// to cover size bytes, with the final segment possibly short.
func numSegments(size int64) int {
	if size == 0 {
		return 0
	}
	return int((size + SegmentSize - 1) / SegmentSize)
}

// segmentBounds returns the byte range [start, end) of segment index
// i within a file of the given size.
func segmentBounds(size int64, i int) (start, end int64) {
	start = int64(i) * SegmentSize
	end = start + SegmentSize
	if end > size {
		end = size
	}
	return start, end
}

// padSegment returns data zero-padded (via a fresh copy) to
// SegmentSize. If data is already SegmentSize long, it is returned
// unmodified.
func padSegment(data []byte) []byte {
	if len(data) == SegmentSize {
		return data
	}
	padded := make([]byte, SegmentSize)
	copy(padded, data)
	return padded
}
