// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package filestore

// segmentBounds returns the byte range [start, end) of segment index
// i within a file of the given size and segment size, mirroring the
// boundary convention the commit pipeline used when it wrote that
// segment to disk.
func segmentBounds(size, segmentSize int64, i int) (start, end int64) {
	start = int64(i) * segmentSize
	end = start + segmentSize
	if end > size {
		end = size
	}
	return start, end
}
