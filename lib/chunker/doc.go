// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package chunker implements the commit pipeline: given a source file
// and a destination archive directory, it selects an encoding tier by
// file size, splits the file into segments, computes Reed-Solomon
// parity, builds the hierarchical Merkle tree over data and parity,
// and writes the archive's manifest last. Commit is the only entry
// point client code needs; the tier-specific commitTiny,
// commitSegmented, and commitBlocked functions are internal dispatch
// targets, not separately exported.
package chunker
