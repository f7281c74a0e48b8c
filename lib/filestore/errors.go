// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package filestore

import "errors"

// ErrNotFound is returned by Find when no archive matches the given
// name.
var ErrNotFound = errors.New("filestore: no archive matches that name")

// ErrReconstructionHashMismatch is returned by Reconstruct when the
// reassembled file's hash does not equal the manifest's
// original_hash. This implies corruption that a prior repair pass did
// not catch — Reconstruct never writes a partial or incorrect output
// file past this point.
var ErrReconstructionHashMismatch = errors.New("filestore: reconstructed file hash does not match original_hash")

// ErrUnrecoverable is returned (wrapped, naming the unit) when a
// segment or block has fewer valid shards than its erasure coding's
// data-shard count requires. The unit cannot be repaired from the
// shards present on disk.
var ErrUnrecoverable = errors.New("filestore: unit is unrecoverable: fewer than data_shards valid shards remain")

// ErrCritical is returned (wrapped, naming the unit) when a recovered
// shard's hash fails to match the manifest after a decode the engine
// believed should have succeeded — either a wrong parity shard was
// trusted, or the erasure-coding library violated its contract.
// Repair stops work on that unit at the failing shard and never
// writes that shard; shards of the same unit that were verified and
// written earlier in the pass stay written.
var ErrCritical = errors.New("filestore: critical invariant violation during repair")

// ErrArchiveAlreadyExists is returned by callers that attempt to
// commit into a directory name that already exists with different
// content — the hash-named directory convention makes this possible
// only if an interrupted or retried commit collides with a prior
// attempt.
var ErrArchiveAlreadyExists = errors.New("filestore: archive directory already exists")
