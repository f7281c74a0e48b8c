// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest provides the BLAKE3 hashing primitive shared by
// every BlockFrame component: segments, parity shards, manifests, and
// Merkle tree nodes are all identified by a 32-byte [Hash].
//
// Unlike a content-addressable store with multiple hash purposes that
// must stay cryptographically separated, BlockFrame has exactly one
// hash purpose — binding on-disk bytes to the manifest that
// authenticates them — so this package hashes unkeyed. There is no
// domain separation to get wrong.
package digest
