// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package merkletree builds the hierarchical hash trees that anchor
// every BlockFrame manifest. A [Tree] is an immutable value object:
// [BuildFromHashes] produces one in a single O(n) pass, and
// [Tree.Proof] / [VerifyProof] are pure functions over it with no
// shared mutable state — parallel workers can build independent
// mini-trees (one per segment or block) and hand their roots to a
// single final build with no coordination beyond passing values.
//
// The hashing convention is fixed by the archive wire format, not by
// convention: a parent node is BLAKE3 of the hex-string concatenation
// of its two children's hashes (not raw-byte concatenation), and an
// odd trailing node at any level is duplicated to form a pair rather
// than promoted unchanged. Both choices must be preserved exactly for
// interoperability with existing archives.
package merkletree
