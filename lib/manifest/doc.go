// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest is the typed mirror of an archive's manifest.json:
// the single JSON document that binds a file's identity, tier,
// erasure-coding parameters, and the full Merkle hash tree over its
// segments and parity into one cryptographically anchored descriptor.
//
// Parse, Validate, and Serialize are pure functions over [Manifest]
// values — there is no mutable manifest state. A manifest is built up
// in memory during commit and written once, never mutated in place;
// repair rewrites shard files, never the manifest itself.
package manifest
