// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package archive names the on-disk layout of a committed archive
// directory and provides the atomic-write primitive every writer in
// the commit and repair paths builds on. It holds no domain logic of
// its own — no hashing, no erasure coding — only path construction and
// the temp-file-then-rename pattern that keeps a reader from ever
// observing a half-written shard.
package archive
