// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package erasure wraps Reed-Solomon encode/decode as the black-box
// erasure-coding primitive BlockFrame's tiers build on. All three
// tiers ultimately reduce to the same shape: a fixed number of
// equal-length data shards, a fixed number of parity shards, and
// positional recovery from any data_shards-sized surviving subset.
package erasure
