// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package erasure

import (
	"errors"
	"fmt"

	"github.com/klauspost/reedsolomon"
)

// ErrInsufficientShards is returned by Decode when fewer than
// dataCount shards survived verification — recovery is impossible
// regardless of which positions are missing.
var ErrInsufficientShards = errors.New("erasure: insufficient shards to reconstruct")

// ErrShardLengthMismatch is returned by Encode when the caller's data
// shards are not all the same length. Reed-Solomon requires uniform
// shard size; padding to a uniform length is the caller's
// responsibility.
var ErrShardLengthMismatch = errors.New("erasure: data shards are not uniform length")

// Encode computes parityCount parity shards from dataShards. Every
// entry in dataShards must have identical length; the returned shards
// also have that length. Fails with ErrShardLengthMismatch if the
// data shards are not uniform.
func Encode(dataShards [][]byte, parityCount int) ([][]byte, error) {
	if len(dataShards) == 0 {
		return nil, fmt.Errorf("erasure: cannot encode zero data shards")
	}
	shardLen := len(dataShards[0])
	for i, shard := range dataShards {
		if len(shard) != shardLen {
			return nil, fmt.Errorf("erasure: shard %d has length %d, want %d: %w", i, len(shard), shardLen, ErrShardLengthMismatch)
		}
	}

	encoder, err := reedsolomon.New(len(dataShards), parityCount)
	if err != nil {
		return nil, fmt.Errorf("erasure: constructing RS(%d,%d) encoder: %w", len(dataShards), parityCount, err)
	}

	all := make([][]byte, len(dataShards)+parityCount)
	copy(all, dataShards)
	for i := len(dataShards); i < len(all); i++ {
		all[i] = make([]byte, shardLen)
	}

	if err := encoder.Encode(all); err != nil {
		return nil, fmt.Errorf("erasure: RS(%d,%d) encode: %w", len(dataShards), parityCount, err)
	}

	return all[len(dataShards):], nil
}

// Decode reconstructs the full set of data shards given a positional
// shard vector (data shards first, then parity shards). A nil entry
// marks a shard that is missing or failed verification and must be
// treated as absent. Decode succeeds iff at least dataCount entries
// are non-nil; it returns exactly dataCount shards — the originals
// where present, recovered where missing.
func Decode(shards []*[]byte, dataCount, parityCount int) ([][]byte, error) {
	if len(shards) != dataCount+parityCount {
		return nil, fmt.Errorf("erasure: got %d shard slots, want %d (%d data + %d parity)",
			len(shards), dataCount+parityCount, dataCount, parityCount)
	}

	present := 0
	shardLen := 0
	for _, s := range shards {
		if s != nil {
			present++
			if shardLen == 0 {
				shardLen = len(*s)
			} else if len(*s) != shardLen {
				return nil, fmt.Errorf("erasure: shard has length %d, want %d: %w", len(*s), shardLen, ErrShardLengthMismatch)
			}
		}
	}
	if present < dataCount {
		return nil, fmt.Errorf("erasure: only %d of %d required shards present: %w", present, dataCount, ErrInsufficientShards)
	}

	encoder, err := reedsolomon.New(dataCount, parityCount)
	if err != nil {
		return nil, fmt.Errorf("erasure: constructing RS(%d,%d) encoder: %w", dataCount, parityCount, err)
	}

	working := make([][]byte, len(shards))
	for i, s := range shards {
		if s != nil {
			working[i] = *s
		}
	}

	if err := encoder.ReconstructData(working); err != nil {
		return nil, fmt.Errorf("erasure: RS(%d,%d) reconstruct: %w", dataCount, parityCount, err)
	}

	return working[:dataCount], nil
}
