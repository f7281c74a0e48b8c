// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

// Size is the length in bytes of a Hash.
const Size = 32

// HexSize is the length of a Hash rendered as lowercase hex.
const HexSize = Size * 2

// Hash is a 32-byte BLAKE3 digest. Every shard (segment, parity, or
// whole file) committed by BlockFrame is identified by a Hash, and
// every hash recorded in a manifest is a Hash rendered as 64 lowercase
// hex characters.
type Hash [Size]byte

// Zero reports whether h is the zero hash (all bytes zero). A zero
// hash never occurs as the output of HashBytes or HashStream; it is
// only ever a caller-constructed sentinel for "not yet computed".
func (h Hash) Zero() bool {
	return h == Hash{}
}

// String returns the lowercase hex encoding of h, the canonical
// format used in manifests and CLI output.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText implements encoding.TextMarshaler so Hash serializes as
// a hex string in JSON (manifest fields and map keys).
func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, parsing a
// 64-character lowercase hex string back into a Hash.
func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// HashBytes computes the BLAKE3 digest of data.
func HashBytes(data []byte) Hash {
	sum := blake3.Sum256(data)
	var h Hash
	copy(h[:], sum[:])
	return h
}

// HashStream computes the BLAKE3 digest of everything read from r,
// without buffering the whole stream in memory, which suits large
// inputs read from a stream rather than held in memory.
func HashStream(r io.Reader) (Hash, error) {
	hasher := blake3.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return Hash{}, fmt.Errorf("hashing stream: %w", err)
	}
	var h Hash
	copy(h[:], hasher.Sum(nil))
	return h, nil
}

// NewWriter returns an io.Writer that feeds everything written to it
// into a running BLAKE3 hash, plus a function to retrieve the result.
// Used when a single pass over data must both compute a hash and do
// other work (e.g. write it to disk) without buffering twice.
func NewWriter() (w io.Writer, sum func() Hash) {
	hasher := blake3.New()
	return hasher, func() Hash {
		var h Hash
		copy(h[:], hasher.Sum(nil))
		return h
	}
}

// Parse decodes a 64-character lowercase hex string into a Hash.
func Parse(s string) (Hash, error) {
	var h Hash
	if len(s) != HexSize {
		return h, fmt.Errorf("digest: hash %q has length %d, want %d", s, len(s), HexSize)
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("digest: parsing hash %q: %w", s, err)
	}
	copy(h[:], decoded)
	return h, nil
}

// Valid reports whether s is a syntactically well-formed hash: exactly
// HexSize lowercase hex characters. It does not check that any shard
// actually hashes to this value.
func Valid(s string) bool {
	if len(s) != HexSize {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}
