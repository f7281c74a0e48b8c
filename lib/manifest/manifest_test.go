// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/blockframe/blockframe/lib/digest"
)

func tinyManifest() *Manifest {
	mt := NewEmptyMerkleTree()
	h := digest.HashBytes([]byte("data"))
	mt.Leaves["0"] = h
	mt.Root = h
	return &Manifest{
		Name:           "example.txt",
		Size:           4,
		OriginalHash:   h,
		Tier:           TierTiny,
		SegmentSize:    4,
		TimeOfCreation: time.Unix(0, 0).UTC(),
		ErasureCoding:  ErasureCoding{DataShards: 1, ParityShards: 3},
		MerkleTree:     mt,
	}
}

func segmentedManifest() *Manifest {
	mt := NewEmptyMerkleTree()
	segHash := SegmentHashes{
		Data: digest.HashBytes([]byte("seg0")),
		Parity: [3]digest.Hash{
			digest.HashBytes([]byte("p0")),
			digest.HashBytes([]byte("p1")),
			digest.HashBytes([]byte("p2")),
		},
	}
	mt.Segments["0"] = segHash
	mt.Root = digest.HashBytes([]byte("root"))
	return &Manifest{
		Name:           "bigfile.bin",
		Size:           32 * 1024 * 1024,
		OriginalHash:   digest.HashBytes([]byte("original")),
		Tier:           TierSegmented,
		SegmentSize:    32 * 1024 * 1024,
		TimeOfCreation: time.Unix(0, 0).UTC(),
		ErasureCoding:  ErasureCoding{DataShards: 1, ParityShards: 3},
		MerkleTree:     mt,
	}
}

func TestValidateAcceptsWellFormedTinyManifest(t *testing.T) {
	if err := Validate(tinyManifest()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateAcceptsWellFormedSegmentedManifest(t *testing.T) {
	if err := Validate(segmentedManifest()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsInvalidTier(t *testing.T) {
	m := tinyManifest()
	m.Tier = Tier(99)
	if err := Validate(m); !errors.Is(err, ErrInvalidTier) {
		t.Fatalf("Validate() = %v, want ErrInvalidTier", err)
	}
}

func TestValidateRejectsTierEncodingMismatch(t *testing.T) {
	m := tinyManifest()
	m.ErasureCoding = ErasureCoding{DataShards: 30, ParityShards: 3}
	if err := Validate(m); !errors.Is(err, ErrTierEncodingMismatch) {
		t.Fatalf("Validate() = %v, want ErrTierEncodingMismatch", err)
	}
}

func TestValidateRejectsEmptyActiveMap(t *testing.T) {
	m := tinyManifest()
	m.MerkleTree.Leaves = map[string]digest.Hash{}
	if err := Validate(m); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("Validate() = %v, want ErrSchemaMismatch", err)
	}
}

func TestValidateRejectsPreMigrationShape(t *testing.T) {
	// A tier-2 file whose manifest populated leaves instead of
	// segments: the pre-migration shape this format replaced.
	m := segmentedManifest()
	m.MerkleTree.Segments = map[string]SegmentHashes{}
	m.MerkleTree.Leaves["0"] = digest.HashBytes([]byte("legacy"))
	if err := Validate(m); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("Validate() = %v, want ErrSchemaMismatch", err)
	}
}

func TestValidateRejectsNonContiguousIndices(t *testing.T) {
	m := segmentedManifest()
	m.MerkleTree.Segments["2"] = m.MerkleTree.Segments["0"]
	delete(m.MerkleTree.Segments, "0")
	if err := Validate(m); !errors.Is(err, ErrNonContiguousIndices) {
		t.Fatalf("Validate() = %v, want ErrNonContiguousIndices", err)
	}
}

func TestValidateRejectsZeroRoot(t *testing.T) {
	m := tinyManifest()
	m.MerkleTree.Root = digest.Hash{}
	if err := Validate(m); !errors.Is(err, ErrMalformedHash) {
		t.Fatalf("Validate() = %v, want ErrMalformedHash", err)
	}
}

func TestSerializeParseRoundTrip(t *testing.T) {
	m := segmentedManifest()
	data, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Name != m.Name || got.Tier != m.Tier || got.MerkleTree.Root != m.MerkleTree.Root {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, m)
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	m := segmentedManifest()
	a, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	b, err := Serialize(m)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if string(a) != string(b) {
		t.Fatal("Serialize is not deterministic across calls")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	data, err := Serialize(tinyManifest())
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	withExtra := strings.Replace(string(data), `"name":`, `"bogus_field": true, "name":`, 1)
	if _, err := Parse([]byte(withExtra)); err == nil {
		t.Fatal("Parse accepted an unknown field")
	}
}

func TestParseRejectsTrailingData(t *testing.T) {
	data, err := Serialize(tinyManifest())
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	withTrailer := append(data, []byte("{}")...)
	if _, err := Parse(withTrailer); err == nil {
		t.Fatal("Parse accepted trailing data after the manifest document")
	}
}

func TestParseRejectsMalformedHash(t *testing.T) {
	data, err := Serialize(tinyManifest())
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	rootField := regexp.MustCompile(`"root":\s*"[0-9a-f]+"`)
	corrupted := rootField.ReplaceAll(data, []byte(`"root": "not-hex"`))
	if _, err := Parse(corrupted); err == nil {
		t.Fatal("Parse accepted a malformed hash string")
	}
}
