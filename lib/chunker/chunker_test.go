// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chunker

import (
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/blockframe/blockframe/lib/archive"
	"github.com/blockframe/blockframe/lib/digest"
	"github.com/blockframe/blockframe/lib/manifest"
	"github.com/blockframe/blockframe/lib/workerpool"
)

func writeRandomFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		t.Fatalf("rand.Read: %v", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestSelectTier(t *testing.T) {
	cases := []struct {
		size int64
		want manifest.Tier
	}{
		{0, manifest.TierTiny},
		{4096, manifest.TierTiny},
		{tier1Ceiling - 1, manifest.TierTiny},
		{tier1Ceiling, manifest.TierSegmented},
		{tier2Ceiling - 1, manifest.TierSegmented},
		{tier2Ceiling, manifest.TierBlocked},
		{tier2Ceiling * 2, manifest.TierBlocked},
	}
	for _, c := range cases {
		if got := SelectTier(c.size); got != c.want {
			t.Errorf("SelectTier(%d) = %v, want %v", c.size, got, c.want)
		}
	}
}

func TestCommitTinyProducesValidArchive(t *testing.T) {
	srcDir := t.TempDir()
	archiveRoot := t.TempDir()
	path := writeRandomFile(t, srcDir, "small.bin", 4096)

	m, err := Commit(archiveRoot, path, nil)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if m.Tier != manifest.TierTiny {
		t.Fatalf("Tier = %v, want TierTiny", m.Tier)
	}
	if err := manifest.Validate(m); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	archiveDir := filepath.Join(archiveRoot, archive.DirName("small.bin", m.OriginalHash.String()))
	for _, f := range []string{"data.dat", "parity_0.dat", "parity_1.dat", "parity_2.dat", "manifest.json"} {
		if _, err := os.Stat(filepath.Join(archiveDir, f)); err != nil {
			t.Errorf("expected %s to exist: %v", f, err)
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if digest.HashBytes(raw) != m.OriginalHash {
		t.Fatal("original_hash does not match source file contents")
	}
}

func TestCommitSegmentedProducesValidArchive(t *testing.T) {
	srcDir := t.TempDir()
	archiveRoot := t.TempDir()
	size := tier1Ceiling + 3*SegmentSize + 12345
	path := writeRandomFile(t, srcDir, "medium.bin", size)

	m, err := Commit(archiveRoot, path, nil)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if m.Tier != manifest.TierSegmented {
		t.Fatalf("Tier = %v, want TierSegmented", m.Tier)
	}
	if err := manifest.Validate(m); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	wantSegments := numSegments(int64(size))
	if len(m.MerkleTree.Segments) != wantSegments {
		t.Fatalf("len(Segments) = %d, want %d", len(m.MerkleTree.Segments), wantSegments)
	}

	archiveDir := filepath.Join(archiveRoot, archive.DirName("medium.bin", m.OriginalHash.String()))
	for i := 0; i < wantSegments; i++ {
		if _, err := os.Stat(archive.Tier2SegmentPath(archiveDir, i)); err != nil {
			t.Errorf("segment %d missing: %v", i, err)
		}
		for k := 0; k < 3; k++ {
			if _, err := os.Stat(archive.Tier2ParityPath(archiveDir, i, k)); err != nil {
				t.Errorf("segment %d parity %d missing: %v", i, k, err)
			}
		}
	}
}

func TestCommitBlockedProducesValidArchive(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping tier-3 commit test in short mode")
	}
	srcDir := t.TempDir()
	archiveRoot := t.TempDir()
	// One full block (30 segments) plus a short tail block.
	size := SegmentsPerBlock*SegmentSize + 5*SegmentSize + 777
	path := writeRandomFile(t, srcDir, "large.bin", size)

	m, err := Commit(archiveRoot, path, workerpool.New(4))
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if m.Tier != manifest.TierBlocked {
		t.Fatalf("Tier = %v, want TierBlocked", m.Tier)
	}
	if err := manifest.Validate(m); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(m.MerkleTree.Blocks) != 2 {
		t.Fatalf("len(Blocks) = %d, want 2", len(m.MerkleTree.Blocks))
	}
	if len(m.MerkleTree.Blocks["0"].Segments) != SegmentsPerBlock {
		t.Fatalf("block 0 has %d recorded segments, want %d", len(m.MerkleTree.Blocks["0"].Segments), SegmentsPerBlock)
	}
	if len(m.MerkleTree.Blocks["1"].Segments) != 5 {
		t.Fatalf("block 1 (tail) has %d recorded segments, want 5", len(m.MerkleTree.Blocks["1"].Segments))
	}

	archiveDir := filepath.Join(archiveRoot, archive.DirName("large.bin", m.OriginalHash.String()))
	if _, err := os.Stat(archive.Tier3SegmentPath(archiveDir, 1, 4)); err != nil {
		t.Errorf("block 1 segment 4 missing: %v", err)
	}
	if _, err := os.Stat(archive.Tier3SegmentPath(archiveDir, 1, 5)); err == nil {
		t.Error("block 1 segment 5 (virtual tail padding) should not exist on disk")
	}
}
