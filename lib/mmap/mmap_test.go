// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package mmap

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMapsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.bin")
	want := []byte("the quick brown fox jumps over the lazy dog")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer m.Close()

	if string(m.Bytes()) != string(want) {
		t.Fatalf("Bytes() = %q, want %q", m.Bytes(), want)
	}
	if m.Size() != int64(len(want)) {
		t.Fatalf("Size() = %d, want %d", m.Size(), len(want))
	}
}

func TestOpenRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Fatal("Open succeeded on an empty file, want error")
	}
}

func TestOpenRejectsMissingFile(t *testing.T) {
	if _, err := Open("/nonexistent/path/does/not/exist"); err == nil {
		t.Fatal("Open succeeded on a missing file, want error")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.bin")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close (1): %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close (2): %v", err)
	}
}
