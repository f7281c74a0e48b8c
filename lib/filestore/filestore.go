// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package filestore

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/blockframe/blockframe/lib/archive"
	"github.com/blockframe/blockframe/lib/manifest"
)

// File is a discovered archive: its parsed, validated manifest plus
// the directory it lives in. File values are read-only snapshots —
// Repair mutates shard files on disk but never the Manifest value a
// caller is holding; call GetAll or Find again to see updated hashes.
type File struct {
	Name       string
	ArchiveDir string
	Manifest   *manifest.Manifest
}

// FileStore discovers and operates on archives rooted at a single
// directory. A FileStore holds no in-memory index; every call that
// needs the set of archives walks the filesystem fresh.
type FileStore struct {
	root   string
	logger *slog.Logger
}

// New returns a FileStore rooted at root. A nil logger defaults to
// slog.Default().
func New(root string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{root: root, logger: logger}
}

// GetAll looks one directory level below the store root and returns
// every archive whose manifest parses and validates. Directories
// missing manifest.json (incomplete commits) are skipped silently;
// archives with malformed manifests and archives that fail shape
// validation (schema mismatches) are skipped and logged rather than
// causing GetAll to fail — a single bad archive must never prevent
// access to the rest of the store.
func (store *FileStore) GetAll() ([]*File, error) {
	var files []*File
	cleanRoot := filepath.Clean(store.root)

	err := filepath.WalkDir(store.root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			store.logger.Warn("filestore: walk error, skipping", "path", path, "error", err)
			return nil
		}
		if entry.IsDir() {
			// Archive directories sit directly under the root; their
			// shard subdirectories are not searched.
			if path != store.root && filepath.Dir(path) != cleanRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.Name() != archive.ManifestFile || filepath.Dir(filepath.Dir(path)) != cleanRoot {
			return nil
		}

		archiveDir := filepath.Dir(path)
		file, skipReason, loadErr := store.loadArchive(archiveDir, path)
		if loadErr != nil {
			store.logger.Warn("filestore: skipping archive", "dir", archiveDir, "reason", skipReason, "error", loadErr)
			return nil
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("filestore: walking %s: %w", store.root, err)
	}

	return files, nil
}

// loadArchive reads and validates a single manifest.json at
// manifestPath, returning a human-readable skip reason alongside any
// error so callers can log it without re-deriving it.
func (store *FileStore) loadArchive(archiveDir, manifestPath string) (*File, string, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, "unreadable manifest", err
	}

	m, err := manifest.Parse(data)
	if err != nil {
		return nil, "malformed manifest", err
	}

	if err := manifest.Validate(m); err != nil {
		return nil, "schema mismatch", err
	}

	return &File{Name: m.Name, ArchiveDir: archiveDir, Manifest: m}, "", nil
}

// Find returns the first discovered archive whose manifest's Name
// equals name. If multiple archives share a filename under different
// content hashes, the first one encountered during the walk wins —
// callers that care about a specific content hash should walk GetAll
// themselves and disambiguate.
func (store *FileStore) Find(name string) (*File, error) {
	files, err := store.GetAll()
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}
