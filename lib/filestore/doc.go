// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package filestore discovers committed archives on disk, reconstructs
// original files from their segments, and repairs corrupted or missing
// shards using the erasure parity recorded in each archive's manifest.
// There is no index, sidecar database, or lock file — an archive
// directory under the store root is the entire persisted state, and
// discovery is a plain filesystem walk.
package filestore
