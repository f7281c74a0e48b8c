// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"

	"github.com/blockframe/blockframe/lib/filestore"
)

// exitCodeFor maps an engine error to a stable exit code. Errors that
// do not match a known category (bad flags aside, which return
// exitUsage directly) fall back to a generic non-zero code so the
// process never exits 0 on failure.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, filestore.ErrCritical):
		return exitCriticalFailed
	case errors.Is(err, filestore.ErrUnrecoverable):
		return exitUnrecoverable
	case errors.Is(err, filestore.ErrNotFound):
		return exitArchiveError
	case errors.Is(err, filestore.ErrReconstructionHashMismatch):
		return exitArchiveError
	default:
		return 1
	}
}
