// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mmap provides a read-only memory map over a file, used by
// the commit pipeline to present a source file's bytes as a single
// byte slice without copying it into the heap. Tier 2 and tier 3
// commits operate directly on a Mapping's Bytes; tier 1 loads its
// (small) file with a plain read instead.
package mmap
