// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build darwin || linux

package mmap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mapping is a read-only memory map over a file's full contents.
// Reads of Bytes may page-fault and block the calling goroutine at
// arbitrary offsets — callers must not hold a lock across reads.
//
// A Mapping is not safe for concurrent use with Close, but concurrent
// readers of Bytes from multiple goroutines are fine; the mapping is
// never mutated after Open returns.
type Mapping struct {
	data []byte
	size int64
}

// Open memory-maps path read-only and returns a Mapping over its
// entire contents. The file must be non-empty — mapping a zero-length
// file is a no-op that would otherwise return a nil Bytes slice,
// which callers would have to special-case; instead Open rejects it
// and callers should handle the empty-file case before calling Open.
func Open(path string) (*Mapping, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap: opening %s: %w", path, err)
	}
	defer unix.Close(fd)

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return nil, fmt.Errorf("mmap: stating %s: %w", path, err)
	}
	if stat.Size == 0 {
		return nil, fmt.Errorf("mmap: %s is empty, nothing to map", path)
	}

	data, err := unix.Mmap(fd, 0, int(stat.Size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: mapping %s: %w", path, err)
	}

	return &Mapping{data: data, size: stat.Size}, nil
}

// Bytes returns the mapping's full contents. The returned slice
// aliases the mapped memory; it must not be used after Close.
func (m *Mapping) Bytes() []byte {
	return m.data
}

// Size returns the mapped file's size in bytes.
func (m *Mapping) Size() int64 {
	return m.size
}

// Close unmaps the memory region. It is an error to use Bytes after
// Close returns.
func (m *Mapping) Close() error {
	if m.data == nil {
		return nil
	}
	err := unix.Munmap(m.data)
	m.data = nil
	if err != nil {
		return fmt.Errorf("mmap: unmapping: %w", err)
	}
	return nil
}
