// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package filestore

import (
	"fmt"
	"os"

	"github.com/blockframe/blockframe/lib/archive"
	"github.com/blockframe/blockframe/lib/digest"
	"github.com/blockframe/blockframe/lib/erasure"
	"github.com/blockframe/blockframe/lib/manifest"
	"github.com/blockframe/blockframe/lib/workerpool"
)

// UnitStatus is the outcome of repairing a single segment (tier 1/2)
// or block (tier 3).
type UnitStatus int

const (
	StatusHealthy UnitStatus = iota
	StatusRepaired
	StatusUnrecoverable
	StatusCritical
)

func (s UnitStatus) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusRepaired:
		return "repaired"
	case StatusUnrecoverable:
		return "unrecoverable"
	case StatusCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// UnitReport is the outcome of repairing one segment or block.
type UnitReport struct {
	Index  int
	Status UnitStatus
	Err    error
}

// RepairReport collects the per-unit outcomes of a Repair call.
type RepairReport struct {
	ArchiveDir string
	Tier       manifest.Tier
	Units      []UnitReport
}

// OK reports whether every unit in the report is healthy or was
// successfully repaired.
func (r *RepairReport) OK() bool {
	for _, u := range r.Units {
		if u.Status == StatusUnrecoverable || u.Status == StatusCritical {
			return false
		}
	}
	return true
}

// Repair verifies every unit of file against its manifest and
// rewrites corrupted or missing shards from surviving parity. Repair
// never touches the manifest itself — only shard files. pool sizes
// the parallelism used for tier-2 segments and tier-3 blocks; a nil
// pool defaults to runtime.NumCPU() workers.
func Repair(file *File, pool *workerpool.Pool) (*RepairReport, error) {
	return repairUnits(file, pool, false)
}

// Check runs the same per-unit detection logic as Repair — decoding
// deficient units from parity to determine whether they are
// recoverable — but never writes a recovered or regenerated shard
// back to disk. Used by the health subcommand, which must report
// status without mutating the archive.
func Check(file *File, pool *workerpool.Pool) (*RepairReport, error) {
	return repairUnits(file, pool, true)
}

func repairUnits(file *File, pool *workerpool.Pool, dryRun bool) (*RepairReport, error) {
	if pool == nil {
		pool = workerpool.New(0)
	}
	m := file.Manifest

	report := &RepairReport{ArchiveDir: file.ArchiveDir, Tier: m.Tier}

	switch m.Tier {
	case manifest.TierTiny:
		status, err := repairTiny(file.ArchiveDir, m, dryRun)
		report.Units = []UnitReport{{Index: 0, Status: status, Err: err}}
	case manifest.TierSegmented:
		n := len(m.MerkleTree.Segments)
		units := make([]UnitReport, n)
		pool.Run(n, func(i int) error {
			status, err := repairSegment(file.ArchiveDir, m, i, dryRun)
			units[i] = UnitReport{Index: i, Status: status, Err: err}
			return nil
		})
		report.Units = units
	case manifest.TierBlocked:
		n := len(m.MerkleTree.Blocks)
		units := make([]UnitReport, n)
		pool.Run(n, func(b int) error {
			status, err := repairBlock(file.ArchiveDir, m, b, dryRun)
			units[b] = UnitReport{Index: b, Status: status, Err: err}
			return nil
		})
		report.Units = units
	default:
		return nil, fmt.Errorf("filestore: invalid tier %d", m.Tier)
	}

	return report, nil
}

// repairTiny implements tier-1 repair: data.dat is healthy if its
// hash equals leaves[0]; otherwise each parity_k.dat is tried in
// order, and the first whose hash equals leaves[0] is copied over
// data.dat. This relies on the tier-1 parity equivalence property of
// the RS(1,3) construction used here: for a single data shard, every
// parity shard's hash equals the data shard's hash when both are
// correct, so leaves[0] is the only anchor tier 1 needs.
func repairTiny(archiveDir string, m *manifest.Manifest, dryRun bool) (UnitStatus, error) {
	want := m.MerkleTree.Leaves["0"]
	dataPath := archive.Tier1DataPath(archiveDir)

	if data, err := os.ReadFile(dataPath); err == nil && digest.HashBytes(data) == want {
		return StatusHealthy, nil
	}

	for k := 0; k < 3; k++ {
		parityPath := archive.Tier1ParityPath(archiveDir, k)
		parity, err := os.ReadFile(parityPath)
		if err != nil {
			continue
		}
		if digest.HashBytes(parity) != want {
			continue
		}
		if !dryRun {
			if err := archive.WriteFileAtomic(dataPath, parity, 0o644); err != nil {
				return StatusCritical, fmt.Errorf("filestore: writing recovered data.dat: %w", err)
			}
		}
		return StatusRepaired, nil
	}

	return StatusUnrecoverable, fmt.Errorf("%w: tier-1 data.dat (no parity shard matched leaves[0])", ErrUnrecoverable)
}

// repairSegment implements tier-2 repair for segment i: verify the
// data shard and its three parity shards independently; if the data
// shard is intact, regenerate any corrupted parity from it; if the
// data shard is missing or corrupt, decode it from the surviving
// parity shards and rewrite it.
func repairSegment(archiveDir string, m *manifest.Manifest, i int, dryRun bool) (UnitStatus, error) {
	want := m.MerkleTree.Segments[fmt.Sprint(i)]
	segPath := archive.Tier2SegmentPath(archiveDir, i)

	unpadded, dataErr := os.ReadFile(segPath)
	dataValid := dataErr == nil && digest.HashBytes(unpadded) == want.Data

	parityBytes := make([][]byte, 3)
	parityValid := make([]bool, 3)
	for k := 0; k < 3; k++ {
		p, err := os.ReadFile(archive.Tier2ParityPath(archiveDir, i, k))
		if err != nil {
			continue
		}
		parityBytes[k] = p
		parityValid[k] = digest.HashBytes(p) == want.Parity[k]
	}

	allParityValid := parityValid[0] && parityValid[1] && parityValid[2]

	if dataValid && allParityValid {
		return StatusHealthy, nil
	}

	if !dataValid {
		shards := make([]*[]byte, 4)
		for k := 0; k < 3; k++ {
			if parityValid[k] {
				shards[k+1] = &parityBytes[k]
			}
		}

		recovered, err := erasure.Decode(shards, 1, 3)
		if err != nil {
			return StatusUnrecoverable, fmt.Errorf("%w: segment %d: %v", ErrUnrecoverable, i, err)
		}

		start, end := segmentBounds(m.Size, m.SegmentSize, i)
		recoveredUnpadded := recovered[0][:end-start]
		if digest.HashBytes(recoveredUnpadded) != want.Data {
			return StatusCritical, fmt.Errorf("%w: segment %d: recovered data does not match manifest hash", ErrCritical, i)
		}
		if !dryRun {
			if err := archive.WriteFileAtomic(segPath, recoveredUnpadded, 0o644); err != nil {
				return StatusCritical, fmt.Errorf("filestore: writing recovered segment %d: %w", i, err)
			}
		}
		unpadded = recoveredUnpadded
		dataValid = true
	}

	// Data is now known correct (either it already was, or it was
	// just recovered). Regenerate any parity shard whose on-disk
	// hash did not match.
	if dataValid && !allParityValid {
		padded := padSegmentCopy(unpadded, int(m.SegmentSize))
		freshParity, err := erasure.Encode([][]byte{padded}, 3)
		if err != nil {
			return StatusCritical, fmt.Errorf("filestore: regenerating parity for segment %d: %w", i, err)
		}
		for k := 0; k < 3; k++ {
			if parityValid[k] {
				continue
			}
			if digest.HashBytes(freshParity[k]) != want.Parity[k] {
				return StatusCritical, fmt.Errorf("%w: segment %d parity %d: regenerated parity does not match manifest hash", ErrCritical, i, k)
			}
			if !dryRun {
				if err := archive.WriteFileAtomic(archive.Tier2ParityPath(archiveDir, i, k), freshParity[k], 0o644); err != nil {
					return StatusCritical, fmt.Errorf("filestore: writing regenerated parity %d for segment %d: %w", k, i, err)
				}
			}
		}
	}

	return StatusRepaired, nil
}

// repairBlock implements tier-3 repair for block b: the same
// data/parity verify-then-decode-or-regenerate strategy as
// repairSegment, generalized to 30 data shards. Virtual tail
// positions beyond the block's recorded segment count are always
// supplied as zero-filled shards — there is no on-disk file to
// corrupt, so they never need recovery.
func repairBlock(archiveDir string, m *manifest.Manifest, b int, dryRun bool) (UnitStatus, error) {
	want := m.MerkleTree.Blocks[fmt.Sprint(b)]
	realCount := len(want.Segments)

	segmentsPerBlock := m.ErasureCoding.DataShards
	segmentSize := int(m.SegmentSize)
	zeroSegment := make([]byte, segmentSize)

	dataShards := make([][]byte, segmentsPerBlock)
	dataValid := make([]bool, segmentsPerBlock)
	anyInvalidReal := false

	for j := 0; j < segmentsPerBlock; j++ {
		if j >= realCount {
			dataShards[j] = zeroSegment
			dataValid[j] = true
			continue
		}
		path := archive.Tier3SegmentPath(archiveDir, b, j)
		data, err := os.ReadFile(path)
		if err == nil && digest.HashBytes(data) == want.Segments[j] {
			dataShards[j] = padSegmentCopy(data, segmentSize)
			dataValid[j] = true
			continue
		}
		anyInvalidReal = true
	}

	parityBytes := make([][]byte, 3)
	parityValid := make([]bool, 3)
	for k := 0; k < 3; k++ {
		p, err := os.ReadFile(archive.Tier3ParityPath(archiveDir, b, k))
		if err != nil {
			continue
		}
		parityBytes[k] = p
		parityValid[k] = digest.HashBytes(p) == want.Parity[k]
	}
	allParityValid := parityValid[0] && parityValid[1] && parityValid[2]

	if !anyInvalidReal && allParityValid {
		return StatusHealthy, nil
	}

	recoveredData := dataShards
	if anyInvalidReal {
		shards := make([]*[]byte, segmentsPerBlock+3)
		for j := 0; j < segmentsPerBlock; j++ {
			if dataValid[j] {
				s := dataShards[j]
				shards[j] = &s
			}
		}
		for k := 0; k < 3; k++ {
			if parityValid[k] {
				shards[segmentsPerBlock+k] = &parityBytes[k]
			}
		}

		decoded, err := erasure.Decode(shards, segmentsPerBlock, 3)
		if err != nil {
			return StatusUnrecoverable, fmt.Errorf("%w: block %d: %v", ErrUnrecoverable, b, err)
		}
		recoveredData = decoded

		for j := 0; j < realCount; j++ {
			if dataValid[j] {
				continue
			}
			start, end := segmentBounds(m.Size, m.SegmentSize, b*segmentsPerBlock+j)
			recoveredUnpadded := recoveredData[j][:end-start]
			if digest.HashBytes(recoveredUnpadded) != want.Segments[j] {
				return StatusCritical, fmt.Errorf("%w: block %d segment %d: recovered data does not match manifest hash", ErrCritical, b, j)
			}
			if !dryRun {
				if err := archive.WriteFileAtomic(archive.Tier3SegmentPath(archiveDir, b, j), recoveredUnpadded, 0o644); err != nil {
					return StatusCritical, fmt.Errorf("filestore: writing recovered segment %d of block %d: %w", j, b, err)
				}
			}
		}
	}

	if !allParityValid {
		freshParity, err := erasure.Encode(recoveredData, 3)
		if err != nil {
			return StatusCritical, fmt.Errorf("filestore: regenerating parity for block %d: %w", b, err)
		}
		for k := 0; k < 3; k++ {
			if parityValid[k] {
				continue
			}
			if digest.HashBytes(freshParity[k]) != want.Parity[k] {
				return StatusCritical, fmt.Errorf("%w: block %d parity %d: regenerated parity does not match manifest hash", ErrCritical, b, k)
			}
			if !dryRun {
				if err := archive.WriteFileAtomic(archive.Tier3ParityPath(archiveDir, b, k), freshParity[k], 0o644); err != nil {
					return StatusCritical, fmt.Errorf("filestore: writing regenerated parity %d for block %d: %w", k, b, err)
				}
			}
		}
	}

	return StatusRepaired, nil
}

func padSegmentCopy(data []byte, size int) []byte {
	if len(data) == size {
		return data
	}
	padded := make([]byte, size)
	copy(padded, data)
	return padded
}
