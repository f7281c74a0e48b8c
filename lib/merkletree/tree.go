// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package merkletree

import (
	"errors"
	"fmt"

	"github.com/blockframe/blockframe/lib/digest"
)

// ErrEmptyInput is returned by BuildFromHashes when given no leaves.
// A manifest always has at least one unit (the whole file for tier 1,
// or at least one segment/block for tiers 2/3), so an empty tree is
// never a valid archive state.
var ErrEmptyInput = errors.New("merkletree: cannot build a tree from zero leaves")

// Tree is an immutable hierarchical hash tree. The zero value is not
// useful; construct one with BuildFromHashes.
type Tree struct {
	// levels[0] holds the leaves; levels[len(levels)-1] holds exactly
	// one node, the root.
	levels [][]digest.Hash
}

// BuildFromHashes builds a Tree over leafHashes. Leaves are paired
// left-to-right at each level: BLAKE3(hex(left) || hex(right)). If a
// level has an odd number of nodes, the last node is paired with
// itself (duplicated) rather than promoted unchanged — this keeps
// proof length and recovery math uniform regardless of parity at any
// level.
func BuildFromHashes(leafHashes []digest.Hash) (*Tree, error) {
	if len(leafHashes) == 0 {
		return nil, ErrEmptyInput
	}

	level := make([]digest.Hash, len(leafHashes))
	copy(level, leafHashes)

	levels := [][]digest.Hash{level}

	for len(level) > 1 {
		next := make([]digest.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, hashPair(level[i], level[i+1]))
			} else {
				next = append(next, hashPair(level[i], level[i]))
			}
		}
		levels = append(levels, next)
		level = next
	}

	return &Tree{levels: levels}, nil
}

// Root returns the tree's root hash.
func (t *Tree) Root() digest.Hash {
	top := t.levels[len(t.levels)-1]
	return top[0]
}

// LeafCount returns the number of leaves the tree was built from.
func (t *Tree) LeafCount() int {
	return len(t.levels[0])
}

// Leaf returns the leaf hash at index.
func (t *Tree) Leaf(index int) (digest.Hash, error) {
	leaves := t.levels[0]
	if index < 0 || index >= len(leaves) {
		return digest.Hash{}, fmt.Errorf("merkletree: leaf index %d out of range [0,%d)", index, len(leaves))
	}
	return leaves[index], nil
}

// Proof returns the sibling hash at each level from the given leaf up
// to (but not including) the root, in bottom-to-top order. Replaying
// these siblings against the leaf hash with VerifyProof reproduces
// the root. For a duplicated odd leaf, the recorded sibling equals
// the node itself.
func (t *Tree) Proof(leafIndex int) ([]digest.Hash, error) {
	leaves := t.levels[0]
	if leafIndex < 0 || leafIndex >= len(leaves) {
		return nil, fmt.Errorf("merkletree: leaf index %d out of range [0,%d)", leafIndex, len(leaves))
	}

	proof := make([]digest.Hash, 0, len(t.levels)-1)
	index := leafIndex
	for levelIndex := 0; levelIndex < len(t.levels)-1; levelIndex++ {
		level := t.levels[levelIndex]
		if index%2 == 0 {
			if index+1 < len(level) {
				proof = append(proof, level[index+1])
			} else {
				proof = append(proof, level[index])
			}
		} else {
			proof = append(proof, level[index-1])
		}
		index /= 2
	}

	return proof, nil
}

// VerifyProof replays a Merkle proof starting from leafHash and
// reports whether the result equals root. leafIndex determines
// positional parity at each level (even ⇒ current node is the left
// child, odd ⇒ right) exactly as BuildFromHashes assigned it.
func VerifyProof(leafHash digest.Hash, proof []digest.Hash, leafIndex int, root digest.Hash) bool {
	current := leafHash
	index := leafIndex
	for _, sibling := range proof {
		if index%2 == 0 {
			current = hashPair(current, sibling)
		} else {
			current = hashPair(sibling, current)
		}
		index /= 2
	}
	return current == root
}

// hashPair computes the parent hash of two child hashes per the
// archive wire format: BLAKE3 of the hex-string concatenation of the
// children, not raw-byte concatenation.
func hashPair(left, right digest.Hash) digest.Hash {
	combined := left.String() + right.String()
	return digest.HashBytes([]byte(combined))
}
