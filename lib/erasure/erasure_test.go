// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package erasure

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"
)

func makeDataShards(t *testing.T, count, size int) [][]byte {
	t.Helper()
	shards := make([][]byte, count)
	for i := range shards {
		shards[i] = make([]byte, size)
		if _, err := rand.Read(shards[i]); err != nil {
			t.Fatalf("rand.Read: %v", err)
		}
	}
	return shards
}

func TestEncodeProducesUniformParity(t *testing.T) {
	data := makeDataShards(t, 4, 1024)
	parity, err := Encode(data, 3)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(parity) != 3 {
		t.Fatalf("got %d parity shards, want 3", len(parity))
	}
	for i, p := range parity {
		if len(p) != 1024 {
			t.Errorf("parity shard %d has length %d, want 1024", i, len(p))
		}
	}
}

func TestEncodeRejectsNonUniformShards(t *testing.T) {
	data := [][]byte{make([]byte, 10), make([]byte, 20)}
	_, err := Encode(data, 2)
	if !errors.Is(err, ErrShardLengthMismatch) {
		t.Fatalf("err = %v, want ErrShardLengthMismatch", err)
	}
}

func TestDecodeRecoversMissingData(t *testing.T) {
	data := makeDataShards(t, 4, 256)
	parity, err := Encode(data, 3)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	all := make([]*[]byte, 7)
	for i := range data {
		d := data[i]
		all[i] = &d
	}
	for i, p := range parity {
		pp := p
		all[4+i] = &pp
	}

	// Drop two data shards — still recoverable with 3 parity shards.
	all[0] = nil
	all[2] = nil

	recovered, err := Decode(all, 4, 3)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i, want := range data {
		if !bytes.Equal(recovered[i], want) {
			t.Errorf("recovered shard %d does not match original", i)
		}
	}
}

func TestDecodeInsufficientShards(t *testing.T) {
	data := makeDataShards(t, 4, 128)
	parity, err := Encode(data, 3)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	all := make([]*[]byte, 7)
	for i := range data {
		d := data[i]
		all[i] = &d
	}
	for i, p := range parity {
		pp := p
		all[4+i] = &pp
	}

	// Drop three data shards and two parity shards: only 2 of 7 remain.
	all[0], all[1], all[2] = nil, nil, nil
	all[4], all[5] = nil, nil

	_, err = Decode(all, 4, 3)
	if !errors.Is(err, ErrInsufficientShards) {
		t.Fatalf("err = %v, want ErrInsufficientShards", err)
	}
}

func TestDecodeHealthyNoOp(t *testing.T) {
	data := makeDataShards(t, 1, 64)
	parity, err := Encode(data, 3)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	all := make([]*[]byte, 4)
	d := data[0]
	all[0] = &d
	for i, p := range parity {
		pp := p
		all[1+i] = &pp
	}

	recovered, err := Decode(all, 1, 3)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(recovered[0], data[0]) {
		t.Error("healthy decode altered the data shard")
	}
}
