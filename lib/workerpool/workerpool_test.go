// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestRunExecutesEveryUnit(t *testing.T) {
	p := New(4)
	var count atomic.Int64
	errs := p.Run(100, func(i int) error {
		count.Add(1)
		return nil
	})
	if count.Load() != 100 {
		t.Fatalf("count = %d, want 100", count.Load())
	}
	for i, err := range errs {
		if err != nil {
			t.Fatalf("errs[%d] = %v, want nil", i, err)
		}
	}
}

func TestRunPropagatesPerUnitErrors(t *testing.T) {
	p := New(2)
	failing := errors.New("boom")
	errs := p.Run(5, func(i int) error {
		if i == 3 {
			return failing
		}
		return nil
	})
	for i, err := range errs {
		if i == 3 {
			if !errors.Is(err, failing) {
				t.Fatalf("errs[3] = %v, want %v", err, failing)
			}
			continue
		}
		if err != nil {
			t.Fatalf("errs[%d] = %v, want nil", i, err)
		}
	}
}

func TestRunZeroUnits(t *testing.T) {
	p := New(4)
	errs := p.Run(0, func(i int) error {
		t.Fatal("fn should not be called for zero units")
		return nil
	})
	if len(errs) != 0 {
		t.Fatalf("len(errs) = %d, want 0", len(errs))
	}
}

func TestStopSkipsRemainingUnits(t *testing.T) {
	p := New(1)
	var ran atomic.Int64
	errs := p.Run(10, func(i int) error {
		if i == 2 {
			p.Stop()
		}
		ran.Add(1)
		return nil
	})
	if !p.Stopped() {
		t.Fatal("Stopped() = false after Stop()")
	}
	if ran.Load() >= 10 {
		t.Fatalf("ran = %d units, expected Stop to skip at least one", ran.Load())
	}
	_ = errs
}

func TestDefaultWorkerCount(t *testing.T) {
	p := New(0)
	if p.workerCount < 1 {
		t.Fatalf("workerCount = %d, want >= 1", p.workerCount)
	}
}
