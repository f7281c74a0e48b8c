// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool runs independent units of work across a fixed number of
// worker goroutines. A Pool has no persistent worker goroutines of
// its own between calls to Run — workers are spawned per Run and exit
// once the unit queue drains, so a Pool has no shutdown method and
// costs nothing when idle.
type Pool struct {
	workerCount int
	stopped     atomic.Bool
}

// New returns a Pool with workerCount worker goroutines. A
// non-positive workerCount defaults to runtime.NumCPU(), the default
// sizing for both the commit and repair paths.
func New(workerCount int) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}
	return &Pool{workerCount: workerCount}
}

// Stop requests cooperative cancellation: units not yet started are
// skipped (their error slot is left nil) and Run returns as soon as
// in-flight units complete. Stop is safe to call from any goroutine,
// including from within a unit function.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called. Unit functions that
// run in a loop of their own may poll this to cut work short early.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Run executes fn(i) for every i in [0, units), distributed across
// the pool's workers, and returns a slice of length units holding
// each unit's error (nil for success, nil also for units skipped
// after a Stop). Run blocks until every submitted unit has returned
// or been skipped.
//
// Units must be independent: Run makes no ordering guarantee between
// them, and fn must not assume it runs on any particular goroutine.
func (p *Pool) Run(units int, fn func(i int) error) []error {
	errs := make([]error, units)
	if units == 0 {
		return errs
	}

	indices := make(chan int, units)
	for i := 0; i < units; i++ {
		indices <- i
	}
	close(indices)

	workers := p.workerCount
	if workers > units {
		workers = units
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				if p.stopped.Load() {
					continue
				}
				errs[i] = fn(i)
			}
		}()
	}
	wg.Wait()

	return errs
}
