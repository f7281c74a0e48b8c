// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a bounded-concurrency fan-out over a
// fixed number of independent units of work — blocks during tier-3
// commit, blocks or segments during repair. There is no asynchronous
// suspension: Run blocks the caller until every unit has been
// attempted or the pool has been cooperatively stopped.
package workerpool
