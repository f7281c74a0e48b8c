// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/blockframe/blockframe/lib/chunker"
	"github.com/blockframe/blockframe/lib/workerpool"
)

func runCommit(args []string) error {
	flags := flag.NewFlagSet("commit", flag.ExitOnError)
	var (
		root    string
		file    string
		workers int
	)
	flags.StringVar(&root, "root", "", "archive store root directory (required)")
	flags.StringVar(&file, "file", "", "path to the file to commit (required)")
	flags.IntVar(&workers, "workers", 0, "tier-3 block worker count (0 = logical CPU count)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if root == "" || file == "" {
		flags.Usage()
		return fmt.Errorf("commit: --root and --file are required")
	}

	m, err := chunker.Commit(root, file, workerpool.New(workers))
	if err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	slog.Info("committed archive",
		"name", m.Name,
		"tier", m.Tier.String(),
		"size", m.Size,
		"original_hash", m.OriginalHash.String(),
	)
	return nil
}
