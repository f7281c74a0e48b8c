// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/blockframe/blockframe/lib/filestore"
)

// runHealth reports integrity without repairing anything: it runs the
// same per-unit detection logic Repair does — including decoding
// deficient units from parity to determine recoverability — via
// filestore.Check, which never writes a recovered or regenerated
// shard back to disk.
func runHealth(args []string) error {
	flags := flag.NewFlagSet("health", flag.ExitOnError)
	var (
		root string
		name string
	)
	flags.StringVar(&root, "root", "", "archive store root directory (required)")
	flags.StringVar(&name, "archive", "", "check only the archive with this name (default: all archives)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if root == "" {
		flags.Usage()
		return fmt.Errorf("health: --root is required")
	}

	store := filestore.New(root, slog.Default())
	files, err := selectFiles(store, name)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}

	unhealthy := 0
	for _, file := range files {
		report, err := filestore.Check(file, nil)
		if err != nil {
			return fmt.Errorf("health: %s: %w", file.Name, err)
		}
		logReport(file.Name, report)
		if !report.OK() {
			unhealthy++
		}
	}

	if unhealthy > 0 {
		return fmt.Errorf("%w: %d archive(s) unhealthy", filestore.ErrUnrecoverable, unhealthy)
	}
	return nil
}
