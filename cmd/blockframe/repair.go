// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/blockframe/blockframe/lib/filestore"
	"github.com/blockframe/blockframe/lib/workerpool"
)

func runRepair(args []string) error {
	flags := flag.NewFlagSet("repair", flag.ExitOnError)
	var (
		root    string
		name    string
		workers int
	)
	flags.StringVar(&root, "root", "", "archive store root directory (required)")
	flags.StringVar(&name, "archive", "", "repair only the archive with this name (default: all archives)")
	flags.IntVar(&workers, "workers", 0, "per-archive worker count (0 = logical CPU count)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if root == "" {
		flags.Usage()
		return fmt.Errorf("repair: --root is required")
	}

	store := filestore.New(root, slog.Default())
	files, err := selectFiles(store, name)
	if err != nil {
		return fmt.Errorf("repair: %w", err)
	}

	pool := workerpool.New(workers)
	unrecoverable := 0
	for _, file := range files {
		report, err := filestore.Repair(file, pool)
		if err != nil {
			return fmt.Errorf("repair: %s: %w", file.Name, err)
		}
		logReport(file.Name, report)
		if !report.OK() {
			unrecoverable++
		}
	}

	if unrecoverable > 0 {
		return fmt.Errorf("%w: %d archive(s) had unrecoverable units", filestore.ErrUnrecoverable, unrecoverable)
	}
	return nil
}

// selectFiles returns either every discovered archive, or just the
// one matching name.
func selectFiles(store *filestore.FileStore, name string) ([]*filestore.File, error) {
	if name == "" {
		return store.GetAll()
	}
	file, err := store.Find(name)
	if err != nil {
		return nil, err
	}
	return []*filestore.File{file}, nil
}

func logReport(name string, report *filestore.RepairReport) {
	for _, u := range report.Units {
		if u.Status == filestore.StatusHealthy {
			continue
		}
		slog.Info("repair unit",
			"archive", name,
			"unit", u.Index,
			"status", u.Status.String(),
			"error", u.Err,
		)
	}
}
