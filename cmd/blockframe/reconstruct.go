// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/blockframe/blockframe/lib/filestore"
)

func runReconstruct(args []string) error {
	flags := flag.NewFlagSet("reconstruct", flag.ExitOnError)
	var (
		root string
		name string
		out  string
	)
	flags.StringVar(&root, "root", "", "archive store root directory (required)")
	flags.StringVar(&name, "name", "", "archive name to reconstruct (required)")
	flags.StringVar(&out, "out", "", "output file path (required)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if root == "" || name == "" || out == "" {
		flags.Usage()
		return fmt.Errorf("reconstruct: --root, --name, and --out are required")
	}

	store := filestore.New(root, slog.Default())
	file, err := store.Find(name)
	if err != nil {
		return fmt.Errorf("reconstruct: %w", err)
	}

	if err := filestore.Reconstruct(file, out); err != nil {
		return fmt.Errorf("reconstruct: %w", err)
	}

	slog.Info("reconstructed file",
		"name", file.Name,
		"out", out,
		"size", file.Manifest.Size,
	)
	return nil
}
