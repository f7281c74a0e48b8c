// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Command blockframe is the thin CLI front-end over the commit,
// repair, health, and reconstruct engine operations. It holds no
// domain logic itself — argument parsing and exit-code mapping only.
package main

import (
	"fmt"
	"os"
)

// Exit codes returned to the shell. 0 always means success; every
// other code is stable across releases so scripts can branch on it
// without parsing error text.
const (
	exitOK             = 0
	exitUsage          = 2
	exitArchiveError   = 3
	exitUnrecoverable  = 4
	exitCriticalFailed = 5
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return exitUsage
	}

	subcommand := args[0]
	rest := args[1:]

	var err error
	switch subcommand {
	case "commit":
		err = runCommit(rest)
	case "repair":
		err = runRepair(rest)
	case "health":
		err = runHealth(rest)
	case "reconstruct":
		err = runReconstruct(rest)
	case "-h", "--help", "help":
		printUsage()
		return exitOK
	default:
		printUsage()
		fmt.Fprintf(os.Stderr, "error: unknown subcommand %q\n", subcommand)
		return exitUsage
	}

	if err == nil {
		return exitOK
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return exitCodeFor(err)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: blockframe <subcommand> [flags]

Subcommands:
  commit --root <dir> --file <path>       Commit a file into an archive store
  repair --root <dir> [--archive <name>]  Repair corrupted or missing shards
  health --root <dir> [--archive <name>]  Report archive health without repairing
  reconstruct --root <dir> --name <name> --out <path>
                                           Reassemble a file from its archive

Run 'blockframe <subcommand> -h' for subcommand flags.
`)
}
