// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for tuihub.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/tuihub/tuihub/internal/cli"
)

// Exit codes following Unix conventions.
const (
	ExitSuccess      = 0  // Command completed successfully
	ExitGeneralError = 1  // General errors
	ExitUsageError   = 2  // Invalid arguments/usage
	ExitConfigError  = 3  // Catalog or configuration issues
	ExitSystemError  = 12 // Filesystem or lock issues
)

func main() {
	os.Exit(run())
}

func run() int {
	// Acquire process lock to prevent multiple tuihub instances
	lockPath := filepath.Join(os.TempDir(), "tuihub.lock")
	lock := flock.New(lockPath)

	locked, err := lock.TryLock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to acquire process lock: %v\n", err)

		return ExitSystemError
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another tuihub instance is already running\n")

		return ExitGeneralError
	}

	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to release process lock: %v\n", unlockErr)
		}
	}()

	app := cli.App()

	ctx := context.Background()
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)

		if errors.Is(err, cli.ErrNoTerminal) {
			return ExitUsageError
		}

		return ExitGeneralError
	}

	return ExitSuccess
}
