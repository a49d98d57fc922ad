// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os/exec"
	"strings"

	"github.com/tuihub/tuihub/internal/catalog"
)

// CommandFor returns the command line for the given platform, or false
// when the catalog defines none.
func CommandFor(commands catalog.Commands, p Platform) (string, bool) {
	var cmdline string

	switch p {
	case Linux:
		cmdline = commands.Linux
	case WSL:
		cmdline = commands.WSL
	case Mac:
		cmdline = commands.Mac
	case Windows:
		cmdline = commands.Windows
	case Unknown:
		return "", false
	}

	cmdline = strings.TrimSpace(cmdline)
	if cmdline == "" {
		return "", false
	}

	return cmdline, true
}

// LaunchCommandFor resolves the launch command line for an entry, falling
// back to running the entry's binary directly when the catalog defines no
// explicit launch command.
func LaunchCommandFor(entry catalog.Entry, p Platform) (string, bool) {
	if cmdline, ok := CommandFor(entry.Launch, p); ok {
		return cmdline, true
	}

	if p == Unknown {
		return "", false
	}

	return entry.Binary, true
}

// Runner is the process-spawning collaborator the TUI depends on.
// Wait-mode execution goes through Bubble Tea's exec support instead,
// so the terminal lifecycle stays with the UI runtime.
type Runner interface {
	// BinaryInstalled reports whether a binary resolves on PATH.
	BinaryInstalled(binary string) bool
	// Launch starts an entry as a detached session and returns a short
	// description of where it runs (for the status bar).
	Launch(prefix string, entry catalog.Entry, p Platform) (string, error)
	// HasTmux reports whether the tmux binary is available.
	HasTmux() bool
}

// SystemRunner is the production Runner backed by the real system.
type SystemRunner struct{}

// NewSystemRunner creates the production process runner.
func NewSystemRunner() *SystemRunner {
	return &SystemRunner{}
}

// BinaryInstalled reports whether the binary resolves on PATH.
func (r *SystemRunner) BinaryInstalled(binary string) bool {
	_, err := exec.LookPath(binary)

	return err == nil
}

// HasTmux reports whether tmux is available for detached launches.
func (r *SystemRunner) HasTmux() bool {
	return r.BinaryInstalled("tmux")
}

// Launch starts the entry's launch command in a detached tmux session or,
// when already inside tmux, in a new window.
func (r *SystemRunner) Launch(prefix string, entry catalog.Entry, p Platform) (string, error) {
	cmdline, ok := LaunchCommandFor(entry, p)
	if !ok {
		return "", ErrNoCommand
	}

	return launchInTmux(prefix, entry.ID, cmdline)
}
