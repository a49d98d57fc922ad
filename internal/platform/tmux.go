// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

var (
	// ErrNoCommand indicates the catalog defines no command for the
	// requested action on this platform.
	ErrNoCommand = errors.New("no command defined for this platform")
	// ErrTmuxFailed indicates tmux refused to create the session or window.
	ErrTmuxFailed = errors.New("tmux failed to start the session")
)

// InTmux reports whether the process is already running inside tmux.
func InTmux() bool {
	return strings.TrimSpace(os.Getenv("TMUX")) != ""
}

// TmuxInstallHint suggests how to install tmux on the given platform.
func TmuxInstallHint(p Platform) string {
	switch p {
	case Linux, WSL:
		return "Install tmux: sudo apt install tmux"
	case Mac:
		return "Install tmux: brew install tmux"
	case Windows:
		return "Install tmux inside WSL and run tuihub there."
	case Unknown:
		return "Install tmux for your platform."
	}

	return "Install tmux for your platform."
}

// SanitizeSessionName rewrites arbitrary entry IDs into names tmux accepts.
func SanitizeSessionName(input string) string {
	var builder strings.Builder

	for _, r := range input {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_' {
			builder.WriteRune(r)
		} else {
			builder.WriteRune('-')
		}
	}

	name := strings.Trim(builder.String(), "-")
	if name == "" {
		return "app"
	}

	return name
}

// launchInTmux starts cmdline detached. Inside an existing tmux session a
// new window is opened; otherwise a new detached session is created so the
// TUI resumes immediately without waiting on the child.
func launchInTmux(prefix, id, cmdline string) (string, error) {
	timestamp := time.Now().Unix()
	safeName := SanitizeSessionName(id)

	if InTmux() {
		windowName := fmt.Sprintf("%s-%s-%d", prefix, safeName, timestamp)
		if err := runTmux("new-window", "-n", windowName, cmdline); err != nil {
			return "", err
		}

		return fmt.Sprintf("window %s", windowName), nil
	}

	sessionName := fmt.Sprintf("%s-%s-%d", prefix, safeName, timestamp)
	if err := runTmux("new-session", "-d", "-s", sessionName, cmdline); err != nil {
		return "", err
	}

	return fmt.Sprintf("session %s (attach: tmux attach -t %s)", sessionName, sessionName), nil
}

func runTmux(args ...string) error {
	cmd := exec.Command("tmux", args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %w", ErrTmuxFailed, err)
	}

	return nil
}
