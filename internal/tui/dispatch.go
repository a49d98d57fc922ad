// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"fmt"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tuihub/tuihub/internal/platform"
)

// realExecCommand brackets one external command with the suspend/resume
// protocol: Bubble Tea leaves the alternate screen and disables raw mode
// before the child starts, hands it the real terminal, and restores the
// UI on every exit path. Spawn failure arrives in the callback like any
// non-zero exit.
func realExecCommand(plat platform.Platform) func(cmdline string) tea.Cmd {
	shell, flag := plat.Shell()

	return func(cmdline string) tea.Cmd {
		//nolint:gosec // G204: catalog command lines are meant to run through the shell
		cmd := exec.Command(shell, flag, cmdline)

		return tea.ExecProcess(cmd, func(err error) tea.Msg {
			return commandDoneMsg{err: err}
		})
	}
}

// dispatchInstall resolves install targets and starts the sequential queue.
func (m *Model) dispatchInstall() tea.Cmd {
	targets := m.actionTargets()
	if len(targets) == 0 {
		m.status = "No app selected to install."

		return nil
	}

	if m.plat == platform.Unknown {
		m.status = "Unknown platform. Cannot install."

		return nil
	}

	m.resetCounts()

	var queue []queuedCommand

	for _, target := range targets {
		if m.installed[target.ID] {
			m.skipCount++

			continue
		}

		cmdline, ok := platform.CommandFor(target.Install, m.plat)
		if !ok {
			m.failCount++

			continue
		}

		queue = append(queue, queuedCommand{entryName: target.Name, cmdline: cmdline})
	}

	return m.startQueue(actionInstall, queue)
}

// dispatchUninstall resolves uninstall targets and opens the confirmation
// form; the queue starts only after the user confirms.
func (m *Model) dispatchUninstall() tea.Cmd {
	targets := m.actionTargets()
	if len(targets) == 0 {
		m.status = "No app selected to uninstall."

		return nil
	}

	if m.plat == platform.Unknown {
		m.status = "Unknown platform. Cannot uninstall."

		return nil
	}

	m.resetCounts()

	var (
		pending []queuedCommand
		names   []string
	)

	for _, target := range targets {
		if !m.installed[target.ID] {
			m.skipCount++

			continue
		}

		cmdline, ok := platform.CommandFor(target.Uninstall, m.plat)
		if !ok {
			m.failCount++

			continue
		}

		pending = append(pending, queuedCommand{entryName: target.Name, cmdline: cmdline})
		names = append(names, target.Name)
	}

	if len(pending) == 0 {
		m.status = m.aggregateStatus(actionUninstall)

		return nil
	}

	m.confirmPending = pending
	m.confirmAccept = false
	m.confirm = huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Uninstall %s?", strings.Join(names, ", "))).
			Description("The uninstall command runs on your real terminal; sudo may ask for a password.").
			Affirmative("Uninstall").
			Negative("Cancel").
			Value(&m.confirmAccept),
	)).WithTheme(huh.ThemeCharm())
	m.mode = modeConfirm

	return m.confirm.Init()
}

// dispatchLaunch starts each target as a detached session; the UI never
// suspends and never waits on the child.
func (m *Model) dispatchLaunch() {
	targets := m.actionTargets()
	if len(targets) == 0 {
		m.status = "No app selected or focused to launch."

		return
	}

	if !m.runner.HasTmux() {
		m.status = "tmux is required for launch. " + platform.TmuxInstallHint(m.plat)

		return
	}

	m.resetCounts()

	var lastLocation string

	for _, target := range targets {
		if !m.installed[target.ID] {
			m.skipCount++

			continue
		}

		location, err := m.runner.Launch(m.sessionPrefix, target, m.plat)
		if err != nil {
			m.failCount++

			continue
		}

		m.okCount++
		lastLocation = fmt.Sprintf("%s in %s", target.Name, location)
	}

	status := m.aggregateStatus(actionLaunch)
	if m.okCount == 1 && lastLocation != "" {
		status = "Launched " + lastLocation
	}

	m.status = status
}

// startQueue begins sequential execution of resolved commands. Each child
// owns the terminal exclusively until it exits; the next one starts only
// from the previous completion message.
func (m *Model) startQueue(kind actionKind, queue []queuedCommand) tea.Cmd {
	m.queueKind = kind

	if len(queue) == 0 {
		m.status = m.aggregateStatus(kind)

		return nil
	}

	m.queue = queue
	m.running = true
	m.status = fmt.Sprintf("Running %s for %s…", kind.verb(), queue[0].entryName)

	return m.execNext()
}

// execNext pops the head of the queue and hands it to the session guard.
func (m *Model) execNext() tea.Cmd {
	next := m.queue[0]
	m.queue = m.queue[1:]

	return m.execCommand(next.cmdline)
}

// handleCommandDone records one command outcome and either continues the
// queue or finalizes the action. It runs after the terminal is back under
// UI control, so finishing here is the observable resume step.
func (m *Model) handleCommandDone(msg commandDoneMsg) tea.Cmd {
	if !m.running {
		return nil
	}

	if msg.err != nil {
		m.failCount++
	} else {
		m.okCount++
	}

	if len(m.queue) > 0 {
		return m.execNext()
	}

	m.running = false
	m.refreshInstalled()
	m.applyFilter()
	m.status = m.aggregateStatus(m.queueKind)

	return nil
}

// aggregateStatus builds the single-line summary for the status bar.
func (m *Model) aggregateStatus(kind actionKind) string {
	parts := make([]string, 0, 3)

	if m.okCount > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", m.okCount, kind.pastVerb()))
	}

	if m.failCount > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", m.failCount))
	}

	if m.skipCount > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", m.skipCount))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("Nothing to %s.", kind.verb())
	}

	return strings.Join(parts, ", ") + "."
}

func (m *Model) resetCounts() {
	m.okCount = 0
	m.failCount = 0
	m.skipCount = 0
}
