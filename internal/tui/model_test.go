// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/tuihub/tuihub/internal/catalog"
	"github.com/tuihub/tuihub/internal/platform"
)

// fakeRunner substitutes the process-spawning collaborator in tests.
type fakeRunner struct {
	installed map[string]bool
	hasTmux   bool
	launchErr error
	launched  []string
}

func (r *fakeRunner) BinaryInstalled(binary string) bool {
	return r.installed[binary]
}

func (r *fakeRunner) HasTmux() bool {
	return r.hasTmux
}

func (r *fakeRunner) Launch(_ string, entry catalog.Entry, _ platform.Platform) (string, error) {
	if r.launchErr != nil {
		return "", r.launchErr
	}

	r.launched = append(r.launched, entry.ID)

	return "session test", nil
}

// testCatalog is the three-app fixture: two editors, one shell.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New([]catalog.Entry{
		{
			ID: "neovim", Name: "Neovim", Description: "Hyperextensible text editor",
			Category: "editor", Binary: "nvim",
			Install:   catalog.Commands{Linux: "sudo apt install -y neovim"},
			Uninstall: catalog.Commands{Linux: "sudo apt remove -y neovim"},
		},
		{
			ID: "helix", Name: "Helix", Description: "Post-modern text editor",
			Category: "editor", Binary: "hx",
			Install: catalog.Commands{Linux: "sudo apt install -y helix"},
		},
		{
			ID: "fish", Name: "Fish", Description: "Friendly interactive shell",
			Category: "shell", Binary: "fish",
			Install:   catalog.Commands{Linux: "sudo apt install -y fish"},
			Uninstall: catalog.Commands{Linux: "sudo apt remove -y fish"},
		},
	})
	require.NoError(t, err)

	return cat
}

func newTestModel(t *testing.T, runner *fakeRunner) *Model {
	t.Helper()

	if runner.installed == nil {
		runner.installed = make(map[string]bool)
	}

	return New(testCatalog(t), platform.Linux, runner, "tuihub")
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)

	return cmd
}

// drain runs a command pipeline to completion, feeding every produced
// message back into the model, and returns how many external command
// completions were observed.
func drain(t *testing.T, m *Model, cmd tea.Cmd) int {
	t.Helper()

	completions := 0

	for cmd != nil {
		msg := cmd()
		if msg == nil {
			break
		}

		if _, ok := msg.(commandDoneMsg); ok {
			completions++
		}

		cmd = press(m, msg)
	}

	return completions
}
