// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

		return m, nil

	case commandDoneMsg:
		return m, m.handleCommandDone(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Remaining messages belong to whichever component owns the mode.
	return m.forward(msg)
}

// handleKey routes a key event by input mode. Unmapped keys are ignored.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeConfirm:
		return m.handleConfirmKey(msg)
	case modeHelp:
		return m.handleHelpKey(msg)
	case modeBrowse:
		return m.handleBrowseKey(msg)
	}

	return m, nil
}

// handleBrowseKey handles normal-mode keys.
func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMap

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true

		return m, tea.Quit

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
		m.status = ""

	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
		m.status = ""

	case key.Matches(msg, keys.NextTab):
		m.cycleTab(1)
		m.status = ""

	case key.Matches(msg, keys.PrevTab):
		m.cycleTab(-1)
		m.status = ""

	case key.Matches(msg, keys.NextCategory):
		m.cycleCategory(1)
		m.status = ""

	case key.Matches(msg, keys.PrevCategory):
		m.cycleCategory(-1)
		m.status = ""

	case key.Matches(msg, keys.Select):
		m.toggleSelection()

	case key.Matches(msg, keys.ClearSelect):
		m.selected = make(map[string]struct{})
		m.status = "Selection cleared."

	case key.Matches(msg, keys.Search):
		m.search.SetValue("")
		m.applyFilter()
		m.mode = modeSearch

		return m, m.search.Focus()

	case key.Matches(msg, keys.ClearSearch):
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applyFilter()
			m.status = "Search cleared."
		}

	case key.Matches(msg, keys.Install):
		return m, m.dispatchInstall()

	case key.Matches(msg, keys.Uninstall):
		return m, m.dispatchUninstall()

	case key.Matches(msg, keys.Launch):
		m.dispatchLaunch()

	case key.Matches(msg, keys.Help):
		m.mode = modeHelp
		m.help.open(m.width, m.height)
	}

	return m, nil
}

// handleSearchKey handles search-entry mode. Enter commits the filter,
// Esc cancels it; everything else edits the query with a live recompute.
func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.mode = modeBrowse
		m.search.Blur()
		m.status = fmt.Sprintf("Search applied: %q", m.search.Value())

		return m, nil

	case "esc":
		m.mode = modeBrowse
		m.search.Blur()
		m.search.SetValue("")
		m.applyFilter()
		m.status = "Search cancelled."

		return m, nil
	}

	var cmd tea.Cmd

	m.search, cmd = m.search.Update(msg)
	m.applyFilter()

	return m, cmd
}

// handleConfirmKey forwards keys to the uninstall confirmation form.
func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.closeConfirm(false)

		return m, nil
	}

	return m.updateConfirm(msg)
}

// handleHelpKey scrolls or closes the help overlay.
func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.mode = modeBrowse

		return m, nil
	}

	var cmd tea.Cmd

	m.help.viewport, cmd = m.help.viewport.Update(msg)

	return m, cmd
}

// forward passes non-key messages to the active component.
func (m *Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		var cmd tea.Cmd

		m.search, cmd = m.search.Update(msg)

		return m, cmd

	case modeConfirm:
		return m.updateConfirm(msg)

	case modeHelp, modeBrowse:
	}

	return m, nil
}

// updateConfirm advances the huh form and reacts to its completion.
func (m *Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm == nil {
		m.mode = modeBrowse

		return m, nil
	}

	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	if m.confirm.State == huh.StateCompleted {
		accepted := m.confirmAccept
		pending := m.confirmPending
		m.closeConfirm(accepted)

		if accepted {
			return m, m.startQueue(actionUninstall, pending)
		}

		return m, cmd
	}

	if m.confirm.State == huh.StateAborted {
		m.closeConfirm(false)
	}

	return m, cmd
}

// closeConfirm leaves confirm mode.
func (m *Model) closeConfirm(accepted bool) {
	m.mode = modeBrowse
	m.confirm = nil
	m.confirmPending = nil

	if !accepted {
		m.status = "Uninstall cancelled."
	}
}

// resize propagates the window size to the viewport and help overlay.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	chromeHeight := m.chromeHeight()

	viewportHeight := height - chromeHeight
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	if !m.ready {
		m.viewport = newListViewport(width, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = viewportHeight
	}

	m.help.resize(width, height)
}
