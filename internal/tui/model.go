// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui implements the interactive catalog browser.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tuihub/tuihub/internal/catalog"
	"github.com/tuihub/tuihub/internal/platform"
	"github.com/tuihub/tuihub/internal/stringutil"
	"github.com/tuihub/tuihub/internal/tui/styles"
)

// mode is the input mode of the browse screen.
type mode int

// Input modes. Browse handles navigation and action keys, Search routes
// keystrokes into the search field, Confirm owns the uninstall form, and
// Help shows the scrollable help overlay.
const (
	modeBrowse mode = iota
	modeSearch
	modeConfirm
	modeHelp
)

// Tab is one of the three top-level catalog views.
type Tab int

// Top tabs, cycled with Tab/Shift+Tab.
const (
	TabAll Tab = iota
	TabInstalled
	TabCategories
)

// tabCount is the number of top tabs for wrap-around cycling.
const tabCount = 3

// Title returns the tab label.
func (t Tab) Title() string {
	switch t {
	case TabAll:
		return "All"
	case TabInstalled:
		return "Installed"
	case TabCategories:
		return "Categories"
	}

	return "All"
}

// actionKind identifies a user-triggered catalog action.
type actionKind int

const (
	actionInstall actionKind = iota
	actionUninstall
	actionLaunch
)

func (k actionKind) verb() string {
	switch k {
	case actionInstall:
		return "install"
	case actionUninstall:
		return "uninstall"
	case actionLaunch:
		return "launch"
	}

	return "install"
}

func (k actionKind) pastVerb() string {
	switch k {
	case actionInstall:
		return "installed"
	case actionUninstall:
		return "uninstalled"
	case actionLaunch:
		return "launched"
	}

	return "installed"
}

// queuedCommand is one resolved external command awaiting execution.
type queuedCommand struct {
	entryName string
	cmdline   string
}

// commandDoneMsg reports the outcome of one external command after the
// terminal has been restored to the UI.
type commandDoneMsg struct {
	err error
}

// Model is the root Bubble Tea model of the catalog browser.
type Model struct {
	styles *styles.Styles
	keyMap KeyMap

	width  int
	height int
	ready  bool

	catalog       *catalog.Catalog
	plat          platform.Platform
	runner        platform.Runner
	sessionPrefix string

	installed map[string]bool

	// Filter state
	tab         Tab
	categoryIdx int
	search      textinput.Model

	mode     mode
	quitting bool

	// Row projection and cursor. cursor is -1 when no rows are visible.
	visible []int
	cursor  int

	// Selection keyed by entry ID so it survives re-filtering.
	selected map[string]struct{}

	status string

	viewport viewport.Model
	help     helpOverlay

	// Uninstall confirmation
	confirm        *huh.Form
	confirmAccept  bool
	confirmPending []queuedCommand

	// Sequential command execution
	queue     []queuedCommand
	queueKind actionKind
	running   bool
	okCount   int
	failCount int
	skipCount int

	// execCommand brackets one external command with the suspend/resume
	// protocol. Tests substitute a fake that returns commandDoneMsg
	// directly.
	execCommand func(cmdline string) tea.Cmd
}

// New creates the browse model for a loaded catalog.
func New(cat *catalog.Catalog, plat platform.Platform, runner platform.Runner, sessionPrefix string) *Model {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"
	search.CharLimit = 64

	model := &Model{
		styles:        styles.New(),
		keyMap:        DefaultKeyMap(),
		catalog:       cat,
		plat:          plat,
		runner:        runner,
		sessionPrefix: sessionPrefix,
		installed:     make(map[string]bool),
		search:        search,
		selected:      make(map[string]struct{}),
		cursor:        -1,
		viewport:      viewport.New(80, 20),
		help:          newHelpOverlay(),
	}

	model.execCommand = realExecCommand(plat)
	model.refreshInstalled()
	model.applyFilter()
	model.status = startupStatus(cat)

	return model
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Run starts the TUI on the real terminal with the alternate screen buffer.
func (m *Model) Run() error {
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}

	return nil
}

// startupStatus is the initial status line, surfacing load warnings once.
func startupStatus(cat *catalog.Catalog) string {
	base := "Ready. Navigate with ↑↓/jk, space select, i install, u uninstall, l launch, / search."
	if len(cat.Warnings) > 0 {
		return fmt.Sprintf("%d catalog entries skipped (invalid). %s", len(cat.Warnings), base)
	}

	return base
}

// applyFilter recomputes the visible rows from scratch. It is a pure
// projection of catalog + filter state, so reapplying is idempotent.
func (m *Model) applyFilter() {
	m.visible = m.visible[:0]

	for i, entry := range m.catalog.Entries {
		if m.matchesTab(entry) && m.matchesSearch(entry) {
			m.visible = append(m.visible, i)
		}
	}

	switch {
	case len(m.visible) == 0:
		m.cursor = -1
	case m.cursor < 0 || m.cursor >= len(m.visible):
		m.cursor = 0
	}
}

// matchesTab applies the top-tab predicate.
func (m *Model) matchesTab(entry catalog.Entry) bool {
	switch m.tab {
	case TabAll:
		return true
	case TabInstalled:
		return m.installed[entry.ID]
	case TabCategories:
		if len(m.catalog.Categories) == 0 {
			return true
		}

		return strings.EqualFold(entry.Category, m.catalog.Categories[m.categoryIdx])
	}

	return true
}

// matchesSearch applies the case-insensitive substring predicate over
// name, description, category and ID.
func (m *Model) matchesSearch(entry catalog.Entry) bool {
	query := strings.TrimSpace(m.search.Value())
	if query == "" {
		return true
	}

	return stringutil.ContainsAnyIgnoreCase(query, entry.Name, entry.Description, entry.Category, entry.ID)
}

// moveCursor moves by delta, clamped to [0, len). No motion on empty rows.
func (m *Model) moveCursor(delta int) {
	if len(m.visible) == 0 {
		m.cursor = -1

		return
	}

	next := m.cursor + delta
	if next < 0 {
		next = 0
	}

	if next >= len(m.visible) {
		next = len(m.visible) - 1
	}

	m.cursor = next
}

// currentEntry returns the entry under the cursor.
func (m *Model) currentEntry() (catalog.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return catalog.Entry{}, false
	}

	return m.catalog.Entries[m.visible[m.cursor]], true
}

// toggleSelection flips selection of the entry under the cursor.
func (m *Model) toggleSelection() {
	entry, ok := m.currentEntry()
	if !ok {
		return
	}

	if _, selected := m.selected[entry.ID]; selected {
		delete(m.selected, entry.ID)
	} else {
		m.selected[entry.ID] = struct{}{}
	}
}

// actionTargets resolves the targets of an action: the selection when
// non-empty (in catalog order), otherwise the row under the cursor.
func (m *Model) actionTargets() []catalog.Entry {
	if len(m.selected) > 0 {
		targets := make([]catalog.Entry, 0, len(m.selected))

		for _, entry := range m.catalog.Entries {
			if _, ok := m.selected[entry.ID]; ok {
				targets = append(targets, entry)
			}
		}

		return targets
	}

	if entry, ok := m.currentEntry(); ok {
		return []catalog.Entry{entry}
	}

	return nil
}

// refreshInstalled rebuilds the installed cache from PATH lookups.
func (m *Model) refreshInstalled() {
	m.installed = make(map[string]bool, len(m.catalog.Entries))

	for _, entry := range m.catalog.Entries {
		if m.runner.BinaryInstalled(entry.Binary) {
			m.installed[entry.ID] = true
		}
	}
}

// cycleTab switches the top tab with wrap-around, preserving the category
// choice and resetting the search text.
func (m *Model) cycleTab(delta int) {
	m.tab = Tab((int(m.tab) + delta + tabCount) % tabCount)
	m.search.SetValue("")
	m.applyFilter()
}

// cycleCategory switches the category sub-tab; a no-op off the Categories tab.
func (m *Model) cycleCategory(delta int) {
	if m.tab != TabCategories || len(m.catalog.Categories) == 0 {
		return
	}

	count := len(m.catalog.Categories)
	m.categoryIdx = (m.categoryIdx + delta + count) % count
	m.applyFilter()
}
