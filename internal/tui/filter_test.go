// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestCategoryFilterShowsExactMatchesInCatalogOrder(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.tab = TabCategories
	m.categoryIdx = 0 // categories are sorted: editor, shell
	m.applyFilter()

	assert.Equal(t, []int{0, 1}, m.visible, "exactly the two editors, in catalog order")

	m.categoryIdx = 1
	m.applyFilter()
	assert.Equal(t, []int{2}, m.visible, "only the shell entry")
}

func TestSearchSubstringIsCaseInsensitiveAndTabIndependent(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.search.SetValue("VIM")
	m.applyFilter()

	assert.Equal(t, []int{0}, m.visible, `"VIM" matches only Neovim on the All tab`)
}

func TestApplyFilterIsIdempotent(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.search.SetValue("editor")
	m.applyFilter()
	first := append([]int(nil), m.visible...)

	m.applyFilter()
	assert.Equal(t, first, m.visible)
}

func TestCombinedCategoryAndSearchWithZeroMatches(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.tab = TabCategories
	m.categoryIdx = 1 // shell
	m.search.SetValue("neovim")
	m.applyFilter()

	assert.Empty(t, m.visible)
	assert.Equal(t, -1, m.cursor, "cursor disabled on empty rows")
}

func TestInstalledTab(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{installed: map[string]bool{"fish": true}})

	m.tab = TabInstalled
	m.applyFilter()

	assert.Equal(t, []int{2}, m.visible)
}

func TestCursorClampsAndStaysInRange(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	deltas := []int{1, 1, 1, 1, -1, -10, 5, -2, 3}
	for _, delta := range deltas {
		m.moveCursor(delta)
		assert.GreaterOrEqual(t, m.cursor, 0)
		assert.Less(t, m.cursor, len(m.visible))
	}
}

func TestCursorDisabledOnEmptyRows(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.search.SetValue("no-such-app")
	m.applyFilter()
	m.moveCursor(1)

	assert.Equal(t, -1, m.cursor)
}

func TestSelectionToggleIsItsOwnInverse(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.toggleSelection()
	assert.Contains(t, m.selected, "neovim")

	m.toggleSelection()
	assert.NotContains(t, m.selected, "neovim")
}

func TestSelectionSurvivesRefiltering(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.toggleSelection() // neovim

	m.search.SetValue("fish")
	m.applyFilter()
	assert.Equal(t, []int{2}, m.visible, "neovim filtered out")
	assert.Contains(t, m.selected, "neovim", "selection keyed by identity, not row position")
}

func TestTabRoundTripPreservesCategory(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.tab = TabCategories
	m.categoryIdx = 1
	m.applyFilter()

	m.cycleTab(1) // -> All
	m.cycleTab(1) // -> Installed
	m.cycleTab(1) // -> Categories again

	assert.Equal(t, TabCategories, m.tab)
	assert.Equal(t, 1, m.categoryIdx, "category choice preserved across tab switches")
}

func TestTabSwitchResetsSearch(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.search.SetValue("vim")
	m.applyFilter()
	m.cycleTab(1)

	assert.Empty(t, m.search.Value(), "stale search must not silently hide rows")
	assert.Len(t, m.visible, 3)
}

func TestTabCyclingWrapsBothWays(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.cycleTab(-1)
	assert.Equal(t, TabCategories, m.tab)

	m.cycleTab(1)
	assert.Equal(t, TabAll, m.tab)
}

func TestCategoryCycleIsNoOpOffCategoriesTab(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.cycleCategory(1)
	assert.Equal(t, 0, m.categoryIdx)
}

func TestSearchModeCommitAndCancel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	// Enter search mode and type a query.
	press(m, keyRune('/'))
	assert.Equal(t, modeSearch, m.mode)

	for _, r := range "fish" {
		press(m, keyRune(r))
	}

	assert.Equal(t, []int{2}, m.visible, "rows recomputed on every keystroke")

	// Enter commits: filter kept.
	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, "fish", m.search.Value())
	assert.Equal(t, []int{2}, m.visible)

	// Re-enter and cancel: filter cleared.
	press(m, keyRune('/'))
	for _, r := range "helix" {
		press(m, keyRune(r))
	}

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, m.mode)
	assert.Empty(t, m.search.Value())
	assert.Len(t, m.visible, 3)
}

func TestEnteringSearchClearsPreviousQuery(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	m.search.SetValue("old")
	press(m, keyRune('/'))

	assert.Empty(t, m.search.Value())
}

func TestUnmappedKeysAreIgnored(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})
	before := m.cursor

	press(m, keyRune('z'))
	press(m, tea.KeyMsg{Type: tea.KeyF1})

	assert.Equal(t, before, m.cursor)
	assert.Equal(t, modeBrowse, m.mode)
}

func TestNavigationClearsStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})
	m.status = "1 installed."

	press(m, keyRune('j'))

	assert.Empty(t, m.status)
}

func TestQuitKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, &fakeRunner{})

	cmd := press(m, keyRune('q'))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}
