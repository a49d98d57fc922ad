// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tuihub/tuihub/internal/catalog"
)

// Status indicators for rows.
const (
	iconInstalled    = "●"
	iconNotInstalled = "○"
	iconSelected     = "✓"
)

// nameColumnWidth is the fixed width of the name column in the row list.
const nameColumnWidth = 22

func newListViewport(width, height int) viewport.Model {
	return viewport.New(width, height)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.mode == modeHelp {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Title.Render(" tuihub help "),
			m.help.view(),
			m.styles.MutedText.Render(" ?/esc close • j/k scroll"),
		)
	}

	header := m.renderHeader()

	if m.mode == modeConfirm && m.confirm != nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.confirm.View())
	}

	// Chrome height varies with the active tab and search row, so the
	// list height is recomputed per frame.
	if m.height > 0 {
		listHeight := m.height - m.chromeHeight()
		if listHeight < 1 {
			listHeight = 1
		}

		m.viewport.Height = listHeight
	}

	m.viewport.SetContent(m.renderRows())
	m.scrollCursorIntoView()

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.renderStatusBar(),
		m.renderFooter(),
	)
}

// chromeHeight is the number of lines the non-list UI occupies.
func (m *Model) chromeHeight() int {
	// header (title + tabs + optional category row + optional search row)
	// + status bar + footer
	height := 4

	if m.tab == TabCategories {
		height++
	}

	if m.searchRowVisible() {
		height++
	}

	return height
}

func (m *Model) searchRowVisible() bool {
	return m.mode == modeSearch || strings.TrimSpace(m.search.Value()) != ""
}

// renderHeader draws the title line, top tabs, and conditional category
// and search rows.
func (m *Model) renderHeader() string {
	title := m.styles.Title.Render("tuihub") +
		m.styles.MutedText.Render("  app catalog • "+m.plat.Label())

	tabs := make([]string, 0, tabCount)

	for t := TabAll; t <= TabCategories; t++ {
		style := m.styles.TabInactive
		if t == m.tab {
			style = m.styles.TabActive
		}

		tabs = append(tabs, style.Render(t.Title()))
	}

	lines := []string{title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...)}

	if m.tab == TabCategories {
		lines = append(lines, m.renderCategoryRow())
	}

	if m.searchRowVisible() {
		lines = append(lines, m.styles.SearchBar.Render(m.search.View()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderCategoryRow draws the category sub-tabs with title-cased labels.
func (m *Model) renderCategoryRow() string {
	titler := cases.Title(language.Und)
	labels := make([]string, 0, len(m.catalog.Categories))

	for i, category := range m.catalog.Categories {
		label := titler.String(category)
		if i == m.categoryIdx {
			label = m.styles.TabActive.Render(label)
		} else {
			label = m.styles.TabInactive.Render(label)
		}

		labels = append(labels, label)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// renderRows draws one line per visible row.
func (m *Model) renderRows() string {
	if len(m.visible) == 0 {
		return m.styles.MutedText.Render("  No apps match the current filter.")
	}

	var builder strings.Builder

	for rowIdx, entryIdx := range m.visible {
		entry := m.catalog.Entries[entryIdx]

		if rowIdx > 0 {
			builder.WriteByte('\n')
		}

		builder.WriteString(m.renderRow(rowIdx, entry))
	}

	return builder.String()
}

func (m *Model) renderRow(rowIdx int, entry catalog.Entry) string {
	icon := iconNotInstalled
	if m.installed[entry.ID] {
		icon = iconInstalled
	}

	if _, ok := m.selected[entry.ID]; ok {
		icon = iconSelected
	}

	name := runewidth.FillRight(runewidth.Truncate(entry.Name, nameColumnWidth, "…"), nameColumnWidth)

	descWidth := m.width - nameColumnWidth - 6
	if descWidth < 10 {
		descWidth = 10
	}

	desc := runewidth.Truncate(entry.Description, descWidth, "…")
	line := fmt.Sprintf(" %s %s %s", icon, name, desc)

	switch {
	case rowIdx == m.cursor:
		return m.styles.RowCursor.Render(line)
	case icon == iconSelected:
		return m.styles.RowSelected.Render(line)
	default:
		return m.styles.Row.Render(line)
	}
}

// scrollCursorIntoView keeps the cursor line inside the viewport.
func (m *Model) scrollCursorIntoView() {
	if m.cursor < 0 {
		return
	}

	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1

	if m.cursor < top {
		m.viewport.SetYOffset(m.cursor)
	} else if m.cursor > bottom {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// renderStatusBar draws the last action outcome and list counts.
func (m *Model) renderStatusBar() string {
	status := m.status
	if status == "" {
		status = " "
	}

	counts := fmt.Sprintf("%d/%d apps", len(m.visible), len(m.catalog.Entries))
	if len(m.selected) > 0 {
		counts += fmt.Sprintf(" • %d selected", len(m.selected))
	}

	gap := m.width - lipgloss.Width(status) - lipgloss.Width(counts) - 4
	if gap < 1 {
		gap = 1
	}

	return m.styles.StatusBar.Render(status + strings.Repeat(" ", gap) + counts)
}

func (m *Model) renderFooter() string {
	hints := []string{
		"[space] select",
		"[i] install",
		"[u] uninstall",
		"[l] launch",
		"[/] search",
		"[?] help",
		"[q] quit",
	}

	return m.styles.MutedText.Render(" " + strings.Join(hints, "  "))
}
