// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

// helpText is the markdown source of the help overlay.
const helpText = `# tuihub

Browse the catalog, then act on the highlighted row or on your selection.

## Navigation

| Key | Action |
|-----|--------|
| j/k, ↓/↑ | move cursor |
| tab / shift+tab | cycle top tab (All, Installed, Categories) |
| ←/→ | cycle category (Categories tab only) |
| / | search; enter keeps the filter, esc discards it |
| esc | clear an applied search |

## Actions

| Key | Action |
|-----|--------|
| space | toggle selection (kept across filter changes) |
| c | clear selection |
| i | install selection (or current row) |
| u | uninstall, after confirmation |
| l, enter | launch in a detached tmux session |
| q | quit |

Install and uninstall commands run on your real terminal, so interactive
prompts (sudo passwords, confirmations) work exactly as in a plain shell.
`

// helpOverlay is the scrollable, glamour-rendered help screen.
type helpOverlay struct {
	viewport viewport.Model
	rendered string
}

func newHelpOverlay() helpOverlay {
	return helpOverlay{viewport: viewport.New(80, 20)}
}

// open renders the markdown (once per width) and resets scroll position.
func (h *helpOverlay) open(width, height int) {
	h.resize(width, height)
	h.viewport.GotoTop()
}

func (h *helpOverlay) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err == nil {
		if out, renderErr := renderer.Render(helpText); renderErr == nil {
			h.rendered = out
		}
	}

	if h.rendered == "" {
		h.rendered = helpText
	}

	h.viewport.Width = width

	h.viewport.Height = height - 2
	if h.viewport.Height < 1 {
		h.viewport.Height = 1
	}

	h.viewport.SetContent(h.rendered)
}

func (h *helpOverlay) view() string {
	return h.viewport.View()
}
