// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tuihub/tuihub/internal/catalog"
)

func TestListEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	out := &Output{Writer: &buf, Plain: true}
	out.ListEntries([]catalog.Entry{
		{ID: "lazygit", Name: "Lazygit", Category: "git", Description: "Git TUI"},
		{ID: "btop", Name: "btop", Category: "monitoring", Description: "Resource monitor"},
	}, map[string]bool{"btop": true})

	lines := buf.String()
	assert.Contains(t, lines, "Lazygit")
	assert.Contains(t, lines, "* btop")
	assert.NotContains(t, lines, "* Lazygit")
}

func TestListEntriesVerboseIncludesIDAndBinary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	out := &Output{Writer: &buf, Plain: true}
	out.ListEntriesVerbose([]catalog.Entry{
		{ID: "btop", Name: "btop++", Category: "monitoring", Binary: "btop", Repo: "https://github.com/aristocratos/btop"},
	}, map[string]bool{"btop": true})

	line := buf.String()
	assert.Contains(t, line, "btop++")
	assert.Contains(t, line, "monitoring")
	assert.Contains(t, line, "https://github.com/aristocratos/btop")
}

func TestBoldPlainMode(t *testing.T) {
	t.Parallel()

	out := &Output{Writer: &bytes.Buffer{}, Plain: true}
	assert.Equal(t, "text", out.Bold("text"), "plain mode must not format")
}

func TestBoldNonTTYUppercases(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")

	out := &Output{Writer: &bytes.Buffer{}}
	assert.Equal(t, "TEXT", out.Bold("text"), "non-file writers fall back to uppercase")
}
