// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console provides TTY-aware plain-text output for the CLI surface.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tuihub/tuihub/internal/catalog"
)

// Output writes catalog listings to a writer with TTY-aware formatting.
type Output struct {
	Writer io.Writer
	Plain  bool
	isTTY  func(fd uintptr) bool
}

// New creates an Output writing to stdout.
func New(plain bool) *Output {
	return &Output{
		Writer: os.Stdout,
		Plain:  plain,
		isTTY: func(fd uintptr) bool {
			return term.IsTerminal(int(fd))
		},
	}
}

// Bold formats text with ANSI bold in a TTY, uppercase when piped.
func (o *Output) Bold(text string) string {
	if o.Plain {
		return text
	}

	// no-color.org conventions
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return text
	}

	if file, ok := o.Writer.(*os.File); ok && o.isTTY(file.Fd()) {
		return "\033[1m" + text + "\033[0m"
	}

	return strings.ToUpper(text)
}

// ListEntries prints one line per catalog entry, with installed markers.
func (o *Output) ListEntries(entries []catalog.Entry, installed map[string]bool) {
	for _, entry := range entries {
		marker := " "
		if installed[entry.ID] {
			marker = "*"
		}

		fmt.Fprintf(o.Writer, "%s %-18s %-14s %s\n", marker, o.Bold(entry.Name), entry.Category, entry.Description)
	}
}

// ListEntriesVerbose prints the listing with id, binary and repo columns.
func (o *Output) ListEntriesVerbose(entries []catalog.Entry, installed map[string]bool) {
	for _, entry := range entries {
		marker := " "
		if installed[entry.ID] {
			marker = "*"
		}

		fmt.Fprintf(o.Writer, "%s %-18s %-14s %-14s %-10s %s\n",
			marker, o.Bold(entry.Name), entry.ID, entry.Category, entry.Binary, entry.Repo)
	}
}

// Warnings prints catalog load warnings to stderr, once, as a block.
func Warnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintf(os.Stderr, "Warning: %d catalog entries were skipped:\n", len(warnings))

	for _, warning := range warnings {
		fmt.Fprintf(os.Stderr, "  - %s\n", warning)
	}
}
