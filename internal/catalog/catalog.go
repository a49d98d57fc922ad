// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

// Package catalog loads and holds the static list of terminal applications.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ErrEmptyCatalog is returned when no entry in the catalog file survives validation.
var ErrEmptyCatalog = errors.New("catalog contains no valid entries")

// Commands maps each supported platform to a shell command line.
// A blank command means the action is unavailable on that platform.
type Commands struct {
	Linux   string `json:"linux"`
	WSL     string `json:"wsl"`
	Mac     string `json:"mac"`
	Windows string `json:"windows"`
}

// Entry describes one installable and launchable terminal application.
// Entries are immutable after loading.
type Entry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Repo        string   `json:"repo"`
	Binary      string   `json:"binary"`
	Install     Commands `json:"install"`
	Uninstall   Commands `json:"uninstall"`
	Launch      Commands `json:"launch"`
}

// Catalog is the read-only store of applications plus category metadata.
type Catalog struct {
	Entries    []Entry
	Categories []string
	// Warnings carries one message per entry dropped during loading.
	Warnings []string
}

// Load reads a JSON catalog file, drops invalid entries with a warning
// each, and never fails because of a single malformed entry.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var raw []Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON in %s: %w", path, err)
	}

	return New(raw)
}

// New builds a catalog from already decoded entries, validating each one.
func New(raw []Entry) (*Catalog, error) {
	cat := &Catalog{}
	seen := make(map[string]bool, len(raw))

	for i, entry := range raw {
		if msg := validate(i, entry, seen); msg != "" {
			cat.Warnings = append(cat.Warnings, msg)
			continue
		}

		if strings.TrimSpace(entry.Category) == "" {
			entry.Category = "uncategorized"
		}

		seen[entry.ID] = true
		cat.Entries = append(cat.Entries, entry)
	}

	if len(cat.Entries) == 0 {
		return nil, fmt.Errorf("%w (%d entries rejected)", ErrEmptyCatalog, len(cat.Warnings))
	}

	cat.Categories = collectCategories(cat.Entries)

	return cat, nil
}

// Get returns the entry with the given ID.
func (c *Catalog) Get(id string) (Entry, bool) {
	for _, entry := range c.Entries {
		if entry.ID == id {
			return entry, true
		}
	}

	return Entry{}, false
}

// validate returns a warning message for a rejected entry, or "" when valid.
func validate(index int, entry Entry, seen map[string]bool) string {
	switch {
	case strings.TrimSpace(entry.ID) == "":
		return fmt.Sprintf("entry %d: missing id", index)
	case strings.TrimSpace(entry.Name) == "":
		return fmt.Sprintf("entry %q: missing name", entry.ID)
	case strings.TrimSpace(entry.Binary) == "":
		return fmt.Sprintf("entry %q: missing binary", entry.ID)
	case seen[entry.ID]:
		return fmt.Sprintf("entry %q: duplicate id", entry.ID)
	}

	return ""
}

// collectCategories returns the sorted set of categories present in entries.
func collectCategories(entries []Entry) []string {
	set := make(map[string]bool)

	for _, entry := range entries {
		set[entry.Category] = true
	}

	categories := make([]string, 0, len(set))
	for category := range set {
		categories = append(categories, category)
	}

	sort.Strings(categories)

	return categories
}
