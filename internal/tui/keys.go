// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines key bindings for the browse screen.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextTab      key.Binding
	PrevTab      key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Select       key.Binding
	ClearSelect  key.Binding
	Search       key.Binding
	ClearSearch  key.Binding
	Install      key.Binding
	Uninstall    key.Binding
	Launch       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default browse key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		NextCategory: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next category"),
		),
		PrevCategory: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev category"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle select"),
		),
		ClearSelect: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear selection"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Install: key.NewBinding(
			key.WithKeys("i", "I"),
			key.WithHelp("i", "install"),
		),
		Uninstall: key.NewBinding(
			key.WithKeys("u", "U"),
			key.WithHelp("u", "uninstall"),
		),
		Launch: key.NewBinding(
			key.WithKeys("l", "L", "enter"),
			key.WithHelp("l/enter", "launch"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
