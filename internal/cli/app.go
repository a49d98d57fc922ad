// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the tuihub command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tuihub/tuihub/internal/catalog"
	"github.com/tuihub/tuihub/internal/config"
	"github.com/tuihub/tuihub/internal/console"
	"github.com/tuihub/tuihub/internal/platform"
	"github.com/tuihub/tuihub/internal/tui"
)

// ErrNoTerminal is returned when the TUI is launched without a terminal.
var ErrNoTerminal = errors.New("tuihub requires a terminal; use 'tuihub list' for scripted output")

// App builds the root command.
func App() *cli.Command {
	return &cli.Command{
		Name:  "tuihub",
		Usage: "Browse, install and launch terminal applications",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "catalog",
				Usage:   "path to the catalog JSON file",
				Aliases: []string{"c"},
			},
		},
		Action: runTUI,
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Print the catalog to stdout",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "installed",
						Usage: "only show installed apps",
					},
					&cli.BoolFlag{
						Name:  "plain",
						Usage: "disable formatting",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "include id, binary and repo columns",
					},
				},
				Action: runList,
			},
		},
	}
}

// runTUI loads the catalog and starts the interactive browser.
func runTUI(_ context.Context, cmd *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNoTerminal
	}

	cat, cfg, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	console.Warnings(cat.Warnings)

	model := tui.New(cat, platform.Detect(), platform.NewSystemRunner(), cfg.SessionPrefix)

	return model.Run()
}

// runList prints the catalog without entering the TUI.
func runList(_ context.Context, cmd *cli.Command) error {
	cat, _, err := loadCatalog(cmd)
	if err != nil {
		return err
	}

	console.Warnings(cat.Warnings)

	runner := platform.NewSystemRunner()
	installed := make(map[string]bool, len(cat.Entries))

	for _, entry := range cat.Entries {
		installed[entry.ID] = runner.BinaryInstalled(entry.Binary)
	}

	entries := cat.Entries
	if cmd.Bool("installed") {
		filtered := make([]catalog.Entry, 0, len(entries))

		for _, entry := range entries {
			if installed[entry.ID] {
				filtered = append(filtered, entry)
			}
		}

		entries = filtered
	}

	out := console.New(cmd.Bool("plain"))
	if cmd.Bool("verbose") {
		out.ListEntriesVerbose(entries, installed)
	} else {
		out.ListEntries(entries, installed)
	}

	return nil
}

// loadCatalog resolves the catalog path (flag over config over default)
// and loads it.
func loadCatalog(cmd *cli.Command) (*catalog.Catalog, config.Config, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, cfg, err
	}

	path := cfg.CatalogPath
	if flagPath := cmd.String("catalog"); flagPath != "" {
		path = flagPath
	}

	cat, err := catalog.Load(path)
	if err != nil {
		return nil, cfg, fmt.Errorf("cannot load catalog from %s: %w", path, err)
	}

	return cat, cfg, nil
}
