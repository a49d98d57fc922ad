// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads the optional tuihub user configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultSessionPrefix names detached tmux sessions started by tuihub.
const DefaultSessionPrefix = "tuihub"

// Config is the user configuration, read from config.toml in the tuihub
// XDG config directory. Every field is optional.
type Config struct {
	// CatalogPath overrides the default catalog file location.
	CatalogPath string `toml:"catalog"`
	// SessionPrefix overrides the tmux session name prefix.
	SessionPrefix string `toml:"session_prefix"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		CatalogPath:   filepath.Join(Dir(), "apps.json"),
		SessionPrefix: DefaultSessionPrefix,
	}
}

// Load reads the config file at path, filling unset fields with defaults.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config in %s: %w", path, err)
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = Default().CatalogPath
	}

	if cfg.SessionPrefix == "" {
		cfg.SessionPrefix = DefaultSessionPrefix
	}

	return cfg, nil
}

// LoadDefault reads the config file from the standard location.
func LoadDefault() (Config, error) {
	return Load(filepath.Join(Dir(), "config.toml"))
}

// Dir returns the tuihub configuration directory.
func Dir() string {
	return filepath.Join(xdgConfigHome(os.Getenv("XDG_CONFIG_HOME")), "tuihub")
}

func xdgConfigHome(env string) string {
	if env != "" {
		return env
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}
