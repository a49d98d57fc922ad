// SPDX-FileCopyrightText: 2025 The TUIHub Authors
// SPDX-License-Identifier: EUPL-1.2

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuihub/tuihub/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultSessionPrefix, cfg.SessionPrefix)
	assert.NotEmpty(t, cfg.CatalogPath)
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "catalog = \"/tmp/custom-apps.json\"\nsession_prefix = \"hub\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom-apps.json", cfg.CatalogPath)
	assert.Equal(t, "hub", cfg.SessionPrefix)
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("catalog = \"/tmp/apps.json\"\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/apps.json", cfg.CatalogPath)
	assert.Equal(t, config.DefaultSessionPrefix, cfg.SessionPrefix)
}

func TestLoadInvalidTOML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("catalog = [broken"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
}
