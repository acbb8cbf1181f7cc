package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekirdag/sheetfm/internal/sheet"
)

func TestLoadUIConfigMissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg, path, err := loadUIConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, configFileName), path)
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, sheet.DefaultMaxMessages, cfg.LogLimit)
	assert.Equal(t, ".", cfg.StartLeft)
	assert.Equal(t, "..", cfg.StartRight)
	assert.Equal(t, defaultOpenCommand(), cfg.OpenCommand)
}

func TestLoadUIConfigFile(t *testing.T) {
	dir := t.TempDir()
	data := "theme: dark\nlog_limit: 50\nstart_left: /srv\nbindings:\n  x: quit\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(data), 0o644))

	cfg, _, err := loadUIConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 50, cfg.LogLimit)
	assert.Equal(t, "/srv", cfg.StartLeft)
	assert.Equal(t, "..", cfg.StartRight)
	assert.Equal(t, map[string]string{"x": "quit"}, cfg.Bindings)
}

func TestLoadUIConfigInvalidFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("theme: [\n"), 0o644))

	cfg, _, err := loadUIConfig(dir)
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, sheet.DefaultMaxMessages, cfg.LogLimit)
}

func TestSaveUIConfigRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, configFileName)
	cfg := &uiConfig{Theme: "light", OpenCommand: "less", Bindings: map[string]string{"q": "none"}}
	require.NoError(t, saveUIConfig(cfg, path))

	loaded, _, err := loadUIConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.Theme)
	assert.Equal(t, "less", loaded.OpenCommand)
	assert.Equal(t, "none", loaded.Bindings["q"])
}
