package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home string, body string) string {
	t.Helper()

	dir := filepath.Join(home, configDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(home, configDir, fileStorageDir), cfg.Storage.Path)
	assert.Equal(t, "accounts", cfg.Storage.Key)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, home, `
[storage]
backend = "sqlite"
key = "team-accounts"

[log]
verbose = true
`)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(home, configDir, sqliteStorageFile), cfg.Storage.Path)
	assert.Equal(t, "team-accounts", cfg.Storage.Key)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, path, cfg.ConfigFile)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "[storage]\nbackend = \"sqlite\"\n")
	t.Setenv("AK_STORAGE_BACKEND", "memory")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Empty(t, cfg.Storage.Path)
}

func TestLoadExplicitConfigFileAndRelativePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	explicit := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(explicit, []byte("[storage]\npath = \"./data/../kv\"\n"), 0o644))

	v := viper.New()
	v.Set(KeyConfigFile, explicit)

	cfg, err := Load(v)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "kv"), cfg.Storage.Path)
	assert.Equal(t, explicit, cfg.ConfigFile)
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "[storage\nbackend = ")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, "[storage]\nbackend = \"redis\"\n")

	_, err := Load(viper.New())
	require.ErrorIs(t, err, ErrUnsupportedBackend)
}
