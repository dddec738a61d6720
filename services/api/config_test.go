// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for server configuration loading

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":5000", cfg.Addr())
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hbnb.yaml")
	raw := "host: 127.0.0.1\nport: \"8080\"\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
	t.Setenv("HBNB_CONFIG", path)

	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hbnb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"8080\"\n"), 0o644))
	t.Setenv("HBNB_CONFIG", path)
	t.Setenv("HBNB_PORT", "9000")
	t.Setenv("HBNB_LOG_LEVEL", "warn")

	cfg, err := loadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_MissingFileErrors(t *testing.T) {
	t.Setenv("HBNB_CONFIG", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	_, err := loadConfig()

	assert.Error(t, err)
}

func TestLoadConfig_MalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hbnb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o644))
	t.Setenv("HBNB_CONFIG", path)

	_, err := loadConfig()

	assert.Error(t, err)
}
