package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.Response.MinDelay)
	assert.Equal(t, 3*time.Second, cfg.Response.MaxDelay)
	assert.Equal(t, 100, cfg.UI.WideBreakpoint)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("log_level: debug\nresponse:\n  min_delay: 10ms\n  max_delay: 20ms\nui:\n  wide_breakpoint: 120\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Millisecond, cfg.Response.MinDelay)
	assert.Equal(t, 20*time.Millisecond, cfg.Response.MaxDelay)
	assert.Equal(t, 120, cfg.UI.WideBreakpoint)
	// Unset keys keep their defaults.
	assert.Equal(t, 28, cfg.UI.SidebarWidth)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidDelayRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("response:\n  min_delay: 5s\n  max_delay: 1s\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
