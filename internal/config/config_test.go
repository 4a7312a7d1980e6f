package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := Load(path)

	assert.Equal(t, Default(), cfg)
	_, err := os.Stat(path)
	assert.NoError(t, err, "defaults should be materialized on first run")
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	want := &Config{
		JournalLines: 25,
		UseSudo:      false,
		UnitType:     "timer",
		UISettings:   UISettings{ConfirmActions: false},
	}
	require.NoError(t, Save(want, path))

	got := Load(path)
	assert.Equal(t, want, got)
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("journal_lines = [broken"), 0644))

	cfg := Load(path)
	assert.Equal(t, Default(), cfg)
}

func TestLoadSanitizesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("journal_lines = -3\nunit_type = \"\"\n"), 0644))

	cfg := Load(path)
	assert.Equal(t, 10, cfg.JournalLines)
	assert.Equal(t, "service", cfg.UnitType)
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10, cfg.JournalLines)
	assert.True(t, cfg.UseSudo)
	assert.Equal(t, "service", cfg.UnitType)
	assert.True(t, cfg.UISettings.ConfirmActions)
}
