package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Simulation.Companies)
	assert.Equal(t, 0, cfg.Simulation.Humans)
	assert.Equal(t, 8, cfg.Simulation.Quarters)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, "topazsim.db", cfg.Database.SQLitePath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topazsim.yaml")
	data := []byte("simulation:\n  companies: 6\n  quarters: 12\n  seed: 7\ndatabase:\n  sqlite_path: /tmp/run.db\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Simulation.Companies)
	assert.Equal(t, 12, cfg.Simulation.Quarters)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, "/tmp/run.db", cfg.Database.SQLitePath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topazsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation:\n  companies: 6\n"), 0o644))

	t.Setenv("TOPAZSIM_COMPANIES", "2")
	t.Setenv("TOPAZSIM_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Simulation.Companies)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topazsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulation: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
