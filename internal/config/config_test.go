package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0, cfg.Threads)
	assert.Equal(t, 60, cfg.StatsInterval)
	assert.Empty(t, cfg.SessionDir)
	assert.Empty(t, cfg.OfficeTool)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brutefile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: 8\nstats_interval: 5\noffice_tool: /opt/bin/msoffcrypto-tool\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Threads)
	assert.Equal(t, 5, cfg.StatsInterval)
	assert.Equal(t, "/opt/bin/msoffcrypto-tool", cfg.OfficeTool)
	// untouched keys keep their defaults
	assert.Empty(t, cfg.SessionDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsNegativeThreads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brutefile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: -2\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brutefile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threads: [not an int\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
