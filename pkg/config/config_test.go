package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JOBFLOW_MODEL", "")
	t.Setenv("JOBFLOW_BASE_URL", "")
	t.Setenv("JOBFLOW_DATA_DIR", "")
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "model: gemini-2.5-pro\nbase_url: http://localhost:9999/v1\ndata_dir: /tmp/jobflow-data\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, "http://localhost:9999/v1", cfg.BaseURL)
	assert.Equal(t, "/tmp/jobflow-data", cfg.DataDir)
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err, "a missing config file means defaults")
	assert.Empty(t, cfg.Model)
	assert.Empty(t, cfg.BaseURL)
	assert.Empty(t, cfg.DataDir)
}

func TestLoadInvalidFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: from-file\ndata_dir: /from/file\n"), 0o644))

	t.Setenv("JOBFLOW_MODEL", "from-env")
	t.Setenv("JOBFLOW_BASE_URL", "http://env:1234")
	t.Setenv("JOBFLOW_DATA_DIR", "")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Model, "environment wins over the file")
	assert.Equal(t, "http://env:1234", cfg.BaseURL)
	assert.Equal(t, "/from/file", cfg.DataDir, "empty env values do not override")
}
