package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(BaseURLEnv, "")
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	withHome(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5001", cfg.BaseURL)
	assert.Equal(t, 100, cfg.ListLimit)

	d, err := cfg.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, d)
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	withHome(t)

	cfg := Default()
	require.NoError(t, cfg.Save())

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	withHome(t)

	original := Config{
		BaseURL:   "https://ans.example.com",
		ListLimit: 25,
		Timeout:   "3s",
		LogLevel:  "debug",
		LogFile:   "/tmp/operadoras-test.log",
	}
	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	withHome(t)
	require.NoError(t, os.MkdirAll(Dir(), 0700))
	require.NoError(t, os.WriteFile(Path(), []byte("list_limit: 7\n"), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.ListLimit)
	assert.Equal(t, "http://localhost:5001", cfg.BaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverridesBaseURL(t *testing.T) {
	withHome(t)
	t.Setenv(BaseURLEnv, "http://api.internal:8080")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://api.internal:8080", cfg.BaseURL)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	withHome(t)
	require.NoError(t, os.MkdirAll(Dir(), 0700))
	require.NoError(t, os.WriteFile(Path(), []byte("base_url: [unclosed\n"), 0600))

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.BaseURL = "localhost:5001"
	assert.ErrorContains(t, cfg.Validate(), "http://")

	cfg = Default()
	cfg.Timeout = "soon"
	assert.ErrorContains(t, cfg.Validate(), "invalid timeout")

	cfg = Default()
	cfg.Timeout = "-1s"
	assert.ErrorContains(t, cfg.Validate(), "positive")

	cfg = Default()
	cfg.ListLimit = -1
	assert.ErrorContains(t, cfg.Validate(), "list_limit")
}
