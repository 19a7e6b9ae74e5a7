package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnvReadsYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  serviceName: storefront-test
  log:
    level: debug
api:
  baseUrl: http://localhost:9999/api
  timeout: 3s
state:
  dir: /tmp/storefront-test
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "storefront-test", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, "http://localhost:9999/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/tmp/storefront-test", cfg.State.Dir)
}

func TestLoadWithEnvMissingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, cfg.API.BaseURL)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
api:
  baseUrl: http://from-file:5000/api
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	t.Setenv("API_BASEURL", "http://from-env:5000/api")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:5000/api", cfg.API.BaseURL)
}
