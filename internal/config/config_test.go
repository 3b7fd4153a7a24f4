package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DMAICBOARD_CONFIG", "DMAICBOARD_SOURCE", "DMAICBOARD_TABLE",
		"DMAICBOARD_FORMAT", "DMAICBOARD_HTTP_TIMEOUT_MS", "DMAICBOARD_LOG_CALLS",
	} {
		t.Setenv(k, "")
	}
}

func noDotEnv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(noDotEnv(t))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout())
}

func TestLoadConfig_YAMLThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "dmaicboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"source: https://example.com/Actividades.csv\nformat: json\nhttp_timeout_ms: 2000\nlog_calls: true\n"), 0644))

	t.Setenv("DMAICBOARD_CONFIG", path)
	t.Setenv("DMAICBOARD_FORMAT", "yaml")

	cfg, err := LoadConfig(noDotEnv(t))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/Actividades.csv", cfg.Source)
	assert.Equal(t, "Actividades", cfg.Table, "unset YAML field keeps default")
	assert.Equal(t, "yaml", cfg.Format, "env overrides YAML")
	assert.Equal(t, 2000, cfg.HTTPTimeoutMs)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "dmaicboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_timeout_ms: -5\n"), 0644))
	t.Setenv("DMAICBOARD_CONFIG", path)
	t.Setenv("DMAICBOARD_HTTP_TIMEOUT_MS", "soon")

	cfg, err := LoadConfig(noDotEnv(t))
	require.NoError(t, err)
	assert.Equal(t, 15000, cfg.HTTPTimeoutMs)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: [unterminated\n"), 0644))
	t.Setenv("DMAICBOARD_CONFIG", path)

	_, err := LoadConfig(noDotEnv(t))
	assert.Error(t, err)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("DMAICBOARD_TABLE")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DMAICBOARD_TABLE=Tareas\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("DMAICBOARD_TABLE") })

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "Tareas", cfg.Table)
}
