package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, k := range []string{"GEMINI_API_KEY", "API_KEY", "STUDYTIME_INSIGHT_API_KEY", "STUDYTIME_LOG_LEVEL", "STUDYTIME_DB_PATH"} {
		t.Setenv(k, "")
	}
	return home
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	want := filepath.Join(home, ".config", "studytime", "studytime.yml")
	assert.Equal(t, want, cfg.File)
	assert.FileExists(t, want)

	assert.Equal(t, filepath.Join(home, ".studytime"), cfg.DataDir)
	assert.Equal(t, filepath.Join(home, ".studytime", "studytime.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(home, ".studytime", "studytime.log"), cfg.LogFile)
	assert.Equal(t, "studytime", cfg.Namespace)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Language)
	assert.True(t, cfg.NotificationsEnabled)
	assert.Equal(t, "gemini-2.5-flash", cfg.Insight.Model)
	assert.Equal(t, 30*time.Second, cfg.Insight.Timeout)
	assert.Equal(t, "127.0.0.1:8080", cfg.APIAddr)
	assert.Empty(t, cfg.Insight.APIKey)
}

func TestLoad_ReadsFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "custom.yml")
	content := `data_dir: /tmp/st-data
language: fr
notifications:
  enabled: false
insight:
  timeout: 5s
log:
  level: debug
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/st-data", cfg.DataDir)
	assert.Equal(t, filepath.Join("/tmp/st-data", "studytime.db"), cfg.DBPath)
	assert.Equal(t, "fr", cfg.Language)
	assert.False(t, cfg.NotificationsEnabled)
	assert.Equal(t, 5*time.Second, cfg.Insight.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("STUDYTIME_LOG_LEVEL", "warn")
	t.Setenv("STUDYTIME_DB_PATH", "/tmp/other.db")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, "secret", cfg.Insight.APIKey)

	written, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.NotContains(t, string(written), "secret")
}

func TestLoad_APIKeyFallback(t *testing.T) {
	isolate(t)
	t.Setenv("API_KEY", "fallback")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "fallback", cfg.Insight.APIKey)
}

func TestLoad_InvalidFile(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(file, []byte("language: [unterminated"), 0o644))

	_, err := Load(file)
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home := isolate(t)
	assert.Equal(t, filepath.Join(home, "data"), expandHome("~/data"))
	assert.Equal(t, "/abs", expandHome("/abs"))
}
