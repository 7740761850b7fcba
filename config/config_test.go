package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load("", nopLogger{})

	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
	assert.Equal(t, DefaultMaxWorkers, cfg.MaxWorkers)
	assert.Equal(t, 0, cfg.RateLimitDelay)
	assert.False(t, cfg.RenderJS)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.CSVFilePath)
}

func TestLoad_SettingsFileOverridesDefaults(t *testing.T) {
	path := writeSettings(t, `{
		"userAgent": "test-agent",
		"maxRetries": 5,
		"rateLimitDelayMs": 250,
		"renderJs": true
	}`)

	cfg := Load(path, nopLogger{})

	assert.Equal(t, "test-agent", cfg.UserAgent)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 250, cfg.RateLimitDelay)
	assert.True(t, cfg.RenderJS)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultMaxWorkers, cfg.MaxWorkers)
}

func TestLoad_MalformedSettingsFallBackWholesale(t *testing.T) {
	path := writeSettings(t, `{"userAgent": "partial"`)

	cfg := Load(path, nopLogger{})

	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultMaxRetries, cfg.MaxRetries)
}

func TestLoad_MissingSettingsFileUsesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.json"), nopLogger{})
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
}

func TestLoad_EnvOverridesSettingsFile(t *testing.T) {
	path := writeSettings(t, `{"maxWorkers": 8, "userAgent": "from-file"}`)

	t.Setenv("MAX_WORKERS", "2")
	t.Setenv("USER_AGENT", "from-env")
	t.Setenv("RENDER_JS", "true")

	cfg := Load(path, nopLogger{})

	assert.Equal(t, 2, cfg.MaxWorkers)
	assert.Equal(t, "from-env", cfg.UserAgent)
	assert.True(t, cfg.RenderJS)
}

func TestLoad_SanityFloors(t *testing.T) {
	path := writeSettings(t, `{"maxWorkers": 0, "maxRetries": -3}`)

	cfg := Load(path, nopLogger{})

	assert.Equal(t, DefaultMaxWorkers, cfg.MaxWorkers)
	assert.Equal(t, 0, cfg.MaxRetries)
}
