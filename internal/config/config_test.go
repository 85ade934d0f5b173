package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"SCRAPER_API_SECRET", "OPENCAGE_API_KEY", "GEMINI_API_KEY", "GEMINI_MODEL", "PORT",
	"FETCH_TIMEOUT", "GEOCODE_TIMEOUT", "GEOCODE_CONCURRENCY", "USE_BROWSER",
	"KEYWORDS_PATH", "LOG_LEVEL", "LOG_FORMAT",
}

// clearEnv blanks every variable Load reads; empty values count as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func validConfig() *Config {
	cfg := Defaults()
	cfg.OpenCageAPIKey = "oc-key"
	cfg.APISecret = "s3cret"
	return &cfg
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"api_secret": "s3cret",
		"opencage_api_key": "oc-key",
		"fetch_timeout": "15s",
		"geocode_concurrency": 4,
		"use_browser": true,
		"log_format": "json"
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "s3cret", cfg.APISecret)
	assert.Equal(t, "oc-key", cfg.OpenCageAPIKey)
	assert.Equal(t, Duration(15*time.Second), cfg.FetchTimeout)
	assert.Equal(t, 4, cfg.GeocodeConcurrency)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `{"fetch_timeout": 10}`))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `{"fetch_timeout": "ten seconds"}`))
	assert.Error(t, err)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, Duration(DefaultFetchTimeout), cfg.FetchTimeout)
	assert.Equal(t, Duration(DefaultGeocodeTimeout), cfg.GeocodeTimeout)
	assert.Equal(t, DefaultGeocodeConcurrency, cfg.GeocodeConcurrency)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.UseBrowser)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"api_secret": "from-file", "opencage_api_key": "file-key", "geocode_timeout": "2s"}`)
	t.Setenv("SCRAPER_API_SECRET", "from-env")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("USE_BROWSER", "true")
	t.Setenv("GEOCODE_CONCURRENCY", "not-a-number")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.APISecret)
	assert.Equal(t, "file-key", cfg.OpenCageAPIKey)
	assert.Equal(t, Duration(3*time.Second), cfg.FetchTimeout)
	assert.Equal(t, Duration(2*time.Second), cfg.GeocodeTimeout)
	assert.Equal(t, DefaultGeocodeConcurrency, cfg.GeocodeConcurrency)
	assert.True(t, cfg.UseBrowser)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)
	_, err := Load("/nonexistent/config.json")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing geocoder key", mutate: func(c *Config) { c.OpenCageAPIKey = "" }, wantErr: "OPENCAGE_API_KEY"},
		{name: "zero fetch timeout", mutate: func(c *Config) { c.FetchTimeout = 0 }, wantErr: "fetch_timeout"},
		{name: "negative geocode timeout", mutate: func(c *Config) { c.GeocodeTimeout = Duration(-time.Second) }, wantErr: "geocode_timeout"},
		{name: "zero concurrency", mutate: func(c *Config) { c.GeocodeConcurrency = 0 }, wantErr: "geocode_concurrency"},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log_level"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "log_format"},
		{name: "uppercase log format", mutate: func(c *Config) { c.LogFormat = "JSON" }},
		{name: "missing keywords file", mutate: func(c *Config) { c.KeywordsPath = "/nonexistent/keywords.yaml" }, wantErr: "keywords file not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateServer(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.ValidateServer())

	cfg.APISecret = ""
	err := cfg.ValidateServer()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCRAPER_API_SECRET")

	cfg = validConfig()
	cfg.Port = 70000
	assert.Error(t, cfg.ValidateServer())

	cfg = validConfig()
	cfg.OpenCageAPIKey = ""
	assert.ErrorContains(t, cfg.ValidateServer(), "OPENCAGE_API_KEY")
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Defaults()
	defaults.GeminiModel = "gemini-2.5-flash-lite"

	partial := Config{
		APISecret:          "s3cret",
		GeocodeConcurrency: 3,
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "s3cret", merged.APISecret)
	assert.Equal(t, 3, merged.GeocodeConcurrency)

	// Default values should fill in empty fields
	assert.Equal(t, "gemini-2.5-flash-lite", merged.GeminiModel)
	assert.Equal(t, Duration(DefaultFetchTimeout), merged.FetchTimeout)
	assert.Equal(t, DefaultLogLevel, merged.LogLevel)
	assert.Equal(t, DefaultPort, merged.Port)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(1500 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.5s"`, string(data))
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("TEST_ENV_INT", "42")
	t.Setenv("TEST_ENV_BOOL", "yes")
	t.Setenv("TEST_ENV_DURATION", "250ms")
	t.Setenv("TEST_ENV_EMPTY", "")

	assert.Equal(t, 42, EnvInt("TEST_ENV_INT", 1))
	assert.True(t, EnvBool("TEST_ENV_MISSING", true))
	assert.False(t, EnvBool("TEST_ENV_BOOL", false), "unparseable bools keep the default")
	assert.Equal(t, 250*time.Millisecond, EnvDuration("TEST_ENV_DURATION", time.Second))
	assert.Equal(t, "fallback", EnvString("TEST_ENV_EMPTY", "fallback"))
}
