// Package config provides configuration loading and validation for the scraper.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Defaults for optional settings.
const (
	DefaultPort               = 8080
	DefaultFetchTimeout       = 10 * time.Second
	DefaultGeocodeTimeout     = 5 * time.Second
	DefaultGeocodeConcurrency = 1
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
)

// Duration is a time.Duration that reads from JSON as a Go duration string ("10s").
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"10s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Config represents the scraper configuration. It can be loaded from a JSON
// file; environment variables override file values.
type Config struct {
	// Secrets
	APISecret      string `json:"api_secret,omitempty"`       // Shared secret for the Authorization header
	OpenCageAPIKey string `json:"opencage_api_key,omitempty"` // Reverse geocoding key
	GeminiAPIKey   string `json:"gemini_api_key,omitempty"`   // Enables the Gemini entity tagger
	GeminiModel    string `json:"gemini_model,omitempty"`

	// Server
	Port int `json:"port,omitempty"`

	// Behavior
	FetchTimeout       Duration `json:"fetch_timeout,omitempty"`
	GeocodeTimeout     Duration `json:"geocode_timeout,omitempty"`
	GeocodeConcurrency int      `json:"geocode_concurrency,omitempty"`
	UseBrowser         bool     `json:"use_browser,omitempty"`   // Render thin pages with a headless browser
	KeywordsPath       string   `json:"keywords_path,omitempty"` // YAML keyword table; empty uses the built-in table

	// Logging
	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"` // text or json
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:               DefaultPort,
		FetchTimeout:       Duration(DefaultFetchTimeout),
		GeocodeTimeout:     Duration(DefaultGeocodeTimeout),
		GeocodeConcurrency: DefaultGeocodeConcurrency,
		LogLevel:           DefaultLogLevel,
		LogFormat:          DefaultLogFormat,
	}
}

// Load builds the effective configuration: defaults, then the optional JSON
// file at path, then environment variables.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	cfg.ApplyEnv()
	return &cfg, nil
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields with any environment variables that are set.
func (c *Config) ApplyEnv() {
	c.APISecret = EnvString("SCRAPER_API_SECRET", c.APISecret)
	c.OpenCageAPIKey = EnvString("OPENCAGE_API_KEY", c.OpenCageAPIKey)
	c.GeminiAPIKey = EnvString("GEMINI_API_KEY", c.GeminiAPIKey)
	c.GeminiModel = EnvString("GEMINI_MODEL", c.GeminiModel)
	c.Port = EnvInt("PORT", c.Port)
	c.FetchTimeout = Duration(EnvDuration("FETCH_TIMEOUT", time.Duration(c.FetchTimeout)))
	c.GeocodeTimeout = Duration(EnvDuration("GEOCODE_TIMEOUT", time.Duration(c.GeocodeTimeout)))
	c.GeocodeConcurrency = EnvInt("GEOCODE_CONCURRENCY", c.GeocodeConcurrency)
	c.UseBrowser = EnvBool("USE_BROWSER", c.UseBrowser)
	c.KeywordsPath = EnvString("KEYWORDS_PATH", c.KeywordsPath)
	c.LogLevel = EnvString("LOG_LEVEL", c.LogLevel)
	c.LogFormat = EnvString("LOG_FORMAT", c.LogFormat)
}

// Validate checks that the configuration has valid values. The secret is
// checked separately by ValidateServer since the CLI scrape command needs none.
func (c *Config) Validate() error {
	if c.OpenCageAPIKey == "" {
		return fmt.Errorf("config error: OPENCAGE_API_KEY is required")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("config error: 'fetch_timeout' must be positive")
	}
	if c.GeocodeTimeout <= 0 {
		return fmt.Errorf("config error: 'geocode_timeout' must be positive")
	}
	if c.GeocodeConcurrency < 1 {
		return fmt.Errorf("config error: 'geocode_concurrency' must be at least 1")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: invalid 'log_level': %w", err)
	}
	if format := strings.ToLower(c.LogFormat); format != "text" && format != "json" {
		return fmt.Errorf("config error: 'log_format' must be text or json, got %q", c.LogFormat)
	}

	// Validate file paths exist (if specified)
	if c.KeywordsPath != "" {
		if _, err := os.Stat(c.KeywordsPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: keywords file not found: %s", c.KeywordsPath)
		}
	}

	return nil
}

// ValidateServer runs Validate and additionally requires the API secret.
func (c *Config) ValidateServer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.APISecret == "" {
		return fmt.Errorf("config error: SCRAPER_API_SECRET is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APISecret == "" {
		result.APISecret = defaults.APISecret
	}
	if result.OpenCageAPIKey == "" {
		result.OpenCageAPIKey = defaults.OpenCageAPIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.KeywordsPath == "" {
		result.KeywordsPath = defaults.KeywordsPath
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = defaults.FetchTimeout
	}
	if result.GeocodeTimeout == 0 {
		result.GeocodeTimeout = defaults.GeocodeTimeout
	}
	if result.GeocodeConcurrency == 0 {
		result.GeocodeConcurrency = defaults.GeocodeConcurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (environment variables win for bools)

	return result
}
