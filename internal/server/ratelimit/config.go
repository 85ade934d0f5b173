package ratelimit

import (
	"strings"
	"time"

	"github.com/jonathan/company-scraper/internal/config"
)

// Defaults for the per-client scrape budget.
const (
	DefaultLimit           = 60
	DefaultBurst           = 10
	DefaultWindow          = time.Minute
	DefaultCleanupInterval = 5 * time.Minute
	DefaultIdleTTL         = time.Hour
)

// Config holds rate limiting configuration. Every limited route gets its own
// bucket per client with the same Limit/Window/Burst budget.
type Config struct {
	Enabled         bool
	Limit           int           // requests per Window
	Window          time.Duration // refill period for Limit tokens
	Burst           int           // bucket capacity; Limit when 0
	CleanupInterval time.Duration // how often idle buckets are swept; 0 disables sweeping
	IdleTTL         time.Duration // buckets unused this long are dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
}

// DefaultConfig returns an enabled limiter of DefaultLimit requests a minute.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		Limit:           DefaultLimit,
		Window:          DefaultWindow,
		Burst:           DefaultBurst,
		CleanupInterval: DefaultCleanupInterval,
		IdleTTL:         DefaultIdleTTL,
		Whitelist:       map[string]bool{},
		Blacklist:       map[string]bool{},
	}
}

// LoadConfig reads RATE_LIMIT_* environment variables over DefaultConfig.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = config.EnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	cfg.Limit = config.EnvInt("RATE_LIMIT_SCRAPE_LIMIT", cfg.Limit)
	cfg.Burst = config.EnvInt("RATE_LIMIT_SCRAPE_BURST", cfg.Burst)
	cfg.Window = config.EnvDuration("RATE_LIMIT_WINDOW", cfg.Window)
	cfg.CleanupInterval = config.EnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	cfg.IdleTTL = config.EnvDuration("RATE_LIMIT_IDLE_TTL", cfg.IdleTTL)
	cfg.Whitelist = parseIPList(config.EnvString("RATE_LIMIT_WHITELIST", ""))
	cfg.Blacklist = parseIPList(config.EnvString("RATE_LIMIT_BLACKLIST", ""))
	return cfg
}

// parseIPList parses a comma-separated list of IP addresses into a set.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
