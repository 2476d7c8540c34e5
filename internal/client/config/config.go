package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the storefront CLI.
type Config struct {
	APIBaseURL          string
	DBPath              string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	// RateLimit is the sustained outbound request rate (requests/second).
	RateLimit float64
	RateBurst int
	LogLevel  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080"
	c.DBPath = "storefront.db"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
	c.RateLimit = 20
	c.RateBurst = 5
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, ".env")
	parseJson(cfg, os.Args[1:])
	parseFlags(cfg, os.Args[1:])
	return cfg
}
