package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with STOREFRONT_* variables. If envFile exists it
// is loaded first; variables already present in the process environment win
// over the file.
func parseEnv(cfg *Config, envFile string) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	if v := os.Getenv("STOREFRONT_API_BASE"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("STOREFRONT_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("STOREFRONT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
