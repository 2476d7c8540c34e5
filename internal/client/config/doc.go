// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment, optionally seeded from a .env file in the working
//     directory (see parseEnv).
//  3. Optional JSON file selected via -c or -config (see parseJson).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the storefront API
//	-d string   path of the local SQLite state file
//	-t int      per-request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-l string   log level: debug, info, warn, error
//
// Environment
//
//	STOREFRONT_API_BASE, STOREFRONT_DB, STOREFRONT_LOG_LEVEL
//
// # JSON schema
//
// Durations accept strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080",
//	  "db_path": "storefront.db",
//	  "request_timeout": "15s",
//	  "online_check_interval": "5s",
//	  "rate_limit": 20,
//	  "rate_burst": 5,
//	  "log_level": "info"
//	}
package config
