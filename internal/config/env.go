package config

import (
	"fmt"
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	track := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("TICKLIST_DATA_DIR"); v != "" {
		cfg.DataDir = v
		track("data_dir")
	}
	if v := os.Getenv("TICKLIST_STORE"); v != "" {
		cfg.Store = strings.ToLower(strings.TrimSpace(v))
		track("store")
	}
	if v := os.Getenv("TICKLIST_STORE_PATH"); v != "" {
		cfg.StorePath = v
		track("store_path")
	}
	if v := os.Getenv("TICKLIST_LOG_DIR"); v != "" {
		cfg.LogDir = v
		track("log_dir")
	}
	if v := os.Getenv("TICKLIST_NOTIFY_SECONDS"); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err == nil {
			cfg.NotifySeconds = i
			track("notify_seconds")
		}
	}
	if v := os.Getenv("TICKLIST_DATE_FORMAT"); v != "" {
		cfg.DateFormat = v
		track("date_format")
	}
	if v := os.Getenv("TICKLIST_DARK_MODE"); v != "" {
		cfg.DarkMode = boolFromString(v)
		track("dark_mode")
	}

	// Logging configuration
	if v := os.Getenv("TICKLIST_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		track("log_level")
	}
	if v := os.Getenv("TICKLIST_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		track("log_format")
	}
	if v := os.Getenv("TICKLIST_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		track("log_timestamps")
	}
	if v := os.Getenv("TICKLIST_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		track("log_caller")
	}
}

func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
