package config

import (
	"flag"
)

// parseFlags defines and parses CLI flags.
// If sources is non-nil, it tracks the source of each explicitly set flag.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("ticklist", flag.ContinueOnError)
	}

	// Paths
	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Data directory")
	fs.StringVar(&cfg.StorePath, "store-path", cfg.StorePath, "Store file path (default: inside data dir)")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Log directory (default: inside data dir)")

	// Persistence
	fs.StringVar(&cfg.Store, "store", cfg.Store, "Store backend (file, sqlite)")

	// View
	fs.IntVar(&cfg.NotifySeconds, "notify-seconds", cfg.NotifySeconds, "Seconds a notification stays visible")
	fs.StringVar(&cfg.DateFormat, "date-format", cfg.DateFormat, "Go time layout for task dates")
	fs.BoolVar(&cfg.DarkMode, "dark", cfg.DarkMode, "Start in dark mode when no theme is saved")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources == nil {
		return nil
	}

	// Map flag names to source field names
	flagToSource := map[string]string{
		"data-dir":       "data_dir",
		"store-path":     "store_path",
		"log-dir":        "log_dir",
		"store":          "store",
		"notify-seconds": "notify_seconds",
		"date-format":    "date_format",
		"dark":           "dark_mode",
		"log-level":      "log_level",
		"log-format":     "log_format",
		"log-timestamps": "log_timestamps",
		"log-caller":     "log_caller",
	}
	fs.Visit(func(f *flag.Flag) {
		if fieldName, ok := flagToSource[f.Name]; ok {
			sources[fieldName] = SourceFlag
		}
	})

	return nil
}
