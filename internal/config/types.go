package config

import "time"

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource

	userFile    string
	projectFile string
}

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Default values.
const (
	DefaultDataDir       = "~/.ticklist"
	DefaultStore         = StoreFile
	DefaultNotifySeconds = 3
	DefaultDateFormat    = "1/2/2006"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
)

// Config holds the full configuration for ticklist.
type Config struct {
	// Paths
	DataDir   string `toml:"data_dir"`
	StorePath string `toml:"store_path"` // Derived from data_dir when empty
	LogDir    string `toml:"log_dir"`    // Derived from data_dir when empty

	// Persistence backend: "file" or "sqlite"
	Store string `toml:"store"`

	// View behavior
	NotifySeconds int    `toml:"notify_seconds"`
	DateFormat    string `toml:"date_format"` // Go time layout for task creation dates
	DarkMode      bool   `toml:"dark_mode"`   // Used only when no theme has been persisted yet

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Working directory (computed)
	WorkDir string `toml:"-"`
}

// NotifyDelay returns how long a notification stays on screen.
func (c *Config) NotifyDelay() time.Duration {
	if c.NotifySeconds <= 0 {
		return DefaultNotifySeconds * time.Second
	}
	return time.Duration(c.NotifySeconds) * time.Second
}
