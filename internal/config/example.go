package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# ticklist configuration file
# Values can be overridden by TICKLIST_* environment variables or CLI flags

# Data directory (supports ~ expansion and %VAR% on Windows)
data_dir = "~/.ticklist"

# Persistence backend: "file" (JSON) or "sqlite"
store = "file"

# Store location (default: store.json or store.db inside data_dir)
# store_path = "~/.ticklist/store.json"

# Seconds a notification stays on screen
notify_seconds = 3

# Go time layout used for task creation dates
date_format = "1/2/2006"

# Theme used until a theme has been saved
dark_mode = false

# Logging (run logs go to log_dir, default: data_dir/logs)
# log_dir = "~/.ticklist/logs"
log_level = "info"
log_format = "text"
log_timestamps = true
log_caller = false
`
}
