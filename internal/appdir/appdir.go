// Package appdir provides constants and utilities for the ticklist data directory layout.
package appdir

import "path/filepath"

const (
	// Dir is the name of the per-user state directory.
	Dir = ".ticklist"

	// ConfigFile is the config file name (inside Dir or the project root).
	ConfigFile = "ticklist.toml"

	// FileStore is the JSON key-value store file name.
	FileStore = "store.json"

	// SQLiteStore is the SQLite key-value store file name.
	SQLiteStore = "store.db"

	// LogsDir is the run log directory name.
	LogsDir = "logs"
)

// StorePath returns the default store path for a store kind inside dataDir.
// Unknown kinds fall back to the JSON file store.
func StorePath(dataDir, kind string) string {
	if kind == "sqlite" {
		return joinPath(dataDir, SQLiteStore)
	}
	return joinPath(dataDir, FileStore)
}

// LogPath returns the run log directory inside dataDir.
func LogPath(dataDir string) string {
	return joinPath(dataDir, LogsDir)
}

// ConfigPath returns the config file path inside dataDir.
func ConfigPath(dataDir string) string {
	return joinPath(dataDir, ConfigFile)
}

func joinPath(dataDir, file string) string {
	if dataDir == "." || dataDir == "" {
		return Dir + string(filepath.Separator) + file
	}
	return filepath.Join(dataDir, file)
}
