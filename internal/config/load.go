package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/ticklist/internal/appdir"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.ticklist/ticklist.toml or OS-specific config dir)
// 3. Project config file (ticklist.toml or .ticklist.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := load(fs, args, nil)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
// Returns ConfigWithSources containing the config and a map of field names to their sources.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}
	return load(fs, args, sources)
}

func load(fs *flag.FlagSet, args []string, sources map[string]ConfigSource) (*ConfigWithSources, error) {
	cfg := &Config{}
	cws := &ConfigWithSources{Config: cfg, Sources: sources}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
		cws.userFile = userConfigFile
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
		cws.projectFile = projectConfigFile
	}

	// 4. Override from environment
	loadFromEnv(cfg, sources)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cws, nil
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"data_dir",
		"store",
		"store_path",
		"log_dir",
		"notify_seconds",
		"date_format",
		"dark_mode",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// loadConfigFile decodes TOML config from path on top of cfg.
// When sources is non-nil, every key present in the file is attributed to source.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if sources == nil {
		return nil
	}
	for _, field := range configFields() {
		if md.IsDefined(field) {
			sources[field] = source
		}
	}
	return nil
}

// finalizeConfig computes derived values and validates settings.
func finalizeConfig(cfg *Config) error {
	switch cfg.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("invalid store %q, must be one of: file, sqlite", cfg.Store)
	}
	if cfg.NotifySeconds <= 0 {
		return fmt.Errorf("notify_seconds must be positive, got %d", cfg.NotifySeconds)
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = DefaultDateFormat
	}

	if cfg.WorkDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.WorkDir = wd
	}

	cfg.DataDir = resolvePath(cfg.DataDir, cfg.WorkDir)
	if cfg.StorePath == "" {
		cfg.StorePath = appdir.StorePath(cfg.DataDir, cfg.Store)
	} else {
		cfg.StorePath = resolvePath(cfg.StorePath, cfg.WorkDir)
	}
	if cfg.LogDir == "" {
		cfg.LogDir = appdir.LogPath(cfg.DataDir)
	} else {
		cfg.LogDir = resolvePath(cfg.LogDir, cfg.WorkDir)
	}

	return nil
}

// ConfigFile returns the active config file path (project or user).
func (cws *ConfigWithSources) ConfigFile() string {
	if cws.projectFile != "" {
		return cws.projectFile
	}
	return cws.userFile
}
