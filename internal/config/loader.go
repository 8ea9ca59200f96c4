package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "POLYDRAW_"

// Load resolves configuration from defaults, the TOML file at path, and
// environment overrides, in that order. A missing file is not an error;
// an unreadable or malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges the TOML file at path into cfg.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnv merges POLYDRAW_* environment variables into cfg.
// Empty string values are treated as valid values, not as unset.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Logging.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_PATH"); ok {
		cfg.Logging.Path = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "THEME"); ok {
		cfg.UI.Theme = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SESSION_PATH"); ok {
		cfg.Session.Path = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "KEYMAP_PATH"); ok {
		cfg.Input.KeymapPath = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "MAX_UNDO"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.History.MaxEntries = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "AUTOSAVE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Session.Autosave = b
		}
	}
}
