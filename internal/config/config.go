package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Errors returned by config operations.
var (
	// ErrInvalidValue indicates a setting is outside its valid range.
	ErrInvalidValue = errors.New("invalid config value")
)

// Config is the resolved application configuration.
type Config struct {
	History HistoryConfig `toml:"history"`
	UI      UIConfig      `toml:"ui"`
	Input   InputConfig   `toml:"input"`
	Session SessionConfig `toml:"session"`
	Logging LoggingConfig `toml:"logging"`
}

// HistoryConfig controls undo/redo behavior.
type HistoryConfig struct {
	// MaxEntries bounds the undo stack.
	MaxEntries int `toml:"max_entries"`
}

// UIConfig controls rendering.
type UIConfig struct {
	// Theme selects the color theme ("dark" or "light").
	Theme string `toml:"theme"`

	// StatusLine toggles the status line at the bottom of the screen.
	StatusLine bool `toml:"status_line"`
}

// InputConfig controls input interpretation.
type InputConfig struct {
	// DoubleClickMS is the maximum interval between clicks counted as a
	// double click, in milliseconds.
	DoubleClickMS int `toml:"double_click_ms"`

	// KeymapPath points to an optional YAML keymap override file.
	KeymapPath string `toml:"keymap_path"`
}

// SessionConfig controls drawing persistence.
type SessionConfig struct {
	// Autosave saves the drawing to Path on quit.
	Autosave bool `toml:"autosave"`

	// Path is the drawing file used by save/load and autosave.
	Path string `toml:"path"`
}

// LoggingConfig controls the application log.
type LoggingConfig struct {
	// Level is the minimum level written ("debug", "info", "warn", "error").
	Level string `toml:"level"`

	// Path is the log file. Empty discards log output (the terminal owns
	// the screen).
	Path string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		History: HistoryConfig{
			MaxEntries: 1000,
		},
		UI: UIConfig{
			Theme:      "dark",
			StatusLine: true,
		},
		Input: InputConfig{
			DoubleClickMS: 400,
		},
		Session: SessionConfig{
			Autosave: false,
			Path:     defaultSessionPath(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DoubleClickInterval returns the double-click window as a duration.
func (c *Config) DoubleClickInterval() time.Duration {
	return time.Duration(c.Input.DoubleClickMS) * time.Millisecond
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.History.MaxEntries <= 0 {
		return fmt.Errorf("%w: history.max_entries must be positive, got %d",
			ErrInvalidValue, c.History.MaxEntries)
	}
	if c.Input.DoubleClickMS <= 0 {
		return fmt.Errorf("%w: input.double_click_ms must be positive, got %d",
			ErrInvalidValue, c.Input.DoubleClickMS)
	}
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("%w: ui.theme must be dark or light, got %q",
			ErrInvalidValue, c.UI.Theme)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level must be debug, info, warn or error, got %q",
			ErrInvalidValue, c.Logging.Level)
	}
	return nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "polydraw", "config.toml")
}

// defaultSessionPath returns the default drawing file location.
func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "drawing.pdrw"
	}
	return filepath.Join(dir, "polydraw", "drawing.pdrw")
}
