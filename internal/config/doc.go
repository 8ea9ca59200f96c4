// Package config loads and watches Polydraw configuration.
//
// Configuration is resolved in three layers, later layers overriding
// earlier ones:
//
//  1. Built-in defaults
//  2. TOML file (default ~/.config/polydraw/config.toml)
//  3. POLYDRAW_* environment variables
//
// A missing config file is not an error; defaults apply.
//
// The Watcher provides live reload: it monitors the config file with
// fsnotify, debounces bursts of write events, and invokes a callback with
// the re-parsed configuration.
package config
