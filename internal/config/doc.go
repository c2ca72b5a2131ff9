// Package config handles loading and parsing cityline configuration files.
//
// # Overview
//
// Cityline reads a small TOML file for runtime settings: the render tick
// interval and optional debug logging. The application works out-of-the-box
// with no configuration file at all. The color theme is a preference, not
// configuration; see the prefs package.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/cityline/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
// Example config.toml:
//
//	tick_ms = 100
//	log_file = "~/.local/share/cityline/cityline.log"
//	trace = false
//
// All fields are optional. Tilde expansion is performed automatically.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors. Missing
// config files are NOT an error - defaults are used instead.
package config
