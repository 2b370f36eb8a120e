// Package config provides layered configuration for the line editor.
//
// Settings are merged from lowest to highest priority:
//
//  1. Built-in defaults
//  2. The TOML config file ($XDG_CONFIG_HOME/lineedit/config.toml by default)
//  3. LINEEDIT_* environment variables
//  4. Values set explicitly with Set, typically from command-line flags
//
// Settings are addressed by dot-separated paths such as "editor.saveKey".
// Section accessors (Editor, Logging) return typed snapshots; a value of
// the wrong type falls back to the default and is recorded in
// ConfigErrors.
//
// # Settings
//
//	[editor]
//	lineNumbers = false      # show the line-number gutter
//	lineNumberMode = "absolute"  # or "relative"
//	saveKey = "F1"           # save-and-exit key, e.g. "Ctrl+S"
//
//	[logging]
//	level = "info"           # debug, info, warn, error
//	file = ""                # log file; empty discards logs
package config
