package config

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// EditorConfig provides type-safe access to editor settings.
type EditorConfig struct {
	// LineNumbers shows the line-number gutter.
	LineNumbers bool

	// LineNumberMode is "absolute" or "relative".
	LineNumberMode string

	// SaveKey names the save-and-exit key, e.g. "F1" or "Ctrl+S".
	SaveKey string
}

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is the minimum level logged: debug, info, warn or error.
	Level string

	// File is the log file path. Empty discards log output.
	File string
}

// Editor returns type-safe access to editor settings.
func (c *Config) Editor() EditorConfig {
	return EditorConfig{
		LineNumbers:    c.getBoolOr("editor.lineNumbers", false),
		LineNumberMode: c.getStringOr("editor.lineNumberMode", "absolute"),
		SaveKey:        c.getStringOr("editor.saveKey", "F1"),
	}
}

// Logging returns type-safe access to logging settings.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.getStringOr("logging.level", "info"),
		File:  c.getStringOr("logging.file", ""),
	}
}
