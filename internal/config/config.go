package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/lineedit/internal/config/loader"
)

// Config provides access to the merged configuration.
type Config struct {
	data map[string]any

	// path is the config file that was read, if any.
	path string

	// configErrors stores errors encountered during configuration access.
	configErrors map[string]error
}

// Option configures loading.
type Option func(*options)

type options struct {
	path      string
	fs        loader.FileSystem
	envPrefix string
	skipEnv   bool
}

// WithPath sets the config file path. An empty path skips the file.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithFileSystem sets the file system the config file is read from.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutEnv disables the environment layer.
func WithoutEnv() Option {
	return func(o *options) {
		o.skipEnv = true
	}
}

// DefaultPath returns the default config file location, or "" if the
// user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lineedit", "config.toml")
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"lineNumbers":    false,
			"lineNumberMode": "absolute",
			"saveKey":        "F1",
		},
		"logging": map[string]any{
			"level": "info",
			"file":  "",
		},
	}
}

// New returns a configuration holding only the defaults.
func New() *Config {
	return &Config{data: Defaults()}
}

// Load merges defaults, the config file and the environment.
//
// A config file that cannot be read or parsed is skipped: Load still
// returns a usable Config, together with the error so the caller can
// report it.
func Load(opts ...Option) (*Config, error) {
	o := options{
		path:      DefaultPath(),
		fs:        loader.DefaultFS(),
		envPrefix: loader.EnvPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := New()

	var loadErr error
	fileCfg, err := loader.NewTOMLLoaderWithFS(o.fs, o.path).Load()
	if err != nil {
		loadErr = err
	} else if fileCfg != nil {
		c.data = loader.DeepMerge(c.data, fileCfg)
		c.path = o.path
	}

	if !o.skipEnv {
		envCfg, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			loadErr = errors.Join(loadErr, err)
		} else {
			c.data = loader.DeepMerge(c.data, envCfg)
		}
	}

	return c, loadErr
}

// Path returns the config file that was loaded, or "" if none was.
func (c *Config) Path() string {
	return c.path
}

// Get returns the value at path.
func (c *Config) Get(path string) (any, error) {
	if path == "" || strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") {
		return nil, ErrInvalidPath
	}
	v, ok := loader.GetByPath(c.data, path)
	if !ok {
		return nil, ErrSettingNotFound
	}
	return v, nil
}

// Set sets the value at path, overriding every loaded layer.
func (c *Config) Set(path string, value any) error {
	if path == "" || strings.HasPrefix(path, ".") || strings.HasSuffix(path, ".") {
		return ErrInvalidPath
	}
	loader.SetByPath(c.data, path, value)
	delete(c.configErrors, path)
	return nil
}

// GetString returns the string at path.
func (c *Config) GetString(path string) (string, error) {
	v, err := c.Get(path)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: v}
	}
	return s, nil
}

// GetBool returns the bool at path. The integers 0 and 1 are accepted.
func (c *Config) GetBool(path string) (bool, error) {
	v, err := c.Get(path)
	if err != nil {
		return false, err
	}
	switch b := v.(type) {
	case bool:
		return b, nil
	case int64:
		if b == 0 || b == 1 {
			return b == 1, nil
		}
	}
	return false, &TypeError{Path: path, Expected: "bool", Actual: v}
}

// These methods only return the default for ErrSettingNotFound.
// Type errors return the default too, but are recorded since they
// indicate a configuration problem that should be fixed.

func (c *Config) getStringOr(path string, defaultValue string) string {
	v, err := c.GetString(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) getBoolOr(path string, defaultValue bool) bool {
	v, err := c.GetBool(path)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			c.recordConfigError(path, err)
		}
		return defaultValue
	}
	return v
}

func (c *Config) recordConfigError(path string, err error) {
	if c.configErrors == nil {
		c.configErrors = make(map[string]error)
	}
	c.configErrors[path] = err
}

// ConfigErrors returns the type errors recorded by section accessors.
func (c *Config) ConfigErrors() map[string]error {
	result := make(map[string]error, len(c.configErrors))
	for k, v := range c.configErrors {
		result[k] = v
	}
	return result
}
