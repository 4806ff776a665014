// Package config loads and saves the intersections configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// CurrentSchemaVersion is written into new configuration files.
const CurrentSchemaVersion = "1.0.0"

// supportedSchema is the range of schema versions this build reads.
const supportedSchema = "^1"

// Environment variable overrides.
const (
	EnvHome      = "INTERSECTIONS_HOME"
	EnvLogLevel  = "INTERSECTIONS_LOG_LEVEL"
	EnvLogFormat = "INTERSECTIONS_LOG_FORMAT"
	EnvDataset   = "INTERSECTIONS_DATASET"
)

// Defaults applied by New.
const (
	DefaultBufferSize = 5
	DefaultTitle      = "Intersections"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "json"
	maxBufferSize     = 100
)

// ErrIncompatibleSchema is returned when a config file declares a schema
// version outside the supported range.
var ErrIncompatibleSchema = errors.New("incompatible config schema version")

// Config is the top-level configuration document.
type Config struct {
	SchemaVersion string        `yaml:"schema_version"`
	List          ListConfig    `yaml:"list"`
	Dataset       DatasetConfig `yaml:"dataset"`
	Logging       LoggingConfig `yaml:"logging"`

	configPath string
	loadErr    error
}

// ListConfig controls the list viewport.
type ListConfig struct {
	Title string `yaml:"title"`
	// BufferSize is the number of rows kept bound above and below the window.
	BufferSize int  `yaml:"buffer_size"`
	VimKeys    bool `yaml:"vim_keys"`
}

// DatasetConfig names the dataset shown when no file is given on the command line.
type DatasetConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns a Config with defaults, overlaid with the config file found
// under the config directory when one exists, then environment overrides.
// A config file that cannot be read or is invalid leaves the defaults in
// place and is reported by LoadError.
func New() *Config {
	cfg := Default()
	if path, err := DefaultConfigPath(); err == nil {
		cfg.configPath = path
		loaded, loadErr := Load(path)
		switch {
		case loadErr == nil:
			cfg = loaded
		case !errors.Is(loadErr, os.ErrNotExist):
			cfg.loadErr = loadErr
		}
	}
	cfg.applyEnv()
	return cfg
}

// LoadError returns why New fell back to defaults, or nil when the config
// file was loaded or does not exist.
func (c *Config) LoadError() error {
	return c.loadErr
}

// Default returns a Config holding only built-in defaults.
func Default() *Config {
	cfg := &Config{
		SchemaVersion: CurrentSchemaVersion,
		List: ListConfig{
			Title:      DefaultTitle,
			BufferSize: DefaultBufferSize,
			VimKeys:    true,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.Logging.File = filepath.Join(dir, "logs", "intersections.log")
	}
	return cfg
}

// Load reads the YAML file at path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.configPath = path

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetConfigPath sets where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// ConfigPath returns the file the config was loaded from or will be saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		path, err := DefaultConfigPath()
		if err != nil {
			return err
		}
		c.configPath = path
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks the schema version and value ranges.
func (c *Config) Validate() error {
	if err := CheckSchemaVersion(c.SchemaVersion); err != nil {
		return err
	}
	if c.List.BufferSize < 0 || c.List.BufferSize > maxBufferSize {
		return fmt.Errorf("list.buffer_size must be between 0 and %d, got %d", maxBufferSize, c.List.BufferSize)
	}
	switch c.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "json", "console", "text":
	default:
		return fmt.Errorf("logging.format %q must be json, console or text", c.Logging.Format)
	}
	return nil
}

// CheckSchemaVersion reports whether version is readable by this build.
// An empty version is treated as the current one.
func CheckSchemaVersion(version string) error {
	if version == "" {
		return nil
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrIncompatibleSchema, version)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrIncompatibleSchema, v, supportedSchema)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvDataset); v != "" {
		c.Dataset.Path = v
	}
}
