// Package config loads the command-line tool configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Log formats.
const (
	LogConsole = "console"
	LogJSON    = "json"
)

// Config is the tool configuration.
type Config struct {
	Log     Log    `yaml:"log"`
	Report  Report `yaml:"report"`
	Workers int    `yaml:"workers"` // files verified concurrently
}

// Log configures the diagnostic logger.
type Log struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // console|json
}

// Report configures the per-file result output.
type Report struct {
	Format string `yaml:"format"` // text|json|yaml
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:     Log{Level: "info", Format: LogConsole},
		Report:  Report{Format: FormatText},
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Load reads the configuration file at path. Fields missing from the
// file keep their default values. An empty path yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", abs, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", abs, err)
	}
	return cfg, nil
}

// Normalize lowercases the enumerated settings and trims surrounding
// space, so that values from flags and files compare alike.
func (c *Config) Normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case LogConsole, LogJSON:
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	if err := ValidateFormat(c.Report.Format); err != nil {
		return fmt.Errorf("report.format: %w", err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers: must be positive, got %d", c.Workers)
	}
	return nil
}

// ValidateFormat reports whether format names a report format.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

// ValidateLinesFormat reports whether format names a parsed-lines
// output format.
func ValidateLinesFormat(format string) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("unknown lines format %q", format)
}

// ZapLevel returns the configured log level.
// It must only be called on a validated configuration.
func (c *Config) ZapLevel() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
