// Package config loads the CLI configuration. Values come from three layers:
// defaults in code, an optional YAML file, and TABPROC_* environment
// variables, with later layers winning.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/vegasq/tabproc/reader"
)

// Config represents the complete CLI configuration
type Config struct {
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Reader  ReaderConfig  `yaml:"reader" envconfig:"READER"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// OutputConfig controls how datasets are printed
type OutputConfig struct {
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// ReaderConfig controls file parsing
type ReaderConfig struct {
	Delimiter          string   `yaml:"delimiter" envconfig:"DELIMITER"`
	ThousandsSeparator string   `yaml:"thousands_separator" envconfig:"THOUSANDS_SEPARATOR"`
	Sheet              string   `yaml:"sheet" envconfig:"SHEET"`
	NullValues         []string `yaml:"null_values" envconfig:"NULL_VALUES"`
	DateFormats        []string `yaml:"date_formats" envconfig:"DATE_FORMATS"`
}

// LoggingConfig controls the stderr log output
type LoggingConfig struct {
	Level string `yaml:"level" envconfig:"LEVEL"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: "table"},
		Reader: ReaderConfig{
			NullValues:  reader.DefaultNullValues(),
			DateFormats: reader.DefaultDateFormats(),
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the configuration. path names an explicit YAML file and must
// exist when non-empty; with an empty path the default locations are tried
// and silently skipped when absent. Environment variables are applied last,
// so they win over the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = findConfigFile()
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process("TABPROC", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFile overlays values from a YAML file. Keys absent from the file leave
// the current values untouched.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// findConfigFile returns the first default config file that exists
func findConfigFile() string {
	locations := []string{
		"tabproc.yaml",
		"tabproc.yml",
	}
	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}
	return ""
}

// Validate checks the configuration for values no component can accept
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "table", "csv", "json", "jsonl":
	default:
		return fmt.Errorf("unsupported output format %q (supported: table, csv, jsonl)", c.Output.Format)
	}

	if utf8.RuneCountInString(c.Reader.Delimiter) > 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Reader.Delimiter)
	}
	if utf8.RuneCountInString(c.Reader.ThousandsSeparator) > 1 {
		return fmt.Errorf("thousands separator must be a single character, got %q", c.Reader.ThousandsSeparator)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}

	return nil
}

// LogLevel returns the configured slog level. Call Validate first; an
// unparsable level falls back to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ReaderOptions converts the reader section into reader.Options
func (c *Config) ReaderOptions() reader.Options {
	opts := reader.Options{
		NullValues:  c.Reader.NullValues,
		DateFormats: c.Reader.DateFormats,
		Sheet:       c.Reader.Sheet,
	}
	if c.Reader.Delimiter != "" {
		opts.Delimiter, _ = utf8.DecodeRuneInString(c.Reader.Delimiter)
	}
	if c.Reader.ThousandsSeparator != "" {
		opts.ThousandsSeparator, _ = utf8.DecodeRuneInString(c.Reader.ThousandsSeparator)
	}
	return opts
}
