// Package config holds the run configuration of the scandict CLI.
//
// A Config is loaded from YAML and then overridden by command-line flags:
//
//	input: vectors.txt
//	output: dictionary.txt
//	groups: 16
//	width: 32
//	workers: 4
//	degree_policy: original
//	verify: true
//	log:
//	  level: info
//	  format: text
//	telemetry:
//	  trace: false
//	  metrics_file: ""
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/scandict/clique"
	"github.com/katalvlaran/scandict/pattern"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full CLI configuration.
type Config struct {
	Input        string          `yaml:"input"`
	Output       string          `yaml:"output"`
	Groups       int             `yaml:"groups"`
	Width        int             `yaml:"width"`
	Workers      int             `yaml:"workers"`
	DegreePolicy string          `yaml:"degree_policy"`
	Verify       bool            `yaml:"verify"`
	ShowGroups   bool            `yaml:"show_groups"`
	Log          LogConfig       `yaml:"log"`
	Telemetry    TelemetryConfig `yaml:"telemetry"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// TelemetryConfig controls trace and metric export.
type TelemetryConfig struct {
	// Trace writes finished spans to stderr.
	Trace bool `yaml:"trace"`
	// MetricsFile, when set, receives a Prometheus text dump at exit.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Workers:      1,
		DegreePolicy: clique.OriginalDegree.String(),
		Verify:       true,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path and overlays it on Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks the fields needed for a compaction run.
func (c Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input is required"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output is required"))
	}
	if !pattern.ValidWidth(c.Width) {
		errs = append(errs, fmt.Errorf("width %d not in %v", c.Width, pattern.SupportedWidths))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be >= 1, got %d", c.Workers))
	}
	if _, err := clique.ParseDegreePolicy(c.DegreePolicy); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level %q not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q not one of text, json", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
