// Package config loads routeopt settings from an optional YAML file and
// command-line flags. Flags given explicitly win over file values, which win
// over defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full routeopt configuration.
type Config struct {
	LogLevel    string  `yaml:"log_level"`
	LogFormat   string  `yaml:"log_format"`
	Precision   int     `yaml:"precision"`    // decimals in printed weights
	Graph       string  `yaml:"graph"`        // document loaded at startup
	MetricsAddr string  `yaml:"metrics_addr"` // empty disables the endpoint
	Traffic     Traffic `yaml:"traffic"`
}

// Traffic configures the congestion simulator.
type Traffic struct {
	Seed      int64   `yaml:"seed"`
	Amplitude float64 `yaml:"amplitude"`
	Scale     float64 `yaml:"scale"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Precision: 2,
		Traffic: Traffic{
			Seed:      1,
			Amplitude: 0.5,
			Scale:     0.1,
		},
	}
}

// Load overlays the YAML file at path on cfg. ${VAR} references are
// expanded from the environment first; unknown keys are rejected.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// Validate checks enumerated and ranged fields.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q, want debug|info|warn|error", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q, want text|json", ErrInvalid, c.LogFormat)
	}
	if c.Precision < 0 {
		return fmt.Errorf("%w: precision %d is negative", ErrInvalid, c.Precision)
	}
	if c.Traffic.Scale <= 0 {
		return fmt.Errorf("%w: traffic.scale must be positive", ErrInvalid)
	}
	if c.Traffic.Amplitude < 0 {
		return fmt.Errorf("%w: traffic.amplitude must not be negative", ErrInvalid)
	}

	return nil
}

// Parse reads flags from args, applies an optional -config file and then the
// explicitly set flags. It returns the validated config and the positional
// arguments left after the flags. -h yields flag.ErrHelp.
func Parse(args []string, output io.Writer) (*Config, []string, error) {
	fs := flag.NewFlagSet("routeopt", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
routeopt - dynamic route optimization engine.

Usage:
  routeopt [options] [COMMAND [ARGS...]]

Without COMMAND an interactive prompt reads commands from stdin.
Run "routeopt help" for the command list.

Options:
`)
		fs.PrintDefaults()
	}

	def := Default()
	path := fs.String("config", "", "Path to a YAML configuration file.")
	level := fs.String("log-level", def.LogLevel, "Logging level: debug, info, warn, error.")
	format := fs.String("log-format", def.LogFormat, "Log output format: text or json.")
	precision := fs.Int("precision", def.Precision, "Decimal places for printed weights.")
	graph := fs.String("graph", "", "Graph document to load at startup.")
	metricsAddr := fs.String("metrics-addr", "", "Serve Prometheus metrics on this address.")
	seed := fs.Int64("seed", def.Traffic.Seed, "Traffic noise seed.")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg := def
	if *path != "" {
		if err := Load(*path, &cfg); err != nil {
			return nil, nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = strings.ToLower(*level)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*format)
		case "precision":
			cfg.Precision = *precision
		case "graph":
			cfg.Graph = *graph
		case "metrics-addr":
			cfg.MetricsAddr = *metricsAddr
		case "seed":
			cfg.Traffic.Seed = *seed
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, fs.Args(), nil
}
