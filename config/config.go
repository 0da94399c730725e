// Package config loads the climatetrend runtime configuration from defaults, an optional
// yaml file and environment overrides, in that order.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	trendline "github.com/aouyang1/go-trendline"
	"github.com/aouyang1/go-trendline/climate"
	"gopkg.in/yaml.v3"
)

const envPrefix = "TRENDLINE_"

var (
	ErrNegativeHorizon = errors.New("horizons must not be negative")
	ErrNaNHorizon      = errors.New("horizons must be numbers")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// Config is the resolved runtime configuration
type Config struct {
	Generate climate.GenerateOptions `yaml:",inline"`

	Horizons           []float64 `yaml:"horizons"`
	Variables          []string  `yaml:"variables"`
	AllowEmptyHorizons bool      `yaml:"allow_empty_horizons"`

	PlotPath  string `yaml:"plot_path"`
	ModelPath string `yaml:"model_path"`
	LogLevel  string `yaml:"log_level"`
}

// Default returns the configuration used when no file or environment overrides are given
func Default() *Config {
	horizons := make([]float64, len(climate.DefaultHorizons))
	copy(horizons, climate.DefaultHorizons)
	return &Config{
		Generate:           *climate.NewDefaultGenerateOptions(),
		Horizons:           horizons,
		AllowEmptyHorizons: true,
		LogLevel:           "info",
	}
}

// Load resolves configuration in priority order: defaults -> file -> env. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("unable to read config file, %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("unable to parse config file, %w", err)
		}
	}

	if v, ok := lookupEnv(envPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %sSEED, %w", envPrefix, err)
		}
		cfg.Generate.Seed = seed
	}
	if v, ok := lookupEnv(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookupEnv(envPrefix + "PLOT_PATH"); ok {
		cfg.PlotPath = v
	}
	if v, ok := lookupEnv(envPrefix + "MODEL_PATH"); ok {
		cfg.ModelPath = v
	}
	return cfg, nil
}

// Validate checks the resolved configuration before any series are generated
func (c *Config) Validate() error {
	if _, err := c.Generate.Validate(); err != nil {
		return err
	}
	for i, h := range c.Horizons {
		if math.IsNaN(h) {
			return fmt.Errorf("horizon at %d, %w", i, ErrNaNHorizon)
		}
		if h < 0 {
			return fmt.Errorf("horizon %v at %d, %w", h, i, ErrNegativeHorizon)
		}
	}
	if _, err := climate.SelectVariables(climate.DefaultVariables(), c.Variables); err != nil {
		return err
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// ExtrapolatorOptions converts the configuration into trend extrapolation options
func (c *Config) ExtrapolatorOptions() *trendline.Options {
	opt := trendline.NewDefaultOptions()
	opt.AllowEmptyHorizons = c.AllowEmptyHorizons
	return opt
}

// SlogLevel parses the configured log level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%s, %w", c.LogLevel, ErrUnknownLogLevel)
	}
	return level, nil
}
