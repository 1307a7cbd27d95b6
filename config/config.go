// Package config loads training hyperparameters and logging settings from
// YAML, with LOGREG_* environment variables taking precedence.
//
//	alpha: 0.5
//	lambda: 0.01
//	num_iters: 150
//	log_level: info
//	log_every: 10
//	plot_path: cost.png
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/logreg/linear"
	"github.com/YuminosukeSato/logreg/pkg/errors"
	"github.com/YuminosukeSato/logreg/pkg/log"
)

type Config struct {
	Alpha    float64 `yaml:"alpha"`
	Lambda   float64 `yaml:"lambda"`
	NumIters int     `yaml:"num_iters"`

	LogLevel string `yaml:"log_level"`
	LogEvery int    `yaml:"log_every"`

	// PlotPath is where the cost curve is written. Empty disables plotting.
	PlotPath string `yaml:"plot_path"`
}

func Default() *Config {
	return &Config{
		Alpha:    linear.DefaultAlpha,
		Lambda:   linear.DefaultLambda,
		NumIters: linear.DefaultNumIters,
		LogLevel: "info",
	}
}

// Load reads a YAML file. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}
	return Parse(content)
}

// Parse decodes YAML over the defaults, then applies environment overrides.
func Parse(content []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrap(err, "config: invalid YAML")
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides fields from LOGREG_ALPHA, LOGREG_LAMBDA,
// LOGREG_NUM_ITERS and LOGREG_LOG_LEVEL. Unparsable values are ignored.
func (c *Config) ApplyEnv() {
	c.Alpha = getFloatEnv("LOGREG_ALPHA", c.Alpha)
	c.Lambda = getFloatEnv("LOGREG_LAMBDA", c.Lambda)
	c.NumIters = getIntEnv("LOGREG_NUM_ITERS", c.NumIters)
	c.LogLevel = getEnv("LOGREG_LOG_LEVEL", c.LogLevel)
}

// Validate checks the ranges the estimator itself leaves to the caller.
func (c *Config) Validate() error {
	if !(c.Alpha > 0) {
		return errors.NewValidationError("alpha", "must be positive", c.Alpha)
	}
	if !(c.Lambda >= 0) {
		return errors.NewValidationError("lambda", "must be non-negative", c.Lambda)
	}
	if c.NumIters < 1 {
		return errors.NewValidationError("num_iters", "must be at least 1", c.NumIters)
	}
	if c.LogEvery < 0 {
		return errors.NewValidationError("log_every", "must be non-negative", c.LogEvery)
	}
	if _, ok := log.ParseLevel(c.LogLevel); !ok {
		return errors.NewValidationError("log_level", "must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	level, _ := log.ParseLevel(c.LogLevel)
	return level
}

// Options converts the hyperparameters into estimator options.
func (c *Config) Options() []linear.Option {
	return []linear.Option{
		linear.WithAlpha(c.Alpha),
		linear.WithLambda(c.Lambda),
		linear.WithNumIters(c.NumIters),
		linear.WithLogEvery(c.LogEvery),
	}
}

func (c *Config) String() string {
	return fmt.Sprintf("alpha=%g lambda=%g num_iters=%d log_level=%s", c.Alpha, c.Lambda, c.NumIters, c.LogLevel)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
