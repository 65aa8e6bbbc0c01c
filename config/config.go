// Package config provides file- and environment-driven configuration for valvenet.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/valvenet/partition"
)

// Config holds all solver configuration values.
type Config struct {
	Start      string `yaml:"start"`
	TimeBudget uint32 `yaml:"time_budget"`
	DualBudget uint32 `yaml:"dual_budget"`
	Strategy   string `yaml:"strategy"`
	ExactLimit int    `yaml:"exact_limit"`
	Iterations int    `yaml:"iterations"`
	Restarts   int    `yaml:"restarts"`
	Seed       int64  `yaml:"seed"`
	Workers    int    `yaml:"workers"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	opts := partition.DefaultOptions()
	return &Config{
		Start:      "AA",
		TimeBudget: 30,
		DualBudget: 26,
		Strategy:   partition.Auto.String(),
		ExactLimit: opts.ExactLimit,
		Iterations: opts.Iterations,
		Restarts:   opts.Restarts,
		Workers:    opts.Workers,
		LogLevel:   "info",
		LogFormat:  "auto",
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then VALVES_* environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// PartitionOptions converts the dual-agent settings to partition options.
func (c *Config) PartitionOptions() ([]partition.Option, error) {
	strategy, err := partition.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}
	return []partition.Option{
		partition.WithStrategy(strategy),
		partition.WithExactLimit(c.ExactLimit),
		partition.WithIterations(c.Iterations),
		partition.WithRestarts(c.Restarts),
		partition.WithSeed(c.Seed),
		partition.WithWorkers(c.Workers),
	}, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("VALVES_START"); v != "" {
		c.Start = v
	}
	if v := os.Getenv("VALVES_STRATEGY"); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv("VALVES_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("VALVES_LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}

	uints := map[string]*uint32{
		"VALVES_TIME_BUDGET": &c.TimeBudget,
		"VALVES_DUAL_BUDGET": &c.DualBudget,
	}
	for key, dst := range uints {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return fmt.Errorf("%s must be a non-negative integer: %w", key, err)
			}
			*dst = uint32(n)
		}
	}

	ints := map[string]*int{
		"VALVES_EXACT_LIMIT": &c.ExactLimit,
		"VALVES_ITERATIONS":  &c.Iterations,
		"VALVES_RESTARTS":    &c.Restarts,
		"VALVES_WORKERS":     &c.Workers,
	}
	for key, dst := range ints {
		if v := os.Getenv(key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s must be an integer: %w", key, err)
			}
			*dst = n
		}
	}

	if v := os.Getenv("VALVES_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("VALVES_SEED must be an integer: %w", err)
		}
		c.Seed = n
	}

	return nil
}
