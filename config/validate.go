package config

import (
	"fmt"

	"github.com/katalvlaran/valvenet/budget"
	"github.com/katalvlaran/valvenet/partition"
)

func (c *Config) validate() error {
	if c.Start == "" {
		return fmt.Errorf("start label is required")
	}

	if _, err := partition.ParseStrategy(c.Strategy); err != nil {
		return err
	}

	if c.ExactLimit < 0 || c.ExactLimit > budget.MaxSubsetActive {
		return fmt.Errorf("exact_limit must be between 0 and %d", budget.MaxSubsetActive)
	}

	if c.Iterations < 0 {
		return fmt.Errorf("iterations must not be negative")
	}

	if c.Restarts < 1 {
		return fmt.Errorf("restarts must be at least 1")
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}

	switch c.LogLevel {
	case "panic", "fatal", "error", "warn", "warning", "info", "debug", "trace":
	default:
		return fmt.Errorf("log_level %q is not a logrus level", c.LogLevel)
	}

	switch c.LogFormat {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("log_format must be auto, text or json")
	}

	return nil
}
