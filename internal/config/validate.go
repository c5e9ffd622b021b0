package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateProbe()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format must be auto, console, or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Extension == "." {
		return fmt.Errorf("output.extension must not be empty")
	}
	for _, ext := range c.Probe.Extensions {
		if strings.EqualFold(ext, c.Output.Extension) {
			return fmt.Errorf("output.extension %q collides with a probe extension", c.Output.Extension)
		}
	}
	return nil
}

func (c *Config) validateProbe() error {
	if strings.ContainsAny(c.Probe.Binary, " \t") {
		return fmt.Errorf("probe.binary must be a bare command or path (got %q)", c.Probe.Binary)
	}
	return nil
}
