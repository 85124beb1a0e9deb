package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"subpal/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAlignment(); err != nil {
		return err
	}
	if err := c.validateCaptions(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAlignment() error {
	if name := c.Alignment.Strategy; name != "" {
		if _, ok := strategyNames[name]; !ok {
			return fmt.Errorf("alignment.strategy: unknown strategy %q (want time, content, enhanced-content, or hybrid)", name)
		}
	}
	tol := c.Alignment.TimeTolerance
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return errors.New("alignment.time_tolerance must be a non-negative number of seconds")
	}
	if err := ensureUnitInterval(map[string]float64{
		"alignment.content_threshold":   c.Alignment.ContentThreshold,
		"alignment.min_alignment_score": c.Alignment.MinAlignmentScore,
	}); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCaptions() error {
	for key, code := range map[string]string{
		"captions.primary_language":   c.Captions.PrimaryLanguage,
		"captions.secondary_language": c.Captions.SecondaryLanguage,
	} {
		if code == "" {
			continue
		}
		if language.ToISO2(code) == "" {
			return fmt.Errorf("%s: unrecognized language %q", key, code)
		}
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Format == "" {
		return nil
	}
	if !slices.Contains(OutputFormats(), c.Output.Format) {
		return fmt.Errorf("output.format: unsupported value %q (want %s)", c.Output.Format, strings.Join(OutputFormats(), ", "))
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}

func ensureUnitInterval(values map[string]float64) error {
	for key, value := range values {
		if math.IsNaN(value) || value < 0 || value > 1 {
			return fmt.Errorf("%s must be between 0 and 1", key)
		}
	}
	return nil
}
