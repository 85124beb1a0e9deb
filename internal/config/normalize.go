package config

import (
	"fmt"
	"os"
	"strings"

	"subpal/internal/language"
)

func (c *Config) normalize() error {
	c.normalizeAlignment()
	c.normalizeCaptions()
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeAlignment() {
	strategy := strings.ToLower(strings.TrimSpace(c.Alignment.Strategy))
	if strategy == "" {
		if value, ok := os.LookupEnv(envStrategy); ok {
			strategy = strings.ToLower(strings.TrimSpace(value))
		}
	}
	strategy = strings.ReplaceAll(strategy, "_", "-")
	if strategy == "" {
		strategy = defaultStrategy
	}
	if canonical, ok := strategyNames[strategy]; ok {
		strategy = canonical
	}
	c.Alignment.Strategy = strategy
}

func (c *Config) normalizeCaptions() {
	if lang := strings.TrimSpace(c.Captions.PrimaryLanguage); lang != "" {
		if code := language.ToISO2(lang); code != "" {
			c.Captions.PrimaryLanguage = code
		} else {
			c.Captions.PrimaryLanguage = strings.ToLower(lang)
		}
	}
	if lang := strings.TrimSpace(c.Captions.SecondaryLanguage); lang != "" {
		if code := language.ToISO2(lang); code != "" {
			c.Captions.SecondaryLanguage = code
		} else {
			c.Captions.SecondaryLanguage = strings.ToLower(lang)
		}
	}
}

func (c *Config) normalizeOutput() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "text" {
		c.Output.Format = FormatPlain
	}
	var err error
	if c.Output.Dir, err = expandPath(strings.TrimSpace(c.Output.Dir)); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		if value, ok := os.LookupEnv(envLogLevel); ok {
			c.Logging.Level = strings.ToLower(strings.TrimSpace(value))
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	var err error
	if c.Logging.Dir, err = expandPath(strings.TrimSpace(c.Logging.Dir)); err != nil {
		return fmt.Errorf("logging.dir: %w", err)
	}
	return nil
}
