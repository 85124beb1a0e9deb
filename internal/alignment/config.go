package alignment

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"subpal/internal/config"
)

// Config holds the scoring thresholds for a run.
type Config struct {
	// TimeTolerance is the boundary slack, in seconds, exposed to hosts.
	// The matchers score raw overlap and do not read it. Default 0.5.
	TimeTolerance float64 `json:"time_tolerance"`
	// ContentThreshold is the minimum text score for the content and
	// enhanced-content matchers. Default 0.6.
	ContentThreshold float64 `json:"content_threshold"`
	// MinAlignmentScore is the minimum score for the time and hybrid
	// matchers. Default 0.4.
	MinAlignmentScore float64 `json:"min_alignment_score"`
}

// ConfigPatch carries a partial Config update; nil fields keep their value.
type ConfigPatch struct {
	TimeTolerance     *float64
	ContentThreshold  *float64
	MinAlignmentScore *float64
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		TimeTolerance:     0.5,
		ContentThreshold:  0.6,
		MinAlignmentScore: 0.4,
	}
}

// Apply returns c with the non-nil fields of patch substituted.
func (c Config) Apply(patch ConfigPatch) Config {
	if patch.TimeTolerance != nil {
		c.TimeTolerance = *patch.TimeTolerance
	}
	if patch.ContentThreshold != nil {
		c.ContentThreshold = *patch.ContentThreshold
	}
	if patch.MinAlignmentScore != nil {
		c.MinAlignmentScore = *patch.MinAlignmentScore
	}
	return c
}

// Validate reports whether every field is finite and in range.
func (c Config) Validate() error {
	if math.IsNaN(c.TimeTolerance) || math.IsInf(c.TimeTolerance, 0) || c.TimeTolerance < 0 {
		return errors.New("time tolerance must be a non-negative number of seconds")
	}
	if !unitInterval(c.ContentThreshold) {
		return errors.New("content threshold must be between 0 and 1")
	}
	if !unitInterval(c.MinAlignmentScore) {
		return errors.New("min alignment score must be between 0 and 1")
	}
	return nil
}

func unitInterval(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// FromConfig reads the strategy and thresholds from the [alignment] section.
// An empty strategy selects hybrid; an unrecognized one is an error.
func FromConfig(cfg *config.Config) (Strategy, Config, error) {
	if cfg == nil {
		return StrategyHybrid, DefaultConfig(), nil
	}
	strategy := StrategyHybrid
	if name := strings.TrimSpace(cfg.Alignment.Strategy); name != "" {
		s, ok := LookupStrategy(name)
		if !ok {
			return "", Config{}, fmt.Errorf("alignment.strategy: unknown strategy %q", name)
		}
		strategy = s
	}
	out := Config{
		TimeTolerance:     cfg.Alignment.TimeTolerance,
		ContentThreshold:  cfg.Alignment.ContentThreshold,
		MinAlignmentScore: cfg.Alignment.MinAlignmentScore,
	}
	if err := out.Validate(); err != nil {
		return "", Config{}, fmt.Errorf("alignment: %w", err)
	}
	return strategy, out, nil
}
