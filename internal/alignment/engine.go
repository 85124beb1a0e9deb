package alignment

import (
	"log/slog"
	"time"

	"subpal/internal/logging"
)

// Result is the outcome of one alignment run.
type Result struct {
	Strategy        Strategy      `json:"strategy"`
	Config          Config        `json:"config"`
	Pairs           []AlignedPair `json:"pairs"`
	Stats           Stats         `json:"stats"`
	PrimaryIssues   []CueIssue    `json:"-"`
	SecondaryIssues []CueIssue    `json:"-"`
}

// Engine runs alignment strategies. It keeps no per-run state. The zero value
// is usable and logs nothing.
type Engine struct {
	logger *slog.Logger
}

// NewEngine builds an Engine. A nil logger discards output.
func NewEngine(logger *slog.Logger) *Engine {
	return &Engine{logger: logging.NewComponentLogger(logger, "alignment")}
}

func (e *Engine) log() *slog.Logger {
	if e == nil || e.logger == nil {
		return logging.NewNop()
	}
	return e.logger
}

// Align pairs primary and secondary cues with the given strategy. An unknown
// strategy falls back to hybrid. When either list is empty the result holds
// no pairs and zero stats. Inputs are sanitized with SanitizeCues and are not
// modified.
func (e *Engine) Align(primary, secondary []Cue, strategy Strategy, cfg Config) Result {
	logger := e.log()
	strategy = ParseStrategy(string(strategy))
	result := Result{
		Strategy: strategy,
		Config:   cfg,
		Pairs:    []AlignedPair{},
	}
	if len(primary) == 0 || len(secondary) == 0 {
		logger.Debug("alignment skipped",
			logging.String("reason", "empty cue list"),
			logging.Int("primary_cues", len(primary)),
			logging.Int("secondary_cues", len(secondary)),
		)
		return result
	}

	started := time.Now()
	primary, result.PrimaryIssues = SanitizeCues(primary)
	secondary, result.SecondaryIssues = SanitizeCues(secondary)
	if n := len(result.PrimaryIssues) + len(result.SecondaryIssues); n > 0 {
		logger.Debug("coerced malformed cue timing", logging.Int("issues", n))
	}

	pairs := matcherFor(strategy).align(primary, secondary, cfg)
	result.Pairs, result.Stats = postProcess(pairs)

	logger.Debug("alignment complete",
		logging.String(logging.FieldStrategy, string(strategy)),
		logging.Int("primary_cues", len(primary)),
		logging.Int("secondary_cues", len(secondary)),
		logging.Int("pairs", result.Stats.TotalPairs),
		logging.Int("successful", result.Stats.SuccessfulAlignments),
		logging.Float64("avg_score", result.Stats.AverageScore),
		logging.Duration("elapsed", time.Since(started)),
	)
	return result
}
