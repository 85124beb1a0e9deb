package alignment

import "strings"

// Cue is a single timed caption from one language track. Times are seconds.
type Cue struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Duration returns End - Start.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// Strategy selects the matcher used to pair cues. It also records which
// matcher produced an AlignedPair.
type Strategy string

const (
	StrategyTime            Strategy = "time"
	StrategyContent         Strategy = "content"
	StrategyEnhancedContent Strategy = "enhanced-content"
	StrategyHybrid          Strategy = "hybrid"
)

// Strategies lists every strategy in display order.
func Strategies() []Strategy {
	return []Strategy{StrategyTime, StrategyContent, StrategyEnhancedContent, StrategyHybrid}
}

// ParseStrategy maps a user-supplied name to a Strategy. Matching is
// case-insensitive and accepts the legacy name "semantic" for
// enhanced-content. Unknown or empty names select the hybrid strategy.
func ParseStrategy(name string) Strategy {
	if s, ok := LookupStrategy(name); ok {
		return s
	}
	return StrategyHybrid
}

// LookupStrategy is ParseStrategy without the hybrid fallback; it reports
// whether name is a known strategy or alias.
func LookupStrategy(name string) (Strategy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "time", "time-based", "time_based":
		return StrategyTime, true
	case "content", "content-based", "content_based":
		return StrategyContent, true
	case "enhanced-content", "enhanced_content", "semantic":
		return StrategyEnhancedContent, true
	case "hybrid":
		return StrategyHybrid, true
	default:
		return "", false
	}
}

// AlignedPair is a bilingual caption unit holding at most one primary and at
// most one secondary cue. At least one side is always present.
type AlignedPair struct {
	Start         float64  `json:"start"`
	End           float64  `json:"end"`
	PrimaryText   string   `json:"primary_text"`
	SecondaryText string   `json:"secondary_text"`
	Score         float64  `json:"alignment_score"`
	Method        Strategy `json:"alignment_method"`
	HasPrimary    bool     `json:"has_primary"`
	HasSecondary  bool     `json:"has_secondary"`
	Duration      float64  `json:"duration"`
}

// Paired reports whether both languages are present.
func (p AlignedPair) Paired() bool {
	return p.HasPrimary && p.HasSecondary
}

func pairBoth(primary, secondary Cue, score float64, method Strategy) AlignedPair {
	start := min(primary.Start, secondary.Start)
	end := max(primary.End, secondary.End)
	return AlignedPair{
		Start:         start,
		End:           end,
		PrimaryText:   primary.Text,
		SecondaryText: secondary.Text,
		Score:         score,
		Method:        method,
		HasPrimary:    true,
		HasSecondary:  true,
		Duration:      end - start,
	}
}

func primaryOnly(primary Cue, method Strategy) AlignedPair {
	return AlignedPair{
		Start:       primary.Start,
		End:         primary.End,
		PrimaryText: primary.Text,
		Method:      method,
		HasPrimary:  true,
		Duration:    primary.Duration(),
	}
}

func secondaryOnly(secondary Cue, method Strategy) AlignedPair {
	return AlignedPair{
		Start:         secondary.Start,
		End:           secondary.End,
		SecondaryText: secondary.Text,
		Method:        method,
		HasSecondary:  true,
		Duration:      secondary.Duration(),
	}
}
