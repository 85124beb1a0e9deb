package alignment

import (
	"fmt"
	"sync"
)

// Session holds a mutable Config and the statistics of its most recent run.
// All methods are safe for concurrent use; a run holds the lock for its whole
// duration so config changes never land mid-run.
type Session struct {
	engine *Engine

	mu    sync.Mutex
	cfg   Config
	stats Stats
}

// NewSession creates a Session backed by engine. A nil engine gets a default
// one with a no-op logger.
func NewSession(engine *Engine, cfg Config) *Session {
	if engine == nil {
		engine = NewEngine(nil)
	}
	return &Session{engine: engine, cfg: cfg}
}

// AlignSubtitles aligns the two cue lists with the session config and records
// the run's stats. Empty input yields an empty slice and zero stats.
func (s *Session) AlignSubtitles(primary, secondary []Cue, strategy Strategy) []AlignedPair {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := s.engine.Align(primary, secondary, strategy, s.cfg)
	s.stats = result.Stats
	return result.Pairs
}

// SetConfig merges patch into the session config. The previous config is kept
// when the merged one is invalid.
func (s *Session) SetConfig(patch ConfigPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.cfg.Apply(patch)
	if err := next.Validate(); err != nil {
		return fmt.Errorf("set alignment config: %w", err)
	}
	s.cfg = next
	return nil
}

// Config returns the current config.
func (s *Session) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Stats returns a copy of the last run's statistics.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
