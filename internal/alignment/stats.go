package alignment

// Stats summarizes one alignment run. Per-method counters only count pairs
// that hold both languages; enhanced-content pairs count as content-based.
type Stats struct {
	TotalPairs             int     `json:"total_pairs"`
	SuccessfulAlignments   int     `json:"successful_alignments"`
	TimeBasedAlignments    int     `json:"time_based_alignments"`
	ContentBasedAlignments int     `json:"content_based_alignments"`
	HybridAlignments       int     `json:"hybrid_alignments"`
	AverageScore           float64 `json:"average_score"`
}

// SuccessRate returns the share of pairs holding both languages, or 0 for an
// empty run.
func (s Stats) SuccessRate() float64 {
	if s.TotalPairs == 0 {
		return 0
	}
	return float64(s.SuccessfulAlignments) / float64(s.TotalPairs)
}

func computeStats(pairs []AlignedPair) Stats {
	stats := Stats{TotalPairs: len(pairs)}
	if len(pairs) == 0 {
		return stats
	}
	var total float64
	for _, pair := range pairs {
		total += pair.Score
		if !pair.Paired() {
			continue
		}
		stats.SuccessfulAlignments++
		switch pair.Method {
		case StrategyTime:
			stats.TimeBasedAlignments++
		case StrategyContent, StrategyEnhancedContent:
			stats.ContentBasedAlignments++
		case StrategyHybrid:
			stats.HybridAlignments++
		}
	}
	stats.AverageScore = total / float64(len(pairs))
	return stats
}
