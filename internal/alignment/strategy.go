package alignment

import "subpal/internal/textutil"

// Score weights for the blended matchers.
const (
	enhancedContentWeight    = 0.4
	enhancedKeywordWeight    = 0.4
	enhancedStructuralWeight = 0.2

	hybridTimeWeight     = 0.4
	hybridContentWeight  = 0.5
	hybridPositionWeight = 0.1
)

// matcher pairs a primary and a secondary cue list. Implementations must cover
// every input cue exactly once.
type matcher interface {
	align(primary, secondary []Cue, cfg Config) []AlignedPair
}

func matcherFor(strategy Strategy) matcher {
	switch strategy {
	case StrategyTime:
		return timeMatcher{}
	case StrategyContent:
		return contentMatcher{}
	case StrategyEnhancedContent:
		return enhancedContentMatcher{}
	case StrategyHybrid:
		return hybridMatcher{}
	default:
		return hybridMatcher{}
	}
}

// candidateScore scores primary cue i against secondary cue j. Returning
// false removes the candidate from consideration.
type candidateScore func(i, j int) (float64, bool)

// greedyMatch walks primary cues in caller order and pairs each with the best
// unused secondary cue. Ties keep the lowest secondary index. A best score
// under accept leaves the primary cue unpaired. Unused secondary cues follow
// in their original order.
func greedyMatch(primary, secondary []Cue, method Strategy, accept float64, score candidateScore) []AlignedPair {
	used := make([]bool, len(secondary))
	pairs := make([]AlignedPair, 0, len(primary)+len(secondary))
	for i, p := range primary {
		best := -1
		bestScore := 0.0
		for j := range secondary {
			if used[j] {
				continue
			}
			s, ok := score(i, j)
			if !ok {
				continue
			}
			if best < 0 || s > bestScore {
				best, bestScore = j, s
			}
		}
		if best >= 0 && bestScore >= accept {
			used[best] = true
			pairs = append(pairs, pairBoth(p, secondary[best], bestScore, method))
			continue
		}
		pairs = append(pairs, primaryOnly(p, method))
	}
	for j, s := range secondary {
		if !used[j] {
			pairs = append(pairs, secondaryOnly(s, method))
		}
	}
	return pairs
}

// timeOverlapScore is the shared time span of two cues relative to their
// mean duration.
func timeOverlapScore(a, b Cue) float64 {
	avgDuration := (a.Duration() + b.Duration()) / 2
	if avgDuration <= 0 {
		return 0
	}
	overlap := max(0, min(a.End, b.End)-max(a.Start, b.Start))
	return overlap / avgDuration
}

// positionScore measures how close two indexes sit in their relative
// sequences: 1 for the same relative position, 0 for opposite ends.
func positionScore(i, lenPrimary, j, lenSecondary int) float64 {
	if lenPrimary == 0 || lenSecondary == 0 {
		return 0
	}
	rel := float64(i)/float64(lenPrimary) - float64(j)/float64(lenSecondary)
	if rel < 0 {
		rel = -rel
	}
	return 1 - rel
}

// EnhancedContentScore blends content, keyword, and structural similarity.
func EnhancedContentScore(a, b string) float64 {
	return enhancedContentWeight*textutil.ContentSimilarity(a, b) +
		enhancedKeywordWeight*textutil.KeywordSimilarity(a, b) +
		enhancedStructuralWeight*textutil.StructuralSimilarity(a, b)
}

type timeMatcher struct{}

func (timeMatcher) align(primary, secondary []Cue, cfg Config) []AlignedPair {
	return greedyMatch(primary, secondary, StrategyTime, cfg.MinAlignmentScore, func(i, j int) (float64, bool) {
		return timeOverlapScore(primary[i], secondary[j]), true
	})
}

type contentMatcher struct{}

func (contentMatcher) align(primary, secondary []Cue, cfg Config) []AlignedPair {
	threshold := cfg.ContentThreshold
	return greedyMatch(primary, secondary, StrategyContent, threshold, func(i, j int) (float64, bool) {
		s := textutil.ContentSimilarity(primary[i].Text, secondary[j].Text)
		return s, s >= threshold
	})
}

// enhancedContentMatcher is the keyword and structure aware text matcher.
// It was previously exposed as "semantic"; it does no embedding lookups.
type enhancedContentMatcher struct{}

func (enhancedContentMatcher) align(primary, secondary []Cue, cfg Config) []AlignedPair {
	threshold := cfg.ContentThreshold
	return greedyMatch(primary, secondary, StrategyEnhancedContent, threshold, func(i, j int) (float64, bool) {
		s := EnhancedContentScore(primary[i].Text, secondary[j].Text)
		return s, s >= threshold
	})
}

// hybridMatcher blends time overlap, text similarity, and relative sequence
// position. Position only decides between candidates when time and text are
// both weak.
type hybridMatcher struct{}

func (hybridMatcher) align(primary, secondary []Cue, cfg Config) []AlignedPair {
	return greedyMatch(primary, secondary, StrategyHybrid, cfg.MinAlignmentScore, func(i, j int) (float64, bool) {
		return HybridScore(primary[i], secondary[j], positionScore(i, len(primary), j, len(secondary))), true
	})
}

// HybridScore combines the time overlap and content similarity of two cues
// with a precomputed position score.
func HybridScore(a, b Cue, position float64) float64 {
	return hybridTimeWeight*timeOverlapScore(a, b) +
		hybridContentWeight*textutil.ContentSimilarity(a.Text, b.Text) +
		hybridPositionWeight*position
}

// TimeOverlapScore exposes the time matcher's score for diagnostics.
func TimeOverlapScore(a, b Cue) float64 {
	return timeOverlapScore(a, b)
}
