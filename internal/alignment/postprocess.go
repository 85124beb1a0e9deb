package alignment

import "slices"

// mergeGapSeconds is the largest gap between two pairs that still counts as
// the same line re-segmented by the source track.
const mergeGapSeconds = 1.0

func sortByStart(pairs []AlignedPair) {
	slices.SortStableFunc(pairs, func(a, b AlignedPair) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		default:
			return 0
		}
	})
}

// mergeAdjacent folds runs of consecutive pairs that carry identical text in
// both languages and sit at most mergeGapSeconds apart. The merged pair keeps
// the first start, the last end, and the best score.
func mergeAdjacent(pairs []AlignedPair) []AlignedPair {
	if len(pairs) < 2 {
		return pairs
	}
	merged := make([]AlignedPair, 0, len(pairs))
	current := pairs[0]
	for _, next := range pairs[1:] {
		if next.Start-current.End <= mergeGapSeconds &&
			next.PrimaryText == current.PrimaryText &&
			next.SecondaryText == current.SecondaryText {
			current.End = next.End
			current.Score = max(current.Score, next.Score)
			current.HasPrimary = current.HasPrimary || next.HasPrimary
			current.HasSecondary = current.HasSecondary || next.HasSecondary
			current.Duration = current.End - current.Start
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

func postProcess(pairs []AlignedPair) ([]AlignedPair, Stats) {
	sortByStart(pairs)
	pairs = mergeAdjacent(pairs)
	return pairs, computeStats(pairs)
}
