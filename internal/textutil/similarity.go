package textutil

import "math"

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Identical vectors score exactly 1.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.normSq == 0 || b.normSq == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return math.Min(1, dot/math.Sqrt(a.normSq*b.normSq))
}

// WordCosine lowercases both texts, splits them on whitespace, and returns the
// cosine similarity of their term-frequency vectors.
func WordCosine(a, b string) float64 {
	return CosineSimilarity(NewWordFingerprint(a), NewWordFingerprint(b))
}

// Content similarity weights.
const (
	contentJaroWeight        = 0.4
	contentLevenshteinWeight = 0.3
	contentCosineWeight      = 0.3
)

// ContentSimilarity blends Jaro, Levenshtein, and word cosine similarity over
// preprocessed text. Empty input, or input that preprocesses to nothing,
// scores 0 so that unreadable captions are never paired on text alone.
func ContentSimilarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	pa, pb := Preprocess(a), Preprocess(b)
	if pa == "" || pb == "" {
		return 0
	}
	return contentJaroWeight*Jaro(pa, pb) +
		contentLevenshteinWeight*LevenshteinSimilarity(pa, pb) +
		contentCosineWeight*WordCosine(pa, pb)
}
