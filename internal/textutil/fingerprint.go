package textutil

import (
	"regexp"
	"strings"
)

// tokenSplitPattern matches non-alphanumeric character sequences for tokenization.
var tokenSplitPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// Fingerprint represents a term-frequency vector for text similarity comparison.
type Fingerprint struct {
	tokens map[string]float64
	// normSq is the squared Euclidean norm of tokens.
	normSq float64
}

// NewFingerprint creates a fingerprint from the provided text using Tokenize.
// Returns nil if the text produces no valid tokens.
func NewFingerprint(text string) *Fingerprint {
	return newFingerprint(Tokenize(text))
}

// NewWordFingerprint creates a fingerprint from lowercase whitespace-separated
// words. Unlike NewFingerprint it keeps every word regardless of length, which
// matters for short caption lines.
func NewWordFingerprint(text string) *Fingerprint {
	return newFingerprint(strings.Fields(lower(text)))
}

func newFingerprint(tokens []string) *Fingerprint {
	if len(tokens) == 0 {
		return nil
	}
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	var normSq float64
	for _, count := range counts {
		normSq += count * count
	}
	return &Fingerprint{
		tokens: counts,
		normSq: normSq,
	}
}

// Tokenize splits text into lowercase tokens, filtering tokens shorter than
// three characters.
func Tokenize(text string) []string {
	lowered := lower(text)
	raw := tokenSplitPattern.Split(lowered, -1)
	terms := make([]string, 0, len(raw))
	for _, token := range raw {
		token = strings.TrimSpace(token)
		if len([]rune(token)) < 3 {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}
