package textutil

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

// TextFeatures describes the shape of a caption line independently of its
// language.
type TextFeatures struct {
	Length        float64
	WordCount     float64
	SentenceCount float64
	AvgWordLength float64
}

// Features measures text. Length and word lengths are counted in runes.
func Features(text string) TextFeatures {
	words := strings.Fields(text)
	var letters int
	for _, word := range words {
		letters += utf8.RuneCountInString(word)
	}
	sentences := 0
	for _, part := range sentenceSplitPattern.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			sentences++
		}
	}
	features := TextFeatures{
		Length:        float64(utf8.RuneCountInString(text)),
		WordCount:     float64(len(words)),
		SentenceCount: float64(sentences),
	}
	if len(words) > 0 {
		features.AvgWordLength = float64(letters) / float64(len(words))
	}
	return features
}

// StructuralSimilarity compares the feature vectors of two texts, averaging
// 1 - |a-b|/max(a,b) over every feature.
func StructuralSimilarity(a, b string) float64 {
	fa, fb := Features(a), Features(b)
	pairs := [][2]float64{
		{fa.Length, fb.Length},
		{fa.WordCount, fb.WordCount},
		{fa.SentenceCount, fb.SentenceCount},
		{fa.AvgWordLength, fb.AvgWordLength},
	}
	var total float64
	for _, p := range pairs {
		total += featureSimilarity(p[0], p[1])
	}
	return total / float64(len(pairs))
}

func featureSimilarity(a, b float64) float64 {
	largest := math.Max(a, b)
	if largest == 0 {
		return 1
	}
	return 1 - math.Abs(a-b)/largest
}
