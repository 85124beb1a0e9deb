package textutil

import "strings"

// stopWords lists high-frequency function words for the languages captions
// most commonly pair between. Only words longer than two runes matter since
// shorter tokens are never keywords.
var stopWords = map[string]struct{}{
	// English
	"the": {}, "and": {}, "for": {}, "are": {}, "but": {}, "not": {}, "you": {},
	"all": {}, "any": {}, "can": {}, "had": {}, "her": {}, "was": {}, "one": {},
	"our": {}, "out": {}, "has": {}, "have": {}, "his": {}, "him": {}, "how": {},
	"its": {}, "this": {}, "that": {}, "with": {}, "from": {}, "they": {},
	"them": {}, "then": {}, "than": {}, "there": {}, "what": {}, "when": {},
	"where": {}, "who": {}, "will": {}, "would": {}, "your": {}, "were": {},
	"been": {}, "just": {}, "into": {},
	// Spanish / Portuguese
	"que": {}, "los": {}, "las": {}, "una": {}, "uno": {}, "por": {}, "con": {},
	"para": {}, "del": {}, "como": {}, "pero": {}, "más": {}, "não": {},
	// French
	"les": {}, "des": {}, "une": {}, "est": {}, "pas": {}, "pour": {}, "dans": {},
	"qui": {}, "sur": {}, "avec": {}, "vous": {}, "nous": {},
	// German
	"der": {}, "die": {}, "das": {}, "und": {}, "ist": {}, "nicht": {}, "ein": {},
	"eine": {}, "ich": {}, "sie": {}, "mit": {}, "den": {},
	// Italian
	"che": {}, "non": {}, "per": {}, "sono": {},
}

// Keywords returns the distinct content words of text: preprocessed tokens of
// more than two runes that are not stop words.
func Keywords(text string) map[string]struct{} {
	words := strings.Fields(Preprocess(text))
	keywords := make(map[string]struct{}, len(words))
	for _, word := range words {
		if len([]rune(word)) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		keywords[word] = struct{}{}
	}
	return keywords
}

// KeywordSimilarity returns the Jaccard index of the two texts' keyword sets,
// or 0 when neither text has keywords.
func KeywordSimilarity(a, b string) float64 {
	ka, kb := Keywords(a), Keywords(b)
	union := len(ka)
	intersection := 0
	for word := range kb {
		if _, ok := ka[word]; ok {
			intersection++
			continue
		}
		union++
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
