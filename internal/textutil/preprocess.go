package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// lower applies Unicode-aware lowercasing. Casers carry state, so one is built
// per call.
func lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// Preprocess prepares caption text for comparison: NFKC normalization (folds
// full-width forms), lowercasing, removal of everything except letters,
// marks, digits, underscores, and whitespace, then whitespace collapsing.
func Preprocess(text string) string {
	if text == "" {
		return ""
	}
	folded := lower(norm.NFKC.String(text))
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
