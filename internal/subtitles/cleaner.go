package subtitles

import (
	"html"
	"regexp"
	"strings"

	"subpal/internal/alignment"
)

var adPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)opensubtitles`),
	regexp.MustCompile(`(?i)subtitles? by`),
	regexp.MustCompile(`(?i)(subtitles?|captions?|translation|transcript|sync|timing)s? (provided|created|ripped|edited) by`),
	regexp.MustCompile(`(?i)sync(ed)? (and|&) corrected`),
	regexp.MustCompile(`(?i)advertise (your|yours?) product`),
	regexp.MustCompile(`(?i)support us and become vip`),
	regexp.MustCompile(`(?i)http(s)?://`),
	regexp.MustCompile(`(?i)\bwww\.`),
	regexp.MustCompile(`(?i)\bsubscene\b`),
	regexp.MustCompile(`(?i)\baddic7ed\b`),
	regexp.MustCompile(`(?i)\bpodnapisi\b`),
	regexp.MustCompile(`(?i)\byts\b`),
	regexp.MustCompile(`(?i)\byify\b`),
}

var (
	// <i>, </font>, <c.yellow>, <v Speaker>, <ruby>
	markupTagRe = regexp.MustCompile(`</?[A-Za-z][^<>]*>`)
	// WebVTT karaoke timestamps such as <00:00:01.500>
	inlineTimestampRe = regexp.MustCompile(`<\d+(?::\d+)*(?:\.\d+)?>`)
	// ASS/SSA override blocks such as {\an8} or {\i1}
	assOverrideRe = regexp.MustCompile(`\{\\[^{}]*\}`)
)

// CleanText strips formatting markup, decodes HTML entities, and collapses
// line breaks and runs of whitespace into single spaces.
func CleanText(text string) string {
	text = assOverrideRe.ReplaceAllString(text, "")
	text = inlineTimestampRe.ReplaceAllString(text, "")
	text = markupTagRe.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, `\N`, " ")
	return strings.Join(strings.Fields(text), " ")
}

// IsAdvertisement reports whether a cue's text promotes a subtitle site or
// credits the uploader rather than carrying dialogue.
func IsAdvertisement(text string) bool {
	payload := strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if payload == "" {
		return false
	}
	for _, pattern := range adPatterns {
		if pattern.MatchString(payload) {
			return true
		}
	}
	return false
}

// FilterAdvertisements returns the cues that are not advertisements and the
// number removed. The input slice is not modified.
func FilterAdvertisements(cues []alignment.Cue) ([]alignment.Cue, int) {
	kept := make([]alignment.Cue, 0, len(cues))
	removed := 0
	for _, cue := range cues {
		if IsAdvertisement(cue.Text) {
			removed++
			continue
		}
		kept = append(kept, cue)
	}
	return kept, removed
}
