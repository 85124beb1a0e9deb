package subtitles

import (
	"fmt"
	"io"
	"strings"

	"subpal/internal/alignment"
)

// WriteBilingualSRT renders aligned pairs as SubRip with the primary text
// above the secondary text. Pairs with no text on either side are omitted
// and cues are renumbered from 1.
func WriteBilingualSRT(w io.Writer, pairs []alignment.AlignedPair) error {
	var b strings.Builder
	n := 0
	for _, pair := range pairs {
		text := bilingualText(pair)
		if text == "" {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", n, FormatSRTTimestamp(pair.Start), FormatSRTTimestamp(pair.End), text)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}
	return nil
}

// WriteBilingualVTT renders aligned pairs as WebVTT with the primary text
// above the secondary text.
func WriteBilingualVTT(w io.Writer, pairs []alignment.AlignedPair) error {
	var b strings.Builder
	b.WriteString(vttSignature)
	b.WriteString("\n\n")
	n := 0
	for _, pair := range pairs {
		text := bilingualText(pair)
		if text == "" {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", n, FormatVTTTimestamp(pair.Start), FormatVTTTimestamp(pair.End), escapeVTT(text))
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write vtt: %w", err)
	}
	return nil
}

func bilingualText(pair alignment.AlignedPair) string {
	var lines []string
	if pair.HasPrimary {
		lines = appendTextLines(lines, pair.PrimaryText)
	}
	if pair.HasSecondary {
		lines = appendTextLines(lines, pair.SecondaryText)
	}
	return strings.Join(lines, "\n")
}

// appendTextLines drops blank lines, which would end the cue block early.
func appendTextLines(dst []string, text string) []string {
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			dst = append(dst, line)
		}
	}
	return dst
}

// escapeVTT escapes characters that WebVTT cue text reserves. A literal
// "-->" would otherwise be read as a timing line.
func escapeVTT(text string) string {
	text = strings.ReplaceAll(text, "&", "&amp;")
	text = strings.ReplaceAll(text, "<", "&lt;")
	return strings.ReplaceAll(text, ">", "&gt;")
}
