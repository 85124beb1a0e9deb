package subtitles

import (
	"strings"

	"subpal/internal/alignment"
)

// ParseSRT parses SubRip content. Blocks without a usable timing line are
// skipped and counted; cue numbering in the file is ignored.
func ParseSRT(content string) ([]alignment.Cue, int) {
	var (
		cues    []alignment.Cue
		skipped int
	)
	for _, block := range splitBlocks(content) {
		cue, ok := parseCueBlock(block)
		if !ok {
			skipped++
			continue
		}
		cues = append(cues, cue)
	}
	return cues, skipped
}

// splitBlocks normalizes line endings and groups lines separated by blank
// (or whitespace-only) lines.
func splitBlocks(content string) [][]string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var (
		blocks  [][]string
		current []string
	)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// parseCueBlock accepts an optional identifier line followed by the timing
// line and any number of text lines.
func parseCueBlock(lines []string) (alignment.Cue, bool) {
	timing := -1
	for i := 0; i < len(lines) && i < 2; i++ {
		if strings.Contains(lines[i], "-->") {
			timing = i
			break
		}
	}
	if timing < 0 {
		return alignment.Cue{}, false
	}
	start, end, ok := parseTiming(lines[timing])
	if !ok {
		return alignment.Cue{}, false
	}
	return alignment.Cue{
		Start: start,
		End:   end,
		Text:  strings.Join(lines[timing+1:], "\n"),
	}, true
}
