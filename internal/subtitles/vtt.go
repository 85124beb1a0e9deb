package subtitles

import (
	"strings"

	"subpal/internal/alignment"
)

const vttSignature = "WEBVTT"

// ParseVTT parses WebVTT content. The header, NOTE, STYLE, and REGION blocks
// are ignored; cue settings after the end time are discarded. Cue blocks
// without a usable timing line are skipped and counted.
func ParseVTT(content string) ([]alignment.Cue, int) {
	content = strings.TrimPrefix(content, "\ufeff")
	var (
		cues    []alignment.Cue
		skipped int
	)
	for i, block := range splitBlocks(content) {
		head := strings.TrimSpace(block[0])
		if i == 0 && strings.HasPrefix(head, vttSignature) {
			continue
		}
		if isVTTMetadataBlock(head) {
			continue
		}
		cue, ok := parseCueBlock(block)
		if !ok {
			skipped++
			continue
		}
		cues = append(cues, cue)
	}
	return cues, skipped
}

func isVTTMetadataBlock(head string) bool {
	for _, kind := range []string{"NOTE", "STYLE", "REGION"} {
		if head == kind || strings.HasPrefix(head, kind+" ") || strings.HasPrefix(head, kind+"\t") {
			return true
		}
	}
	return false
}

func looksLikeVTT(content string) bool {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.TrimLeft(content, " \t\r\n")
	return strings.HasPrefix(content, vttSignature)
}
