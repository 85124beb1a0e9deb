package subtitles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"subpal/internal/alignment"
	"subpal/internal/language"
)

// Format identifies a caption file format.
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// LoadOptions controls how LoadCues cleans a caption file.
type LoadOptions struct {
	// StripMarkup runs CleanText over every cue.
	StripMarkup bool
	// FilterAdvertisements drops cues matched by IsAdvertisement.
	FilterAdvertisements bool
	// Language overrides the language guessed from the file name.
	Language string
}

// Track is a parsed caption file.
type Track struct {
	Path     string
	Format   Format
	Language string
	Cues     []alignment.Cue
	// Skipped counts blocks that had no usable timing line.
	Skipped int
	// Advertisements counts cues removed by FilterAdvertisements.
	Advertisements int
	// Blank counts cues dropped because no text remained after cleaning.
	Blank int
}

// DetectFormat picks WebVTT when the content starts with the WEBVTT
// signature or the path ends in .vtt, and SubRip otherwise.
func DetectFormat(path, content string) Format {
	if looksLikeVTT(content) {
		return FormatVTT
	}
	if strings.EqualFold(filepath.Ext(path), ".vtt") {
		return FormatVTT
	}
	return FormatSRT
}

// LoadCues reads a SubRip or WebVTT file. UTF-8 and BOM-marked UTF-16 input
// are accepted. Cue order is preserved and timings are left as written.
func LoadCues(path string, opts LoadOptions) (Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Track{}, fmt.Errorf("read captions: %w", err)
	}
	return Decode(path, data, opts)
}

// Decode parses caption bytes as LoadCues does; path is only used for format
// and language detection.
func Decode(path string, data []byte, opts LoadOptions) (Track, error) {
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return Track{}, fmt.Errorf("decode captions %s: %w", path, err)
	}
	content := string(decoded)

	track := Track{
		Path:     path,
		Format:   DetectFormat(path, content),
		Language: language.ToISO2(opts.Language),
	}
	if track.Language == "" {
		track.Language = language.FromFileName(path)
	}

	var cues []alignment.Cue
	switch track.Format {
	case FormatVTT:
		cues, track.Skipped = ParseVTT(content)
	default:
		cues, track.Skipped = ParseSRT(content)
	}
	if len(cues) == 0 && track.Skipped > 0 {
		return Track{}, fmt.Errorf("parse captions %s: no cues found (%d malformed blocks)", path, track.Skipped)
	}

	if opts.FilterAdvertisements {
		cues, track.Advertisements = FilterAdvertisements(cues)
	}
	if opts.StripMarkup {
		kept := cues[:0]
		for _, cue := range cues {
			cue.Text = CleanText(cue.Text)
			if cue.Text == "" {
				track.Blank++
				continue
			}
			kept = append(kept, cue)
		}
		cues = kept
	}
	track.Cues = cues
	return track, nil
}

// Span returns the earliest start and latest end across the track's cues.
func (t Track) Span() (float64, float64) {
	if len(t.Cues) == 0 {
		return 0, 0
	}
	first, last := t.Cues[0].Start, t.Cues[0].End
	for _, cue := range t.Cues[1:] {
		first = min(first, cue.Start)
		last = max(last, cue.End)
	}
	return first, last
}
