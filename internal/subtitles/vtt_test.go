package subtitles

import "testing"

func TestParseVTT(t *testing.T) {
	raw := "\ufeffWEBVTT - Sample\nKind: captions\nLanguage: es\n\n" +
		"NOTE this is a comment\nspanning lines\n\n" +
		"STYLE\n::cue { color: yellow }\n\n" +
		"intro\n00:01.000 --> 00:03.000 align:start position:10%\n<v Ana>Hola\n\n" +
		"00:00:04.000 --> 00:00:06.500\nAdiós\namigo\n\n" +
		"broken\nnot a timing line\n"

	cues, skipped := ParseVTT(raw)
	if skipped != 1 {
		t.Fatalf("skipped = %d, want 1", skipped)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d: %+v", len(cues), cues)
	}
	if cues[0].Start != 1 || cues[0].End != 3 || cues[0].Text != "<v Ana>Hola" {
		t.Fatalf("unexpected first cue %+v", cues[0])
	}
	if cues[1].Start != 4 || cues[1].End != 6.5 || cues[1].Text != "Adiós\namigo" {
		t.Fatalf("unexpected second cue %+v", cues[1])
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		content string
		want    Format
	}{
		{"movie.srt", "1\n00:00:01,000 --> 00:00:02,000\nHi\n", FormatSRT},
		{"movie.vtt", "", FormatVTT},
		{"movie.VTT", "", FormatVTT},
		{"movie.txt", "\n\nWEBVTT\n\n", FormatVTT},
		{"movie.srt", "\ufeffWEBVTT\n", FormatVTT},
		{"movie", "", FormatSRT},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.path, tt.content); got != tt.want {
			t.Errorf("DetectFormat(%q, %q) = %q, want %q", tt.path, tt.content, got, tt.want)
		}
	}
}
