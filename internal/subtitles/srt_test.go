package subtitles

import (
	"math"
	"testing"
)

func TestParseSRT(t *testing.T) {
	raw := "1\r\n00:00:01,000 --> 00:00:03,500\r\nHello\r\nthere\r\n\r\n" +
		"2\n00:00:04.000 --> 00:00:06,250\nSecond\n   \n" +
		"garbage block\nwithout timing\n\n" +
		"00:01:00,000 --> 00:01:02,000\nNo index line\n"

	cues, skipped := ParseSRT(raw)
	if skipped != 1 {
		t.Fatalf("skipped = %d, want 1", skipped)
	}
	if len(cues) != 3 {
		t.Fatalf("expected 3 cues, got %d: %+v", len(cues), cues)
	}
	if cues[0].Start != 1 || cues[0].End != 3.5 || cues[0].Text != "Hello\nthere" {
		t.Fatalf("unexpected first cue %+v", cues[0])
	}
	if cues[1].Start != 4 || cues[1].End != 6.25 || cues[1].Text != "Second" {
		t.Fatalf("unexpected second cue %+v", cues[1])
	}
	if cues[2].Start != 60 || cues[2].Text != "No index line" {
		t.Fatalf("unexpected third cue %+v", cues[2])
	}
}

func TestParseSRTEmpty(t *testing.T) {
	cues, skipped := ParseSRT("  \n\n")
	if len(cues) != 0 || skipped != 0 {
		t.Fatalf("expected nothing, got %d cues %d skipped", len(cues), skipped)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"00:00:01,000", 1, false},
		{"01:02:03,456", 3723.456, false},
		{"00:00:01.5", 1.5, false},
		{"02:03.250", 123.25, false},
		{"100:00:00,000", 360000, false},
		{"00:00:05", 5, false},
		{"", 0, true},
		{"1,000", 0, true},
		{"00:-1:00,000", 0, true},
		{"aa:bb:cc,ddd", 0, true},
		{"00:00:01,x", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTimestamp(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTimestamp: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("parseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatTimestamps(t *testing.T) {
	tests := []struct {
		in      float64
		wantSRT string
		wantVTT string
	}{
		{0, "00:00:00,000", "00:00:00.000"},
		{1.5, "00:00:01,500", "00:00:01.500"},
		{3723.456, "01:02:03,456", "01:02:03.456"},
		{59.9996, "00:01:00,000", "00:01:00.000"},
		{-3, "00:00:00,000", "00:00:00.000"},
		{math.NaN(), "00:00:00,000", "00:00:00.000"},
	}
	for _, tt := range tests {
		if got := FormatSRTTimestamp(tt.in); got != tt.wantSRT {
			t.Errorf("FormatSRTTimestamp(%v) = %q, want %q", tt.in, got, tt.wantSRT)
		}
		if got := FormatVTTTimestamp(tt.in); got != tt.wantVTT {
			t.Errorf("FormatVTTTimestamp(%v) = %q, want %q", tt.in, got, tt.wantVTT)
		}
	}
}
