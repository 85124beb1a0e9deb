package subtitles

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseTimestamp reads SRT ("00:01:02,500") and WebVTT ("01:02.500",
// "00:01:02.500") timestamps into seconds. Hours may exceed two digits and
// the fraction may have any number of digits.
func parseTimestamp(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	clock, frac, _ := strings.Cut(strings.Replace(value, ",", ".", 1), ".")
	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	var total float64
	for _, part := range parts {
		if !allDigits(part) {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		total = total*60 + float64(n)
	}
	if frac != "" {
		if !allDigits(frac) {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		f, err := strconv.ParseFloat("0."+frac, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid timestamp %q", value)
		}
		total += f
	}
	return total, nil
}

// parseTiming splits a "start --> end [settings]" line.
func parseTiming(line string) (float64, float64, bool) {
	startText, rest, found := strings.Cut(line, "-->")
	if !found {
		return 0, 0, false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return 0, 0, false
	}
	start, err := parseTimestamp(startText)
	if err != nil {
		return 0, 0, false
	}
	end, err := parseTimestamp(fields[0])
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FormatSRTTimestamp renders seconds as HH:MM:SS,mmm.
func FormatSRTTimestamp(seconds float64) string {
	h, m, s, ms := splitClock(seconds)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// FormatVTTTimestamp renders seconds as HH:MM:SS.mmm.
func FormatVTTTimestamp(seconds float64) string {
	h, m, s, ms := splitClock(seconds)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

func splitClock(seconds float64) (int64, int64, int64, int64) {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	if math.IsInf(seconds, 1) {
		seconds = 0
	}
	total := int64(math.Round(seconds * 1000))
	h := total / 3_600_000
	total %= 3_600_000
	m := total / 60_000
	total %= 60_000
	return h, m, total / 1000, total % 1000
}
