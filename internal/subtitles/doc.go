// Package subtitles reads and writes caption files for alignment.
//
// LoadCues parses SubRip and WebVTT tracks into alignment cues, optionally
// stripping formatting markup and advertisement cues. WriteBilingualSRT and
// WriteBilingualVTT render aligned pairs back out with the primary line above
// the secondary line.
package subtitles
