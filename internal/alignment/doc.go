// Package alignment pairs the cues of two independently timed caption tracks
// into bilingual units.
//
// The Engine runs one of four greedy matchers (time overlap, text content,
// enhanced content, or the default hybrid blend) over a primary and a
// secondary cue list, then sorts the pairs by start time, merges adjacent
// duplicates, and summarizes the run in Stats. Matching never fails: missing
// or unreadable text lowers a candidate's score instead of producing an
// error, so ambiguous cues stay unpaired.
//
// Every input cue lands in exactly one AlignedPair before merging. For a
// fixed input and Config the output is identical across calls; ties go to
// the lowest secondary index.
//
// Engine is stateless and safe for concurrent use. Session wraps an Engine
// with mutable configuration and last-run statistics for hosts that want a
// long-lived, per-track-pair object.
package alignment
