package alignment

import (
	"fmt"
	"math"
)

// CueIssue describes a coercion applied to a malformed cue.
type CueIssue struct {
	Index  int
	Reason string
}

func (i CueIssue) String() string {
	return fmt.Sprintf("cue %d: %s", i.Index, i.Reason)
}

// SanitizeCues returns a copy of cues with malformed timing coerced so that
// overlap and duration math stays non-negative. Non-finite and negative times
// become 0 and an end before its start is raised to the start. Cues are never
// dropped or reordered; text is left untouched.
func SanitizeCues(cues []Cue) ([]Cue, []CueIssue) {
	if len(cues) == 0 {
		return nil, nil
	}
	out := make([]Cue, len(cues))
	var issues []CueIssue
	for i, cue := range cues {
		if !finite(cue.Start) {
			issues = append(issues, CueIssue{Index: i, Reason: "start time is not finite; set to 0"})
			cue.Start = 0
		} else if cue.Start < 0 {
			issues = append(issues, CueIssue{Index: i, Reason: "start time is negative; set to 0"})
			cue.Start = 0
		}
		if !finite(cue.End) {
			issues = append(issues, CueIssue{Index: i, Reason: "end time is not finite; set to start"})
			cue.End = cue.Start
		} else if cue.End < 0 {
			issues = append(issues, CueIssue{Index: i, Reason: "end time is negative; set to start"})
			cue.End = cue.Start
		}
		if cue.End < cue.Start {
			issues = append(issues, CueIssue{Index: i, Reason: "end time precedes start; set to start"})
			cue.End = cue.Start
		}
		out[i] = cue
	}
	return out, issues
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
