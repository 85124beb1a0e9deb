package alignment

import (
	"fmt"
	"math"
	"reflect"
	"testing"
)

func englishTrack() []Cue {
	return []Cue{
		{Start: 0, End: 2, Text: "Good morning, Anna."},
		{Start: 2.5, End: 5, Text: "Did you sleep well?"},
		{Start: 6, End: 8, Text: "The train leaves at noon."},
		{Start: 9, End: 11.5, Text: "We should hurry."},
	}
}

func spanishTrack() []Cue {
	return []Cue{
		{Start: 0.3, End: 2.2, Text: "Buenos días, Anna."},
		{Start: 2.8, End: 5.1, Text: "¿Dormiste bien?"},
		{Start: 6.2, End: 8.4, Text: "El tren sale al mediodía."},
		{Start: 9.1, End: 11.2, Text: "Deberíamos darnos prisa."},
	}
}

func TestTimeBasedScenario(t *testing.T) {
	engine := NewEngine(nil)
	primary := []Cue{{Start: 0, End: 2, Text: "Hello"}}
	secondary := []Cue{{Start: 0.3, End: 2.1, Text: "Bonjour"}}

	result := engine.Align(primary, secondary, StrategyTime, DefaultConfig())
	if len(result.Pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d: %+v", len(result.Pairs), result.Pairs)
	}
	pair := result.Pairs[0]
	if pair.PrimaryText != "Hello" || pair.SecondaryText != "Bonjour" {
		t.Fatalf("unexpected texts: %+v", pair)
	}
	if !pair.HasPrimary || !pair.HasSecondary {
		t.Fatalf("expected both sides present: %+v", pair)
	}
	if want := 1.7 / 1.9; math.Abs(pair.Score-want) > 1e-9 {
		t.Fatalf("score = %v, want %v", pair.Score, want)
	}
	if pair.Start != 0 || pair.End != 2.1 {
		t.Fatalf("expected span [0, 2.1], got [%v, %v]", pair.Start, pair.End)
	}
	if math.Abs(pair.Duration-2.1) > 1e-9 {
		t.Fatalf("duration = %v, want 2.1", pair.Duration)
	}
	if pair.Method != StrategyTime {
		t.Fatalf("method = %q, want time", pair.Method)
	}
}

func TestTimeOverlapScore(t *testing.T) {
	tests := []struct {
		name string
		a, b Cue
		want float64
	}{
		{"identical", Cue{Start: 1, End: 3}, Cue{Start: 1, End: 3}, 1},
		{"disjoint", Cue{Start: 0, End: 1}, Cue{Start: 2, End: 3}, 0},
		{"touching", Cue{Start: 0, End: 1}, Cue{Start: 1, End: 2}, 0},
		{"zero durations", Cue{Start: 1, End: 1}, Cue{Start: 1, End: 1}, 0},
		{"contained", Cue{Start: 0, End: 4}, Cue{Start: 1, End: 3}, 2.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeOverlapScore(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TimeOverlapScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrategiesPairBilingualTrack(t *testing.T) {
	engine := NewEngine(nil)
	want := map[string]string{
		"Good morning, Anna.":       "Buenos días, Anna.",
		"Did you sleep well?":       "¿Dormiste bien?",
		"The train leaves at noon.": "El tren sale al mediodía.",
		"We should hurry.":          "Deberíamos darnos prisa.",
	}
	for _, strategy := range []Strategy{StrategyTime, StrategyHybrid} {
		t.Run(string(strategy), func(t *testing.T) {
			result := engine.Align(englishTrack(), spanishTrack(), strategy, DefaultConfig())
			if len(result.Pairs) != len(want) {
				t.Fatalf("expected %d pairs, got %d: %+v", len(want), len(result.Pairs), result.Pairs)
			}
			for _, pair := range result.Pairs {
				if got := want[pair.PrimaryText]; got != pair.SecondaryText {
					t.Errorf("%q paired with %q, want %q", pair.PrimaryText, pair.SecondaryText, got)
				}
			}
			if result.Stats.SuccessfulAlignments != len(want) {
				t.Errorf("successful = %d, want %d", result.Stats.SuccessfulAlignments, len(want))
			}
		})
	}
}

func TestCoverageInvariant(t *testing.T) {
	engine := NewEngine(nil)
	primary := append(englishTrack(), Cue{Start: 20, End: 21, Text: "Extra line only in English."})
	secondary := append(spanishTrack(),
		Cue{Start: 30, End: 31, Text: "Solo en español."},
		Cue{Start: 1, End: 1.5, Text: ""},
	)

	for _, strategy := range Strategies() {
		t.Run(string(strategy), func(t *testing.T) {
			result := engine.Align(primary, secondary, strategy, DefaultConfig())
			assertCoverage(t, primary, secondary, result.Pairs)
		})
	}
}

func assertCoverage(t *testing.T, primary, secondary []Cue, pairs []AlignedPair) {
	t.Helper()
	seenPrimary := map[string]int{}
	seenSecondary := map[string]int{}
	for _, pair := range pairs {
		if !pair.HasPrimary && !pair.HasSecondary {
			t.Fatalf("empty pair in output: %+v", pair)
		}
		if pair.HasPrimary {
			seenPrimary[pair.PrimaryText]++
		}
		if pair.HasSecondary {
			seenSecondary[pair.SecondaryText]++
		}
	}
	for _, cue := range primary {
		if seenPrimary[cue.Text] != 1 {
			t.Errorf("primary cue %q appears %d times", cue.Text, seenPrimary[cue.Text])
		}
	}
	for _, cue := range secondary {
		if seenSecondary[cue.Text] != 1 {
			t.Errorf("secondary cue %q appears %d times", cue.Text, seenSecondary[cue.Text])
		}
	}
	if len(seenPrimary) != len(primary) || len(seenSecondary) != len(secondary) {
		t.Errorf("unexpected cues in output: primary=%v secondary=%v", seenPrimary, seenSecondary)
	}
}

func TestDeterminism(t *testing.T) {
	engine := NewEngine(nil)
	primary := englishTrack()
	secondary := spanishTrack()
	for _, strategy := range Strategies() {
		t.Run(string(strategy), func(t *testing.T) {
			first := engine.Align(primary, secondary, strategy, DefaultConfig())
			second := engine.Align(primary, secondary, strategy, DefaultConfig())
			if !reflect.DeepEqual(first, second) {
				t.Fatalf("repeated runs differ:\n%+v\n%+v", first, second)
			}
		})
	}
}

func TestTieBreakPrefersLowestSecondaryIndex(t *testing.T) {
	engine := NewEngine(nil)
	primary := []Cue{{Start: 0, End: 2, Text: "a"}}
	secondary := []Cue{
		{Start: 0, End: 2, Text: "x"},
		{Start: 0, End: 2, Text: "y"},
	}
	result := engine.Align(primary, secondary, StrategyTime, DefaultConfig())
	if len(result.Pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %+v", result.Pairs)
	}
	if result.Pairs[0].SecondaryText != "x" || !result.Pairs[0].Paired() {
		t.Fatalf("expected first secondary to win the tie, got %+v", result.Pairs[0])
	}
	if result.Pairs[1].SecondaryText != "y" || result.Pairs[1].HasPrimary {
		t.Fatalf("expected leftover secondary-only pair, got %+v", result.Pairs[1])
	}
}

func TestGreedyExclusion(t *testing.T) {
	engine := NewEngine(nil)
	primary := []Cue{
		{Start: 0, End: 2, Text: "p1"},
		{Start: 0, End: 2, Text: "p2"},
	}
	secondary := []Cue{{Start: 0, End: 2, Text: "s1"}}
	result := engine.Align(primary, secondary, StrategyTime, DefaultConfig())
	if len(result.Pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %+v", result.Pairs)
	}
	if result.Pairs[0].PrimaryText != "p1" || result.Pairs[0].SecondaryText != "s1" {
		t.Fatalf("expected p1 to claim s1, got %+v", result.Pairs[0])
	}
	if result.Pairs[1].PrimaryText != "p2" || result.Pairs[1].HasSecondary {
		t.Fatalf("expected p2 to be primary-only, got %+v", result.Pairs[1])
	}
}

func TestTimeBelowMinScoreStaysUnpaired(t *testing.T) {
	engine := NewEngine(nil)
	primary := []Cue{{Start: 0, End: 4, Text: "long line"}}
	secondary := []Cue{{Start: 3.5, End: 4.5, Text: "late"}}
	// overlap 0.5 / avg 2.5 = 0.2
	result := engine.Align(primary, secondary, StrategyTime, DefaultConfig())
	if len(result.Pairs) != 2 {
		t.Fatalf("expected two single-sided pairs, got %+v", result.Pairs)
	}
	if result.Stats.SuccessfulAlignments != 0 {
		t.Fatalf("expected no successful alignments, got %d", result.Stats.SuccessfulAlignments)
	}
	for _, pair := range result.Pairs {
		if pair.Score != 0 {
			t.Errorf("single-sided pair should score 0, got %+v", pair)
		}
	}
}

func TestContentStrategyIgnoresTime(t *testing.T) {
	engine := NewEngine(nil)
	primary := []Cue{{Start: 0, End: 1, Text: "Where is the station?"}}
	secondary := []Cue{
		{Start: 0, End: 1, Text: "Completely unrelated words"},
		{Start: 50, End: 51, Text: "where is the station"},
	}
	result := engine.Align(primary, secondary, StrategyContent, DefaultConfig())
	var paired *AlignedPair
	for i := range result.Pairs {
		if result.Pairs[i].Paired() {
			paired = &result.Pairs[i]
		}
	}
	if paired == nil {
		t.Fatalf("expected a content pair, got %+v", result.Pairs)
	}
	if paired.SecondaryText != "where is the station" {
		t.Fatalf("paired with %q", paired.SecondaryText)
	}
	if paired.Start != 0 || paired.End != 51 {
		t.Fatalf("expected span [0, 51], got [%v, %v]", paired.Start, paired.End)
	}
}

func TestContentStrategyThreshold(t *testing.T) {
	engine := NewEngine(nil)
	primary := []Cue{{Start: 0, End: 2, Text: "Hello"}}
	secondary := []Cue{{Start: 0, End: 2, Text: "Bonjour"}}
	result := engine.Align(primary, secondary, StrategyContent, DefaultConfig())
	if len(result.Pairs) != 2 || result.Stats.SuccessfulAlignments != 0 {
		t.Fatalf("expected dissimilar text to stay unpaired, got %+v", result.Pairs)
	}

	lenient := DefaultConfig()
	lenient.ContentThreshold = 0
	result = engine.Align(primary, secondary, StrategyContent, lenient)
	if len(result.Pairs) != 1 || !result.Pairs[0].Paired() {
		t.Fatalf("expected zero threshold to pair, got %+v", result.Pairs)
	}
}

func TestEnhancedContentStrategy(t *testing.T) {
	engine := NewEngine(nil)
	primary := []Cue{
		{Start: 0, End: 2, Text: "Captain Rogers, report to the bridge."},
		{Start: 3, End: 5, Text: "Engines are offline."},
	}
	secondary := []Cue{
		{Start: 40, End: 42, Text: "Engines are offline!"},
		{Start: 10, End: 12, Text: "Captain Rogers, report to the bridge!"},
	}
	result := engine.Align(primary, secondary, StrategyEnhancedContent, DefaultConfig())
	if result.Stats.SuccessfulAlignments != 2 {
		t.Fatalf("expected both lines paired, got %+v", result.Pairs)
	}
	for _, pair := range result.Pairs {
		if pair.Method != StrategyEnhancedContent {
			t.Errorf("method = %q", pair.Method)
		}
		if pair.Score < DefaultConfig().ContentThreshold || pair.Score > 1+1e-9 {
			t.Errorf("score out of range: %v", pair.Score)
		}
	}
	if result.Stats.ContentBasedAlignments != 2 {
		t.Errorf("enhanced-content pairs should count as content-based, got %+v", result.Stats)
	}
}

func TestEnhancedContentScoreWeights(t *testing.T) {
	if got := EnhancedContentScore("", ""); math.Abs(got-0.2) > 1e-9 {
		// content 0, keyword 0, structural 1
		t.Fatalf("EnhancedContentScore(empty) = %v, want 0.2", got)
	}
	if got := EnhancedContentScore("Paris tonight", "Paris tonight"); math.Abs(got-1) > 1e-9 {
		t.Fatalf("EnhancedContentScore(identical) = %v, want 1", got)
	}
}

func TestHybridPositionBreaksWeakSignals(t *testing.T) {
	engine := NewEngine(nil)
	// No time overlap and no shared text: position alone decides, and it is
	// below the default floor, so lower the floor.
	primary := []Cue{
		{Start: 0, End: 1, Text: "aaa"},
		{Start: 10, End: 11, Text: "bbb"},
	}
	secondary := []Cue{
		{Start: 100, End: 101, Text: "xxx"},
		{Start: 200, End: 201, Text: "yyy"},
	}
	cfg := DefaultConfig()
	cfg.MinAlignmentScore = 0.05
	result := engine.Align(primary, secondary, StrategyHybrid, cfg)
	got := map[string]string{}
	for _, pair := range result.Pairs {
		if pair.Paired() {
			got[pair.PrimaryText] = pair.SecondaryText
		}
	}
	if got["aaa"] != "xxx" || got["bbb"] != "yyy" {
		t.Fatalf("expected positional pairing, got %v", got)
	}
}

func TestHybridScore(t *testing.T) {
	a := Cue{Start: 0, End: 2, Text: "same words"}
	b := Cue{Start: 0, End: 2, Text: "same words"}
	if got := HybridScore(a, b, 1); math.Abs(got-1) > 1e-9 {
		t.Fatalf("HybridScore(identical) = %v, want 1", got)
	}
	c := Cue{Start: 5, End: 6, Text: ""}
	if got := HybridScore(a, c, 0.5); math.Abs(got-0.05) > 1e-9 {
		t.Fatalf("HybridScore(disjoint) = %v, want 0.05", got)
	}
}

func TestUnsortedInputProducesSortedOutput(t *testing.T) {
	engine := NewEngine(nil)
	primary := englishTrack()
	secondary := spanishTrack()
	reverse(primary)
	reverse(secondary)
	for _, strategy := range Strategies() {
		result := engine.Align(primary, secondary, strategy, DefaultConfig())
		for i := 1; i < len(result.Pairs); i++ {
			if result.Pairs[i].Start < result.Pairs[i-1].Start {
				t.Fatalf("%s: output not sorted at %d: %+v", strategy, i, result.Pairs)
			}
		}
		assertCoverage(t, primary, secondary, result.Pairs)
	}
}

func reverse(cues []Cue) {
	for i, j := 0, len(cues)-1; i < j; i, j = i+1, j-1 {
		cues[i], cues[j] = cues[j], cues[i]
	}
}

func TestMatcherForIsExhaustive(t *testing.T) {
	for _, strategy := range Strategies() {
		m := matcherFor(strategy)
		if m == nil {
			t.Fatalf("no matcher for %q", strategy)
		}
		pairs := m.align([]Cue{{Start: 0, End: 1, Text: "x"}}, []Cue{{Start: 0, End: 1, Text: "x"}}, DefaultConfig())
		if len(pairs) == 0 || pairs[0].Method != strategy {
			t.Fatalf("matcher for %q tagged pairs %v", strategy, pairs)
		}
	}
	if _, ok := matcherFor(Strategy("bogus")).(hybridMatcher); !ok {
		t.Fatal("unknown strategy should use the hybrid matcher")
	}
}

func BenchmarkHybridAlign(b *testing.B) {
	engine := NewEngine(nil)
	primary := make([]Cue, 200)
	secondary := make([]Cue, 200)
	for i := range primary {
		start := float64(i) * 3
		primary[i] = Cue{Start: start, End: start + 2.5, Text: fmt.Sprintf("line number %d of the episode", i)}
		secondary[i] = Cue{Start: start + 0.2, End: start + 2.6, Text: fmt.Sprintf("línea número %d del episodio", i)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Align(primary, secondary, StrategyHybrid, DefaultConfig())
	}
}
