package textutil

import (
	"math"
	"testing"
)

func TestCosineSimilarityNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
		want float64
	}{
		{"both nil", nil, nil, 0},
		{"a nil", nil, NewFingerprint("hello world"), 0},
		{"b nil", NewFingerprint("hello world"), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityIdentical(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog"
	a := NewFingerprint(text)
	b := NewFingerprint(text)

	got := CosineSimilarity(a, b)
	if got != 1 {
		t.Errorf("CosineSimilarity(identical) = %v, want 1.0", got)
	}
}

func TestWordCosineIdenticalIsExact(t *testing.T) {
	for _, text := range []string{"a b", "hello hello world", "x y z w v", "the the the cat"} {
		if got := WordCosine(text, text); got != 1 {
			t.Errorf("WordCosine(%q, %q) = %v, want exactly 1", text, text, got)
		}
	}
}

func TestCosineSimilarityCompleteDifferent(t *testing.T) {
	a := NewFingerprint("apple banana cherry")
	b := NewFingerprint("dog elephant frog")

	got := CosineSimilarity(a, b)
	if got != 0 {
		t.Errorf("CosineSimilarity(different) = %v, want 0", got)
	}
}

func TestCosineSimilarityPartialOverlap(t *testing.T) {
	a := NewFingerprint("the quick brown fox")
	b := NewFingerprint("the slow brown cat")

	got := CosineSimilarity(a, b)
	if got <= 0 || got >= 1 {
		t.Errorf("CosineSimilarity(partial) = %v, want between 0 and 1", got)
	}
}

func TestCosineSimilaritySymmetric(t *testing.T) {
	a := NewFingerprint("hello world program")
	b := NewFingerprint("world program test")

	ab := CosineSimilarity(a, b)
	ba := CosineSimilarity(b, a)

	if ab != ba {
		t.Errorf("CosineSimilarity not symmetric: (%v, %v)", ab, ba)
	}
}

func TestCosineSimilarityZeroNorm(t *testing.T) {
	// Create fingerprint with zero norm (empty tokens)
	a := &Fingerprint{tokens: map[string]float64{}, normSq: 0}
	b := NewFingerprint("hello world test")

	got := CosineSimilarity(a, b)
	if got != 0 {
		t.Errorf("CosineSimilarity(zero norm) = %v, want 0", got)
	}
}

func TestNewFingerprintEmpty(t *testing.T) {
	fp := NewFingerprint("")
	if fp != nil {
		t.Error("expected nil for empty text")
	}
}

func TestNewFingerprintShortTokens(t *testing.T) {
	// Only short tokens (< 3 chars) should result in nil
	fp := NewFingerprint("a an it to")
	if fp != nil {
		t.Error("expected nil for text with only short tokens")
	}
}

func TestNewFingerprintValid(t *testing.T) {
	fp := NewFingerprint("hello world programming")
	if fp == nil {
		t.Fatal("expected fingerprint, got nil")
	}
	if fp.normSq == 0 {
		t.Error("expected non-zero norm")
	}
	if len(fp.tokens) == 0 {
		t.Error("expected tokens")
	}
}

func TestNewFingerprintNormCalculation(t *testing.T) {
	// "hello hello world" -> hello:2, world:1
	// squared norm = 2^2 + 1^2 = 5
	fp := NewFingerprint("hello hello world")
	if fp == nil {
		t.Fatal("expected fingerprint")
	}

	if fp.normSq != 5 {
		t.Errorf("normSq = %v, want 5", fp.normSq)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "Hello World",
			want:  []string{"hello", "world"},
		},
		{
			name:  "filters short",
			input: "a to the quick fox",
			want:  []string{"the", "quick", "fox"},
		},
		{
			name:  "handles punctuation",
			input: "Hello, World! How are you?",
			want:  []string{"hello", "world", "how", "are", "you"},
		},
		{
			name:  "handles numbers",
			input: "test123 456test",
			want:  []string{"test123", "456test"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
		{
			name:  "only short tokens",
			input: "a b c",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize() = %v (len %d), want %v (len %d)",
					got, len(got), tt.want, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCosineSimilarityRealisticCaptions(t *testing.T) {
	// Same caption from two releases of the same episode.
	releaseA := `
		I told you we should have left before the storm.
		Now the bridge is gone and the road is flooded.
	`
	releaseB := `
		I told you we should have left before the storm!
		Now the bridge is gone, and the road is flooded.
	`
	// A different scene entirely.
	other := `
		Welcome back to the kitchen, today we are baking bread.
		First preheat the oven and measure the flour.
	`

	sameSim := CosineSimilarity(NewFingerprint(releaseA), NewFingerprint(releaseB))
	if sameSim < 0.99 {
		t.Errorf("same caption similarity = %v, want ~1.0", sameSim)
	}

	otherSim := CosineSimilarity(NewFingerprint(releaseA), NewFingerprint(other))
	if otherSim >= 0.5 {
		t.Errorf("different scene similarity = %v, should be < 0.5", otherSim)
	}
}

func TestWordCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"identical", "see you tomorrow", "see you tomorrow", 1},
		{"case insensitive", "See You", "see you", 1},
		{"disjoint", "hello there", "goodbye now", 0},
		{"empty", "", "hello", 0},
		{"whitespace only", "   ", "hello", 0},
		// a={i:1,am:1,here:1} b={i:1,am:1} -> 2/(sqrt3*sqrt2)
		{"partial", "i am here", "i am", 2 / (math.Sqrt(3) * math.Sqrt(2))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordCosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("WordCosine(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestContentSimilarity(t *testing.T) {
	if got := ContentSimilarity("", "hello"); got != 0 {
		t.Errorf("empty input = %v, want 0", got)
	}
	if got := ContentSimilarity("hello", ""); got != 0 {
		t.Errorf("empty input = %v, want 0", got)
	}
	if got := ContentSimilarity("?!...", "hello"); got != 0 {
		t.Errorf("punctuation-only input = %v, want 0", got)
	}
	if got := ContentSimilarity("...", "!!!"); got != 0 {
		t.Errorf("two punctuation-only inputs = %v, want 0", got)
	}
	if got := ContentSimilarity("Hello, World!", "hello world"); math.Abs(got-1) > 1e-9 {
		t.Errorf("punctuation and case should be ignored, got %v", got)
	}

	close := ContentSimilarity("We need to leave right now.", "We have to leave right now!")
	far := ContentSimilarity("We need to leave right now.", "The cake is in the oven.")
	if close <= far {
		t.Errorf("expected near-duplicate (%v) to outscore unrelated line (%v)", close, far)
	}
	if close < 0 || close > 1 || far < 0 || far > 1 {
		t.Errorf("scores out of range: %v %v", close, far)
	}
}

func TestContentSimilarityWeights(t *testing.T) {
	a, b := "martha", "marhta"
	want := 0.4*Jaro(a, b) + 0.3*LevenshteinSimilarity(a, b) + 0.3*WordCosine(a, b)
	if got := ContentSimilarity(a, b); math.Abs(got-want) > 1e-12 {
		t.Errorf("ContentSimilarity = %v, want %v", got, want)
	}
}
