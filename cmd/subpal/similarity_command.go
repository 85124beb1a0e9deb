package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subpal/internal/alignment"
	"subpal/internal/config"
	"subpal/internal/textutil"
)

type similarityReport struct {
	Text1   string             `json:"text1"`
	Text2   string             `json:"text2"`
	Metrics []similarityMetric `json:"metrics"`
}

type similarityMetric struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

func newSimilarityCommand() *cobra.Command {
	var format string
	var span1, span2 string

	cmd := &cobra.Command{
		Use:   "similarity <text1> <text2>",
		Short: "Show every similarity metric for two caption texts",
		Long: `Similarity prints the component text metrics and the blended scores the
content, enhanced-content, and hybrid strategies would assign. Pass --span1
and --span2 ("start-end" in seconds) to include the time overlap and hybrid
scores.`,
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			a := alignment.Cue{Text: args[0]}
			b := alignment.Cue{Text: args[1]}
			timed := span1 != "" || span2 != ""
			if timed {
				var err error
				if a.Start, a.End, err = parseSpan(span1); err != nil {
					return fmt.Errorf("--span1: %w", err)
				}
				if b.Start, b.End, err = parseSpan(span2); err != nil {
					return fmt.Errorf("--span2: %w", err)
				}
			}

			report := similarityReport{
				Text1:   args[0],
				Text2:   args[1],
				Metrics: similarityMetrics(a, b, timed),
			}

			switch strings.ToLower(strings.TrimSpace(format)) {
			case config.FormatJSON:
				return writeJSON(cmd.OutOrStdout(), report)
			case "", config.FormatTable:
				rows := make([][]string, 0, len(report.Metrics))
				for _, m := range report.Metrics {
					rows = append(rows, []string{m.Name, strconv.FormatFloat(m.Score, 'f', 4, 64)})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]column{{Header: "Metric"}, {Header: "Score", Align: alignRight}},
					rows, nil,
				))
				return nil
			default:
				return fmt.Errorf("unsupported format %q (want table or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	cmd.Flags().StringVar(&span1, "span1", "", "Timing of the first text as start-end seconds")
	cmd.Flags().StringVar(&span2, "span2", "", "Timing of the second text as start-end seconds")
	return cmd
}

func similarityMetrics(a, b alignment.Cue, timed bool) []similarityMetric {
	pa, pb := textutil.Preprocess(a.Text), textutil.Preprocess(b.Text)
	metrics := []similarityMetric{
		{"jaro", textutil.Jaro(pa, pb)},
		{"levenshtein", textutil.LevenshteinSimilarity(pa, pb)},
		{"word_cosine", textutil.WordCosine(pa, pb)},
		{"token_cosine", textutil.CosineSimilarity(textutil.NewFingerprint(a.Text), textutil.NewFingerprint(b.Text))},
		{"keyword", textutil.KeywordSimilarity(a.Text, b.Text)},
		{"structural", textutil.StructuralSimilarity(a.Text, b.Text)},
		{"content", textutil.ContentSimilarity(a.Text, b.Text)},
		{"enhanced_content", alignment.EnhancedContentScore(a.Text, b.Text)},
	}
	if timed {
		metrics = append(metrics,
			similarityMetric{"time_overlap", alignment.TimeOverlapScore(a, b)},
			similarityMetric{"hybrid", alignment.HybridScore(a, b, 1)},
		)
	}
	return metrics
}

// parseSpan reads "start-end" in seconds, e.g. "1.5-3".
func parseSpan(value string) (float64, float64, error) {
	startText, endText, ok := strings.Cut(strings.TrimSpace(value), "-")
	if !ok {
		return 0, 0, fmt.Errorf("want start-end seconds, got %q", value)
	}
	start, err := strconv.ParseFloat(strings.TrimSpace(startText), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("start: %w", err)
	}
	end, err := strconv.ParseFloat(strings.TrimSpace(endText), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("end: %w", err)
	}
	if end < start {
		return 0, 0, fmt.Errorf("end %v precedes start %v", end, start)
	}
	return start, end, nil
}
