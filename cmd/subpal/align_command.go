package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subpal/internal/alignment"
	"subpal/internal/config"
	"subpal/internal/language"
	"subpal/internal/logging"
	"subpal/internal/subtitles"
)

type alignOptions struct {
	strategy         string
	format           string
	output           string
	primaryLang      string
	secondaryLang    string
	timeTolerance    float64
	contentThreshold float64
	minScore         float64
	showStats        bool
	raw              bool
}

// alignReport is the JSON shape of an align run.
type alignReport struct {
	RunID     string                  `json:"run_id"`
	Strategy  alignment.Strategy      `json:"strategy"`
	Config    alignment.Config        `json:"config"`
	Primary   trackSummary            `json:"primary"`
	Secondary trackSummary            `json:"secondary"`
	Pairs     []alignment.AlignedPair `json:"pairs"`
	Stats     alignment.Stats         `json:"stats"`
}

type trackSummary struct {
	Path           string `json:"path"`
	Format         string `json:"format"`
	Language       string `json:"language,omitempty"`
	Cues           int    `json:"cues"`
	Skipped        int    `json:"skipped_blocks,omitempty"`
	Advertisements int    `json:"advertisements_removed,omitempty"`
	TimingIssues   int    `json:"timing_issues,omitempty"`
}

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var opts alignOptions

	cmd := &cobra.Command{
		Use:   "align <primary> <secondary>",
		Short: "Align two caption files into bilingual pairs",
		Long: `Align pairs every cue of the primary caption file with at most one cue of
the secondary file. Strategies: time, content, enhanced-content, hybrid.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlign(cmd, ctx, args[0], args[1], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.strategy, "strategy", "s", "", "Alignment strategy (time, content, enhanced-content, hybrid)")
	flags.StringVarP(&opts.format, "format", "f", "", "Output format (table, json, srt, vtt, plain)")
	flags.StringVarP(&opts.output, "output", "o", "", "Write output to this file (\"-\" for stdout)")
	flags.StringVar(&opts.primaryLang, "primary-lang", "", "Primary track language (default: from config or file name)")
	flags.StringVar(&opts.secondaryLang, "secondary-lang", "", "Secondary track language (default: from config or file name)")
	flags.Float64Var(&opts.timeTolerance, "time-tolerance", 0, "Boundary slack in seconds")
	flags.Float64Var(&opts.contentThreshold, "content-threshold", 0, "Minimum text score for content strategies (0-1)")
	flags.Float64Var(&opts.minScore, "min-score", 0, "Minimum score for time and hybrid strategies (0-1)")
	flags.BoolVar(&opts.showStats, "stats", false, "Print alignment statistics")
	flags.BoolVar(&opts.raw, "raw", false, "Keep markup and advertisement cues")
	return cmd
}

func runAlign(cmd *cobra.Command, cmdCtx *commandContext, primaryPath, secondaryPath string, opts alignOptions) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	runCtx, logger, closeLog, err := cmdCtx.runLogger(cmd)
	if err != nil {
		return err
	}
	defer closeLog()
	runID, _ := logging.RunIDFromContext(runCtx)

	strategy, alignCfg, err := alignment.FromConfig(cfg)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strategy") {
		parsed, known := alignment.LookupStrategy(opts.strategy)
		if !known {
			parsed = alignment.ParseStrategy(opts.strategy)
			logging.WarnWithContext(logger, "unknown strategy; using hybrid", "strategy_fallback",
				logging.String(logging.FieldStrategy, opts.strategy),
				logging.String(logging.FieldErrorHint, "use time, content, enhanced-content, or hybrid"),
				logging.String(logging.FieldImpact, "captions are aligned with the hybrid strategy"),
			)
		}
		strategy = parsed
	}
	alignCfg = alignCfg.Apply(flagPatch(cmd, opts))
	if err := alignCfg.Validate(); err != nil {
		return fmt.Errorf("alignment flags: %w", err)
	}

	format, err := resolveFormat(opts.format, cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	primary, err := loadTrack(logger, "primary", primaryPath, firstNonEmpty(opts.primaryLang, cfg.Captions.PrimaryLanguage), cfg, opts.raw)
	if err != nil {
		return err
	}
	secondary, err := loadTrack(logger, "secondary", secondaryPath, firstNonEmpty(opts.secondaryLang, cfg.Captions.SecondaryLanguage), cfg, opts.raw)
	if err != nil {
		return err
	}
	logTrack(logger, "primary", primary)
	logTrack(logger, "secondary", secondary)

	if err := runCtx.Err(); err != nil {
		return err
	}

	engine := alignment.NewEngine(logger)
	result := engine.Align(primary.Cues, secondary.Cues, strategy, alignCfg)
	logIssues(logger, "primary", result.PrimaryIssues)
	logIssues(logger, "secondary", result.SecondaryIssues)

	logger.Info("alignment finished",
		logging.Args(
			logging.String(logging.FieldStrategy, string(result.Strategy)),
			logging.Int("pairs", result.Stats.TotalPairs),
			logging.Int("successful", result.Stats.SuccessfulAlignments),
			logging.String("success_rate", formatPercent(result.Stats.SuccessRate())),
		)...,
	)

	dest, err := outputPath(opts.output, format, cfg, primaryPath, primary.Language, secondary.Language)
	if err != nil {
		return err
	}
	w, closeOut, err := openOutput(dest, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	switch format {
	case config.FormatJSON:
		report := alignReport{
			RunID:     runID,
			Strategy:  result.Strategy,
			Config:    result.Config,
			Primary:   summarizeTrack(primary, len(result.PrimaryIssues)),
			Secondary: summarizeTrack(secondary, len(result.SecondaryIssues)),
			Pairs:     result.Pairs,
			Stats:     result.Stats,
		}
		err = writeJSON(w, report)
	case config.FormatSRT:
		err = subtitles.WriteBilingualSRT(w, result.Pairs)
	case config.FormatVTT:
		err = subtitles.WriteBilingualVTT(w, result.Pairs)
	case config.FormatTable:
		_, err = fmt.Fprintln(w, renderPairsTable(result.Pairs, primary.Language, secondary.Language))
	default:
		err = writePlainPairs(w, result.Pairs)
	}
	if closeErr := closeOut(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}
	if dest != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d pairs to %s\n", len(result.Pairs), dest)
	}

	if opts.showStats && format != config.FormatJSON {
		statsOut := cmd.OutOrStdout()
		if dest == "" && (format == config.FormatSRT || format == config.FormatVTT) {
			statsOut = cmd.ErrOrStderr()
		}
		fmt.Fprintln(statsOut, renderStatsTable(result.Stats))
	}
	return nil
}

func flagPatch(cmd *cobra.Command, opts alignOptions) alignment.ConfigPatch {
	var patch alignment.ConfigPatch
	if cmd.Flags().Changed("time-tolerance") {
		patch.TimeTolerance = &opts.timeTolerance
	}
	if cmd.Flags().Changed("content-threshold") {
		patch.ContentThreshold = &opts.contentThreshold
	}
	if cmd.Flags().Changed("min-score") {
		patch.MinAlignmentScore = &opts.minScore
	}
	return patch
}

// loadTrack reads one caption file with the configured cleanup. Failures are
// logged with a captions_load_failed event before being returned.
func loadTrack(logger *slog.Logger, role, path, lang string, cfg *config.Config, raw bool) (subtitles.Track, error) {
	opts := subtitles.LoadOptions{
		StripMarkup:          cfg.Captions.StripMarkup && !raw,
		FilterAdvertisements: cfg.Captions.FilterAdvertisements && !raw,
		Language:             lang,
	}
	track, err := subtitles.LoadCues(path, opts)
	if err != nil {
		logging.ErrorWithContext(logger, "captions could not be loaded", "captions_load_failed",
			logging.String(logging.FieldTrack, role),
			logging.String("path", path),
			logging.String(logging.FieldErrorHint, "check that the file exists and is SRT or WebVTT"),
			logging.Error(err),
		)
		return subtitles.Track{}, err
	}
	return track, nil
}

func logTrack(logger *slog.Logger, role string, track subtitles.Track) {
	logger.Debug("captions loaded",
		logging.Args(
			logging.String(logging.FieldTrack, role),
			logging.String("path", track.Path),
			logging.String("format", string(track.Format)),
			logging.String("language", track.Language),
			logging.Int("cues", len(track.Cues)),
			logging.Int("advertisements", track.Advertisements),
			logging.Int("blank", track.Blank),
		)...,
	)
	if track.Skipped > 0 {
		logging.WarnWithContext(logger, "skipped malformed caption blocks", "caption_blocks_skipped",
			logging.String(logging.FieldTrack, role),
			logging.String("path", track.Path),
			logging.Int("skipped", track.Skipped),
			logging.String(logging.FieldErrorHint, "check the file for broken timing lines"),
			logging.String(logging.FieldImpact, "skipped blocks are missing from the output"),
		)
	}
	if len(track.Cues) == 0 {
		logging.WarnWithContext(logger, "caption file has no cues", "caption_track_empty",
			logging.String(logging.FieldTrack, role),
			logging.String("path", track.Path),
			logging.String(logging.FieldImpact, "no pairs will be produced"),
		)
	}
}

func logIssues(logger *slog.Logger, role string, issues []alignment.CueIssue) {
	for _, issue := range issues {
		logging.WarnWithContext(logger, "coerced malformed cue timing", "cue_timing_coerced",
			logging.String(logging.FieldTrack, role),
			logging.Int("cue", issue.Index+1),
			logging.String("reason", issue.Reason),
			logging.String(logging.FieldErrorHint, "fix the cue timestamps in the source file"),
			logging.String(logging.FieldImpact, "the cue was aligned with corrected timing"),
		)
	}
}

func summarizeTrack(track subtitles.Track, issues int) trackSummary {
	return trackSummary{
		Path:           track.Path,
		Format:         string(track.Format),
		Language:       track.Language,
		Cues:           len(track.Cues),
		Skipped:        track.Skipped,
		Advertisements: track.Advertisements,
		TimingIssues:   issues,
	}
}

func renderPairsTable(pairs []alignment.AlignedPair, primaryLang, secondaryLang string) string {
	columns := []column{
		{Header: "#", Align: alignRight},
		{Header: "Start", Align: alignRight},
		{Header: "End", Align: alignRight},
		{Header: trackHeader("Primary", primaryLang), MaxWidth: 40},
		{Header: trackHeader("Secondary", secondaryLang), MaxWidth: 40},
		{Header: "Score", Align: alignRight},
		{Header: "Method"},
	}
	rows := make([][]string, 0, len(pairs))
	for i, pair := range pairs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			formatSeconds(pair.Start),
			formatSeconds(pair.End),
			pair.PrimaryText,
			pair.SecondaryText,
			strconv.FormatFloat(pair.Score, 'f', 3, 64),
			string(pair.Method),
		})
	}
	return renderTable(columns, rows, nil)
}

func trackHeader(role, lang string) string {
	if lang == "" {
		return role
	}
	return role + " · " + language.Label(lang)
}

func renderStatsTable(stats alignment.Stats) string {
	columns := []column{{Header: "Metric"}, {Header: "Value", Align: alignRight}}
	rows := [][]string{
		{"Total pairs", strconv.Itoa(stats.TotalPairs)},
		{"Both languages", strconv.Itoa(stats.SuccessfulAlignments)},
		{"Time-based", strconv.Itoa(stats.TimeBasedAlignments)},
		{"Content-based", strconv.Itoa(stats.ContentBasedAlignments)},
		{"Hybrid", strconv.Itoa(stats.HybridAlignments)},
		{"Average score", strconv.FormatFloat(stats.AverageScore, 'f', 3, 64)},
	}
	return renderTable(columns, rows, []string{"Success rate", formatPercent(stats.SuccessRate())})
}

func writePlainPairs(w io.Writer, pairs []alignment.AlignedPair) error {
	var b strings.Builder
	for _, pair := range pairs {
		fmt.Fprintf(&b, "[%s -> %s] %s | %s\n",
			formatSeconds(pair.Start),
			formatSeconds(pair.End),
			oneLine(pair.PrimaryText),
			oneLine(pair.SecondaryText),
		)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func oneLine(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return "-"
	}
	return text
}

func formatPercent(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', 1, 64) + "%"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
