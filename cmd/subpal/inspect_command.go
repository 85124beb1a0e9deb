package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"subpal/internal/alignment"
	"subpal/internal/config"
	"subpal/internal/language"
	"subpal/internal/subtitles"
)

type inspectReport struct {
	trackSummary
	Start  float64  `json:"start"`
	End    float64  `json:"end"`
	Blank  int      `json:"blank_removed,omitempty"`
	Issues []string `json:"issues,omitempty"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var format string
	var raw bool

	cmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Summarize caption files and report malformed cues",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			_, logger, closeLog, err := ctx.runLogger(cmd)
			if err != nil {
				return err
			}
			defer closeLog()

			reports := make([]inspectReport, 0, len(args))
			for _, path := range args {
				track, err := loadTrack(logger, "inspect", path, "", cfg, raw)
				if err != nil {
					return err
				}
				reports = append(reports, inspectTrack(track))
			}

			switch strings.ToLower(strings.TrimSpace(format)) {
			case config.FormatJSON:
				return writeJSON(cmd.OutOrStdout(), reports)
			case "", config.FormatTable:
				fmt.Fprintln(cmd.OutOrStdout(), renderInspectTable(reports))
				for _, report := range reports {
					for _, issue := range report.Issues {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", report.Path, issue)
					}
				}
				return nil
			default:
				return fmt.Errorf("unsupported format %q (want table or json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Keep markup and advertisement cues")
	return cmd
}

func inspectTrack(track subtitles.Track) inspectReport {
	_, issues := alignment.SanitizeCues(track.Cues)
	start, end := track.Span()
	report := inspectReport{
		trackSummary: summarizeTrack(track, len(issues)),
		Start:        start,
		End:          end,
		Blank:        track.Blank,
	}
	for _, issue := range issues {
		report.Issues = append(report.Issues, issue.String())
	}
	return report
}

func renderInspectTable(reports []inspectReport) string {
	columns := []column{
		{Header: "File", MaxWidth: 48},
		{Header: "Format"},
		{Header: "Language"},
		{Header: "Cues", Align: alignRight},
		{Header: "Span"},
		{Header: "Ads", Align: alignRight},
		{Header: "Skipped", Align: alignRight},
		{Header: "Timing issues", Align: alignRight},
	}
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Path,
			r.Format,
			language.Label(r.Language),
			strconv.Itoa(r.Cues),
			formatSeconds(r.Start) + " - " + formatSeconds(r.End),
			strconv.Itoa(r.Advertisements),
			strconv.Itoa(r.Skipped),
			strconv.Itoa(r.TimingIssues),
		})
	}
	return renderTable(columns, rows, nil)
}
