package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"

	"subpal/internal/config"
	"subpal/internal/language"
	"subpal/internal/textutil"
)

// resolveFormat picks the output format: the flag wins, then output.format,
// then table on a terminal and plain text otherwise.
func resolveFormat(flagValue string, cfg *config.Config, out io.Writer) (string, error) {
	format := strings.ToLower(strings.TrimSpace(flagValue))
	if format == "" && cfg != nil {
		format = cfg.Output.Format
	}
	if format == "text" {
		format = config.FormatPlain
	}
	if format == "" {
		if isTerminal(out) {
			return config.FormatTable, nil
		}
		return config.FormatPlain, nil
	}
	if !slices.Contains(config.OutputFormats(), format) {
		return "", fmt.Errorf("unsupported format %q (want %s)", format, strings.Join(config.OutputFormats(), ", "))
	}
	return format, nil
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// outputPath decides where rendered captions go. An explicit path wins ("-"
// means stdout). Otherwise srt and vtt output lands in output.dir when it is
// configured. An empty result means stdout.
func outputPath(explicit, format string, cfg *config.Config, primaryPath, primaryLang, secondaryLang string) (string, error) {
	explicit = strings.TrimSpace(explicit)
	if explicit == "-" {
		return "", nil
	}
	if explicit != "" {
		return config.ExpandPath(explicit)
	}
	if cfg == nil || cfg.Output.Dir == "" {
		return "", nil
	}
	if format != config.FormatSRT && format != config.FormatVTT {
		return "", nil
	}
	return filepath.Join(cfg.Output.Dir, bilingualFileName(primaryPath, primaryLang, secondaryLang, format)), nil
}

// bilingualFileName turns "Movie (2019).en.srt" into "Movie (2019).en-es.srt".
func bilingualFileName(primaryPath, primaryLang, secondaryLang, ext string) string {
	base := filepath.Base(primaryPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if primaryLang != "" {
		if stem, last, ok := cutLast(base, "."); ok && language.ToISO2(last) == primaryLang {
			base = stem
		}
	}
	title := textutil.SanitizeFileName(base)
	if title == "" {
		title = "captions"
	}
	pair := textutil.SanitizeToken(primaryLang) + "-" + textutil.SanitizeToken(secondaryLang)
	return title + "." + pair + "." + ext
}

func cutLast(s, sep string) (string, string, bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}

// openOutput returns the destination writer and a close func.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return file, file.Close, nil
}

func formatSeconds(seconds float64) string {
	total := int64(seconds*1000 + 0.5)
	if total < 0 {
		total = 0
	}
	h := total / 3_600_000
	m := total / 60_000 % 60
	s := total / 1000 % 60
	ms := total % 1000
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%03d", h, m, s, ms)
	}
	return fmt.Sprintf("%02d:%02d.%03d", m, s, ms)
}
