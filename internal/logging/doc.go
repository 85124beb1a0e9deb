// Package logging assembles structured slog loggers and attribute helpers used
// across subpal.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so alignment runs can tag log
// lines with a correlation ID. The package also provides a no-op logger for
// tests and library callers that do not care about output.
package logging
