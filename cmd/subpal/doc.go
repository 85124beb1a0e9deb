// Package main hosts the subpal CLI entrypoint and command graph.
//
// The Cobra command tree loads two caption files, aligns them with the
// configured strategy, and renders the bilingual result as a table, JSON,
// SubRip, WebVTT, or plain text. It also exposes similarity diagnostics,
// caption file inspection, and configuration scaffolding. Configuration and
// logger setup live here; alignment itself stays in internal/alignment.
package main
