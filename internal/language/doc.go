// Package language normalizes caption track language codes.
//
// ISO 639-1/639-2 codes, BCP 47 tags, and common English or native language
// words all resolve to a two-letter code. Display names come from
// golang.org/x/text/language/display for anything outside the built-in table.
package language
