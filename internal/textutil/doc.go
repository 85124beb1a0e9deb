// Package textutil provides the text similarity primitives used to pair
// captions across languages, plus small text helpers shared by the CLI.
//
// The primary use cases are:
//   - Character-level similarity (Jaro, Levenshtein) between caption lines
//   - Term-frequency fingerprints and cosine similarity between token bags
//   - Keyword overlap and structural (shape) similarity between lines
//   - Sanitizing filenames for rendered output
//
// Content comparisons run on preprocessed text: NFKC-normalized, lowercased,
// stripped of punctuation, and whitespace-collapsed. Every function is pure
// and safe for concurrent use.
package textutil
