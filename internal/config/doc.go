// Package config loads, normalizes, and validates subpal configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the SUBPAL_STRATEGY and
// SUBPAL_LOG_LEVEL environment fallbacks. Strategy aliases such as "semantic"
// are canonicalized here so downstream code only ever sees the four strategy
// names.
package config
