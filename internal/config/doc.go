// Package config handles loading and parsing the snaplane configuration file.
//
// # Overview
//
// This package reads a TOML file describing the carousel layout and the
// shell's runtime settings. Every field is optional; missing or empty values
// keep their defaults.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/snaplane/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Item width: 24 cells, spacing 2, edge overlap 4, fixed sizing
//   - Settle window: 500ms
//   - Coordinate space: "carousel"
//   - Items file: ~/.config/snaplane/items.txt
//   - Poll interval: 2s
//   - Debug log: disabled
//
// # TOML Format
//
//	item_width = 24
//	item_spacing = 2
//	edges_overlap = 4
//	sizing = "fixed"        # or "viewport"
//	settle_ms = 500
//	coordinate_space = "carousel"
//	items_file = "~/.config/snaplane/items.txt"
//	poll_seconds = 2
//	debug_log = "~/snaplane.log"
//
// # Normalization
//
// Layout values never make Load fail. The absolute value of item_spacing is
// used, and negative item_width or edges_overlap clamp to zero. An unknown
// sizing value is a parse error because there is no sensible guess for it.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML syntax errors and unknown sizing values
//
// All errors are wrapped with context using fmt.Errorf and %w.
package config
