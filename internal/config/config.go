package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/snaplane/internal/carousel"
)

// Config captures the carousel layout and the shell's runtime settings.
type Config struct {
	Layout          carousel.Layout
	SettleDelay     time.Duration
	CoordinateSpace string
	ItemsFile       string
	PollEvery       time.Duration
	DebugLog        string
}

const (
	defaultConfigPath   = "~/.config/snaplane/config.toml"
	defaultItemsFile    = "~/.config/snaplane/items.txt"
	defaultItemWidth    = 24
	defaultItemSpacing  = 2
	defaultEdgesOverlap = 4
	defaultSettle       = 500 * time.Millisecond
	defaultPollEvery    = 2 * time.Second
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Layout: carousel.Layout{
			Sizing:       carousel.SizingFixed,
			ItemWidth:    defaultItemWidth,
			ItemSpacing:  defaultItemSpacing,
			EdgesOverlap: defaultEdgesOverlap,
		},
		SettleDelay:     defaultSettle,
		CoordinateSpace: carousel.DefaultSpace,
		ItemsFile:       mustExpand(defaultItemsFile),
		PollEvery:       defaultPollEvery,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ItemWidth       *float64 `toml:"item_width"`
		ItemSpacing     *float64 `toml:"item_spacing"`
		EdgesOverlap    *float64 `toml:"edges_overlap"`
		Sizing          string   `toml:"sizing"`
		SettleMS        int      `toml:"settle_ms"`
		CoordinateSpace string   `toml:"coordinate_space"`
		ItemsFile       string   `toml:"items_file"`
		PollSeconds     int      `toml:"poll_seconds"`
		DebugLog        string   `toml:"debug_log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.ItemWidth != nil {
		cfg.Layout.ItemWidth = math.Max(0, *raw.ItemWidth)
	}
	if raw.ItemSpacing != nil {
		cfg.Layout.ItemSpacing = math.Abs(*raw.ItemSpacing)
	}
	if raw.EdgesOverlap != nil {
		cfg.Layout.EdgesOverlap = math.Max(0, *raw.EdgesOverlap)
	}

	sizing, ok := carousel.ParseSizing(strings.ToLower(strings.TrimSpace(raw.Sizing)))
	if !ok {
		return Config{}, fmt.Errorf("parse config: unknown sizing %q", raw.Sizing)
	}
	cfg.Layout.Sizing = sizing

	if raw.SettleMS > 0 {
		cfg.SettleDelay = time.Duration(raw.SettleMS) * time.Millisecond
	}
	if space := strings.TrimSpace(raw.CoordinateSpace); space != "" {
		cfg.CoordinateSpace = space
	}
	if items := strings.TrimSpace(raw.ItemsFile); items != "" {
		cfg.ItemsFile = mustExpand(items)
	}
	if raw.PollSeconds > 0 {
		cfg.PollEvery = time.Duration(raw.PollSeconds) * time.Second
	}
	if debugLog := strings.TrimSpace(raw.DebugLog); debugLog != "" {
		cfg.DebugLog = mustExpand(debugLog)
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
