package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/snaplane/internal/carousel"
	"github.com/five82/snaplane/internal/config"
	"github.com/five82/snaplane/internal/itemsrc"
	"github.com/five82/snaplane/internal/prefs"
	"github.com/five82/snaplane/internal/state"
	"github.com/five82/snaplane/internal/ui"
)

// Options configure the snaplane application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/snaplane/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the snaplane TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)
	applyPrefs(&cfg, userPrefs)

	closeLog, err := setupLogging(cfg.DebugLog)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	defer closeLog()

	store := &state.Store{}

	interval := cfg.PollEvery
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Do initial refresh to populate store before UI starts
	_ = refresh(store, cfg.ItemsFile, itemsrc.DefaultLimit)

	// Start background poller
	StartPoller(ctx, store, cfg.ItemsFile, itemsrc.DefaultLimit, interval)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		PollTick:  ui.DefaultUIInterval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// applyPrefs lets the sizing toggled in the UI override the config file.
func applyPrefs(cfg *config.Config, p prefs.Prefs) {
	if p.Sizing == "" {
		return
	}
	if sizing, ok := carousel.ParseSizing(p.Sizing); ok {
		cfg.Layout.Sizing = sizing
	}
}

// setupLogging routes the standard logger to path, or discards it when path
// is empty. The terminal belongs to the TUI either way.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "snaplane")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
