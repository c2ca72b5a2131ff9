package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cityline/cityline/internal/config"
	"github.com/cityline/cityline/internal/logging"
	"github.com/cityline/cityline/internal/nav"
	"github.com/cityline/cityline/internal/pages"
	"github.com/cityline/cityline/internal/prefs"
	"github.com/cityline/cityline/internal/ui"
)

// Options configure the cityline application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/cityline/prefs.toml
	ThemeName  string        // overrides config and prefs when set
	TickEvery  time.Duration // zero uses the configured or default interval
	Trace      bool          // force trace logging on regardless of config
}

// Run boots the cityline TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Configure(cfg.LogFile)
	logging.SetTraceEnabled(cfg.Trace || opts.Trace)

	userPrefs := prefs.Load(opts.PrefsPath)

	// Theme precedence: flag > saved preference.
	theme := userPrefs.Theme
	if strings.TrimSpace(opts.ThemeName) != "" {
		theme = opts.ThemeName
	}

	tick := cfg.Tick
	if opts.TickEvery > 0 {
		tick = opts.TickEvery
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Entries:   nav.Entries(),
		Pages:     pages.NewTable(),
		Tick:      tick,
		ThemeName: theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
