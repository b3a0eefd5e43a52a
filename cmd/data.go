package cmd

import (
	"fmt"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/config"
	"github.com/rnwolfe/deckstats/internal/deck"
	"github.com/rnwolfe/deckstats/internal/heatmap"
	"github.com/rnwolfe/deckstats/internal/mock"
	"github.com/rnwolfe/deckstats/internal/store"
	"github.com/rnwolfe/deckstats/internal/tui"
	"github.com/rnwolfe/deckstats/internal/ui"
)

const sourceMock = "mock"

// resolveSource merges the [source] config section with the global flags.
// Flags win; --collection alone switches off configured mock mode.
func resolveSource(cfg *config.Config) config.SourceConfig {
	src := cfg.Source
	if flagCollection != "" {
		src.Collection = flagCollection
		src.Mock = false
	}
	if flagMock {
		src.Mock = true
	}
	if flagSeed.set {
		src.Seed = flagSeed.value
	}
	return src
}

// loadDataset reads statistics from the configured source.
func loadDataset(cfg *config.Config, t time.Time) (*deck.Dataset, error) {
	src := resolveSource(cfg)
	if src.UseMock() {
		return mock.New(src.Seed).Dataset(t), nil
	}

	db, err := store.Open(src.Collection)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	// Dataset validates what it derives.
	data, err := db.Dataset(t)
	if err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", src.Collection, err)
	}
	return data, nil
}

// schemeFor returns the --scheme flag value or the configured scheme.
// A hand-edited config with an unknown scheme falls back to blue.
func schemeFor(cfg *config.Config) heatmap.Scheme {
	if flagScheme.value != "" {
		return flagScheme.value
	}
	sc, err := heatmap.ParseScheme(cfg.Heatmap.Scheme)
	if err != nil {
		ui.Warn(fmt.Sprintf("%v, using %s", err, heatmap.SchemeBlue))
		return heatmap.SchemeBlue
	}
	return sc
}

// rangeFor returns the --range flag value or the configured range.
func rangeFor(cfg *config.Config) activity.Range {
	if flagRange.value != "" {
		return flagRange.value
	}
	r, err := activity.ParseRange(cfg.Heatmap.Range)
	if err != nil {
		ui.Warn(fmt.Sprintf("%v, using %s", err, activity.Range6M))
		return activity.Range6M
	}
	return r
}

// chartStyle builds renderer settings from config, flags and the terminal.
func chartStyle(cfg *config.Config) tui.ChartStyle {
	theme := heatmap.ThemeLight
	if cfg.Chart.Theme == string(heatmap.ThemeDark) {
		theme = heatmap.ThemeDark
	}
	return tui.ChartStyle{
		Scheme:        schemeFor(cfg),
		Theme:         theme,
		ValueLabel:    cfg.Heatmap.ValueLabel,
		MonthLabels:   cfg.Heatmap.ShowMonthLabels,
		WeekdayLabels: cfg.Heatmap.ShowWeekdayLabels,
		Grid:          cfg.Chart.GridLines,
		Smooth:        cfg.Chart.SmoothCurves,
		Gradients:     cfg.Chart.Gradients,
		Animations:    cfg.Chart.Animations,
		Color:         ui.ColorEnabled(),
		Width:         ui.TermWidth() - 2,
	}
}

func sourceLabel(d *deck.Dataset) string {
	if d.Source == sourceMock {
		return "sample data"
	}
	return d.Source
}
