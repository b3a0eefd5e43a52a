package cmd

import (
	"fmt"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/config"
	"github.com/rnwolfe/deckstats/internal/deck"
	"github.com/rnwolfe/deckstats/internal/heatmap"
	"github.com/rnwolfe/deckstats/internal/tui"
	"github.com/rnwolfe/deckstats/internal/ui"
	"github.com/spf13/cobra"
)

// panelView renders one dashboard panel for a non-interactive command.
type panelView func(cfg *config.Config, data *deck.Dataset, st tui.ChartStyle, t time.Time) (string, error)

// newPanelCmd builds a command that prints a single panel.
func newPanelCmd(use, short, long string, view panelView) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPanel(view)
		},
	}
}

func runPanel(view panelView) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	t := now()
	data, err := loadDataset(cfg, t)
	if err != nil {
		return err
	}
	out, err := view(cfg, data, chartStyle(cfg), t)
	if err != nil {
		return err
	}
	fmt.Print("\n" + out + "\n")
	return nil
}

var (
	heatmapDate string
	reviewsDays int
)

var heatmapCmd = newPanelCmd("heatmap", "Show the study activity heatmap",
	`Show a GitHub-style heatmap of daily study activity, one block per month.

Each column is a week bucket within the month (days 1-7, 8-14, ...) and
cell shading is relative to the busiest day in range. Use --date to mark a
day and print its details.`,
	renderHeatmap)

var heatmapSchemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the available color schemes",
	Args:  cobra.NoArgs,
	RunE:  runHeatmapSchemes,
}

var reviewsCmd = newPanelCmd("reviews", "Show recent review counts", "",
	func(_ *config.Config, d *deck.Dataset, st tui.ChartStyle, _ time.Time) (string, error) {
		if reviewsDays <= 0 {
			return "", fmt.Errorf("--days must be positive, got %d", reviewsDays)
		}
		return tui.ReviewsPanel(d.Activity, reviewsDays, st), nil
	})

var retentionCmd = newPanelCmd("retention", "Show monthly retention", "",
	func(_ *config.Config, d *deck.Dataset, st tui.ChartStyle, _ time.Time) (string, error) {
		return tui.RetentionPanel(d.Retention, st), nil
	})

var forecastCmd = newPanelCmd("forecast", "Show cards due over the next week", "",
	func(_ *config.Config, d *deck.Dataset, st tui.ChartStyle, t time.Time) (string, error) {
		return tui.ForecastPanel(d.Forecast, t, st), nil
	})

var patternsCmd = newPanelCmd("patterns", "Show study time by hour and answer times", "",
	func(_ *config.Config, d *deck.Dataset, st tui.ChartStyle, _ time.Time) (string, error) {
		return tui.PatternsPanel(d.StudyTime, d.ResponseTimes, st), nil
	})

var cardsCmd = newPanelCmd("cards", "Show card states and ease factors", "",
	func(_ *config.Config, d *deck.Dataset, st tui.ChartStyle, _ time.Time) (string, error) {
		return tui.CardsPanel(d.CardStates, d.EaseFactors, st), nil
	})

func init() {
	heatmapCmd.Flags().StringVar(&heatmapDate, "date", "", "Mark a day (YYYY-MM-DD) and show its details")
	heatmapCmd.AddCommand(heatmapSchemesCmd)
	reviewsCmd.Flags().IntVar(&reviewsDays, "days", 30, "Number of days to show")

	for _, c := range []*cobra.Command{heatmapCmd, reviewsCmd, retentionCmd, forecastCmd, patternsCmd, cardsCmd} {
		rootCmd.AddCommand(c)
	}
}

func renderHeatmap(cfg *config.Config, d *deck.Dataset, st tui.ChartStyle, t time.Time) (string, error) {
	var selected time.Time
	if heatmapDate != "" {
		day, err := time.ParseInLocation(activity.DateLayout, heatmapDate, t.Location())
		if err != nil {
			return "", fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", heatmapDate)
		}
		selected = day
	}

	out := tui.HeatmapPanel(d.Activity, rangeFor(cfg), selected, t, st)
	if selected.IsZero() {
		return out, nil
	}
	for _, s := range d.Activity {
		if activity.SameDay(s.Date, selected) {
			return out + "\n  " + tui.DayDetail(s, st.ValueLabel) + "\n", nil
		}
	}
	return out + "\n  " + tui.DayDetail(activity.Sample{Date: selected}, st.ValueLabel) + "\n", nil
}

func runHeatmapSchemes(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ui.Puts("")
	for _, sc := range heatmap.Schemes() {
		marker := "  "
		if string(sc) == cfg.Heatmap.Scheme {
			marker = ui.Accent.Render(ui.IconArrow + " ")
		}
		ui.Putsf("  %s%-8s %s", marker, sc, tui.SchemeSwatch(sc, ui.ColorEnabled()))
	}
	ui.Tip(fmt.Sprintf("%s to change it.", ui.Accent.Render("deckstats config set heatmap.scheme")))
	ui.Puts("")
	return nil
}
