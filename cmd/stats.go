package cmd

import (
	"fmt"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/config"
	"github.com/rnwolfe/deckstats/internal/heatmap"
	"github.com/rnwolfe/deckstats/internal/ui"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "View streak and activity metrics",
	Long: `Show streak and activity metrics for the selected range.

Displays:
  - Current streak (consecutive days with activity, ending today)
  - Longest streak in range
  - Share of active days, total activity and the last 7 days' total
  - Daily and 7-day averages, and the change from the previous day
  - The busiest day in range

Use --range to pick 3m, 6m or 1y.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// activityStats is what `deckstats stats` prints.
type activityStats struct {
	Range         activity.Range
	Days          int
	Streak        int
	LongestStreak int
	ActiveDays    int // percent
	Total         int
	LastWeek      int
	DailyAverage  int
	MovingAverage float64
	DayChange     string
	Peak          activity.Sample
}

func computeStats(samples []activity.Sample, r activity.Range, t time.Time) activityStats {
	filtered := activity.Filter(samples, r.Since(t))
	s := activityStats{
		Range:         r,
		Days:          len(filtered),
		Streak:        activity.CurrentStreak(filtered, t),
		LongestStreak: activity.LongestStreak(filtered),
		ActiveDays:    activity.ActiveDaysPercent(filtered),
		Total:         activity.TotalValue(filtered),
		LastWeek:      activity.WindowSum(filtered, 7),
		DailyAverage:  activity.AverageValue(filtered),
	}
	if n := len(filtered); n > 0 {
		ma := activity.MovingAverage(filtered, 7)
		s.MovingAverage = ma[len(ma)-1]
		prev := 0
		if n > 1 {
			prev = filtered[n-2].Value
		}
		s.DayChange = activity.PercentChange(filtered[n-1].Value, prev)
	}
	for _, f := range filtered {
		if f.Value > s.Peak.Value {
			s.Peak = f
		}
	}
	return s
}

func runStats(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	t := now()
	data, err := loadDataset(cfg, t)
	if err != nil {
		return err
	}

	printStats(computeStats(data.Activity, rangeFor(cfg), t), cfg.Heatmap.ValueLabel)
	return nil
}

func printStats(s activityStats, valueLabel string) {
	ui.Puts("")
	ui.Puts(ui.Title.Render("  Study Stats") + "  " + ui.Muted.Render(s.Range.Label()))
	ui.Puts("")

	if s.Total == 0 {
		ui.Puts(ui.Muted.Render("  No activity in this range yet."))
		ui.Puts("")
		return
	}

	streak := ui.Plural(s.Streak, "day")
	if s.LongestStreak > 0 {
		streak += fmt.Sprintf(" %s (longest: %d)", ui.IconFire, s.LongestStreak)
	}
	ui.Kv("Streak", streak)
	ui.Kv("Active days", fmt.Sprintf("%s of %s", activity.FormatPercent(s.ActiveDays), ui.Plural(s.Days, "day")))
	ui.Kv("Total", activity.FormatNumber(s.Total)+" "+valueLabel)
	ui.Kv("Last 7 days", activity.FormatNumber(s.LastWeek))
	ui.Kv("Daily avg", fmt.Sprintf("%d", s.DailyAverage))
	ui.Kv("7-day avg", fmt.Sprintf("%.1f", s.MovingAverage))
	if s.DayChange != "" {
		ui.Kv("Last day", ui.Trend(s.DayChange))
	}
	if s.Peak.Value > 0 {
		ui.Kv("Best day", fmt.Sprintf("%s (%s)", heatmap.FormatDate(s.Peak.Date, heatmap.StyleFull), activity.FormatNumber(s.Peak.Value)))
	}
	ui.Puts("")
}
