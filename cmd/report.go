package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/config"
	"github.com/rnwolfe/deckstats/internal/deck"
	"github.com/rnwolfe/deckstats/internal/heatmap"
	"github.com/rnwolfe/deckstats/internal/ui"
	"github.com/spf13/cobra"
)

var reportRaw bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a markdown study report",
	Long: `Print a study report as markdown: summary numbers, monthly activity,
retention, the due forecast and card states.

On a terminal the report is rendered with styling; when piped, or with
--raw, plain markdown is written so it can be saved or pasted.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "Write plain markdown even on a terminal")
	rootCmd.AddCommand(reportCmd)
}

func runReport(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	t := now()
	data, err := loadDataset(cfg, t)
	if err != nil {
		return err
	}

	style := ""
	if ui.ColorEnabled() {
		style = cfg.Chart.Theme
	}
	w := ui.NewMarkdownWriter(os.Stdout, ui.MarkdownOptions{
		Raw:   reportRaw || !ui.ColorEnabled(),
		Width: ui.TermWidth(),
		Style: style,
	})
	if err := writeReport(w, data, rangeFor(cfg), cfg.Heatmap.ValueLabel, t); err != nil {
		return err
	}
	return w.Flush()
}

// writeReport writes the markdown report for data over r.
func writeReport(w io.Writer, data *deck.Dataset, r activity.Range, valueLabel string, t time.Time) error {
	s := deck.Summarize(data, r, t)
	var b strings.Builder

	fmt.Fprintf(&b, "# Study report\n\n")
	fmt.Fprintf(&b, "_%s, %s, generated %s_\n\n", sourceLabel(data), r.Label(), heatmap.FormatDate(t, heatmap.StyleFull))

	b.WriteString("## Summary\n\n")
	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Current streak | %s |\n", ui.Plural(s.Streak, "day"))
	fmt.Fprintf(&b, "| Longest streak | %s |\n", ui.Plural(s.LongestStreak, "day"))
	fmt.Fprintf(&b, "| Total %s | %s |\n", valueLabel, activity.FormatNumber(s.TotalValue))
	fmt.Fprintf(&b, "| Active days | %s |\n", activity.FormatPercent(s.ActiveDays))
	fmt.Fprintf(&b, "| 7-day average | %.1f |\n", s.MovingAverage7d)
	fmt.Fprintf(&b, "| Cards | %s |\n", activity.FormatNumber(s.TotalCards))
	fmt.Fprintf(&b, "| Average retention | %s |\n", activity.FormatPercent(s.AvgRetention))
	fmt.Fprintf(&b, "| Due next 7 days | %s |\n", activity.FormatNumber(s.DueNextWeek))
	fmt.Fprintf(&b, "| Study time | %s |\n", activity.FormatMinutes(s.StudyMinutes))
	if s.HasPeakHour {
		fmt.Fprintf(&b, "| Peak hour | %s |\n", heatmap.FormatHour12(s.PeakHour))
	}

	groups := heatmap.Group(activity.Filter(data.Activity, r.Since(t)))
	if len(groups) > 0 {
		b.WriteString("\n## Activity by month\n\n")
		b.WriteString("| Month | Active days | Total | Best week |\n|---|---|---|---|\n")
		for _, g := range groups {
			active, total, best := 0, 0, 0
			for _, wk := range g.Weeks {
				sum := activity.TotalValue(wk.Days)
				total += sum
				best = max(best, sum)
				for _, d := range wk.Days {
					if d.Value > 0 {
						active++
					}
				}
			}
			fmt.Fprintf(&b, "| %s | %d of %d | %s | %s |\n",
				g.Label, active, g.DayCount(), activity.FormatNumber(total), activity.FormatNumber(best))
		}
	}

	if len(data.Retention) > 0 {
		b.WriteString("\n## Retention\n\n")
		for _, p := range data.Retention {
			fmt.Fprintf(&b, "- %s: %s\n", p.Label(), activity.FormatPercent(p.Retention))
		}
	}

	if len(data.Forecast) > 0 {
		b.WriteString("\n## Due forecast\n\n")
		for _, d := range data.Forecast {
			fmt.Fprintf(&b, "- %s: %s\n", heatmap.FormatDate(d.Date, heatmap.StyleShort), activity.FormatNumber(d.Count))
		}
	}

	if len(data.CardStates) > 0 {
		share := deck.StateShare(data.CardStates)
		b.WriteString("\n## Cards\n\n")
		for _, c := range data.CardStates {
			fmt.Fprintf(&b, "- %s: %s (%s)\n", c.Name, activity.FormatNumber(c.Count), activity.FormatPercent(share[c.Name]))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
