package cmd

import (
	"fmt"

	"github.com/rnwolfe/deckstats/internal/config"
	"github.com/rnwolfe/deckstats/internal/deck"
	"github.com/rnwolfe/deckstats/internal/tui"
	"github.com/rnwolfe/deckstats/internal/ui"
	"github.com/spf13/cobra"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the interactive dashboard",
	Long: `Opens the full TUI dashboard with overview cards, the activity heatmap,
review activity, retention, forecast, study patterns and card performance.

Keyboard shortcuts:
  tab / 1-7  Switch panel
  ←/→        Move the highlighted heatmap day
  s          Cycle color scheme
  g          Cycle range (3m, 6m, 1y)
  t          Toggle light/dark theme
  r          Reload data
  q / Ctrl+C Quit`,
	Args: cobra.NoArgs,
	RunE: runDash,
}

func init() {
	rootCmd.AddCommand(dashCmd)
}

// runDash is the Cobra handler for `deckstats dash`.
func runDash(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st := chartStyle(cfg)
	st.Width = 0
	res, err := tui.RunDash(tui.DashOptions{
		Load:  func() (*deck.Dataset, error) { return loadDataset(cfg, now()) },
		Style: st,
		Range: rangeFor(cfg),
		Now:   now,
	})
	if err != nil {
		return err
	}

	if tips := settingTips(cfg, res); len(tips) > 0 {
		for _, tip := range tips {
			ui.Tip(tip)
		}
		ui.Puts("")
	}
	return nil
}

// settingTips suggests the config commands that would keep the display
// settings chosen in the dashboard.
func settingTips(cfg *config.Config, res tui.DashResult) []string {
	var tips []string
	add := func(key, current, chosen string) {
		if chosen != "" && chosen != current {
			tips = append(tips, fmt.Sprintf("keep it: %s", ui.Accent.Render("deckstats config set "+key+" "+chosen)))
		}
	}
	add("heatmap.scheme", cfg.Heatmap.Scheme, string(res.Scheme))
	add("heatmap.range", cfg.Heatmap.Range, string(res.Range))
	add("chart.theme", cfg.Chart.Theme, string(res.Theme))
	return tips
}
