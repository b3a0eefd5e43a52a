package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rnwolfe/deckstats/internal/config"
	"github.com/rnwolfe/deckstats/internal/deck"
	"github.com/rnwolfe/deckstats/internal/tips"
	"github.com/rnwolfe/deckstats/internal/tui"
	"github.com/rnwolfe/deckstats/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags shared by every command.
var (
	flagMock       bool
	flagSeed       = seedFlag{value: config.DefaultSeed}
	flagCollection string
	flagNoColor    bool
	flagScheme     schemeFlag
	flagRange      rangeFlag
)

// now is the clock used by every command; tests pin it.
var now = time.Now

var rootCmd = &cobra.Command{
	Use:   "deckstats",
	Short: "Study statistics for your flashcard decks",
	Long: `deckstats turns a spaced-repetition review history into a terminal dashboard:
a GitHub-style activity heatmap, streaks, retention, due forecasts and study
patterns. Without a collection it shows generated sample data.`,
	RunE: runSummary,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		ui.ConfigureColor(flagNoColor)
	},
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagMock, "mock", false, "Use generated sample data")
	pf.Var(&flagSeed, "seed", "Seed for generated sample data")
	pf.StringVar(&flagCollection, "collection", "", "Path to a flashcard collection file (opened read-only)")
	pf.BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	pf.Var(&flagScheme, "scheme", "Heatmap color scheme (blue, green, purple, orange, red, viridis)")
	pf.Var(&flagRange, "range", "Time range (3m, 6m, 1y)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

// runSummary shows the headline numbers when you just type `deckstats`.
func runSummary(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	t := now()
	data, err := loadDataset(cfg, t)
	if err != nil {
		return err
	}

	st := chartStyle(cfg)
	s := deck.Summarize(data, rangeFor(cfg), t)

	ui.Puts("")
	ui.Puts(ui.Title.Render("  "+ui.IconDeck+"deckstats") + "  " + ui.Muted.Render(sourceLabel(data)))
	ui.Puts("")
	for _, c := range tui.OverviewCards(s, st.ValueLabel) {
		value := c.Value
		if c.Note != "" {
			value += "  " + ui.Muted.Render(c.Note)
		}
		ui.Kv(c.Label, value)
	}

	switch {
	case s.Streak == 0:
		ui.Tip("no reviews today yet. Start a session to begin a streak.")
	case data.Source == sourceMock:
		ui.Tip(fmt.Sprintf("point %s at your collection to see real numbers.", ui.Accent.Render("deckstats config set source.collection <path>")))
	default:
		ui.Tip(tips.Daily(t))
	}
	ui.Puts("")
	return nil
}
