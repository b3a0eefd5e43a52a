// Package tips provides short usage tips shown after the deckstats summary.
package tips

import "time"

// all is the tip pool; every entry names a command or key that exists.
var all = []string{
	"`deckstats dash` for the interactive dashboard; `s` cycles color schemes.",
	"`deckstats heatmap --range 1y` to see a full year of study activity.",
	"`deckstats heatmap --date 2024-03-09` to mark a day and see its details.",
	"`deckstats heatmap schemes` to preview every color scheme.",
	"`deckstats config set heatmap.scheme` with no value to pick a scheme interactively.",
	"`deckstats config set source.collection <path>` to read your own collection.",
	"`deckstats stats` for streaks, active days and your best day.",
	"`deckstats forecast` to see how many cards come due this week.",
	"`deckstats retention` to track how well reviews are sticking month to month.",
	"`deckstats patterns` to find the hour you study most.",
	"`deckstats report --raw > report.md` to save a markdown report.",
	"`deckstats config set chart.theme dark` for dark-terminal empty cells.",
	"`deckstats --mock --seed 7` to explore with a different set of sample data.",
	"`deckstats config list` to see every setting and its default.",
}

// All returns all tips in the pool.
func All() []string {
	return all
}

// Daily returns a deterministic tip for the given day.
// The same tip is returned all day; it changes each day.
func Daily(t time.Time) string {
	return all[t.YearDay()%len(all)]
}
