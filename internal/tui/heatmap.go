package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/heatmap"
	"github.com/rnwolfe/deckstats/internal/ui"
)

// Glyphs used when color is off, indexed by heatmap bucket. Each bucket
// gets its own height so the plain legend stays ordered.
var shadeGlyphs = [heatmap.Buckets + 1]string{"·", "▁", "▃", "▅", "▇", "█"}

const (
	cellGlyph  = "■"
	emptyGlyph = "□"
	monthGap   = "  "
)

// Heatmap renders samples as month blocks: each block's columns are the
// month-relative week buckets and its rows the day positions within a
// bucket. Blocks wrap to fit st.Width. selected, when non-zero, marks one
// day with a pointer.
func Heatmap(samples []activity.Sample, selected time.Time, st ChartStyle) string {
	groups := heatmap.Group(samples)
	if len(groups) == 0 {
		return "  " + ui.Muted.Render("No activity recorded in this range.") + "\n"
	}
	maxValue := activity.MaxValue(samples)

	blocks := make([]string, len(groups))
	for i, g := range groups {
		blocks[i] = monthBlock(g, maxValue, selected, st)
	}

	var rows []string
	var line []string
	lineW := 2
	for _, b := range blocks {
		w := lipgloss.Width(b) + len(monthGap)
		if len(line) > 0 && lineW+w > st.width() {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, lineW = nil, 2
		}
		line = append(line, b, monthGap)
		lineW += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))

	var sb strings.Builder
	for _, r := range rows {
		for _, l := range strings.Split(r, "\n") {
			sb.WriteString("  " + strings.TrimRight(l, " ") + "\n")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  " + Legend(maxValue, st) + "\n")
	return sb.String()
}

func monthBlock(g heatmap.MonthGroup, maxValue int, selected time.Time, st ChartStyle) string {
	// Day d of a month sits in row (d-1)%7 of its week bucket, so every
	// row shares one weekday within the month.
	var first time.Time
	grid := make([][7]*activity.Sample, len(g.Weeks))
	for w := range g.Weeks {
		for i := range g.Weeks[w].Days {
			d := &g.Weeks[w].Days[i]
			grid[w][(d.Date.Day()-1)%7] = d
			if first.IsZero() {
				first = time.Date(g.Year, g.Month, 1, 0, 0, 0, 0, d.Date.Location())
			}
		}
	}

	var lines []string
	if st.MonthLabels {
		lines = append(lines, ui.Subtitle.Render(g.Label))
	}
	for row := 0; row < 7; row++ {
		var sb strings.Builder
		if st.WeekdayLabels {
			wd := heatmap.Weekdays[(int(first.Weekday())+row)%7]
			sb.WriteString(ui.Muted.Render(wd[:2]) + " ")
		}
		for w := range grid {
			sb.WriteString(cell(grid[w][row], maxValue, selected, st))
		}
		lines = append(lines, sb.String())
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func cell(s *activity.Sample, maxValue int, selected time.Time, st ChartStyle) string {
	if s == nil {
		return "  "
	}
	glyph := cellGlyph
	if st.Color {
		if s.Value <= 0 {
			glyph = emptyGlyph
		}
		glyph = st.paint(heatmap.CellColor(s.Value, maxValue, st.Scheme, st.Theme), glyph)
	} else {
		glyph = shadeGlyphs[heatmap.Bucket(float64(s.Value), float64(maxValue))]
	}
	if !selected.IsZero() && activity.SameDay(s.Date, selected) {
		return glyph + ui.Accent.Render("◂")
	}
	return glyph + " "
}

// Legend renders the "Less ... More" swatch row.
func Legend(maxValue int, st ChartStyle) string {
	var sb strings.Builder
	sb.WriteString(ui.Muted.Render("Less "))
	for level, hex := range heatmap.LegendLevels(maxValue, st.Scheme, st.Theme) {
		if st.Color {
			sb.WriteString(st.paint(hex, cellGlyph) + " ")
			continue
		}
		glyph := shadeGlyphs[0]
		if level > 0 {
			glyph = shadeGlyphs[heatmap.Bucket(float64(level)*float64(maxValue)/4, float64(maxValue))]
		}
		sb.WriteString(glyph + " ")
	}
	sb.WriteString(ui.Muted.Render("More"))
	return sb.String()
}

// DayDetail describes one day the way a cell tooltip would.
func DayDetail(s activity.Sample, valueLabel string) string {
	var sb strings.Builder
	sb.WriteString(ui.Accent.Render(heatmap.FormatDate(s.Date, heatmap.StyleFull)))
	if s.Value == 0 {
		sb.WriteString("  " + ui.Muted.Render("No activity"))
		return sb.String()
	}
	fmt.Fprintf(&sb, "  %s %s", activity.FormatNumber(s.Value), valueLabel)
	if s.Details != nil {
		fmt.Fprintf(&sb, "  %s %d reviews completed", ui.IconDot, s.Details.Reviews)
		fmt.Fprintf(&sb, "  %s %d min study time", ui.IconDot, s.Details.TimeSpent)
	}
	return sb.String()
}

// SchemeSwatch renders the five active steps of a scheme's ramp.
func SchemeSwatch(scheme heatmap.Scheme, colored bool) string {
	p := heatmap.PaletteFor(scheme)
	st := ChartStyle{Color: colored}
	var sb strings.Builder
	for i := 1; i <= heatmap.Buckets; i++ {
		if colored {
			sb.WriteString(st.paint(p[i], cellGlyph))
		} else {
			sb.WriteString(shadeGlyphs[i])
		}
	}
	return sb.String()
}
