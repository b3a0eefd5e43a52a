package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/deck"
	"github.com/rnwolfe/deckstats/internal/heatmap"
	"github.com/rnwolfe/deckstats/internal/ui"
)

// Panel renderers are pure: everything they show comes from their arguments.

// StatCard is one headline number.
type StatCard struct {
	Label string
	Value string
	Note  string
}

// OverviewCards builds the summary cards shown on the overview panel.
func OverviewCards(s deck.Summary, valueLabel string) []StatCard {
	cards := []StatCard{
		{Label: "Day streak", Value: fmt.Sprintf("%s %d", ui.IconFire, s.Streak), Note: fmt.Sprintf("longest %d", s.LongestStreak)},
		{Label: "Total " + valueLabel, Value: activity.FormatNumber(s.TotalValue), Note: "last day " + ui.Trend(s.DayChange)},
		{Label: "Active days", Value: activity.FormatPercent(s.ActiveDays)},
		{Label: "Cards", Value: activity.FormatNumber(s.TotalCards)},
		{Label: "Retention", Value: activity.FormatPercent(s.AvgRetention), Note: "12-month avg"},
		{Label: "Due next 7 days", Value: activity.FormatNumber(s.DueNextWeek), Note: fmt.Sprintf("~%d/day", s.AvgDue)},
		{Label: "Study time", Value: activity.FormatMinutes(s.StudyMinutes)},
	}
	if s.HasPeakHour {
		cards = append(cards, StatCard{Label: "Peak hour", Value: heatmap.FormatHour12(s.PeakHour)})
	}
	return cards
}

// OverviewPanel renders the stat cards, wrapping them to width.
func OverviewPanel(s deck.Summary, st ChartStyle) string {
	cards := OverviewCards(s, st.ValueLabel)
	if st.width() < ui.CompactWidth {
		var sb strings.Builder
		for _, c := range cards {
			fmt.Fprintf(&sb, "  %s %s\n", ui.KeyStyle.Render(padRight(c.Label, 16)), c.Value)
		}
		return sb.String()
	}

	rendered := make([]string, len(cards))
	for i, c := range cards {
		body := ui.Muted.Render(c.Label) + "\n" + ui.ValueStyle.Bold(true).Render(c.Value)
		if c.Note != "" {
			body += "\n" + ui.Muted.Render(c.Note)
		}
		rendered[i] = ui.Card.Width(20).Render(body)
	}

	var rows []string
	var line []string
	lineW := 2
	for _, r := range rendered {
		w := lipgloss.Width(r) + 1
		if len(line) > 0 && lineW+w > st.width() {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, lineW = nil, 2
		}
		line = append(line, r, " ")
		lineW += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	return indent(lipgloss.JoinVertical(lipgloss.Left, rows...)) + "\n"
}

// HeatmapPanel renders the activity heatmap with its header stats.
func HeatmapPanel(samples []activity.Sample, r activity.Range, selected time.Time, now time.Time, st ChartStyle) string {
	filtered := activity.Filter(samples, r.Since(now))

	var sb strings.Builder
	sb.WriteString(panelTitle(ui.IconCalendar+" Study Activity", r.Label()+" "+ui.IconDot+" "+string(st.Scheme)))
	fmt.Fprintf(&sb, "  %s %s   %s %s   %s %s\n\n",
		ui.Accent.Render(fmt.Sprintf("%d", activity.CurrentStreak(filtered, now))), ui.Muted.Render("day streak"),
		ui.Accent.Render(activity.FormatPercent(activity.ActiveDaysPercent(filtered))), ui.Muted.Render("active days"),
		ui.Accent.Render(activity.FormatNumber(activity.TotalValue(filtered))), ui.Muted.Render("total "+st.ValueLabel),
	)
	sb.WriteString(Heatmap(filtered, selected, st))
	return sb.String()
}

// ReviewsPanel renders the last days of review counts as a sparkline.
func ReviewsPanel(samples []activity.Sample, days int, st ChartStyle) string {
	recent := activity.LastN(samples, days)
	values := make([]float64, len(recent))
	for i, s := range recent {
		values[i] = float64(s.Value)
	}

	var sb strings.Builder
	sb.WriteString(panelTitle(ui.IconChart+" Review Activity", fmt.Sprintf("last %d days", len(recent))))
	if len(recent) == 0 {
		sb.WriteString("  " + ui.Muted.Render("No reviews yet.") + "\n")
		return sb.String()
	}
	sb.WriteString("  " + Sparkline(values, st) + "\n")
	fmt.Fprintf(&sb, "  %s %s  %s  %s\n\n",
		ui.Muted.Render(heatmap.FormatDate(recent[0].Date, heatmap.StyleShort)),
		ui.IconArrow,
		ui.Muted.Render(heatmap.FormatDate(recent[len(recent)-1].Date, heatmap.StyleShort)),
		ui.Muted.Render(fmt.Sprintf("peak %d", activity.MaxValue(recent))),
	)

	ma := activity.MovingAverage(recent, 7)
	fmt.Fprintf(&sb, "  %-18s %s\n", "Total reviews", activity.FormatNumber(activity.TotalValue(recent)))
	fmt.Fprintf(&sb, "  %-18s %d\n", "Daily average", activity.AverageValue(recent))
	fmt.Fprintf(&sb, "  %-18s %.1f\n", "7-day average", ma[len(ma)-1])
	return sb.String()
}

// RetentionPanel renders monthly retention bars and the forgetting curve.
func RetentionPanel(points []deck.RetentionPoint, st ChartStyle) string {
	var sb strings.Builder
	sb.WriteString(panelTitle(ui.IconBrain+" Retention", "avg "+activity.FormatPercent(deck.AverageRetention(points))))

	bars := make([]Bar, len(points))
	for i, p := range points {
		bars[i] = Bar{
			Label: p.Label(),
			Value: float64(p.Retention),
			Text:  activity.FormatPercent(p.Retention),
			Color: retentionColor(p.Retention),
		}
	}
	sb.WriteString(Bars(bars, st))

	curve := deck.ForgettingCurve()
	values := make([]float64, len(curve))
	for i, c := range curve {
		values[i] = float64(c.Retention)
	}
	sb.WriteString("\n  " + ui.Muted.Render("Forgetting curve ") + Sparkline(values, st) + "\n")
	return sb.String()
}

func retentionColor(pct int) string {
	switch {
	case pct >= 90:
		return deck.CardTypeColor("mature")
	case pct >= 80:
		return "#3b82f6"
	case pct >= 70:
		return deck.CardTypeColor("learning")
	default:
		return deck.CardTypeColor("forgotten")
	}
}

// ForecastPanel renders the due-card forecast.
func ForecastPanel(days []deck.DueDay, now time.Time, st ChartStyle) string {
	var sb strings.Builder
	sb.WriteString(panelTitle(ui.IconTarget+" Upcoming Reviews", fmt.Sprintf("%d due %s ~%d/day", deck.TotalDue(days), ui.IconDot, deck.AverageDue(days))))

	bars := make([]Bar, len(days))
	for i, d := range days {
		label := heatmap.FormatDate(d.Date, heatmap.StyleShort)
		if activity.SameDay(d.Date, now) {
			label = "Today"
		}
		bars[i] = Bar{Label: label, Value: float64(d.Count), Color: "#6366f1"}
	}
	sb.WriteString(Bars(bars, st))
	return sb.String()
}

// PatternsPanel renders study time by hour and answer times by card state.
func PatternsPanel(hours []deck.HourMinutes, responses []deck.ResponseTime, st ChartStyle) string {
	var sb strings.Builder
	note := activity.FormatMinutes(deck.TotalStudyMinutes(hours)) + " total"
	if peak, ok := deck.PeakHour(hours); ok {
		note += " " + ui.IconDot + " peak " + heatmap.FormatHour12(peak.Hour)
	}
	sb.WriteString(panelTitle(ui.IconClock+"Study Patterns", note))

	values := make([]float64, len(hours))
	for i, h := range hours {
		values[i] = float64(h.Minutes)
	}
	sb.WriteString("  " + Sparkline(values, st) + "\n")
	if len(hours) == 24 {
		sb.WriteString("  " + ui.Muted.Render(hourAxis()) + "\n")
	}

	if len(responses) > 0 {
		sb.WriteString("\n  " + ui.Subtitle.Render("Average answer time") + "\n")
		bars := make([]Bar, len(responses))
		for i, r := range responses {
			bars[i] = Bar{
				Label: r.Category,
				Value: r.Seconds,
				Text:  fmt.Sprintf("%.1fs", r.Seconds),
				Color: deck.CardTypeColor(r.Category),
			}
		}
		sb.WriteString(Bars(bars, st))
	}
	return sb.String()
}

// hourAxis labels a 24-column sparkline every six hours.
func hourAxis() string {
	axis := []byte(strings.Repeat(" ", 24))
	for h, label := range map[int]string{0: "12a", 6: "6a", 12: "12p", 18: "6p"} {
		copy(axis[h:], label)
	}
	return string(axis)
}

// CardsPanel renders the card state distribution and ease factors.
func CardsPanel(states []deck.CardState, ease []deck.EaseBucket, st ChartStyle) string {
	var sb strings.Builder
	sb.WriteString(panelTitle(ui.IconDeck+"Card Performance", activity.FormatNumber(deck.TotalCards(states))+" cards"))

	share := deck.StateShare(states)
	bars := make([]Bar, len(states))
	for i, s := range states {
		bars[i] = Bar{
			Label: s.Name,
			Value: float64(s.Count),
			Text:  fmt.Sprintf("%s (%s)", activity.FormatNumber(s.Count), activity.FormatPercent(share[s.Name])),
			Color: deck.CardTypeColor(s.Name),
		}
	}
	sb.WriteString(Bars(bars, st))

	if len(ease) > 0 {
		sb.WriteString("\n  " + ui.Subtitle.Render("Ease factors") + "\n")
		eb := make([]Bar, len(ease))
		for i, e := range ease {
			eb[i] = Bar{Label: e.Range + "%", Value: float64(e.Count), Color: heatmap.PaletteFor(st.Scheme)[min(i+1, heatmap.Buckets)]}
		}
		sb.WriteString(Bars(eb, st))
	}
	return sb.String()
}

func panelTitle(title, note string) string {
	line := "  " + ui.Title.Render(title)
	if note != "" {
		line += "  " + ui.Muted.Render(note)
	}
	return line + "\n\n"
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = "  " + strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
