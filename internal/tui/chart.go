package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rnwolfe/deckstats/internal/heatmap"
	"github.com/rnwolfe/deckstats/internal/ui"
)

// ChartStyle carries the display settings a renderer needs. It is built
// from config and flags by the caller; renderers never read global state.
type ChartStyle struct {
	Scheme        heatmap.Scheme
	Theme         heatmap.Theme
	ValueLabel    string
	MonthLabels   bool
	WeekdayLabels bool
	Grid          bool
	Smooth        bool
	Gradients     bool
	Animations    bool
	// Color enables hex foreground colors; off, renderers fall back to glyph shading.
	Color bool
	Width int
	// Progress scales bars during the load animation; 0 means fully drawn.
	Progress float64
}

func (s ChartStyle) progress() float64 {
	if s.Progress <= 0 || s.Progress > 1 {
		return 1
	}
	return s.Progress
}

func (s ChartStyle) width() int {
	if s.Width <= 0 {
		return ui.DefaultWidth
	}
	return s.Width
}

// paint colors text with a hex foreground when color is enabled.
func (s ChartStyle) paint(hex, text string) string {
	if !s.Color || hex == "" {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(text)
}

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	// Text is shown after the bar; empty shows the value.
	Text  string
	Color string
}

const (
	minBarWidth  = 10
	defaultColor = "#6366f1"
)

var eighths = []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// Bars renders a horizontal bar chart scaled to the largest value.
func Bars(bars []Bar, st ChartStyle) string {
	if len(bars) == 0 {
		return "  " + ui.Muted.Render("No data") + "\n"
	}

	labelW, textW := 0, 0
	maxV := 0.0
	texts := make([]string, len(bars))
	for i, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
		texts[i] = b.Text
		if texts[i] == "" {
			texts[i] = formatValue(b.Value)
		}
		textW = max(textW, lipgloss.Width(texts[i]))
		maxV = math.Max(maxV, b.Value)
	}

	track := st.width() - labelW - textW - 6
	if track < minBarWidth {
		track = minBarWidth
	}

	var sb strings.Builder
	for i, b := range bars {
		length := 0.0
		if maxV > 0 && b.Value > 0 {
			length = b.Value / maxV * float64(track) * st.progress()
		}
		color := b.Color
		if color == "" {
			color = defaultColor
		}
		fmt.Fprintf(&sb, "  %s %s %s %s\n",
			padRight(b.Label, labelW),
			ui.Muted.Render("│"),
			barBody(length, track, color, st),
			texts[i],
		)
	}
	return sb.String()
}

// barBody draws a bar of the given length within a fixed-width track.
func barBody(length float64, track int, color string, st ChartStyle) string {
	full := int(length)
	partial := ""
	if st.Smooth {
		if e := int((length - float64(full)) * 8); e > 0 {
			partial = eighths[e-1]
		}
	} else {
		full = int(math.Round(length))
	}
	if full >= track {
		full, partial = track, ""
	}

	var sb strings.Builder
	if st.Gradients && st.Color && full > 1 {
		ramp := gradient(color, full)
		for _, hex := range ramp {
			sb.WriteString(st.paint(hex, "█"))
		}
	} else {
		sb.WriteString(st.paint(color, strings.Repeat("█", full)))
	}
	used := full
	if partial != "" {
		sb.WriteString(st.paint(color, partial))
		used++
	}

	for pos := used; pos < track; pos++ {
		if st.Grid && pos > 0 && pos%(max(track/4, 1)) == 0 {
			sb.WriteString(ui.Muted.Render("┊"))
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// gradient returns n colors fading from a light tint of hex to hex itself.
func gradient(hex string, n int) []string {
	base, err := colorful.Hex(hex)
	if err != nil {
		out := make([]string, n)
		for i := range out {
			out[i] = hex
		}
		return out
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	start := base.BlendLab(white, 0.45)

	out := make([]string, n)
	for i := range out {
		t := 1.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = start.BlendLab(base, t).Clamped().Hex()
	}
	return out
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a single line of block heights.
func Sparkline(values []float64, st ChartStyle) string {
	maxV := 0.0
	for _, v := range values {
		maxV = math.Max(maxV, v)
	}
	var sb strings.Builder
	for _, v := range values {
		idx := 0
		if maxV > 0 && v > 0 {
			idx = int(math.Round(v / maxV * st.progress() * float64(len(sparkRunes)-1)))
		}
		sb.WriteRune(sparkRunes[idx])
	}
	return st.paint(heatmap.PaletteFor(st.Scheme)[4], sb.String())
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
