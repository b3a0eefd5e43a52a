package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/deck"
	"github.com/rnwolfe/deckstats/internal/heatmap"
	"github.com/rnwolfe/deckstats/internal/ui"
)

// Panel identifies one dashboard tab.
type Panel int

const (
	PanelOverview Panel = iota
	PanelHeatmap
	PanelReviews
	PanelRetention
	PanelForecast
	PanelPatterns
	PanelCards
	panelCount
)

var panelNames = [panelCount]string{"Overview", "Heatmap", "Reviews", "Retention", "Forecast", "Patterns", "Cards"}

func (p Panel) String() string {
	if p < 0 || p >= panelCount {
		return "?"
	}
	return panelNames[p]
}

const (
	animFrames   = 8
	animInterval = 40 * time.Millisecond
	reviewDays   = 30
)

// Loader fetches a fresh dataset.
type Loader func() (*deck.Dataset, error)

// DashOptions configures a dashboard session.
type DashOptions struct {
	Load  Loader
	Style ChartStyle
	Range activity.Range
	// Now is the clock; nil uses time.Now.
	Now func() time.Time
}

// DashResult reports the display settings the user ended the session with.
type DashResult struct {
	Scheme heatmap.Scheme
	Range  activity.Range
	Theme  heatmap.Theme
}

type dashDataMsg struct{ data *deck.Dataset }
type dashErrMsg struct{ err error }
type animTickMsg struct{}

// DashModel is the Bubbletea model for the deckstats dashboard.
type DashModel struct {
	opts     DashOptions
	data     *deck.Dataset
	style    ChartStyle
	rng      activity.Range
	panel    Panel
	selected time.Time
	width    int
	height   int
	loading  bool
	frame    int
	err      error
}

// NewDashModel creates a DashModel; data is loaded on Init.
func NewDashModel(opts DashOptions) *DashModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Range == "" {
		opts.Range = activity.Range6M
	}
	return &DashModel{
		opts:    opts,
		style:   opts.Style,
		rng:     opts.Range,
		width:   80,
		height:  24,
		loading: true,
	}
}

// RunDash runs the dashboard until the user quits.
func RunDash(opts DashOptions) (DashResult, error) {
	m := NewDashModel(opts)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	result, err := prog.Run()
	if err != nil {
		return DashResult{}, fmt.Errorf("dashboard: %w", err)
	}
	return result.(*DashModel).Result(), nil
}

// Result returns the current display settings.
func (m *DashModel) Result() DashResult {
	return DashResult{Scheme: m.style.Scheme, Range: m.rng, Theme: m.style.Theme}
}

// --- Bubbletea model interface ---

func (m *DashModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *DashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashDataMsg:
		m.data = msg.data
		m.loading = false
		m.err = nil
		m.selected = lastActiveDay(m.data.Activity)
		if m.style.Animations {
			m.frame = 1
			return m, animTick()
		}
		m.frame = animFrames
		return m, nil

	case dashErrMsg:
		m.err = msg.err
		m.loading = false
		return m, nil

	case animTickMsg:
		if m.frame < animFrames {
			m.frame++
			if m.frame < animFrames {
				return m, animTick()
			}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *DashModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.loading = true
		return m, m.loadData()
	}
	if m.loading {
		return m, nil
	}

	switch key := msg.String(); key {
	case "s":
		m.style.Scheme = m.style.Scheme.Next()
	case "g":
		m.rng = m.rng.Next()
	case "t":
		if m.style.Theme == heatmap.ThemeDark {
			m.style.Theme = heatmap.ThemeLight
		} else {
			m.style.Theme = heatmap.ThemeDark
		}
	case "tab":
		m.panel = (m.panel + 1) % panelCount
	case "shift+tab":
		m.panel = (m.panel + panelCount - 1) % panelCount
	case "left", "h":
		m.moveSelection(-1)
	case "right", "l":
		m.moveSelection(1)
	case "1", "2", "3", "4", "5", "6", "7":
		m.panel = Panel(key[0] - '1')
	}
	return m, nil
}

// moveSelection steps the highlighted heatmap day, staying inside the range.
func (m *DashModel) moveSelection(days int) {
	if m.panel != PanelHeatmap || m.selected.IsZero() {
		return
	}
	now := m.opts.Now()
	next := m.selected.AddDate(0, 0, days)
	if next.Before(activity.Day(m.rng.Since(now))) || next.After(now) {
		return
	}
	m.selected = next
}

func (m *DashModel) View() string {
	if m.loading {
		return "\n  " + ui.Muted.Render("Loading…") + "\n"
	}
	if m.err != nil {
		return "\n  " + ui.Error.Render("Error: "+m.err.Error()) + "\n\n" + renderHelpBar() + "\n"
	}
	if m.width < ui.CompactWidth {
		return m.renderMinimal()
	}

	var b strings.Builder
	b.WriteString("\n" + renderTabs(m.panel) + "\n\n")
	b.WriteString(m.renderPanel())
	b.WriteString("\n" + renderHelpBar() + "\n")
	return b.String()
}

// chartStyle is the style for the current frame.
func (m *DashModel) chartStyle(width int) ChartStyle {
	st := m.style
	st.Width = width
	st.Progress = float64(m.frame) / animFrames
	return st
}

func (m *DashModel) renderPanel() string {
	now := m.opts.Now()
	st := m.chartStyle(m.width - 2)
	d := m.data

	switch m.panel {
	case PanelHeatmap:
		out := HeatmapPanel(d.Activity, m.rng, m.selected, now, st)
		if s, ok := m.selectedSample(); ok {
			out += "\n  " + DayDetail(s, st.ValueLabel) + "\n"
		}
		return out
	case PanelReviews:
		return ReviewsPanel(d.Activity, reviewDays, st)
	case PanelRetention:
		return RetentionPanel(d.Retention, st)
	case PanelForecast:
		return ForecastPanel(d.Forecast, now, st)
	case PanelPatterns:
		return PatternsPanel(d.StudyTime, d.ResponseTimes, st)
	case PanelCards:
		return CardsPanel(d.CardStates, d.EaseFactors, st)
	}

	summary := deck.Summarize(d, m.rng, now)
	overview := OverviewPanel(summary, st)
	if m.width >= 120 {
		half := m.width/2 - 2
		left := lipgloss.NewStyle().Width(half).Render(ReviewsPanel(d.Activity, reviewDays, m.chartStyle(half)))
		right := lipgloss.NewStyle().Width(half).Render(ForecastPanel(d.Forecast, now, m.chartStyle(half)))
		return overview + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	return overview + "\n" + ReviewsPanel(d.Activity, reviewDays, st)
}

func (m *DashModel) renderMinimal() string {
	s := deck.Summarize(m.data, m.rng, m.opts.Now())
	var b strings.Builder
	b.WriteString("\n  " + ui.Title.Render(ui.IconDeck+"deckstats") + "\n\n")
	fmt.Fprintf(&b, "  %s %s streak\n", ui.IconFire, ui.Plural(s.Streak, "day"))
	fmt.Fprintf(&b, "  %s reviewed\n", activity.FormatNumber(s.TotalValue))
	fmt.Fprintf(&b, "  %s due this week\n", activity.FormatNumber(s.DueNextWeek))
	b.WriteString("\n  " + ui.Muted.Render("q quit · r refresh") + "\n")
	return b.String()
}

func (m *DashModel) selectedSample() (activity.Sample, bool) {
	for _, s := range m.data.Activity {
		if activity.SameDay(s.Date, m.selected) {
			return s, true
		}
	}
	return activity.Sample{}, false
}

// renderTabs renders the panel tab bar with the active panel highlighted.
func renderTabs(active Panel) string {
	tabs := make([]string, panelCount)
	for p := Panel(0); p < panelCount; p++ {
		label := fmt.Sprintf("%d %s", p+1, p)
		if p == active {
			tabs[p] = ui.Tag.Render(label)
		} else {
			tabs[p] = ui.Muted.Render(" " + label + " ")
		}
	}
	return "  " + ui.Title.Render(ui.IconDeck+"deckstats") + "  " + strings.Join(tabs, " ")
}

// renderHelpBar renders the keyboard shortcuts hint.
func renderHelpBar() string {
	return ui.Muted.Render("  tab panels · ←/→ day · s scheme · g range · t theme · r refresh · q quit")
}

func lastActiveDay(samples []activity.Sample) time.Time {
	if len(samples) == 0 {
		return time.Time{}
	}
	return activity.Day(samples[len(samples)-1].Date)
}

func animTick() tea.Cmd {
	return tea.Tick(animInterval, func(time.Time) tea.Msg { return animTickMsg{} })
}

// --- Data loading ---

func (m *DashModel) loadData() tea.Cmd {
	load := m.opts.Load
	return func() tea.Msg {
		if load == nil {
			return dashErrMsg{fmt.Errorf("no data source configured")}
		}
		data, err := load()
		if err != nil {
			return dashErrMsg{err}
		}
		return dashDataMsg{data}
	}
}
