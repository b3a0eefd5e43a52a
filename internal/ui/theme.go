package ui

import "github.com/charmbracelet/lipgloss"

// deckstats palette: indigo accents over slate, with the card-state hues.
var (
	Indigo  = lipgloss.Color("#6366f1")
	Sky     = lipgloss.Color("#3b82f6")
	Violet  = lipgloss.Color("#8b5cf6")
	Emerald = lipgloss.Color("#10b981")
	Amber   = lipgloss.Color("#f59e0b")
	Rose    = lipgloss.Color("#ef4444")
	Slate   = lipgloss.Color("#6b7280")
	Dim     = lipgloss.Color("#666666")
	Bright  = lipgloss.Color("#FFFFFF")

	// Semantic styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Indigo)

	Subtitle = lipgloss.NewStyle().
			Foreground(Violet)

	Success = lipgloss.NewStyle().
		Foreground(Emerald)

	Error = lipgloss.NewStyle().
		Foreground(Rose)

	Warning = lipgloss.NewStyle().
		Foreground(Amber)

	Info = lipgloss.NewStyle().
		Foreground(Sky)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Indigo).
		Bold(true)

	// Component styles
	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Slate).
		Padding(0, 1)

	Tag = lipgloss.NewStyle().
		Foreground(Bright).
		Background(Indigo).
		Padding(0, 1).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Violet).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)
)

// Icon constants.
const (
	IconDeck     = "🗂 "
	IconFire     = "🔥"
	IconChart    = "📊"
	IconCalendar = "📅"
	IconClock    = "⏱ "
	IconBrain    = "🧠"
	IconTarget   = "🎯"
	IconWarn     = "⚠️ "
	IconError    = "✗ "
	IconOk       = "✓ "
	IconArrow    = "→"
	IconDot      = "·"
	IconUp       = "▲"
	IconDown     = "▼"
)
