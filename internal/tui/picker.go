package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rnwolfe/deckstats/internal/ui"
)

// Choice is one selectable value in a Picker.
type Choice struct {
	Value string
	Desc  string
	// Swatch is drawn beside the value, e.g. a scheme's color ramp.
	Swatch string
}

// Picker is a fuzzy-filtered single-choice selector built on Bubbletea.
type Picker struct {
	title   string
	choices []Choice
	matches []int // indexes into choices, best match first
	query   string
	cursor  int
	offset  int
	height  int

	picked   *Choice
	canceled bool
}

// NewPicker creates a Picker with the cursor on current when present.
func NewPicker(title string, choices []Choice, current string) *Picker {
	p := &Picker{title: title, choices: choices, height: 10}
	p.filter()
	for i, idx := range p.matches {
		if choices[idx].Value == current {
			p.cursor = i
		}
	}
	return p
}

// Pick shows a picker and returns the chosen value. ok is false when the
// user canceled.
func Pick(title string, choices []Choice, current string) (value string, ok bool, err error) {
	m, err := tea.NewProgram(NewPicker(title, choices, current)).Run()
	if err != nil {
		return "", false, fmt.Errorf("picker: %w", err)
	}
	p := m.(*Picker)
	if p.canceled || p.picked == nil {
		return "", false, nil
	}
	return p.picked.Value, true, nil
}

// IsTTY returns true when stdin is connected to a terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func (p *Picker) Init() tea.Cmd {
	return nil
}

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		p.canceled = true
		return p, tea.Quit
	case "enter":
		if len(p.matches) > 0 {
			c := p.choices[p.matches[p.cursor]]
			p.picked = &c
		}
		return p, tea.Quit
	case "up", "ctrl+p":
		p.move(-1)
	case "down", "ctrl+n":
		p.move(1)
	case "backspace":
		if p.query != "" {
			p.query = p.query[:len(p.query)-1]
			p.filter()
		}
	default:
		if key.Type == tea.KeyRunes {
			p.query += string(key.Runes)
			p.filter()
		}
	}
	return p, nil
}

func (p *Picker) move(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.matches) {
		return
	}
	p.cursor = next
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.height {
		p.offset = p.cursor - p.height + 1
	}
}

func (p *Picker) View() string {
	var b strings.Builder
	if p.title != "" {
		b.WriteString("  " + ui.Title.Render(p.title) + "\n\n")
	}
	b.WriteString("  " + ui.Accent.Render("> ") + p.query + ui.Accent.Render("▎") + "\n\n")

	if len(p.matches) == 0 {
		b.WriteString("  " + ui.Muted.Render("No matches") + "\n")
	}
	end := min(p.offset+p.height, len(p.matches))
	for i := p.offset; i < end; i++ {
		b.WriteString(renderChoice(p.choices[p.matches[i]], i == p.cursor) + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render(fmt.Sprintf("  %d/%d · ↑↓ navigate · enter select · esc cancel",
		len(p.matches), len(p.choices))) + "\n")
	return b.String()
}

// filter recomputes matches for the current query, best score first.
func (p *Picker) filter() {
	type hit struct{ idx, score int }
	var hits []hit
	for i, c := range p.choices {
		if ok, score := FuzzyMatch(p.query, c.Value); ok {
			hits = append(hits, hit{i, score})
		}
	}
	sort.SliceStable(hits, func(a, b int) bool { return hits[a].score > hits[b].score })

	p.matches = p.matches[:0]
	for _, h := range hits {
		p.matches = append(p.matches, h.idx)
	}
	p.cursor, p.offset = 0, 0
}

func renderChoice(c Choice, selected bool) string {
	pointer := "  "
	value := c.Value
	if selected {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		value = ui.Accent.Render(value)
	}
	line := "  " + pointer + padRight(value, 10)
	if c.Swatch != "" {
		line += " " + c.Swatch
	}
	if c.Desc != "" {
		line += "  " + ui.Muted.Render(c.Desc)
	}
	return line
}
