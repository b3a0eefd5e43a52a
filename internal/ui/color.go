package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is assumed when the terminal size cannot be read.
const DefaultWidth = 80

// CompactWidth is the width below which commands use single-column layouts.
const CompactWidth = 60

// IsStdoutTTY returns true when stdout is connected to a terminal.
func IsStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ConfigureColor sets the lipgloss color profile for this process.
// Color is off when noColor is set, NO_COLOR is present, or stdout is
// not a terminal.
func ConfigureColor(noColor bool) {
	_, envNoColor := os.LookupEnv("NO_COLOR")
	lipgloss.SetColorProfile(colorProfile(noColor || envNoColor, IsStdoutTTY(), termenv.EnvColorProfile()))
}

func colorProfile(disabled, tty bool, detected termenv.Profile) termenv.Profile {
	if disabled || !tty {
		return termenv.Ascii
	}
	return detected
}

// ColorEnabled reports whether styles currently emit color codes.
func ColorEnabled() bool {
	return lipgloss.ColorProfile() != termenv.Ascii
}

// TermWidth returns the width of the terminal attached to stdout, or
// DefaultWidth when there is none.
func TermWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}
