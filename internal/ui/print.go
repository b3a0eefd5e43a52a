package ui

import (
	"fmt"
	"os"
	"strings"
)

// Puts prints a styled line to stdout.
func Puts(s string) {
	fmt.Println(s)
}

// Putsf prints a formatted styled line to stdout.
func Putsf(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Warn prints a warning message to stderr so piped output stays clean.
func Warn(msg string) {
	fmt.Fprintln(os.Stderr, Warning.Render(IconWarn+msg))
}

// Err prints an error message.
func Err(msg string) {
	styled := Error.Bold(true).Render(IconError + msg)
	fmt.Fprintln(os.Stderr, styled)
}

// Ok prints a success message.
func Ok(msg string) {
	fmt.Println(Success.Render(IconOk + msg))
}

// Inf prints an info message.
func Inf(msg string) {
	fmt.Println(Info.Render("  " + msg))
}

// Header prints a section header.
func Header(s string) {
	fmt.Println()
	fmt.Println(Title.Render(s))
	fmt.Println(Muted.Render(strings.Repeat("─", len([]rune(s))+2)))
}

// Tip prints a helpful tip.
func Tip(msg string) {
	fmt.Println()
	fmt.Println(Muted.Render("  tip: " + msg))
}

// Kv prints a key-value pair, padded.
func Kv(key string, value string) {
	k := KeyStyle.Render(fmt.Sprintf("  %-14s", key))
	v := ValueStyle.Render(value)
	fmt.Printf("%s %s\n", k, v)
}

// Trend renders a signed percent change with an arrow, green when up.
func Trend(change string) string {
	switch {
	case change == "":
		return ""
	case strings.HasPrefix(change, "-"):
		return Error.Render(IconDown + " " + change)
	case change == "+0.0%":
		return Muted.Render(change)
	default:
		return Success.Render(IconUp + " " + change)
	}
}

// Plural returns "1 day" / "3 days".
func Plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
