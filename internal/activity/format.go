package activity

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatNumber renders n with comma thousands separators, e.g. "4,320".
func FormatNumber(n int) string {
	return humanize.Comma(int64(n))
}

// FormatPercent renders a whole percentage, e.g. "87%".
func FormatPercent(p int) string {
	return fmt.Sprintf("%d%%", p)
}

// FormatMinutes renders a duration in minutes as "45 min", "2 hr" or
// "2 hr 5 min".
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, rest)
}
