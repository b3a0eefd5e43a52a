package activity

import (
	"fmt"
	"strings"
	"time"
)

// Range is a trailing time window selectable on the heatmap.
type Range string

const (
	Range3M Range = "3m"
	Range6M Range = "6m"
	Range1Y Range = "1y"
)

// Ranges lists every supported range in display order.
func Ranges() []Range {
	return []Range{Range3M, Range6M, Range1Y}
}

// ParseRange accepts "3m", "6m" or "1y" (case-insensitive).
func ParseRange(s string) (Range, error) {
	r := Range(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Ranges() {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown range %q (use one of: 3m, 6m, 1y)", s)
}

// Label returns a human-readable name, e.g. "6 months".
func (r Range) Label() string {
	switch r {
	case Range3M:
		return "3 months"
	case Range1Y:
		return "1 year"
	default:
		return "6 months"
	}
}

// Since returns the first day included in the range ending at now.
// Unknown ranges behave like 6m.
func (r Range) Since(now time.Time) time.Time {
	today := Day(now)
	switch r {
	case Range3M:
		return today.AddDate(0, -3, 0)
	case Range1Y:
		return today.AddDate(-1, 0, 0)
	default:
		return today.AddDate(0, -6, 0)
	}
}

// Next cycles to the following range, wrapping around.
func (r Range) Next() Range {
	all := Ranges()
	for i, known := range all {
		if known == r {
			return all[(i+1)%len(all)]
		}
	}
	return all[0]
}

// Filter keeps samples dated on or after since. Order is preserved.
func Filter(samples []Sample, since time.Time) []Sample {
	start := Day(since)
	var out []Sample
	for _, s := range samples {
		if !Day(s.Date).Before(start) {
			out = append(out, s)
		}
	}
	return out
}

// DatesInRange lists every calendar day from start through end inclusive.
func DatesInRange(start, end time.Time) []time.Time {
	var dates []time.Time
	last := Day(end)
	for d := Day(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
