package activity

import (
	"sort"
	"time"
)

// DateLayout is the canonical day format used in fixtures and reports.
const DateLayout = "2006-01-02"

// Details holds the optional per-day breakdown shown in tooltips.
type Details struct {
	Reviews   int
	NewCards  int
	TimeSpent int // minutes
}

// Sample is one day's recorded value (e.g. cards studied).
// Only the calendar date of Date is significant.
type Sample struct {
	Date    time.Time
	Value   int
	Details *Details
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SortAsc returns a copy of samples ordered by date, oldest first.
func SortAsc(samples []Sample) []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool {
		return Day(out[i].Date).Before(Day(out[j].Date))
	})
	return out
}

// SortDesc returns a copy of samples ordered by date, newest first.
func SortDesc(samples []Sample) []Sample {
	out := make([]Sample, len(samples))
	copy(out, samples)
	sort.SliceStable(out, func(i, j int) bool {
		return Day(out[i].Date).After(Day(out[j].Date))
	})
	return out
}

// MaxValue returns the largest value in samples, or 0 when there are none.
func MaxValue(samples []Sample) int {
	max := 0
	for _, s := range samples {
		if s.Value > max {
			max = s.Value
		}
	}
	return max
}

// LastN returns the trailing n samples. The result aliases samples.
func LastN(samples []Sample, n int) []Sample {
	if n <= 0 {
		return nil
	}
	if n >= len(samples) {
		return samples
	}
	return samples[len(samples)-n:]
}
