package activity

import "time"

// CurrentStreak counts consecutive active days ending today.
//
// Samples are walked newest first. The i-th sample must fall exactly i days
// before today's midnight and carry a positive value; the walk stops at the
// first gap, inactive day or date mismatch. Unlike the grace period some
// habit trackers apply, a missing or empty "today" yields 0.
func CurrentStreak(samples []Sample, now time.Time) int {
	today := Day(now)
	sorted := SortDesc(samples)

	streak := 0
	for i, s := range sorted {
		expected := today.AddDate(0, 0, -i)
		if !SameDay(s.Date, expected) || s.Value <= 0 {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive calendar days with a
// positive value anywhere in samples.
func LongestStreak(samples []Sample) int {
	longest := 0
	run := 0
	var prev time.Time
	for _, s := range SortAsc(samples) {
		if s.Value <= 0 {
			run = 0
			continue
		}
		day := Day(s.Date)
		switch {
		case run > 0 && SameDay(prev.AddDate(0, 0, 1), day):
			run++
		case run > 0 && SameDay(prev, day):
			// duplicate entry for the same day; keep the run as is
		default:
			run = 1
		}
		prev = day
		if run > longest {
			longest = run
		}
	}
	return longest
}
