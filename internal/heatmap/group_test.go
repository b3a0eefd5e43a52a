package heatmap

import (
	"testing"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dailySamples(start time.Time, n int) []activity.Sample {
	out := make([]activity.Sample, n)
	for i := range out {
		out[i] = activity.Sample{Date: start.AddDate(0, 0, i), Value: i + 1}
	}
	return out
}

func TestGroup_Empty(t *testing.T) {
	if got := Group(nil); len(got) != 0 {
		t.Fatalf("Group(nil) = %v, want empty", got)
	}
}

func TestGroup_SpansMonthBoundary(t *testing.T) {
	samples := dailySamples(day(2024, time.January, 20), 35) // Jan 20 - Feb 23

	groups := Group(samples)
	if len(groups) != 2 {
		t.Fatalf("got %d months, want 2", len(groups))
	}
	if groups[0].Label != "January 2024" {
		t.Errorf("first label = %q, want January 2024", groups[0].Label)
	}
	if groups[1].Label != "February 2024" {
		t.Errorf("second label = %q, want February 2024", groups[1].Label)
	}

	if got := groups[0].DayCount(); got != 12 {
		t.Errorf("January days = %d, want 12", got)
	}
	if got := groups[1].DayCount(); got != 23 {
		t.Errorf("February days = %d, want 23", got)
	}

	seen := make(map[string]bool)
	for _, m := range groups {
		for _, w := range m.Weeks {
			for _, d := range w.Days {
				key := d.Date.Format(activity.DateLayout)
				if seen[key] {
					t.Errorf("duplicate day %s", key)
				}
				seen[key] = true
			}
		}
	}
	if len(seen) != len(samples) {
		t.Errorf("grouped %d distinct days, want %d", len(seen), len(samples))
	}

	// Jan 20-21 are days 19-20 since the 1st: bucket 2. Jan 22-28: bucket 3.
	jan := groups[0].Weeks
	if jan[0].Index != 2 || len(jan[0].Days) != 2 {
		t.Errorf("January first bucket = index %d with %d days, want index 2 with 2 days",
			jan[0].Index, len(jan[0].Days))
	}
	if last := jan[len(jan)-1]; last.Index != 4 || len(last.Days) != 3 {
		t.Errorf("January last bucket = index %d with %d days, want index 4 with 3 days",
			last.Index, len(last.Days))
	}

	feb := groups[1].Weeks
	if feb[0].Index != 0 || len(feb[0].Days) != 7 {
		t.Errorf("February first bucket = index %d with %d days, want index 0 with 7 days",
			feb[0].Index, len(feb[0].Days))
	}
}

func TestGroup_OrderingInvariants(t *testing.T) {
	// Shuffled input across a year boundary and alphabetically tricky months.
	samples := []activity.Sample{
		{Date: day(2024, time.April, 9), Value: 1},
		{Date: day(2023, time.December, 31), Value: 1},
		{Date: day(2024, time.January, 15), Value: 1},
		{Date: day(2024, time.April, 2), Value: 1},
		{Date: day(2024, time.January, 3), Value: 1},
		{Date: day(2024, time.April, 1), Value: 1},
		{Date: day(2024, time.January, 1), Value: 1},
	}

	groups := Group(samples)
	wantLabels := []string{"December 2023", "January 2024", "April 2024"}
	if len(groups) != len(wantLabels) {
		t.Fatalf("got %d months, want %d", len(groups), len(wantLabels))
	}
	for i, want := range wantLabels {
		if groups[i].Label != want {
			t.Errorf("month[%d] = %q, want %q", i, groups[i].Label, want)
		}
	}

	for _, m := range groups {
		for i := 1; i < len(m.Weeks); i++ {
			if m.Weeks[i-1].Index >= m.Weeks[i].Index {
				t.Errorf("%s: weeks not strictly ascending", m.Label)
			}
		}
		for _, w := range m.Weeks {
			for i, d := range w.Days {
				if d.Date.Month() != m.Month || d.Date.Year() != m.Year {
					t.Errorf("%s: day %s belongs to another month", m.Label, d.Date.Format(activity.DateLayout))
				}
				if i > 0 && !w.Days[i-1].Date.Before(d.Date) {
					t.Errorf("%s week %d: days not strictly ascending", m.Label, w.Index)
				}
			}
		}
	}
}

func TestGroup_DoesNotMutateInput(t *testing.T) {
	samples := []activity.Sample{
		{Date: day(2024, time.March, 3), Value: 1},
		{Date: day(2024, time.March, 1), Value: 2},
	}
	Group(samples)
	if samples[0].Date.Day() != 3 {
		t.Fatal("Group reordered its input")
	}
}

func TestWeekIndex(t *testing.T) {
	cases := map[int]int{1: 0, 7: 0, 8: 1, 14: 1, 15: 2, 28: 3, 29: 4, 31: 4}
	for d, want := range cases {
		if got := WeekIndex(day(2024, time.March, d)); got != want {
			t.Errorf("WeekIndex(Mar %d) = %d, want %d", d, got, want)
		}
	}
}
