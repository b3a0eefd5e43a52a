package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
)

var statsNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

// weekSamples covers Mar 4-10 2024 with a gap on the 6th and the 9th.
func weekSamples() []activity.Sample {
	values := []int{1, 2, 0, 3, 4, 0, 5}
	out := make([]activity.Sample, len(values))
	for i, v := range values {
		out[i] = activity.Sample{Date: time.Date(2024, 3, 4+i, 0, 0, 0, 0, time.UTC), Value: v}
	}
	return out
}

func TestComputeStats(t *testing.T) {
	s := computeStats(weekSamples(), activity.Range6M, statsNow)

	if s.Days != 7 {
		t.Errorf("Days = %d, want 7", s.Days)
	}
	if s.Streak != 1 {
		t.Errorf("Streak = %d, want 1", s.Streak)
	}
	if s.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", s.LongestStreak)
	}
	if s.ActiveDays != 71 {
		t.Errorf("ActiveDays = %d, want 71", s.ActiveDays)
	}
	if s.Total != 15 || s.DailyAverage != 2 {
		t.Errorf("Total/DailyAverage = %d/%d, want 15/2", s.Total, s.DailyAverage)
	}
	if s.DayChange != "+100%" {
		t.Errorf("DayChange = %q, want +100%%", s.DayChange)
	}
	if !activity.SameDay(s.Peak.Date, statsNow) || s.Peak.Value != 5 {
		t.Errorf("Peak = %+v, want Mar 10 with 5", s.Peak)
	}
}

func TestComputeStats_RangeFilters(t *testing.T) {
	samples := append([]activity.Sample{
		{Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Value: 50},
	}, weekSamples()...)

	if got := computeStats(samples, activity.Range3M, statsNow).Total; got != 15 {
		t.Errorf("3m total = %d, want 15", got)
	}
	if got := computeStats(samples, activity.Range1Y, statsNow).Total; got != 65 {
		t.Errorf("1y total = %d, want 65", got)
	}
}

func TestComputeStats_LastWeek(t *testing.T) {
	samples := append([]activity.Sample{
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Value: 7},
		{Date: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), Value: 3},
	}, weekSamples()...)

	s := computeStats(samples, activity.Range6M, statsNow)
	if s.Total != 25 {
		t.Errorf("Total = %d, want 25", s.Total)
	}
	if s.LastWeek != 15 {
		t.Errorf("LastWeek = %d, want 15 (Mar 4-10 only)", s.LastWeek)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	s := computeStats(nil, activity.Range6M, statsNow)
	if s.Streak != 0 || s.ActiveDays != 0 || s.DayChange != "" {
		t.Errorf("empty stats = %+v", s)
	}
}

func TestPrintStats(t *testing.T) {
	out := captureStdout(t, func() {
		printStats(computeStats(weekSamples(), activity.Range6M, statsNow), "cards studied")
	})
	for _, want := range []string{"Study Stats", "6 months", "1 day", "longest: 2", "71% of 7 days", "15 cards studied", "Last 7 days", "2.1", "March 10, 2024 (5)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestPrintStats_NoActivity(t *testing.T) {
	out := captureStdout(t, func() {
		printStats(computeStats(nil, activity.Range3M, statsNow), "cards studied")
	})
	if !strings.Contains(out, "No activity") {
		t.Errorf("expected empty-state message, got: %q", out)
	}
}

func TestRunStats_Mock(t *testing.T) {
	configTestEnv(t)

	out := captureStdout(t, func() {
		if err := runStats(nil, nil); err != nil {
			t.Errorf("runStats: %v", err)
		}
	})
	if !strings.Contains(out, "Streak") || !strings.Contains(out, "Active days") {
		t.Errorf("expected stats output, got:\n%s", out)
	}
}
