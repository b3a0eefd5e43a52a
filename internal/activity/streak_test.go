package activity

import (
	"testing"
	"time"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func sample(date string, value int) Sample {
	return Sample{Date: mustDate(date), Value: value}
}

func TestCurrentStreak_Empty(t *testing.T) {
	if got := CurrentStreak(nil, mustDate("2024-03-10")); got != 0 {
		t.Fatalf("CurrentStreak(nil) = %d, want 0", got)
	}
}

func TestCurrentStreak_StopsAtZeroValue(t *testing.T) {
	now := mustDate("2024-03-10")
	samples := []Sample{
		sample("2024-03-08", 0),
		sample("2024-03-10", 5),
		sample("2024-03-09", 3),
	}
	if got := CurrentStreak(samples, now); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
}

func TestCurrentStreak_GapBreaksCount(t *testing.T) {
	now := mustDate("2024-03-10")
	samples := []Sample{
		sample("2024-03-10", 4),
		sample("2024-03-08", 7),
	}
	if got := CurrentStreak(samples, now); got != 1 {
		t.Errorf("CurrentStreak = %d, want 1 (yesterday missing)", got)
	}
}

func TestCurrentStreak_TodayInactive(t *testing.T) {
	now := mustDate("2024-03-10")
	samples := []Sample{
		sample("2024-03-10", 0),
		sample("2024-03-09", 9),
		sample("2024-03-08", 9),
	}
	if got := CurrentStreak(samples, now); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0 (today has no activity)", got)
	}
}

func TestCurrentStreak_NoSampleForToday(t *testing.T) {
	now := mustDate("2024-03-10")
	samples := []Sample{sample("2024-03-09", 2)}
	if got := CurrentStreak(samples, now); got != 0 {
		t.Errorf("CurrentStreak = %d, want 0 (no grace period)", got)
	}
}

func TestCurrentStreak_IgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, 3, 10, 21, 30, 0, 0, time.UTC)
	samples := []Sample{
		{Date: time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC), Value: 1},
		{Date: time.Date(2024, 3, 9, 23, 59, 0, 0, time.UTC), Value: 1},
	}
	if got := CurrentStreak(samples, now); got != 2 {
		t.Errorf("CurrentStreak = %d, want 2", got)
	}
}

func TestCurrentStreak_AcrossMonthBoundary(t *testing.T) {
	now := mustDate("2024-03-02")
	samples := []Sample{
		sample("2024-02-28", 1),
		sample("2024-02-29", 1),
		sample("2024-03-01", 1),
		sample("2024-03-02", 1),
	}
	if got := CurrentStreak(samples, now); got != 4 {
		t.Errorf("CurrentStreak = %d, want 4", got)
	}
}

func TestCurrentStreak_DoesNotMutateInput(t *testing.T) {
	samples := []Sample{sample("2024-03-09", 1), sample("2024-03-10", 1)}
	CurrentStreak(samples, mustDate("2024-03-10"))
	if !samples[0].Date.Equal(mustDate("2024-03-09")) {
		t.Fatal("CurrentStreak reordered its input")
	}
}

func TestLongestStreak(t *testing.T) {
	samples := []Sample{
		sample("2024-03-01", 1),
		sample("2024-03-02", 2),
		sample("2024-03-03", 0),
		sample("2024-03-04", 1),
		sample("2024-03-05", 1),
		sample("2024-03-06", 1),
		sample("2024-03-08", 1),
	}
	if got := LongestStreak(samples); got != 3 {
		t.Errorf("LongestStreak = %d, want 3", got)
	}
}

func TestLongestStreak_Empty(t *testing.T) {
	if got := LongestStreak(nil); got != 0 {
		t.Errorf("LongestStreak(nil) = %d, want 0", got)
	}
	if got := LongestStreak([]Sample{sample("2024-03-01", 0)}); got != 0 {
		t.Errorf("LongestStreak(all zero) = %d, want 0", got)
	}
}
