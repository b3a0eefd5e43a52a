package mock

import (
	"testing"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
)

var fixedNow = time.Date(2024, time.September, 15, 14, 0, 0, 0, time.UTC)

func TestActivity_OnePerDay(t *testing.T) {
	samples := New(1).Activity(fixedNow, 6)

	want := len(activity.DatesInRange(fixedNow.AddDate(0, -6, 0), fixedNow))
	if len(samples) != want {
		t.Fatalf("got %d samples, want %d", len(samples), want)
	}
	for i, s := range samples {
		if s.Value < 0 || s.Value > 20 {
			t.Errorf("sample %d value %d out of range", i, s.Value)
		}
		if s.Details == nil {
			t.Fatalf("sample %d missing details", i)
		}
		if s.Details.NewCards != s.Value/2 {
			t.Errorf("sample %d new cards = %d, want %d", i, s.Details.NewCards, s.Value/2)
		}
		if i > 0 && !samples[i-1].Date.Before(s.Date) {
			t.Fatalf("samples not ascending at %d", i)
		}
	}
	if !activity.SameDay(samples[len(samples)-1].Date, fixedNow) {
		t.Error("last sample should be today")
	}
}

func TestActivity_Deterministic(t *testing.T) {
	a := New(42).Activity(fixedNow, 3)
	b := New(42).Activity(fixedNow, 3)
	for i := range a {
		if a[i].Value != b[i].Value {
			t.Fatalf("same seed produced different values at %d", i)
		}
	}
}

func TestForecastFloor(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		for _, d := range New(seed).Forecast(fixedNow) {
			if d.Count < 10 {
				t.Fatalf("seed %d: forecast %d below floor", seed, d.Count)
			}
		}
	}
}

func TestStudyTimeShape(t *testing.T) {
	hours := New(3).StudyTime()
	if len(hours) != 24 {
		t.Fatalf("len = %d, want 24", len(hours))
	}
	for _, h := range hours {
		if h.Hour >= 19 && h.Minutes < 20 {
			t.Errorf("evening hour %d has %d minutes, want >= 20", h.Hour, h.Minutes)
		}
		if (h.Hour < 6 || (h.Hour > 8 && h.Hour < 12) || (h.Hour > 14 && h.Hour < 19)) && h.Minutes >= 15 {
			t.Errorf("off-peak hour %d has %d minutes, want < 15", h.Hour, h.Minutes)
		}
	}
}

func TestDatasetValidates(t *testing.T) {
	d := New(9).Dataset(fixedNow)
	if err := d.Validate(); err != nil {
		t.Fatalf("mock dataset invalid: %v", err)
	}
	if len(d.Retention) != 12 {
		t.Errorf("retention months = %d, want 12", len(d.Retention))
	}
	if d.Retention[11].Month.Month() != time.September {
		t.Errorf("last retention month = %s, want September", d.Retention[11].Month.Month())
	}
}
