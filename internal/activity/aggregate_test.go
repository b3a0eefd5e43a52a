package activity

import (
	"math"
	"testing"
)

func TestActiveDaysPercent(t *testing.T) {
	samples := []Sample{
		sample("2024-03-01", 1),
		sample("2024-03-02", 0),
		sample("2024-03-03", 4),
	}
	if got := ActiveDaysPercent(samples); got != 67 {
		t.Errorf("ActiveDaysPercent = %d, want 67", got)
	}
}

func TestActiveDaysPercent_Empty(t *testing.T) {
	if got := ActiveDaysPercent(nil); got != 0 {
		t.Errorf("ActiveDaysPercent(nil) = %d, want 0", got)
	}
}

func TestTotalAndAverageValue(t *testing.T) {
	samples := []Sample{
		sample("2024-03-01", 10),
		sample("2024-03-02", 0),
		sample("2024-03-03", 5),
	}
	if got := TotalValue(samples); got != 15 {
		t.Errorf("TotalValue = %d, want 15", got)
	}
	if got := AverageValue(samples); got != 5 {
		t.Errorf("AverageValue = %d, want 5", got)
	}
	if got := AverageValue(nil); got != 0 {
		t.Errorf("AverageValue(nil) = %d, want 0", got)
	}
}

func TestWindowSum(t *testing.T) {
	samples := []Sample{
		sample("2024-03-01", 1),
		sample("2024-03-02", 2),
		sample("2024-03-03", 3),
		sample("2024-03-04", 4),
	}
	if got := WindowSum(samples, 2); got != 7 {
		t.Errorf("WindowSum(2) = %d, want 7", got)
	}
	if got := WindowSum(samples, 10); got != 10 {
		t.Errorf("WindowSum(10) = %d, want 10", got)
	}
	if got := WindowSum(samples, 0); got != 0 {
		t.Errorf("WindowSum(0) = %d, want 0", got)
	}
}

func TestMovingAverage(t *testing.T) {
	samples := []Sample{
		sample("2024-03-01", 2),
		sample("2024-03-02", 4),
		sample("2024-03-03", 6),
		sample("2024-03-04", 8),
	}
	got := MovingAverage(samples, 2)
	want := []float64{2, 3, 5, 7}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("MovingAverage[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if MovingAverage(samples, 0) != nil {
		t.Error("MovingAverage with n=0 should be nil")
	}
}

func TestPercentChange(t *testing.T) {
	cases := []struct {
		current, previous int
		want              string
	}{
		{150, 100, "+50.0%"},
		{50, 0, "+100%"},
		{0, 0, "+100%"},
		{75, 100, "-25.0%"},
		{100, 100, "+0.0%"},
		{143, 156, "-8.3%"},
	}
	for _, c := range cases {
		if got := PercentChange(c.current, c.previous); got != c.want {
			t.Errorf("PercentChange(%d, %d) = %q, want %q", c.current, c.previous, got, c.want)
		}
	}
}

func TestMaxValueAndLastN(t *testing.T) {
	samples := []Sample{
		sample("2024-03-01", 3),
		sample("2024-03-02", 9),
		sample("2024-03-03", 1),
	}
	if got := MaxValue(samples); got != 9 {
		t.Errorf("MaxValue = %d, want 9", got)
	}
	if got := MaxValue(nil); got != 0 {
		t.Errorf("MaxValue(nil) = %d, want 0", got)
	}
	last := LastN(samples, 2)
	if len(last) != 2 || last[0].Value != 9 {
		t.Errorf("LastN(2) = %+v", last)
	}
	if LastN(samples, 0) != nil {
		t.Error("LastN(0) should be nil")
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		4320:    "4,320",
		1234567: "1,234,567",
		-2500:   "-2,500",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := map[int]string{
		45:  "45 min",
		60:  "1 hr",
		125: "2 hr 5 min",
	}
	for in, want := range cases {
		if got := FormatMinutes(in); got != want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", in, got, want)
		}
	}
	if got := FormatPercent(87); got != "87%" {
		t.Errorf("FormatPercent(87) = %q", got)
	}
}
