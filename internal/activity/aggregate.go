package activity

import (
	"fmt"
	"math"
)

// ActiveDaysPercent returns the share of samples with a positive value,
// rounded to a whole percent. An empty window counts as 0%.
func ActiveDaysPercent(samples []Sample) int {
	if len(samples) == 0 {
		return 0
	}
	active := 0
	for _, s := range samples {
		if s.Value > 0 {
			active++
		}
	}
	return int(math.Round(float64(active) / float64(len(samples)) * 100))
}

// TotalValue sums the value of every sample.
func TotalValue(samples []Sample) int {
	total := 0
	for _, s := range samples {
		total += s.Value
	}
	return total
}

// AverageValue returns the rounded mean value, or 0 for no samples.
func AverageValue(samples []Sample) int {
	if len(samples) == 0 {
		return 0
	}
	return int(math.Round(float64(TotalValue(samples)) / float64(len(samples))))
}

// WindowSum sums the trailing n samples.
func WindowSum(samples []Sample, n int) int {
	return TotalValue(LastN(samples, n))
}

// MovingAverage returns the trailing n-sample mean at every position of
// samples. Positions before the window fills average what is available.
func MovingAverage(samples []Sample, n int) []float64 {
	if n <= 0 || len(samples) == 0 {
		return nil
	}
	out := make([]float64, len(samples))
	sum := 0
	for i, s := range samples {
		sum += s.Value
		if i >= n {
			sum -= samples[i-n].Value
		}
		width := n
		if i+1 < n {
			width = i + 1
		}
		out[i] = float64(sum) / float64(width)
	}
	return out
}

// PercentChange formats the day-over-day change from previous to current
// with one decimal and an explicit sign. A zero previous value reports
// "+100%".
func PercentChange(current, previous int) string {
	if previous == 0 {
		return "+100%"
	}
	change := float64(current-previous) / float64(previous) * 100
	sign := ""
	if change >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, change)
}
