// Package mock generates sample flashcard statistics for demos and for
// running the dashboard without a collection file.
package mock

import (
	"math/rand"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/deck"
)

// Generator produces deterministic data for a given seed.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded with seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// intn returns a value in [0, n).
func (g *Generator) intn(n int) int {
	return g.rng.Intn(n)
}

// Activity generates one sample per day for the months leading up to now.
// Weekends see more activity, roughly one day in seven spikes, and some
// weekdays are left empty.
func (g *Generator) Activity(now time.Time, months int) []activity.Sample {
	end := activity.Day(now)
	start := end.AddDate(0, -months, 0)

	var out []activity.Sample
	for _, d := range activity.DatesInRange(start, end) {
		weekend := d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
		spike := g.rng.Float64() > 0.85

		limit := 5
		if weekend {
			limit = 8
		}
		value := g.intn(limit)
		if spike {
			value = g.intn(13) + 8
		}
		if g.rng.Float64() > 0.8 && !weekend && !spike {
			value = 0
		}

		out = append(out, activity.Sample{
			Date:  d,
			Value: value,
			Details: &activity.Details{
				Reviews:   value * (g.intn(10) + 10),
				NewCards:  value / 2,
				TimeSpent: value * (g.intn(5) + 2),
			},
		})
	}
	return out
}

// CardStates returns a fixed card distribution.
func (g *Generator) CardStates() []deck.CardState {
	return []deck.CardState{
		{Name: "Learning", Count: 320},
		{Name: "Young", Count: 580},
		{Name: "Mature", Count: 1200},
		{Name: "Suspended", Count: 75},
	}
}

// Retention generates twelve months of retention between 70% and 94%,
// ending with the current month.
func (g *Generator) Retention(now time.Time) []deck.RetentionPoint {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := make([]deck.RetentionPoint, 12)
	for i := range out {
		out[i] = deck.RetentionPoint{
			Month:     first.AddDate(0, -(11 - i), 0),
			Retention: g.intn(25) + 70,
		}
	}
	return out
}

// Forecast generates the next seven days of due cards, tapering off and
// never below 10.
func (g *Generator) Forecast(now time.Time) []deck.DueDay {
	today := activity.Day(now)
	out := make([]deck.DueDay, 7)
	for i := range out {
		count := g.intn(100) + 50 - i*5
		if count < 10 {
			count = 10
		}
		out[i] = deck.DueDay{Date: today.AddDate(0, 0, i), Count: count}
	}
	return out
}

// StudyTime generates minutes studied per hour of day, concentrated in the
// morning, at lunch and in the evening.
func (g *Generator) StudyTime() []deck.HourMinutes {
	out := make([]deck.HourMinutes, 24)
	for h := range out {
		var minutes int
		switch {
		case h >= 6 && h <= 8:
			minutes = g.intn(40) + 10
		case h >= 12 && h <= 14:
			minutes = g.intn(30) + 5
		case h >= 19 && h <= 23:
			minutes = g.intn(60) + 20
		default:
			minutes = g.intn(15)
		}
		out[h] = deck.HourMinutes{Hour: h, Minutes: minutes}
	}
	return out
}

// EaseFactors returns a fixed ease factor distribution.
func (g *Generator) EaseFactors() []deck.EaseBucket {
	return []deck.EaseBucket{
		{Range: "150-200", Count: 120},
		{Range: "200-250", Count: 450},
		{Range: "250-300", Count: 780},
		{Range: "300-350", Count: 230},
		{Range: "350+", Count: 75},
	}
}

// ResponseTimes returns fixed mean answer times per card category.
func (g *Generator) ResponseTimes() []deck.ResponseTime {
	return []deck.ResponseTime{
		{Category: "Learning", Seconds: 10.2},
		{Category: "Young", Seconds: 7.5},
		{Category: "Mature", Seconds: 4.3},
	}
}

// Dataset assembles a full mock dataset with a year of activity.
func (g *Generator) Dataset(now time.Time) *deck.Dataset {
	return &deck.Dataset{
		Source:        "mock",
		GeneratedAt:   now,
		Activity:      g.Activity(now, 12),
		CardStates:    g.CardStates(),
		Retention:     g.Retention(now),
		Forecast:      g.Forecast(now),
		StudyTime:     g.StudyTime(),
		EaseFactors:   g.EaseFactors(),
		ResponseTimes: g.ResponseTimes(),
	}
}
