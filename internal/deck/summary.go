package deck

import (
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
)

// Summary is the set of headline numbers shown on stat cards.
type Summary struct {
	Streak          int
	LongestStreak   int
	ActiveDays      int // percent
	TotalValue      int
	MaxValue        int
	LastDay         int
	PreviousDay     int
	DayChange       string
	WeeklyAverage   int
	TotalCards      int
	AvgRetention    int
	DueNextWeek     int
	AvgDue          int
	StudyMinutes    int
	PeakHour        int
	HasPeakHour     bool
	MovingAverage7d float64
}

// Summarize computes the headline numbers over the activity in window.
func Summarize(d *Dataset, window activity.Range, now time.Time) Summary {
	samples := activity.Filter(d.Activity, window.Since(now))

	s := Summary{
		Streak:        activity.CurrentStreak(samples, now),
		LongestStreak: activity.LongestStreak(samples),
		ActiveDays:    activity.ActiveDaysPercent(samples),
		TotalValue:    activity.TotalValue(samples),
		MaxValue:      activity.MaxValue(samples),
		WeeklyAverage: activity.AverageValue(activity.LastN(samples, 7)),
		TotalCards:    TotalCards(d.CardStates),
		AvgRetention:  AverageRetention(d.Retention),
		DueNextWeek:   TotalDue(d.Forecast),
		AvgDue:        AverageDue(d.Forecast),
		StudyMinutes:  TotalStudyMinutes(d.StudyTime),
	}

	if n := len(samples); n > 0 {
		s.LastDay = samples[n-1].Value
		if n > 1 {
			s.PreviousDay = samples[n-2].Value
		}
		s.DayChange = activity.PercentChange(s.LastDay, s.PreviousDay)
		if ma := activity.MovingAverage(samples, 7); len(ma) > 0 {
			s.MovingAverage7d = ma[len(ma)-1]
		}
	}

	if peak, ok := PeakHour(d.StudyTime); ok {
		s.PeakHour = peak.Hour
		s.HasPeakHour = true
	}
	return s
}
