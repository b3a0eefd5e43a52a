package deck

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
)

// CardState is the number of cards in one learning stage.
type CardState struct {
	Name  string
	Count int
}

// RetentionPoint is the retention rate (0-100) for one month.
type RetentionPoint struct {
	Month     time.Time // first day of the month
	Retention int
}

// Label returns the short month name, e.g. "Mar".
func (r RetentionPoint) Label() string {
	return r.Month.Format("Jan")
}

// DueDay is the number of cards due on a future day.
type DueDay struct {
	Date  time.Time
	Count int
}

// HourMinutes is the study time spent in one hour of the day (0-23).
type HourMinutes struct {
	Hour    int
	Minutes int
}

// EaseBucket counts cards whose ease factor (in permille) falls in a range.
type EaseBucket struct {
	Range string
	Count int
}

// ResponseTime is the mean answer time in seconds for a card category.
type ResponseTime struct {
	Category string
	Seconds  float64
}

// CurvePoint is one point of the sample forgetting curve.
type CurvePoint struct {
	Day       int
	Retention int
}

// Dataset holds everything a dashboard render needs.
type Dataset struct {
	Source        string // "mock" or a collection path
	GeneratedAt   time.Time
	Activity      []activity.Sample
	CardStates    []CardState
	Retention     []RetentionPoint
	Forecast      []DueDay
	StudyTime     []HourMinutes
	EaseFactors   []EaseBucket
	ResponseTimes []ResponseTime
}

// Validate checks the dataset shape: activity ascending with no duplicate
// days, and no negative counts anywhere.
func (d *Dataset) Validate() error {
	for i, s := range d.Activity {
		if s.Value < 0 {
			return fmt.Errorf("activity on %s has negative value %d", s.Date.Format(activity.DateLayout), s.Value)
		}
		if i > 0 && !activity.Day(d.Activity[i-1].Date).Before(activity.Day(s.Date)) {
			return fmt.Errorf("activity not strictly ascending at %s", s.Date.Format(activity.DateLayout))
		}
	}
	for _, c := range d.CardStates {
		if c.Count < 0 {
			return fmt.Errorf("card state %q has negative count", c.Name)
		}
	}
	for _, f := range d.Forecast {
		if f.Count < 0 {
			return fmt.Errorf("forecast on %s has negative count", f.Date.Format(activity.DateLayout))
		}
	}
	for _, h := range d.StudyTime {
		if h.Hour < 0 || h.Hour > 23 {
			return fmt.Errorf("study time hour %d out of range", h.Hour)
		}
		if h.Minutes < 0 {
			return fmt.Errorf("study time at hour %d is negative", h.Hour)
		}
	}
	return nil
}

// CardTypeColor returns the chart color for a card state name.
func CardTypeColor(name string) string {
	switch strings.ToLower(name) {
	case "learning":
		return "#f59e0b"
	case "young":
		return "#8b5cf6"
	case "mature":
		return "#10b981"
	case "suspended":
		return "#6b7280"
	case "forgotten":
		return "#ef4444"
	default:
		return "#6366f1"
	}
}

// TotalCards sums every card state.
func TotalCards(states []CardState) int {
	total := 0
	for _, s := range states {
		total += s.Count
	}
	return total
}

// StateShare returns each state's share of the total as a rounded
// percentage. All shares are 0 when there are no cards.
func StateShare(states []CardState) map[string]int {
	total := TotalCards(states)
	out := make(map[string]int, len(states))
	for _, s := range states {
		if total == 0 {
			out[s.Name] = 0
			continue
		}
		out[s.Name] = int(math.Round(float64(s.Count) / float64(total) * 100))
	}
	return out
}

// AverageRetention returns the rounded mean monthly retention.
func AverageRetention(points []RetentionPoint) int {
	if len(points) == 0 {
		return 0
	}
	sum := 0
	for _, p := range points {
		sum += p.Retention
	}
	return int(math.Round(float64(sum) / float64(len(points))))
}

// TotalDue sums the forecast.
func TotalDue(days []DueDay) int {
	total := 0
	for _, d := range days {
		total += d.Count
	}
	return total
}

// AverageDue returns the rounded mean cards due per forecast day.
func AverageDue(days []DueDay) int {
	if len(days) == 0 {
		return 0
	}
	return int(math.Round(float64(TotalDue(days)) / float64(len(days))))
}

// TotalStudyMinutes sums study time across all hours.
func TotalStudyMinutes(hours []HourMinutes) int {
	total := 0
	for _, h := range hours {
		total += h.Minutes
	}
	return total
}

// PeakHour returns the hour with the most study time. Ties keep the
// earliest hour; ok is false when hours is empty.
func PeakHour(hours []HourMinutes) (peak HourMinutes, ok bool) {
	if len(hours) == 0 {
		return HourMinutes{}, false
	}
	peak = hours[0]
	for _, h := range hours[1:] {
		if h.Minutes > peak.Minutes {
			peak = h
		}
	}
	return peak, true
}

// TotalEase sums the ease factor distribution.
func TotalEase(buckets []EaseBucket) int {
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	return total
}

// ForgettingCurve returns the fixed sample forgetting curve shown beside
// the retention chart.
func ForgettingCurve() []CurvePoint {
	return []CurvePoint{
		{Day: 0, Retention: 100},
		{Day: 1, Retention: 70},
		{Day: 2, Retention: 60},
		{Day: 5, Retention: 46},
		{Day: 10, Retention: 37},
		{Day: 15, Retention: 32},
		{Day: 30, Retention: 28},
		{Day: 60, Retention: 24},
	}
}
