package heatmap

import (
	"sort"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
)

// MonthLabelLayout formats month group labels, e.g. "March 2024".
const MonthLabelLayout = "January 2006"

// MonthGroup is one calendar month of heatmap cells.
type MonthGroup struct {
	Label string
	Year  int
	Month time.Month
	Weeks []WeekGroup
}

// WeekGroup is a month-relative bucket of up to seven days. Index 0 holds
// days 1-7 of the month, index 1 days 8-14 and so on; it is not an ISO week.
type WeekGroup struct {
	Index int
	Days  []activity.Sample
}

type monthKey struct {
	year  int
	month time.Month
}

// Group partitions samples by calendar month and month-relative week.
//
// Months are ordered by (year, month), weeks by index and days by date, all
// ascending. Buckets never span a month boundary, so the first bucket of a
// partially covered month can hold fewer than seven days. The input slice
// is not modified.
func Group(samples []activity.Sample) []MonthGroup {
	if len(samples) == 0 {
		return nil
	}

	months := make(map[monthKey]map[int][]activity.Sample)
	for _, s := range samples {
		key := monthKey{year: s.Date.Year(), month: s.Date.Month()}
		weeks, ok := months[key]
		if !ok {
			weeks = make(map[int][]activity.Sample)
			months[key] = weeks
		}
		week := WeekIndex(s.Date)
		weeks[week] = append(weeks[week], s)
	}

	result := make([]MonthGroup, 0, len(months))
	for key, weeks := range months {
		mg := MonthGroup{
			Label: time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC).Format(MonthLabelLayout),
			Year:  key.year,
			Month: key.month,
			Weeks: make([]WeekGroup, 0, len(weeks)),
		}
		for idx, days := range weeks {
			mg.Weeks = append(mg.Weeks, WeekGroup{Index: idx, Days: activity.SortAsc(days)})
		}
		sort.Slice(mg.Weeks, func(i, j int) bool {
			return mg.Weeks[i].Index < mg.Weeks[j].Index
		})
		result = append(result, mg)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Month < result[j].Month
	})
	return result
}

// WeekIndex returns the 0-indexed week bucket of t within its month:
// floor(daysSinceFirstOfMonth / 7).
func WeekIndex(t time.Time) int {
	return (t.Day() - 1) / 7
}

// DayCount returns the number of days across all weeks of the month.
func (m MonthGroup) DayCount() int {
	n := 0
	for _, w := range m.Weeks {
		n += len(w.Days)
	}
	return n
}
