package store

import (
	"fmt"
	"math"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/deck"
)

// Review log entry kinds as stored in revlog.type.
const (
	kindLearn   = 0
	kindReview  = 1
	kindRelearn = 2
	kindCram    = 3
)

// matureInterval is the interval in days from which a card counts as mature.
const matureInterval = 21

// review is one answered card from the review log.
type review struct {
	At      time.Time
	CardID  int64
	Ease    int // 1 = again .. 4 = easy
	Kind    int
	LastIvl int
	Millis  int
}

// reviewsSince loads review log entries answered on or after since,
// oldest first, with timestamps in loc.
func (db *DB) reviewsSince(since time.Time, loc *time.Location) ([]review, error) {
	rows, err := db.conn.Query(
		`SELECT id, cid, ease, type, lastIvl, time FROM revlog WHERE id >= ? ORDER BY id ASC`,
		since.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("querying review log: %w", err)
	}
	defer rows.Close()

	var out []review
	for rows.Next() {
		var r review
		var id int64
		if err := rows.Scan(&id, &r.CardID, &r.Ease, &r.Kind, &r.LastIvl, &r.Millis); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		r.At = time.UnixMilli(id).In(loc)
		out = append(out, r)
	}
	return out, rows.Err()
}

// dailyActivity buckets reviews by calendar day from since through now,
// emitting a zero sample for every day without reviews.
func dailyActivity(reviews []review, since, now time.Time) []activity.Sample {
	type dayAgg struct {
		reviews  int
		newCards map[int64]bool
		millis   int
	}
	byDay := make(map[string]*dayAgg)
	for _, r := range reviews {
		key := r.At.Format(activity.DateLayout)
		agg, ok := byDay[key]
		if !ok {
			agg = &dayAgg{newCards: make(map[int64]bool)}
			byDay[key] = agg
		}
		agg.reviews++
		agg.millis += r.Millis
		if r.Kind == kindLearn {
			agg.newCards[r.CardID] = true
		}
	}

	var out []activity.Sample
	for _, d := range activity.DatesInRange(since, now) {
		s := activity.Sample{Date: d}
		if agg, ok := byDay[d.Format(activity.DateLayout)]; ok {
			s.Value = agg.reviews
			s.Details = &activity.Details{
				Reviews:   agg.reviews,
				NewCards:  len(agg.newCards),
				TimeSpent: int(math.Round(float64(agg.millis) / 60000)),
			}
		}
		out = append(out, s)
	}
	return out
}

// studyTimeByHour sums answer time per hour of day, in minutes.
func studyTimeByHour(reviews []review) []deck.HourMinutes {
	var millis [24]int
	for _, r := range reviews {
		millis[r.At.Hour()] += r.Millis
	}
	out := make([]deck.HourMinutes, 24)
	for h := range out {
		out[h] = deck.HourMinutes{Hour: h, Minutes: int(math.Round(float64(millis[h]) / 60000))}
	}
	return out
}

// monthlyRetention returns, per calendar month with review-type answers,
// the share answered with anything but "again". Months are ascending.
func monthlyRetention(reviews []review) []deck.RetentionPoint {
	type agg struct{ passed, total int }
	var months []time.Time
	byMonth := make(map[time.Time]*agg)
	for _, r := range reviews {
		if r.Kind != kindReview {
			continue
		}
		m := time.Date(r.At.Year(), r.At.Month(), 1, 0, 0, 0, 0, r.At.Location())
		a, ok := byMonth[m]
		if !ok {
			a = &agg{}
			byMonth[m] = a
			months = append(months, m)
		}
		a.total++
		if r.Ease > 1 {
			a.passed++
		}
	}

	out := make([]deck.RetentionPoint, 0, len(months))
	for _, m := range months {
		a := byMonth[m]
		out = append(out, deck.RetentionPoint{
			Month:     m,
			Retention: int(math.Round(float64(a.passed) / float64(a.total) * 100)),
		})
	}
	return out
}

// responseTimes averages answer time by learning stage at the time of the
// answer. Categories without answers are omitted.
func responseTimes(reviews []review) []deck.ResponseTime {
	names := []string{"Learning", "Young", "Mature"}
	var sums, counts [3]int
	for _, r := range reviews {
		idx := 0
		switch {
		case r.Kind == kindLearn || r.Kind == kindRelearn:
			idx = 0
		case r.LastIvl >= matureInterval:
			idx = 2
		default:
			idx = 1
		}
		sums[idx] += r.Millis
		counts[idx]++
	}

	var out []deck.ResponseTime
	for i, name := range names {
		if counts[i] == 0 {
			continue
		}
		secs := float64(sums[i]) / float64(counts[i]) / 1000
		out = append(out, deck.ResponseTime{Category: name, Seconds: math.Round(secs*10) / 10})
	}
	return out
}
