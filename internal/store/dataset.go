package store

import (
	"fmt"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/deck"
)

// Dataset loads a year of statistics from the collection, using now's
// location for day boundaries.
func (db *DB) Dataset(now time.Time) (*deck.Dataset, error) {
	since := activity.Range1Y.Since(now)

	reviews, err := db.reviewsSince(since, now.Location())
	if err != nil {
		return nil, err
	}
	states, err := db.CardStates()
	if err != nil {
		return nil, err
	}
	ease, err := db.EaseFactors()
	if err != nil {
		return nil, err
	}
	forecast, err := db.Forecast(now)
	if err != nil {
		return nil, err
	}

	d := &deck.Dataset{
		Source:        db.path,
		GeneratedAt:   now,
		Activity:      dailyActivity(reviews, since, now),
		CardStates:    states,
		Retention:     monthlyRetention(reviews),
		Forecast:      forecast,
		StudyTime:     studyTimeByHour(reviews),
		EaseFactors:   ease,
		ResponseTimes: responseTimes(reviews),
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("collection produced an invalid dataset: %w", err)
	}
	return d, nil
}
