package store

import (
	"fmt"
	"time"

	"github.com/rnwolfe/deckstats/internal/activity"
	"github.com/rnwolfe/deckstats/internal/deck"
)

// Card types and queues as stored in the cards table.
const (
	cardNew        = 0
	cardLearning   = 1
	cardReview     = 2
	cardRelearning = 3

	queueSuspended = -1
	queueReview    = 2
	queueDayLearn  = 3
)

// forecastDays is the length of the due forecast.
const forecastDays = 7

// easeRanges are the ease factor buckets in percent; the last is open-ended.
var easeRanges = []struct {
	label string
	upper int // exclusive, in permille
}{
	{"150-200", 2000},
	{"200-250", 2500},
	{"250-300", 3000},
	{"300-350", 3500},
	{"350+", 0},
}

// CardStates counts cards per learning stage.
func (db *DB) CardStates() ([]deck.CardState, error) {
	rows, err := db.conn.Query(`SELECT type, queue, ivl FROM cards`)
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	order := []string{"New", "Learning", "Young", "Mature", "Suspended"}
	counts := make(map[string]int, len(order))
	for rows.Next() {
		var typ, queue, ivl int
		if err := rows.Scan(&typ, &queue, &ivl); err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}
		counts[classifyCard(typ, queue, ivl)]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]deck.CardState, 0, len(order))
	for _, name := range order {
		out = append(out, deck.CardState{Name: name, Count: counts[name]})
	}
	return out, nil
}

func classifyCard(typ, queue, ivl int) string {
	switch {
	case queue == queueSuspended:
		return "Suspended"
	case typ == cardNew:
		return "New"
	case typ == cardLearning || typ == cardRelearning:
		return "Learning"
	case ivl >= matureInterval:
		return "Mature"
	default:
		return "Young"
	}
}

// EaseFactors buckets review cards by ease factor. Factors below 200%
// (the scheduler minimum is 130%) land in the first bucket.
func (db *DB) EaseFactors() ([]deck.EaseBucket, error) {
	rows, err := db.conn.Query(`SELECT factor FROM cards WHERE type = ?`, cardReview)
	if err != nil {
		return nil, fmt.Errorf("querying ease factors: %w", err)
	}
	defer rows.Close()

	counts := make([]int, len(easeRanges))
	for rows.Next() {
		var factor int
		if err := rows.Scan(&factor); err != nil {
			return nil, fmt.Errorf("scanning ease factor: %w", err)
		}
		counts[easeIndex(factor)]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]deck.EaseBucket, len(easeRanges))
	for i, r := range easeRanges {
		out[i] = deck.EaseBucket{Range: r.label, Count: counts[i]}
	}
	return out, nil
}

func easeIndex(factor int) int {
	for i, r := range easeRanges {
		if r.upper == 0 || factor < r.upper {
			return i
		}
	}
	return len(easeRanges) - 1
}

// Forecast counts review cards due on each of the next seven days. Overdue
// cards are counted as due today.
func (db *DB) Forecast(now time.Time) ([]deck.DueDay, error) {
	var crt int64
	if err := db.conn.QueryRow(`SELECT crt FROM col LIMIT 1`).Scan(&crt); err != nil {
		return nil, fmt.Errorf("reading collection creation time: %w", err)
	}
	created := activity.Day(time.Unix(crt, 0).In(now.Location()))
	todayIdx := int(activity.Day(now).Sub(created).Hours() / 24)

	rows, err := db.conn.Query(
		`SELECT due FROM cards WHERE queue IN (?, ?) AND due < ?`,
		queueReview, queueDayLearn, todayIdx+forecastDays,
	)
	if err != nil {
		return nil, fmt.Errorf("querying due cards: %w", err)
	}
	defer rows.Close()

	counts := make([]int, forecastDays)
	for rows.Next() {
		var due int
		if err := rows.Scan(&due); err != nil {
			return nil, fmt.Errorf("scanning due card: %w", err)
		}
		offset := due - todayIdx
		if offset < 0 {
			offset = 0
		}
		counts[offset]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	today := activity.Day(now)
	out := make([]deck.DueDay, forecastDays)
	for i := range out {
		out[i] = deck.DueDay{Date: today.AddDate(0, 0, i), Count: counts[i]}
	}
	return out, nil
}
