// Package streak computes consecutive-day streaks from sparse day markers.
package streak

import (
	"time"

	"github.com/daybookhq/daybook/internal/dates"
)

// Lookback caps. Streaks are deliberately capped approximations: the walk
// never inspects more days than the cap, so a streak longer than the cap
// reports the cap.
const (
	HabitLookback   = 90
	JournalLookback = 365
)

// DaySet is a set of satisfied days keyed by dates.DayKey.
type DaySet map[string]struct{}

// NewDaySet builds a DaySet from day-granularity timestamps.
func NewDaySet(days []time.Time) DaySet {
	set := make(DaySet, len(days))
	for _, d := range days {
		set[dates.DayKey(d)] = struct{}{}
	}
	return set
}

// Count walks backward from today and counts consecutive satisfied days.
// An unsatisfied today is skipped without breaking the streak (the day may
// simply not be logged yet); any earlier unsatisfied day ends the walk.
// The walk stops unconditionally after lookback days.
func Count(today time.Time, lookback int, satisfied DaySet) int {
	count := 0
	for i := 0; i < lookback; i++ {
		key := dates.DayKey(today.AddDate(0, 0, -i))
		if _, ok := satisfied[key]; ok {
			count++
			continue
		}
		if i == 0 {
			continue
		}
		break
	}
	return count
}
