// Package dates provides day-granularity calendar arithmetic.
// Every derived value in the dashboard compares dates at day precision in UTC,
// so all helpers here truncate to midnight UTC before comparing.
package dates

import (
	"fmt"
	"time"
)

// DayFormat is the canonical day key layout (ISO 8601 date).
const DayFormat = "2006-01-02"

// MonthFormat is the canonical month key layout.
const MonthFormat = "2006-01"

// DayStart truncates t to midnight UTC.
func DayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey formats t as its canonical day key.
func DayKey(t time.Time) string {
	return DayStart(t).Format(DayFormat)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DayStart(a).Equal(DayStart(b))
}

// DaysBetween returns the number of whole days from a to b (negative when b
// precedes a). Both are day-truncated first, so partial days never round.
func DaysBetween(a, b time.Time) int {
	return int(DayStart(b).Sub(DayStart(a)) / (24 * time.Hour))
}

// ISOWeekday returns the ISO 8601 weekday of t: Monday=1 .. Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.UTC().Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// MonthKey formats t as its canonical month key.
func MonthKey(t time.Time) string {
	return t.UTC().Format(MonthFormat)
}

// MonthRange returns the first instant of the keyed month and the first
// instant of the following month. The half-open interval [start, next) covers
// the month exactly.
func MonthRange(key string) (start, next time.Time, err error) {
	start, err = time.ParseInLocation(MonthFormat, key, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse month key %q: %w", key, err)
	}
	return start, start.AddDate(0, 1, 0), nil
}
