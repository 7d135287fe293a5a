package people

import (
	"time"

	"github.com/daybookhq/daybook/internal/dates"
)

// BirthdayWindow is the lookahead, in days, for upcoming birthdays.
const BirthdayWindow = 14

// DaysUntilBirthday returns the days from now until the person's next
// birthday, using only the month and day of the stored date. A birthday
// today returns 0; one that already passed this year counts to next year's.
func DaysUntilBirthday(birthday, now time.Time) int {
	today := dates.DayStart(now)
	next := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return dates.DaysBetween(today, next)
}

// FormatBirthday renders the month/day of a birthday for display.
func FormatBirthday(birthday time.Time) string {
	return birthday.Format("2 Jan")
}
