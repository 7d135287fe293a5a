// Package recurrence decides when recurring habits and tasks require action.
// All date comparisons are at day granularity against a caller-supplied date;
// this package never reads the clock.
package recurrence

import (
	"time"

	"github.com/daybookhq/daybook/internal/dates"
	"github.com/daybookhq/daybook/internal/types"
)

// IsDue reports whether the habit requires action on the given calendar date.
// Archived habits are never due; dates before the habit's start are never due.
// Returns an error only for malformed recurrence configuration (an invalid
// weekday list); callers isolate such failures per habit.
//
// For custom habits with week or month periods every date on/after the start
// is reported due: progress within those periods is counted against the
// period target elsewhere, and the interval is not enforced per-day.
func IsDue(h types.Habit, date time.Time) (bool, error) {
	if h.Archived {
		return false, nil
	}

	interval := h.FrequencyInterval
	if interval < 1 {
		interval = 1
	}

	base := dates.DayStart(h.StartDate)
	day := dates.DayStart(date)
	if day.Before(base) {
		return false, nil
	}
	offset := dates.DaysBetween(base, day)

	switch h.FrequencyType {
	case types.FrequencyDaily:
		return interval == 1 || offset%interval == 0, nil

	case types.FrequencyWeekly:
		if interval > 1 && (offset/7)%interval != 0 {
			return false, nil
		}
		days, err := ParseWeekdays(h.FrequencyDays)
		if err != nil {
			return false, err
		}
		if days == nil {
			return true, nil
		}
		return days.Contains(dates.ISOWeekday(date)), nil

	case types.FrequencyCustom:
		if h.FrequencyPeriod == types.PeriodDay {
			return interval == 1 || offset%interval == 0, nil
		}
		return true, nil

	default:
		return true, nil
	}
}

// DailyTarget returns the completion count required for one due day.
// Only custom day-period habits carry a per-day target; everything else
// needs a single completion.
func DailyTarget(h types.Habit) int {
	if h.FrequencyType == types.FrequencyCustom && h.FrequencyPeriod == types.PeriodDay {
		return h.FrequencyTarget
	}
	return 1
}

// NextOccurrence computes the date a recurring task repeats on after
// currentDate. For monthly rules a pinned day-of-month (pinnedDay > 0) forces
// the result's day; the calendar arithmetic normalizes overflow, so pinning
// day 31 in a short month rolls into the next month.
func NextOccurrence(currentDate time.Time, rule types.RecurrenceRule, pinnedDay int) time.Time {
	switch rule {
	case types.RuleDaily:
		return currentDate.AddDate(0, 0, 1)
	case types.RuleWeekly:
		return currentDate.AddDate(0, 0, 7)
	case types.RuleMonthly:
		next := currentDate.AddDate(0, 1, 0)
		if pinnedDay > 0 {
			next = time.Date(next.Year(), next.Month(), pinnedDay,
				next.Hour(), next.Minute(), next.Second(), next.Nanosecond(), next.Location())
		}
		return next
	case types.RuleYearly:
		return currentDate.AddDate(1, 0, 0)
	default:
		return currentDate
	}
}

// ShiftDueDate preserves the offset between a task's due date and its
// scheduled date across an occurrence: the delta from oldScheduled to oldDue
// is applied to newScheduled.
func ShiftDueDate(oldDue, oldScheduled, newScheduled time.Time) time.Time {
	return newScheduled.Add(oldDue.Sub(oldScheduled))
}
