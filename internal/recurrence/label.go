package recurrence

import (
	"fmt"

	"github.com/daybookhq/daybook/internal/types"
)

// Label renders a short human-readable frequency description for display.
// Malformed weekday lists fall back to the plain weekly label.
func Label(h types.Habit) string {
	interval := h.FrequencyInterval
	if interval < 1 {
		interval = 1
	}

	switch h.FrequencyType {
	case types.FrequencyDaily:
		if interval == 1 {
			return "Daily"
		}
		return fmt.Sprintf("Every %dd", interval)

	case types.FrequencyWeekly:
		days, err := ParseWeekdays(h.FrequencyDays)
		if err != nil || days == nil {
			if interval == 1 {
				return "Weekly"
			}
			return fmt.Sprintf("Every %dw", interval)
		}
		return fmt.Sprintf("%dx/week", len(days))

	case types.FrequencyCustom:
		period := "day"
		switch h.FrequencyPeriod {
		case types.PeriodWeek:
			period = "week"
		case types.PeriodMonth:
			period = "mo"
		}
		return fmt.Sprintf("%dx/%s", h.FrequencyTarget, period)

	default:
		return ""
	}
}
