// Package people classifies relationship health and birthday proximity.
package people

import (
	"time"

	"github.com/daybookhq/daybook/internal/dates"
	"github.com/daybookhq/daybook/internal/types"
)

// Health classifies contact recency against a person's cadence.
type Health string

const (
	HealthGood      Health = "good"
	HealthOkay      Health = "okay"
	HealthWarning   Health = "warning"
	HealthNeglected Health = "neglected"
)

// cadenceDays maps contact frequencies to their nominal interval in days.
var cadenceDays = map[types.ContactFrequency]int{
	types.ContactWeekly:    7,
	types.ContactBiweekly:  14,
	types.ContactMonthly:   30,
	types.ContactQuarterly: 90,
	types.ContactBiannual:  182,
	types.ContactYearly:    365,
}

// CadenceDays returns the nominal contact interval for a frequency. The second
// return is false for unknown frequencies, which excludes the person from
// health scoring entirely.
func CadenceDays(f types.ContactFrequency) (int, bool) {
	d, ok := cadenceDays[f]
	return d, ok
}

// Score classifies a person's contact recency at the given time.
// Returns false when the person has no recognized cadence. A person who was
// never contacted is neglected regardless of cadence length.
//
// The thresholds scale with the cadence D: under 0.7*D is good, under D okay,
// under 1.5*D warning, beyond that neglected.
func Score(lastContactedAt *time.Time, frequency types.ContactFrequency, now time.Time) (Health, bool) {
	cadence, ok := CadenceDays(frequency)
	if !ok {
		return "", false
	}
	if lastContactedAt == nil {
		return HealthNeglected, true
	}

	since := dates.DaysBetween(*lastContactedAt, now)
	// Compare in tenths of days to keep the 0.7/1.5 factors in integers.
	switch tenths := since * 10; {
	case tenths < cadence*7:
		return HealthGood, true
	case tenths < cadence*10:
		return HealthOkay, true
	case tenths < cadence*15:
		return HealthWarning, true
	default:
		return HealthNeglected, true
	}
}

// NeedsAttention reports whether the health level should surface in the
// needs-attention view.
func (h Health) NeedsAttention() bool {
	return h == HealthWarning || h == HealthNeglected
}

// DaysSince returns the whole days elapsed since the last contact, or nil
// when the person was never contacted.
func DaysSince(lastContactedAt *time.Time, now time.Time) *int {
	if lastContactedAt == nil {
		return nil
	}
	d := dates.DaysBetween(*lastContactedAt, now)
	return &d
}
