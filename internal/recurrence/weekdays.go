package recurrence

import (
	"encoding/json"
	"fmt"
)

// Weekdays is a validated set of ISO weekdays (1=Monday .. 7=Sunday).
type Weekdays map[int]bool

// ParseWeekdays decodes a stored weekday list. The persisted form is a JSON
// array of integers. An empty string means no weekday restriction and yields
// a nil set. Any value outside 1..7 is a configuration error.
func ParseWeekdays(encoded string) (Weekdays, error) {
	if encoded == "" {
		return nil, nil
	}

	var raw []int
	if err := json.Unmarshal([]byte(encoded), &raw); err != nil {
		return nil, fmt.Errorf("parse weekday list %q: %w", encoded, err)
	}

	set := make(Weekdays, len(raw))
	for _, d := range raw {
		if d < 1 || d > 7 {
			return nil, fmt.Errorf("weekday %d out of range 1..7", d)
		}
		set[d] = true
	}
	return set, nil
}

// Contains reports whether the ISO weekday d is in the set.
func (w Weekdays) Contains(d int) bool {
	return w[d]
}
