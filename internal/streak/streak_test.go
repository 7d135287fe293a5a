package streak

import (
	"testing"
	"time"
)

var today = time.Date(2026, 6, 15, 10, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return today.AddDate(0, 0, -n)
}

func TestCount(t *testing.T) {
	tests := []struct {
		name      string
		satisfied []time.Time
		want      int
	}{
		{
			name:      "three consecutive days including today",
			satisfied: []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)},
			want:      3,
		},
		{
			name:      "today missing does not break the streak",
			satisfied: []time.Time{daysAgo(1), daysAgo(2), daysAgo(3)},
			want:      3,
		},
		{
			name:      "gap at yesterday stops after today",
			satisfied: []time.Time{daysAgo(0), daysAgo(2), daysAgo(3)},
			want:      1,
		},
		{
			name:      "gap at yesterday and no today",
			satisfied: []time.Time{daysAgo(2), daysAgo(3)},
			want:      0,
		},
		{
			name:      "never counts past a gap",
			satisfied: []time.Time{daysAgo(0), daysAgo(1), daysAgo(3), daysAgo(4), daysAgo(5)},
			want:      2,
		},
		{
			name:      "empty set",
			satisfied: nil,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(today, HabitLookback, NewDaySet(tt.satisfied))
			if got != tt.want {
				t.Errorf("Count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCount_StopsAtLookbackCap(t *testing.T) {
	// Satisfy 120 consecutive days; a 90-day cap must report exactly 90.
	var satisfied []time.Time
	for i := 0; i < 120; i++ {
		satisfied = append(satisfied, daysAgo(i))
	}

	if got := Count(today, HabitLookback, NewDaySet(satisfied)); got != HabitLookback {
		t.Errorf("Count = %d, want %d", got, HabitLookback)
	}
	if got := Count(today, JournalLookback, NewDaySet(satisfied)); got != 120 {
		t.Errorf("Count with journal cap = %d, want 120", got)
	}
}

func TestCount_IgnoresClockTime(t *testing.T) {
	// Markers carry arbitrary clock times; only the calendar day matters.
	satisfied := []time.Time{
		time.Date(2026, 6, 15, 23, 59, 59, 0, time.UTC),
		time.Date(2026, 6, 14, 0, 0, 1, 0, time.UTC),
	}
	if got := Count(today, HabitLookback, NewDaySet(satisfied)); got != 2 {
		t.Errorf("Count = %d, want 2", got)
	}
}
