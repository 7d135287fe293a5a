package store

import (
	"context"
	"fmt"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

// EventsOnDay returns non-recurring, non-deleted events overlapping
// [dayStart, dayEnd), carrying the sub-calendar color and visibility.
func (s *SQLiteStore) EventsOnDay(ctx context.Context, userID string, dayStart, dayEnd time.Time) ([]types.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.title, e.start_date, e.end_date, e.is_all_day,
			c.color, c.is_visible
		FROM calendar_events e
		JOIN sub_calendars c ON c.id = e.sub_calendar_id
		WHERE e.user_id = ? AND e.is_deleted = 0
			AND e.recurrence_rule IS NULL
			AND e.start_date < ? AND e.end_date >= ?
		ORDER BY e.start_date ASC
	`, userID, fmtTime(dayEnd), fmtTime(dayStart))
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []types.Event
	for rows.Next() {
		var ev types.Event
		var start, end string
		if err := rows.Scan(&ev.ID, &ev.Title, &start, &end, &ev.AllDay, &ev.Color, &ev.Visible); err != nil {
			return nil, err
		}
		if ev.StartDate, err = parseTime(start); err != nil {
			return nil, err
		}
		if ev.EndDate, err = parseTime(end); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
