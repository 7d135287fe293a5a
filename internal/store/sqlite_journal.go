package store

import (
	"context"
	"fmt"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

// JournalEntriesInRange returns journal entries dated within [from, to),
// ascending by date.
func (s *SQLiteStore) JournalEntriesInRange(ctx context.Context, userID string, from, to time.Time) ([]types.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT date, mood, energy
		FROM journal_entries
		WHERE user_id = ? AND date >= ? AND date < ?
		ORDER BY date ASC
	`, userID, fmtTime(from), fmtTime(to))
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	var entries []types.JournalEntry
	for rows.Next() {
		var e types.JournalEntry
		var date string
		if err := rows.Scan(&date, &e.Mood, &e.Energy); err != nil {
			return nil, err
		}
		if e.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
