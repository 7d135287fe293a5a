package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

// PeopleWithContactInfo returns all unarchived people.
func (s *SQLiteStore) PeopleWithContactInfo(ctx context.Context, userID string) ([]types.Person, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, avatar_color, birthday, contact_frequency, last_contacted_at
		FROM people
		WHERE user_id = ? AND is_archived = 0
		ORDER BY name ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	var people []types.Person
	for rows.Next() {
		var p types.Person
		var birthday, lastContacted sql.NullString
		var freq string
		if err := rows.Scan(&p.ID, &p.Name, &p.AvatarColor, &birthday, &freq, &lastContacted); err != nil {
			return nil, err
		}
		p.ContactFrequency = types.ContactFrequency(freq)
		if p.Birthday, err = parseTimePtr(birthday); err != nil {
			return nil, err
		}
		if p.LastContactedAt, err = parseTimePtr(lastContacted); err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

// OverdueFollowUpCount counts open follow-ups due strictly before the given
// instant.
func (s *SQLiteStore) OverdueFollowUpCount(ctx context.Context, userID string, before time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM person_follow_ups f
		JOIN people p ON p.id = f.person_id
		WHERE p.user_id = ? AND p.is_archived = 0 AND f.is_done = 0 AND f.due_date < ?
	`, userID, fmtTime(before)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count overdue follow-ups: %w", err)
	}
	return count, nil
}
