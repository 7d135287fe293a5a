package store

import (
	"context"
	"fmt"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

// HabitsWithRecentCompletions returns unarchived habits with their completion
// records dated on or after since. Habits with no recent completions are
// still returned, with an empty completion slice.
func (s *SQLiteStore) HabitsWithRecentCompletions(ctx context.Context, userID string, since time.Time) ([]types.HabitWithCompletions, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, color, icon, frequency_type, frequency_interval,
			frequency_days, frequency_period, frequency_target, start_date
		FROM habits
		WHERE user_id = ? AND is_archived = 0
		ORDER BY sort_order ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query habits: %w", err)
	}
	defer rows.Close()

	var result []types.HabitWithCompletions
	index := make(map[string]int)
	for rows.Next() {
		var h types.Habit
		var ftype, fperiod, start string
		if err := rows.Scan(&h.ID, &h.Name, &h.Color, &h.Icon, &ftype, &h.FrequencyInterval,
			&h.FrequencyDays, &fperiod, &h.FrequencyTarget, &start); err != nil {
			return nil, err
		}
		h.FrequencyType = types.FrequencyType(ftype)
		h.FrequencyPeriod = types.FrequencyPeriod(fperiod)
		if h.StartDate, err = parseTime(start); err != nil {
			return nil, err
		}
		index[h.ID] = len(result)
		result = append(result, types.HabitWithCompletions{Habit: h})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	crows, err := s.db.QueryContext(ctx, `
		SELECT c.habit_id, c.completed_at, c.count
		FROM habit_completions c
		JOIN habits h ON h.id = c.habit_id
		WHERE h.user_id = ? AND h.is_archived = 0 AND c.completed_at >= ?
		ORDER BY c.completed_at ASC
	`, userID, fmtTime(since))
	if err != nil {
		return nil, fmt.Errorf("query habit completions: %w", err)
	}
	defer crows.Close()

	for crows.Next() {
		var c types.HabitCompletion
		var completedAt string
		if err := crows.Scan(&c.HabitID, &completedAt, &c.Count); err != nil {
			return nil, err
		}
		if c.CompletedAt, err = parseTime(completedAt); err != nil {
			return nil, err
		}
		if i, ok := index[c.HabitID]; ok {
			result[i].Completions = append(result[i].Completions, c)
		}
	}
	return result, crows.Err()
}
