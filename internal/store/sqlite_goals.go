package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/daybookhq/daybook/internal/types"
)

// ActiveGoalsWithMilestones returns up to limit active goals ordered by sort
// order, each carrying its milestone tallies.
func (s *SQLiteStore) ActiveGoalsWithMilestones(ctx context.Context, userID string, limit int) ([]types.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, g.title, g.color, g.target_date, g.manual_progress,
			COUNT(m.id), COALESCE(SUM(m.is_completed), 0)
		FROM goals g
		LEFT JOIN goal_milestones m ON m.goal_id = g.id
		WHERE g.user_id = ? AND g.status = 'active' AND g.is_archived = 0
		GROUP BY g.id
		ORDER BY g.sort_order ASC
		LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var goals []types.Goal
	for rows.Next() {
		var g types.Goal
		var targetDate sql.NullString
		var manual sql.NullInt64
		if err := rows.Scan(&g.ID, &g.Title, &g.Color, &targetDate, &manual,
			&g.MilestonesTotal, &g.MilestonesCompleted); err != nil {
			return nil, err
		}
		if g.TargetDate, err = parseTimePtr(targetDate); err != nil {
			return nil, err
		}
		if manual.Valid {
			v := int(manual.Int64)
			g.ManualProgress = &v
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
