package store

import (
	"context"
	"fmt"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

// NoteCounts returns note tallies for unarchived notes; Recent counts notes
// updated on or after recentSince.
func (s *SQLiteStore) NoteCounts(ctx context.Context, userID string, recentSince time.Time) (types.NoteCounts, error) {
	var counts types.NoteCounts
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			COALESCE(SUM(CASE WHEN updated_at >= ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(is_pinned), 0)
		FROM notes
		WHERE user_id = ? AND is_archived = 0
	`, fmtTime(recentSince), userID).Scan(&counts.Total, &counts.Recent, &counts.Pinned)
	if err != nil {
		return types.NoteCounts{}, fmt.Errorf("count notes: %w", err)
	}
	return counts, nil
}
