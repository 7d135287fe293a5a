package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

const taskColumns = `t.id, t.user_id, t.title, t.description, t.priority, t.status,
	t.scheduled_date, t.scheduled_time, t.due_date,
	COALESCE(t.project_id, ''), COALESCE(p.name, ''), COALESCE(p.color, ''),
	t.recurrence_rule, t.recurrence_day, t.recurrence_end,
	t.sort_order, t.completed_at, t.created_at`

// OpenTasks returns todo and in-progress tasks ordered by priority descending,
// then sort order ascending.
func (s *SQLiteStore) OpenTasks(ctx context.Context, userID string) ([]types.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+taskColumns+`
		FROM tasks t
		LEFT JOIN projects p ON p.id = t.project_id
		WHERE t.user_id = ? AND t.status IN ('todo', 'in-progress')
		ORDER BY CASE t.priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END,
			t.sort_order ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query open tasks: %w", err)
	}
	defer rows.Close()

	var tasks []types.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// CompletedTaskCount counts tasks completed within [from, to).
func (s *SQLiteStore) CompletedTaskCount(ctx context.Context, userID string, from, to time.Time) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM tasks
		WHERE user_id = ? AND status = 'done'
			AND completed_at IS NOT NULL
			AND completed_at >= ? AND completed_at < ?
	`, userID, fmtTime(from), fmtTime(to)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count completed tasks: %w", err)
	}
	return count, nil
}

// GetTask retrieves a single task by ID scoped to one user.
func (s *SQLiteStore) GetTask(ctx context.Context, userID, taskID string) (*types.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+taskColumns+`
		FROM tasks t
		LEFT JOIN projects p ON p.id = t.project_id
		WHERE t.user_id = ? AND t.id = ?
	`, userID, taskID)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// SetTaskStatus updates a task's workflow state and completion timestamp.
func (s *SQLiteStore) SetTaskStatus(ctx context.Context, userID, taskID string, status types.TaskStatus, completedAt *time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE tasks SET status = ?, completed_at = ?
		WHERE user_id = ? AND id = ?
	`, string(status), fmtTimePtr(completedAt), userID, taskID)
	if err != nil {
		return fmt.Errorf("update task status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// MaxTaskSortOrder returns the highest sort order among a user's tasks, 0 when
// there are none.
func (s *SQLiteStore) MaxTaskSortOrder(ctx context.Context, userID string) (int, error) {
	var max int
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(sort_order), 0) FROM tasks WHERE user_id = ?
	`, userID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max task sort order: %w", err)
	}
	return max, nil
}

// CreateTask inserts a new task row.
func (s *SQLiteStore) CreateTask(ctx context.Context, task types.Task) error {
	var projectID any
	if task.ProjectID != "" {
		projectID = task.ProjectID
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks (id, user_id, title, description, priority, status,
			scheduled_date, scheduled_time, due_date, project_id,
			recurrence_rule, recurrence_day, recurrence_end,
			sort_order, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, task.ID, task.UserID, task.Title, task.Description, task.Priority, string(task.Status),
		fmtTimePtr(task.ScheduledDate), task.ScheduledTime, fmtTimePtr(task.DueDate), projectID,
		string(task.RecurrenceRule), task.RecurrenceDay, fmtTimePtr(task.RecurrenceEnd),
		task.SortOrder, fmtTimePtr(task.CompletedAt), fmtTime(task.CreatedAt))
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (types.Task, error) {
	var task types.Task
	var status, rule, createdAt string
	var scheduled, due, recEnd, completed sql.NullString
	err := row.Scan(&task.ID, &task.UserID, &task.Title, &task.Description, &task.Priority, &status,
		&scheduled, &task.ScheduledTime, &due,
		&task.ProjectID, &task.ProjectName, &task.ProjectColor,
		&rule, &task.RecurrenceDay, &recEnd,
		&task.SortOrder, &completed, &createdAt)
	if err != nil {
		return types.Task{}, err
	}

	task.Status = types.TaskStatus(status)
	task.RecurrenceRule = types.RecurrenceRule(rule)
	if task.ScheduledDate, err = parseTimePtr(scheduled); err != nil {
		return types.Task{}, err
	}
	if task.DueDate, err = parseTimePtr(due); err != nil {
		return types.Task{}, err
	}
	if task.RecurrenceEnd, err = parseTimePtr(recEnd); err != nil {
		return types.Task{}, err
	}
	if task.CompletedAt, err = parseTimePtr(completed); err != nil {
		return types.Task{}, err
	}
	if task.CreatedAt, err = parseTime(createdAt); err != nil {
		return types.Task{}, err
	}
	return task, nil
}
