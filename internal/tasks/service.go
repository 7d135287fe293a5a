// Package tasks owns the task-completion mutation and its recurrence side
// effect: completing a recurring task schedules the next occurrence.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/daybookhq/daybook/internal/recurrence"
	"github.com/daybookhq/daybook/internal/types"
)

// TaskStore defines the store operations needed by the completion service.
type TaskStore interface {
	GetTask(ctx context.Context, userID, taskID string) (*types.Task, error)
	SetTaskStatus(ctx context.Context, userID, taskID string, status types.TaskStatus, completedAt *time.Time) error
	MaxTaskSortOrder(ctx context.Context, userID string) (int, error)
	CreateTask(ctx context.Context, task types.Task) error
}

// Service applies task status transitions.
type Service struct {
	store TaskStore
}

// NewService creates a Service.
func NewService(store TaskStore) *Service {
	return &Service{store: store}
}

// Complete marks the task done at the given time. When the task carries a
// recurrence rule and was not already done, the next occurrence is created
// unless its computed date falls after the recurrence end. Completing an
// already-done task is a no-op.
//
// Returns the completed task and the created next occurrence (nil when none
// was generated).
func (s *Service) Complete(ctx context.Context, userID, taskID string, now time.Time) (*types.Task, *types.Task, error) {
	task, err := s.store.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, nil, fmt.Errorf("load task: %w", err)
	}
	if task.Status == types.TaskDone {
		return task, nil, nil
	}

	completedAt := now
	if err := s.store.SetTaskStatus(ctx, userID, taskID, types.TaskDone, &completedAt); err != nil {
		return nil, nil, fmt.Errorf("complete task: %w", err)
	}
	task.Status = types.TaskDone
	task.CompletedAt = &completedAt

	if task.RecurrenceRule == "" {
		return task, nil, nil
	}

	next, err := s.createNextOccurrence(ctx, userID, task, now)
	if err != nil {
		return nil, nil, err
	}
	return task, next, nil
}

// Reopen returns a done task to todo and clears its completion timestamp.
// No recurrence side effect fires: the next occurrence created when the task
// was completed is left in place.
func (s *Service) Reopen(ctx context.Context, userID, taskID string) (*types.Task, error) {
	task, err := s.store.GetTask(ctx, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("load task: %w", err)
	}
	if task.Status != types.TaskDone {
		return task, nil
	}

	if err := s.store.SetTaskStatus(ctx, userID, taskID, types.TaskTodo, nil); err != nil {
		return nil, fmt.Errorf("reopen task: %w", err)
	}
	task.Status = types.TaskTodo
	task.CompletedAt = nil
	return task, nil
}

// createNextOccurrence computes and persists the follow-up instance of a
// recurring task. The anchor for the recurrence step is the task's scheduled
// date, falling back to its creation time when it was never scheduled.
func (s *Service) createNextOccurrence(ctx context.Context, userID string, task *types.Task, now time.Time) (*types.Task, error) {
	anchor := task.CreatedAt
	if task.ScheduledDate != nil {
		anchor = *task.ScheduledDate
	}

	nextDate := recurrence.NextOccurrence(anchor, task.RecurrenceRule, task.RecurrenceDay)
	if task.RecurrenceEnd != nil && nextDate.After(*task.RecurrenceEnd) {
		slog.Info("recurrence series ended",
			"task_id", task.ID,
			"next_date", nextDate,
			"recurrence_end", *task.RecurrenceEnd,
		)
		return nil, nil
	}

	maxSort, err := s.store.MaxTaskSortOrder(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("next sort order: %w", err)
	}

	next := types.Task{
		ID:             ulid.Make().String(),
		UserID:         userID,
		Title:          task.Title,
		Description:    task.Description,
		Priority:       task.Priority,
		Status:         types.TaskTodo,
		ScheduledDate:  &nextDate,
		ScheduledTime:  task.ScheduledTime,
		ProjectID:      task.ProjectID,
		RecurrenceRule: task.RecurrenceRule,
		RecurrenceDay:  task.RecurrenceDay,
		RecurrenceEnd:  task.RecurrenceEnd,
		SortOrder:      maxSort + 1,
		CreatedAt:      now,
	}
	if task.DueDate != nil {
		shifted := recurrence.ShiftDueDate(*task.DueDate, anchor, nextDate)
		next.DueDate = &shifted
	}

	if err := s.store.CreateTask(ctx, next); err != nil {
		return nil, fmt.Errorf("create next occurrence: %w", err)
	}
	return &next, nil
}
