package store

import (
	"github.com/daybookhq/daybook/internal/dashboard"
	"github.com/daybookhq/daybook/internal/tasks"
)

// SQLiteStore serves both the dashboard reads and the task mutations.
var (
	_ dashboard.Store = (*SQLiteStore)(nil)
	_ tasks.TaskStore = (*SQLiteStore)(nil)
)
