package dashboard

import (
	"context"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

// Store is the read-only domain repository consumed by the compositor.
// Every method is a plain filtered query scoped to one user; no derivation
// happens behind this interface. All reads are side-effect-free and touch
// disjoint record sets, so the compositor may issue them concurrently.
type Store interface {
	// OpenTasks returns todo and in-progress tasks ordered by priority
	// descending, then sort order ascending.
	OpenTasks(ctx context.Context, userID string) ([]types.Task, error)

	// CompletedTaskCount counts tasks completed within [from, to).
	CompletedTaskCount(ctx context.Context, userID string, from, to time.Time) (int, error)

	// EventsOnDay returns non-recurring events overlapping [dayStart, dayEnd),
	// including their sub-calendar visibility.
	EventsOnDay(ctx context.Context, userID string, dayStart, dayEnd time.Time) ([]types.Event, error)

	// HabitsWithRecentCompletions returns unarchived habits with their
	// completion records dated on or after since.
	HabitsWithRecentCompletions(ctx context.Context, userID string, since time.Time) ([]types.HabitWithCompletions, error)

	// JournalEntriesInRange returns journal entries dated within [from, to),
	// ascending by date.
	JournalEntriesInRange(ctx context.Context, userID string, from, to time.Time) ([]types.JournalEntry, error)

	// ActiveGoalsWithMilestones returns up to limit active goals with their
	// milestone tallies.
	ActiveGoalsWithMilestones(ctx context.Context, userID string, limit int) ([]types.Goal, error)

	// PeopleWithContactInfo returns all unarchived people.
	PeopleWithContactInfo(ctx context.Context, userID string) ([]types.Person, error)

	// OverdueFollowUpCount counts open follow-ups due strictly before the
	// given day start.
	OverdueFollowUpCount(ctx context.Context, userID string, before time.Time) (int, error)

	// BudgetAccounts returns all unarchived finance accounts.
	BudgetAccounts(ctx context.Context, userID string) ([]types.Account, error)

	// CategoryGroupsWithCategories returns visible category groups with
	// their visible category IDs.
	CategoryGroupsWithCategories(ctx context.Context, userID string) ([]types.CategoryGroup, error)

	// BudgetAssignmentsThroughMonth returns assignments for all months up to
	// and including monthKey.
	BudgetAssignmentsThroughMonth(ctx context.Context, userID string, monthKey string) ([]types.BudgetAssignment, error)

	// CategorizedTransactionsInRange returns categorized transactions dated
	// within [from, to).
	CategorizedTransactionsInRange(ctx context.Context, userID string, from, to time.Time) ([]types.Transaction, error)

	// CategorizedTransactionsBefore returns categorized transactions dated
	// strictly before the given instant.
	CategorizedTransactionsBefore(ctx context.Context, userID string, before time.Time) ([]types.Transaction, error)

	// TransactionsBefore returns every transaction, categorized or not,
	// dated strictly before the given instant.
	TransactionsBefore(ctx context.Context, userID string, before time.Time) ([]types.Transaction, error)

	// AllTransactions returns every transaction unbounded by date.
	AllTransactions(ctx context.Context, userID string) ([]types.Transaction, error)

	// CategoryTargets returns all category funding targets.
	CategoryTargets(ctx context.Context, userID string) ([]types.CategoryTarget, error)

	// NoteCounts returns note tallies; Recent counts notes updated on or
	// after recentSince.
	NoteCounts(ctx context.Context, userID string, recentSince time.Time) (types.NoteCounts, error)
}
