// Package dashboard assembles the daily snapshot: it fans out independent
// repository reads against one captured timestamp, runs the per-domain
// derivations, and merges the results into a single immutable structure.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/daybookhq/daybook/internal/dates"
	"github.com/daybookhq/daybook/internal/quote"
	"github.com/daybookhq/daybook/internal/types"
)

// Compositor builds dashboard snapshots from a domain store and a quote
// provider. It never writes to the store.
type Compositor struct {
	store  Store
	quotes quote.Provider
}

// New creates a Compositor.
func New(store Store, quotes quote.Provider) *Compositor {
	return &Compositor{store: store, quotes: quotes}
}

// reads collects the raw fan-out results before derivation.
type reads struct {
	openTasks          []types.Task
	completedToday     int
	events             []types.Event
	habits             []types.HabitWithCompletions
	journalWeek        []types.JournalEntry
	journalYear        []types.JournalEntry
	goals              []types.Goal
	people             []types.Person
	overdueFollowUps   int
	accounts           []types.Account
	categoryGroups     []types.CategoryGroup
	assignments        []types.BudgetAssignment
	monthTransactions  []types.Transaction
	cumulativeTx       []types.Transaction
	throughMonthEndTx  []types.Transaction
	allTransactions    []types.Transaction
	targets            []types.CategoryTarget
	notes              types.NoteCounts
	quote              types.Quote
}

// Snapshot derives the dashboard for the calendar day containing now.
// now is captured once by the caller: every window and comparison below is
// computed from it and the clock is never re-read.
//
// Any failed repository read fails the whole snapshot; there is no partial
// result. The quote fetch is the only soft dependency and degrades to a
// fallback inside the provider.
func (c *Compositor) Snapshot(ctx context.Context, userID string, now time.Time) (*types.DashboardSnapshot, error) {
	today := dates.DayStart(now)
	todayEnd := today.AddDate(0, 0, 1)
	weekStart := today.AddDate(0, 0, -6)
	habitWindow := now.AddDate(0, 0, -streakHabitWindowDays)
	journalWindow := today.AddDate(0, 0, -(streakJournalWindowDays - 1))
	recentNotes := now.AddDate(0, 0, -7)

	monthKey := dates.MonthKey(now)
	_, nextMonth, err := dates.MonthRange(monthKey)
	if err != nil {
		return nil, fmt.Errorf("derive month window: %w", err)
	}

	var r reads
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		r.openTasks, err = c.store.OpenTasks(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		r.completedToday, err = c.store.CompletedTaskCount(gctx, userID, today, todayEnd)
		return err
	})
	g.Go(func() (err error) {
		r.events, err = c.store.EventsOnDay(gctx, userID, today, todayEnd)
		return err
	})
	g.Go(func() (err error) {
		r.habits, err = c.store.HabitsWithRecentCompletions(gctx, userID, habitWindow)
		return err
	})
	g.Go(func() (err error) {
		r.journalWeek, err = c.store.JournalEntriesInRange(gctx, userID, weekStart, todayEnd)
		return err
	})
	g.Go(func() (err error) {
		r.journalYear, err = c.store.JournalEntriesInRange(gctx, userID, journalWindow, todayEnd)
		return err
	})
	g.Go(func() (err error) {
		r.goals, err = c.store.ActiveGoalsWithMilestones(gctx, userID, maxGoals)
		return err
	})
	g.Go(func() (err error) {
		r.people, err = c.store.PeopleWithContactInfo(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		r.overdueFollowUps, err = c.store.OverdueFollowUpCount(gctx, userID, today)
		return err
	})
	g.Go(func() (err error) {
		r.accounts, err = c.store.BudgetAccounts(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		r.categoryGroups, err = c.store.CategoryGroupsWithCategories(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		r.assignments, err = c.store.BudgetAssignmentsThroughMonth(gctx, userID, monthKey)
		return err
	})
	g.Go(func() (err error) {
		monthStart, _, merr := dates.MonthRange(monthKey)
		if merr != nil {
			return merr
		}
		r.monthTransactions, err = c.store.CategorizedTransactionsInRange(gctx, userID, monthStart, nextMonth)
		return err
	})
	g.Go(func() (err error) {
		r.cumulativeTx, err = c.store.CategorizedTransactionsBefore(gctx, userID, nextMonth)
		return err
	})
	g.Go(func() (err error) {
		r.throughMonthEndTx, err = c.store.TransactionsBefore(gctx, userID, nextMonth)
		return err
	})
	g.Go(func() (err error) {
		r.allTransactions, err = c.store.AllTransactions(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		r.targets, err = c.store.CategoryTargets(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		r.notes, err = c.store.NoteCounts(gctx, userID, recentNotes)
		return err
	})
	g.Go(func() error {
		// Never fails: the provider substitutes its fallback on any error.
		r.quote = c.quotes.QuoteOfDay(gctx, now)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("aggregate dashboard: %w", err)
	}

	snapshot := &types.DashboardSnapshot{
		Today:   dates.DayKey(now),
		Tasks:   buildTasks(r.openTasks, r.completedToday, today),
		Events:  buildEvents(r.events),
		Habits:  buildHabits(r.habits, today),
		Journal: buildJournal(r.journalWeek, r.journalYear, today),
		Goals:   buildGoals(r.goals),
		People:  buildPeople(r.people, r.overdueFollowUps, now),
		Finance: buildFinance(r.accounts, r.categoryGroups, r.assignments,
			r.monthTransactions, r.cumulativeTx, r.throughMonthEndTx, r.allTransactions,
			r.targets, monthKey),
		Notes: types.NotesSection{
			TotalCount:  r.notes.Total,
			RecentCount: r.notes.Recent,
			PinnedCount: r.notes.Pinned,
		},
		Quote: r.quote,
	}
	return snapshot, nil
}
