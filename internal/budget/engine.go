// Package budget implements envelope-budget derivation: per-category
// availability, funding targets with carryover, and account-level rollups.
// All amounts are int64 minor currency units; arithmetic is exact.
package budget

import (
	"github.com/daybookhq/daybook/internal/types"
)

// CategoryHealth classifies a category's funding state for the month.
type CategoryHealth string

const (
	HealthOnTrack     CategoryHealth = "on_track"
	HealthUnderfunded CategoryHealth = "underfunded"
	HealthOverspent   CategoryHealth = "overspent"
)

// CategoryFigures holds one category's derived amounts for the month.
type CategoryFigures struct {
	CategoryID         string
	CumulativeAssigned int64 // assignments over all months through the current one
	AssignedThisMonth  int64
	CumulativeActivity int64 // transactions dated before next month's start
	ActivityThisMonth  int64
	Health             CategoryHealth
}

// Available is the category's envelope balance: everything ever assigned plus
// all categorized activity through month end.
func (f CategoryFigures) Available() int64 {
	return f.CumulativeAssigned + f.CumulativeActivity
}

// Summary is the full budget derivation for one month.
type Summary struct {
	Categories []CategoryFigures
	Health     types.BudgetHealth
}

// TotalAvailable sums Available over every category in the summary.
func (s Summary) TotalAvailable() int64 {
	var total int64
	for _, c := range s.Categories {
		total += c.Available()
	}
	return total
}

// Summarize reduces raw assignments, transactions, and targets into
// per-category figures plus health counts for the month identified by
// monthKey. Assignments must already be filtered to months <= monthKey and
// cumulative transactions to dates before the next month's start; monthly
// transactions to the current month. Uncategorized transactions are ignored.
func Summarize(
	categoryIDs []string,
	assignments []types.BudgetAssignment,
	monthTransactions []types.Transaction,
	cumulativeTransactions []types.Transaction,
	targets []types.CategoryTarget,
	monthKey string,
) Summary {
	cumulativeAssigned := make(map[string]int64)
	assignedThisMonth := make(map[string]int64)
	for _, a := range assignments {
		cumulativeAssigned[a.CategoryID] += a.Assigned
		if a.Month == monthKey {
			assignedThisMonth[a.CategoryID] = a.Assigned
		}
	}

	cumulativeActivity := sumByCategory(cumulativeTransactions)
	monthActivity := sumByCategory(monthTransactions)

	targetByCategory := make(map[string]types.CategoryTarget, len(targets))
	for _, t := range targets {
		targetByCategory[t.CategoryID] = t
	}

	summary := Summary{Categories: make([]CategoryFigures, 0, len(categoryIDs))}
	for _, id := range categoryIDs {
		figures := CategoryFigures{
			CategoryID:         id,
			CumulativeAssigned: cumulativeAssigned[id],
			AssignedThisMonth:  assignedThisMonth[id],
			CumulativeActivity: cumulativeActivity[id],
			ActivityThisMonth:  monthActivity[id],
		}
		target, hasTarget := targetByCategory[id]
		figures.Health = classify(figures, target, hasTarget)
		summary.Categories = append(summary.Categories, figures)

		switch figures.Health {
		case HealthOverspent:
			summary.Health.Overspent++
		case HealthUnderfunded:
			summary.Health.Underfunded++
		default:
			summary.Health.OnTrack++
		}
	}
	return summary
}

// classify applies the funding rules: a negative envelope is overspent
// regardless of targets; otherwise a target determines how much is still
// needed this month. Refill targets credit unspent carryover from prior
// months against the goal, fixed targets only count this month's assignment.
func classify(f CategoryFigures, target types.CategoryTarget, hasTarget bool) CategoryHealth {
	available := f.Available()
	if available < 0 {
		return HealthOverspent
	}
	if !hasTarget {
		return HealthOnTrack
	}

	var needed int64
	if target.RefillType == types.RefillCarryover {
		carryover := max64(0, available-f.AssignedThisMonth-f.ActivityThisMonth)
		needed = max64(0, target.Amount-f.AssignedThisMonth-carryover)
	} else {
		needed = max64(0, target.Amount-f.AssignedThisMonth)
	}
	if needed > 0 {
		return HealthUnderfunded
	}
	return HealthOnTrack
}

// TotalBalance sums starting balances plus all transactions for every
// account, unbounded by date.
func TotalBalance(accounts []types.Account, allTransactions []types.Transaction) int64 {
	var total int64
	ids := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		total += a.StartingBalance
		ids[a.ID] = true
	}
	for _, tx := range allTransactions {
		if ids[tx.AccountID] {
			total += tx.Amount
		}
	}
	return total
}

// ReadyToAssign is budgetable money not yet allocated: the on-budget account
// balance through month end minus everything sitting in category envelopes.
// throughMonthEnd must contain transactions dated before next month's start.
func ReadyToAssign(accounts []types.Account, throughMonthEnd []types.Transaction, totalAvailable int64) int64 {
	onBudget := make(map[string]bool)
	var balance int64
	for _, a := range accounts {
		if a.OnBudget {
			onBudget[a.ID] = true
			balance += a.StartingBalance
		}
	}
	if len(onBudget) == 0 {
		return 0
	}
	for _, tx := range throughMonthEnd {
		if onBudget[tx.AccountID] {
			balance += tx.Amount
		}
	}
	return balance - totalAvailable
}

func sumByCategory(transactions []types.Transaction) map[string]int64 {
	sums := make(map[string]int64)
	for _, tx := range transactions {
		if tx.CategoryID == "" {
			continue
		}
		sums[tx.CategoryID] += tx.Amount
	}
	return sums
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
