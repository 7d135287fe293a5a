package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

// BudgetAccounts returns all unarchived finance accounts.
func (s *SQLiteStore) BudgetAccounts(ctx context.Context, userID string) ([]types.Account, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, start_balance, on_budget
		FROM finance_accounts
		WHERE user_id = ? AND is_archived = 0
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []types.Account
	for rows.Next() {
		var a types.Account
		if err := rows.Scan(&a.ID, &a.StartingBalance, &a.OnBudget); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// CategoryGroupsWithCategories returns visible category groups with their
// visible category IDs, both in sort order.
func (s *SQLiteStore) CategoryGroupsWithCategories(ctx context.Context, userID string) ([]types.CategoryGroup, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT g.id, c.id
		FROM finance_category_groups g
		LEFT JOIN finance_categories c ON c.group_id = g.id AND c.is_hidden = 0
		WHERE g.user_id = ? AND g.is_hidden = 0
		ORDER BY g.sort_order ASC, c.sort_order ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query category groups: %w", err)
	}
	defer rows.Close()

	var groups []types.CategoryGroup
	index := make(map[string]int)
	for rows.Next() {
		var groupID string
		var categoryID sql.NullString
		if err := rows.Scan(&groupID, &categoryID); err != nil {
			return nil, err
		}
		i, ok := index[groupID]
		if !ok {
			i = len(groups)
			index[groupID] = i
			groups = append(groups, types.CategoryGroup{ID: groupID})
		}
		if categoryID.Valid {
			groups[i].CategoryIDs = append(groups[i].CategoryIDs, categoryID.String)
		}
	}
	return groups, rows.Err()
}

// BudgetAssignmentsThroughMonth returns assignments for all months up to and
// including monthKey. Month keys sort lexicographically.
func (s *SQLiteStore) BudgetAssignmentsThroughMonth(ctx context.Context, userID string, monthKey string) ([]types.BudgetAssignment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category_id, month, assigned
		FROM finance_monthly_budgets
		WHERE user_id = ? AND month <= ?
	`, userID, monthKey)
	if err != nil {
		return nil, fmt.Errorf("query budget assignments: %w", err)
	}
	defer rows.Close()

	var assignments []types.BudgetAssignment
	for rows.Next() {
		var a types.BudgetAssignment
		if err := rows.Scan(&a.CategoryID, &a.Month, &a.Assigned); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// CategorizedTransactionsInRange returns categorized transactions dated
// within [from, to).
func (s *SQLiteStore) CategorizedTransactionsInRange(ctx context.Context, userID string, from, to time.Time) ([]types.Transaction, error) {
	return s.queryTransactions(ctx, `
		WHERE user_id = ? AND category_id IS NOT NULL AND category_id != ''
			AND date >= ? AND date < ?
	`, userID, fmtTime(from), fmtTime(to))
}

// CategorizedTransactionsBefore returns categorized transactions dated
// strictly before the given instant.
func (s *SQLiteStore) CategorizedTransactionsBefore(ctx context.Context, userID string, before time.Time) ([]types.Transaction, error) {
	return s.queryTransactions(ctx, `
		WHERE user_id = ? AND category_id IS NOT NULL AND category_id != ''
			AND date < ?
	`, userID, fmtTime(before))
}

// TransactionsBefore returns every transaction, categorized or not, dated
// strictly before the given instant.
func (s *SQLiteStore) TransactionsBefore(ctx context.Context, userID string, before time.Time) ([]types.Transaction, error) {
	return s.queryTransactions(ctx, `WHERE user_id = ? AND date < ?`, userID, fmtTime(before))
}

// AllTransactions returns every transaction unbounded by date.
func (s *SQLiteStore) AllTransactions(ctx context.Context, userID string) ([]types.Transaction, error) {
	return s.queryTransactions(ctx, `WHERE user_id = ?`, userID)
}

func (s *SQLiteStore) queryTransactions(ctx context.Context, where string, args ...any) ([]types.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT account_id, COALESCE(category_id, ''), date, amount
		FROM finance_transactions
	`+where, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []types.Transaction
	for rows.Next() {
		var tx types.Transaction
		var date string
		if err := rows.Scan(&tx.AccountID, &tx.CategoryID, &date, &tx.Amount); err != nil {
			return nil, err
		}
		if tx.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// CategoryTargets returns all category funding targets.
func (s *SQLiteStore) CategoryTargets(ctx context.Context, userID string) ([]types.CategoryTarget, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category_id, amount, refill_type
		FROM finance_category_targets
		WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query category targets: %w", err)
	}
	defer rows.Close()

	var targets []types.CategoryTarget
	for rows.Next() {
		var t types.CategoryTarget
		var refill string
		if err := rows.Scan(&t.CategoryID, &t.Amount, &refill); err != nil {
			return nil, err
		}
		t.RefillType = types.RefillType(refill)
		targets = append(targets, t)
	}
	return targets, rows.Err()
}
