package budget

import (
	"testing"
	"time"

	"github.com/daybookhq/daybook/internal/types"
)

const month = "2026-06"

func txn(account, category string, amount int64) types.Transaction {
	return types.Transaction{
		AccountID:  account,
		CategoryID: category,
		Date:       time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		Amount:     amount,
	}
}

func TestSummarize_RefillTargetWithCarryover(t *testing.T) {
	// Worked example: target 10000, assigned this month 3000, activity this
	// month -2000, available 9000. Carryover = 9000-3000-(-2000) = 8000, so
	// needed = 10000-3000-8000 = 0: fully funded.
	assignments := []types.BudgetAssignment{
		{CategoryID: "groceries", Month: "2026-05", Assigned: 8000},
		{CategoryID: "groceries", Month: month, Assigned: 3000},
	}
	monthTx := []types.Transaction{txn("checking", "groceries", -2000)}
	cumulativeTx := []types.Transaction{txn("checking", "groceries", -2000)}
	targets := []types.CategoryTarget{
		{CategoryID: "groceries", Amount: 10000, RefillType: types.RefillCarryover},
	}

	s := Summarize([]string{"groceries"}, assignments, monthTx, cumulativeTx, targets, month)

	c := s.Categories[0]
	if got := c.Available(); got != 9000 {
		t.Errorf("Available = %d, want 9000", got)
	}
	if c.Health != HealthOnTrack {
		t.Errorf("Health = %q, want on track", c.Health)
	}
	if s.Health.OnTrack != 1 || s.Health.Underfunded != 0 || s.Health.Overspent != 0 {
		t.Errorf("health counts = %+v, want 1/0/0", s.Health)
	}
}

func TestSummarize_RefillTargetUnderfunded(t *testing.T) {
	// No prior carryover: only 3000 assigned against a 10000 target.
	assignments := []types.BudgetAssignment{
		{CategoryID: "rent", Month: month, Assigned: 3000},
	}
	targets := []types.CategoryTarget{
		{CategoryID: "rent", Amount: 10000, RefillType: types.RefillCarryover},
	}

	s := Summarize([]string{"rent"}, assignments, nil, nil, targets, month)
	if s.Categories[0].Health != HealthUnderfunded {
		t.Errorf("Health = %q, want underfunded", s.Categories[0].Health)
	}
}

func TestSummarize_FixedTargetIgnoresCarryover(t *testing.T) {
	// A fixed target only counts this month's assignment, so a large prior
	// balance does not satisfy it.
	assignments := []types.BudgetAssignment{
		{CategoryID: "savings", Month: "2026-01", Assigned: 50000},
		{CategoryID: "savings", Month: month, Assigned: 1000},
	}
	targets := []types.CategoryTarget{
		{CategoryID: "savings", Amount: 5000, RefillType: types.RefillFixed},
	}

	s := Summarize([]string{"savings"}, assignments, nil, nil, targets, month)
	if s.Categories[0].Health != HealthUnderfunded {
		t.Errorf("Health = %q, want underfunded", s.Categories[0].Health)
	}

	// Meeting the fixed amount this month is enough.
	assignments[1].Assigned = 5000
	s = Summarize([]string{"savings"}, assignments, nil, nil, targets, month)
	if s.Categories[0].Health != HealthOnTrack {
		t.Errorf("Health = %q, want on track", s.Categories[0].Health)
	}
}

func TestSummarize_OverspentBeatsTargets(t *testing.T) {
	assignments := []types.BudgetAssignment{
		{CategoryID: "dining", Month: month, Assigned: 1000},
	}
	cumulativeTx := []types.Transaction{txn("checking", "dining", -4000)}
	targets := []types.CategoryTarget{
		{CategoryID: "dining", Amount: 500, RefillType: types.RefillFixed},
	}

	s := Summarize([]string{"dining"}, assignments, nil, cumulativeTx, targets, month)
	if s.Categories[0].Health != HealthOverspent {
		t.Errorf("Health = %q, want overspent", s.Categories[0].Health)
	}
	if got := s.Categories[0].Available(); got != -3000 {
		t.Errorf("Available = %d, want -3000", got)
	}
}

func TestSummarize_NoTargetIsOnTrack(t *testing.T) {
	s := Summarize([]string{"misc"}, nil, nil, nil, nil, month)
	if s.Categories[0].Health != HealthOnTrack {
		t.Errorf("Health = %q, want on track", s.Categories[0].Health)
	}
}

func TestSummarize_IgnoresUncategorizedTransactions(t *testing.T) {
	cumulativeTx := []types.Transaction{
		txn("checking", "", -9999),
		txn("checking", "fuel", -100),
	}
	s := Summarize([]string{"fuel"}, nil, nil, cumulativeTx, nil, month)
	if got := s.Categories[0].Available(); got != -100 {
		t.Errorf("Available = %d, want -100", got)
	}
}

func TestTotalBalance(t *testing.T) {
	accounts := []types.Account{
		{ID: "checking", StartingBalance: 100000, OnBudget: true},
		{ID: "brokerage", StartingBalance: 250000, OnBudget: false},
	}
	all := []types.Transaction{
		txn("checking", "groceries", -5000),
		txn("brokerage", "", 7000),
		txn("unknown", "", 12345), // not one of ours
	}

	if got := TotalBalance(accounts, all); got != 352000 {
		t.Errorf("TotalBalance = %d, want 352000", got)
	}
}

func TestReadyToAssign_EndToEndExample(t *testing.T) {
	// One on-budget account, starting balance 100000, a single -5000
	// transaction before month end, no categories: everything is assignable.
	accounts := []types.Account{{ID: "checking", StartingBalance: 100000, OnBudget: true}}
	through := []types.Transaction{txn("checking", "", -5000)}

	if got := ReadyToAssign(accounts, through, 0); got != 95000 {
		t.Errorf("ReadyToAssign = %d, want 95000", got)
	}
	if got := TotalBalance(accounts, through); got != 95000 {
		t.Errorf("TotalBalance = %d, want 95000", got)
	}
}

func TestReadyToAssign_NoOnBudgetAccounts(t *testing.T) {
	accounts := []types.Account{{ID: "brokerage", StartingBalance: 99999, OnBudget: false}}
	if got := ReadyToAssign(accounts, nil, 12345); got != 0 {
		t.Errorf("ReadyToAssign = %d, want 0", got)
	}
}

func TestReconciliationIdentity(t *testing.T) {
	// readyToAssign + sum(available) must equal the on-budget account balance
	// through month end, for any input set whose categorized activity happens
	// on on-budget accounts.
	accounts := []types.Account{
		{ID: "checking", StartingBalance: 120000, OnBudget: true},
		{ID: "wallet", StartingBalance: 4000, OnBudget: true},
	}
	categoryIDs := []string{"groceries", "rent", "fun"}
	assignments := []types.BudgetAssignment{
		{CategoryID: "groceries", Month: "2026-04", Assigned: 10000},
		{CategoryID: "groceries", Month: month, Assigned: 5000},
		{CategoryID: "rent", Month: month, Assigned: 80000},
		{CategoryID: "fun", Month: "2026-05", Assigned: 2500},
	}
	cumulativeTx := []types.Transaction{
		txn("checking", "groceries", -7200),
		txn("checking", "rent", -80000),
		txn("wallet", "fun", -1800),
		txn("checking", "groceries", -950),
	}
	monthTx := cumulativeTx[:2]
	through := append([]types.Transaction{}, cumulativeTx...)
	through = append(through, txn("checking", "", -3000)) // uncategorized spend

	s := Summarize(categoryIDs, assignments, monthTx, cumulativeTx, nil, month)
	ready := ReadyToAssign(accounts, through, s.TotalAvailable())

	var onBudgetBalance int64
	for _, a := range accounts {
		onBudgetBalance += a.StartingBalance
	}
	for _, tx := range through {
		onBudgetBalance += tx.Amount
	}

	if got := ready + s.TotalAvailable(); got != onBudgetBalance {
		t.Errorf("identity broken: ready(%d) + available(%d) = %d, want %d",
			ready, s.TotalAvailable(), got, onBudgetBalance)
	}
}
