// Package types defines the domain records read by the dashboard engine and
// the snapshot structure it produces. Records here are plain data: all
// derivation logic lives in the engine packages.
package types

import "time"

// FrequencyType classifies a habit's recurrence configuration.
type FrequencyType string

const (
	FrequencyDaily  FrequencyType = "daily"
	FrequencyWeekly FrequencyType = "weekly"
	FrequencyCustom FrequencyType = "custom"
)

// FrequencyPeriod is the counting period for custom-frequency habits.
type FrequencyPeriod string

const (
	PeriodDay   FrequencyPeriod = "day"
	PeriodWeek  FrequencyPeriod = "week"
	PeriodMonth FrequencyPeriod = "month"
)

// Habit is a recurring habit schedule.
// FrequencyDays holds a JSON array of ISO weekdays (1=Monday .. 7=Sunday) and
// is only meaningful for weekly habits; it is parsed and validated by the
// recurrence package, never inspected raw.
type Habit struct {
	ID                string
	Name              string
	Color             string
	Icon              string
	FrequencyType     FrequencyType
	FrequencyInterval int
	FrequencyDays     string
	FrequencyPeriod   FrequencyPeriod
	FrequencyTarget   int
	StartDate         time.Time
	Archived          bool
}

// HabitCompletion records progress on one habit for one calendar day.
type HabitCompletion struct {
	HabitID     string
	CompletedAt time.Time
	Count       int
}

// HabitWithCompletions pairs a habit with its recent completion records.
type HabitWithCompletions struct {
	Habit       Habit
	Completions []HabitCompletion
}

// TaskStatus is a task's workflow state.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskDone       TaskStatus = "done"
)

// RecurrenceRule is a recurring task's repetition rule.
type RecurrenceRule string

const (
	RuleDaily   RecurrenceRule = "DAILY"
	RuleWeekly  RecurrenceRule = "WEEKLY"
	RuleMonthly RecurrenceRule = "MONTHLY"
	RuleYearly  RecurrenceRule = "YEARLY"
)

// Task is a to-do item, optionally scheduled, due, and recurring.
type Task struct {
	ID             string
	UserID         string
	Title          string
	Description    string
	Priority       string
	Status         TaskStatus
	ScheduledDate  *time.Time
	ScheduledTime  string
	DueDate        *time.Time
	ProjectID      string
	ProjectName    string
	ProjectColor   string
	RecurrenceRule RecurrenceRule
	RecurrenceDay  int
	RecurrenceEnd  *time.Time
	SortOrder      int
	CompletedAt    *time.Time
	CreatedAt      time.Time
}

// Event is a single calendar event occurring today.
type Event struct {
	ID        string
	Title     string
	StartDate time.Time
	EndDate   time.Time
	AllDay    bool
	Color     string
	Visible   bool
}

// JournalEntry is one day's journal record. Mood and Energy are 1-5 when set,
// 0 when absent.
type JournalEntry struct {
	Date   time.Time
	Mood   int
	Energy int
}

// ContactFrequency is a person's configured contact cadence.
type ContactFrequency string

const (
	ContactWeekly    ContactFrequency = "weekly"
	ContactBiweekly  ContactFrequency = "biweekly"
	ContactMonthly   ContactFrequency = "monthly"
	ContactQuarterly ContactFrequency = "quarterly"
	ContactBiannual  ContactFrequency = "biannual"
	ContactYearly    ContactFrequency = "yearly"
)

// Person is a tracked relationship.
type Person struct {
	ID               string
	Name             string
	AvatarColor      string
	Birthday         *time.Time
	ContactFrequency ContactFrequency
	LastContactedAt  *time.Time
}

// Goal is an active goal with milestone progress. ManualProgress overrides
// the milestone-derived percentage when non-nil.
type Goal struct {
	ID                  string
	Title               string
	Color               string
	TargetDate          *time.Time
	ManualProgress      *int
	MilestonesTotal     int
	MilestonesCompleted int
}

// Account is a finance account. StartingBalance is in minor currency units.
type Account struct {
	ID              string
	StartingBalance int64
	OnBudget        bool
}

// CategoryGroup is a visible group of budget categories.
type CategoryGroup struct {
	ID          string
	CategoryIDs []string
}

// BudgetAssignment assigns an amount to a category for one month.
// Month is a canonical month key (dates.MonthFormat).
type BudgetAssignment struct {
	CategoryID string
	Month      string
	Assigned   int64
}

// Transaction is a signed ledger entry in minor currency units.
// CategoryID is empty for uncategorized transactions.
type Transaction struct {
	AccountID  string
	CategoryID string
	Date       time.Time
	Amount     int64
}

// RefillType selects how a category target accounts for carryover.
type RefillType string

const (
	RefillCarryover RefillType = "refill"
	RefillFixed     RefillType = "fixed"
)

// CategoryTarget is a category's monthly funding goal.
type CategoryTarget struct {
	CategoryID string
	Amount     int64
	RefillType RefillType
}

// NoteCounts carries the note tallies shown on the dashboard.
type NoteCounts struct {
	Total  int
	Recent int
	Pinned int
}
