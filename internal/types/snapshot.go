package types

// DashboardSnapshot is the single immutable structure produced by one
// aggregation pass. All fields are derived from one captured timestamp; the
// snapshot is never mutated after assembly.
type DashboardSnapshot struct {
	Today   string           `json:"today"`
	Tasks   TasksSection     `json:"tasks"`
	Events  EventsSection    `json:"events"`
	Habits  HabitsSection    `json:"habits"`
	Journal JournalSection   `json:"journal"`
	Goals   []GoalCard       `json:"goals"`
	People  PeopleSection    `json:"people"`
	Finance FinanceSection   `json:"finance"`
	Notes   NotesSection     `json:"notes"`
	Quote   Quote            `json:"quote"`
}

// TasksSection summarizes today's task load.
type TasksSection struct {
	TodayCount          int        `json:"todayCount"`
	OverdueCount        int        `json:"overdueCount"`
	CompletedTodayCount int        `json:"completedTodayCount"`
	TodayItems          []TaskItem `json:"todayItems"`
}

// TaskItem is one task surfaced on the dashboard.
type TaskItem struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Priority      string       `json:"priority"`
	ScheduledTime string       `json:"scheduledTime,omitempty"`
	DueDate       string       `json:"dueDate,omitempty"`
	Project       *ProjectInfo `json:"project,omitempty"`
}

// ProjectInfo identifies a task's project for display.
type ProjectInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// EventsSection lists today's visible calendar events.
type EventsSection struct {
	TodayCount int         `json:"todayCount"`
	Items      []EventItem `json:"items"`
}

// EventItem is one calendar event surfaced on the dashboard.
type EventItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	AllDay    bool   `json:"isAllDay"`
	Color     string `json:"color"`
}

// HabitsSection summarizes habit state for today. TotalActive counts habits
// due today, not all unarchived habits.
type HabitsSection struct {
	TotalActive    int         `json:"totalActive"`
	CompletedToday int         `json:"completedToday"`
	Items          []HabitItem `json:"items"`
}

// HabitItem is one habit's derived state for today.
type HabitItem struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Color            string `json:"color"`
	Icon             string `json:"icon"`
	IsDue            bool   `json:"isDue"`
	IsCompletedToday bool   `json:"isCompletedToday"`
	CurrentStreak    int    `json:"currentStreak"`
	FrequencyLabel   string `json:"frequencyLabel"`
}

// JournalSection summarizes recent journal activity.
type JournalSection struct {
	HasEntryToday bool         `json:"hasEntryToday"`
	TodayMood     *int         `json:"todayMood"`
	TodayEnergy   *int         `json:"todayEnergy"`
	Last7Days     []JournalDay `json:"last7Days"`
	CurrentStreak int          `json:"currentStreak"`
}

// JournalDay is one day of the mood/energy sparkline. Mood and Energy are nil
// when no entry exists for the day.
type JournalDay struct {
	Date   string `json:"date"`
	Mood   *int   `json:"mood"`
	Energy *int   `json:"energy"`
}

// GoalCard is one goal's derived progress.
type GoalCard struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Color               string `json:"color"`
	Progress            int    `json:"progress"`
	TargetDate          string `json:"targetDate,omitempty"`
	MilestonesCompleted int    `json:"milestonesCompleted"`
	MilestonesTotal     int    `json:"milestonesTotal"`
}

// PeopleSection surfaces relationships needing attention.
type PeopleSection struct {
	NeedsAttention    []AttentionPerson  `json:"needsAttention"`
	UpcomingBirthdays []UpcomingBirthday `json:"upcomingBirthdays"`
	OverdueFollowUps  int                `json:"overdueFollowUps"`
}

// AttentionPerson is a person whose contact health is warning or neglected.
// DaysSinceContact is nil when the person was never contacted.
type AttentionPerson struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	AvatarColor      string `json:"avatarColor"`
	DaysSinceContact *int   `json:"daysSinceContact"`
	Health           string `json:"health"`
}

// UpcomingBirthday is a birthday within the lookahead window.
type UpcomingBirthday struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AvatarColor string `json:"avatarColor"`
	DaysUntil   int    `json:"daysUntil"`
	Date        string `json:"date"`
}

// FinanceSection carries the envelope-budget rollup.
type FinanceSection struct {
	ReadyToAssign int64        `json:"readyToAssign"`
	TotalBalance  int64        `json:"totalBalance"`
	BudgetHealth  BudgetHealth `json:"budgetHealth"`
}

// BudgetHealth counts categories per funding state.
type BudgetHealth struct {
	OnTrack     int `json:"onTrack"`
	Underfunded int `json:"underfunded"`
	Overspent   int `json:"overspent"`
}

// NotesSection carries note tallies.
type NotesSection struct {
	TotalCount  int `json:"totalCount"`
	RecentCount int `json:"recentCount"`
	PinnedCount int `json:"pinnedCount"`
}

// Quote is the quote of the day.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
