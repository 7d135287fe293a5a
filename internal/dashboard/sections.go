package dashboard

import (
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/daybookhq/daybook/internal/budget"
	"github.com/daybookhq/daybook/internal/dates"
	"github.com/daybookhq/daybook/internal/people"
	"github.com/daybookhq/daybook/internal/recurrence"
	"github.com/daybookhq/daybook/internal/streak"
	"github.com/daybookhq/daybook/internal/types"
)

// Snapshot list limits.
const (
	maxTodayItems = 10
	maxGoals      = 5
	maxAttention  = 5
	maxBirthdays  = 3
)

// Fetch windows, expressed in days, for the streak calculations.
const (
	streakHabitWindowDays   = streak.HabitLookback
	streakJournalWindowDays = streak.JournalLookback
)

func buildTasks(open []types.Task, completedToday int, today time.Time) types.TasksSection {
	section := types.TasksSection{
		CompletedTodayCount: completedToday,
		TodayItems:          []types.TaskItem{},
	}

	for _, task := range open {
		scheduledToday := task.ScheduledDate != nil && dates.SameDay(*task.ScheduledDate, today)
		dueToday := task.DueDate != nil && dates.SameDay(*task.DueDate, today)

		if scheduledToday || dueToday {
			section.TodayCount++
			item := types.TaskItem{
				ID:            task.ID,
				Title:         task.Title,
				Priority:      task.Priority,
				ScheduledTime: task.ScheduledTime,
			}
			if task.DueDate != nil {
				item.DueDate = dates.DayKey(*task.DueDate)
			}
			if task.ProjectName != "" {
				item.Project = &types.ProjectInfo{Name: task.ProjectName, Color: task.ProjectColor}
			}
			section.TodayItems = append(section.TodayItems, item)
		}

		if task.DueDate != nil && dates.DayStart(*task.DueDate).Before(today) {
			section.OverdueCount++
		}
	}

	// Timed items first, earliest first; untimed keep their query order.
	sort.SliceStable(section.TodayItems, func(i, j int) bool {
		a, b := section.TodayItems[i], section.TodayItems[j]
		if (a.ScheduledTime != "") != (b.ScheduledTime != "") {
			return a.ScheduledTime != ""
		}
		return a.ScheduledTime != "" && a.ScheduledTime < b.ScheduledTime
	})

	if len(section.TodayItems) > maxTodayItems {
		section.TodayItems = section.TodayItems[:maxTodayItems]
	}
	return section
}

func buildEvents(events []types.Event) types.EventsSection {
	section := types.EventsSection{Items: []types.EventItem{}}
	for _, e := range events {
		if !e.Visible {
			continue
		}
		section.Items = append(section.Items, types.EventItem{
			ID:        e.ID,
			Title:     e.Title,
			StartDate: e.StartDate.UTC().Format(time.RFC3339),
			EndDate:   e.EndDate.UTC().Format(time.RFC3339),
			AllDay:    e.AllDay,
			Color:     e.Color,
		})
	}
	section.TodayCount = len(section.Items)
	return section
}

func buildHabits(habits []types.HabitWithCompletions, today time.Time) types.HabitsSection {
	section := types.HabitsSection{Items: []types.HabitItem{}}

	for _, hc := range habits {
		habit := hc.Habit

		due, err := recurrence.IsDue(habit, today)
		if err != nil {
			// One malformed schedule must not abort the snapshot. The habit
			// is dropped from this pass and surfaced in the log instead.
			slog.Warn("skipping habit with invalid recurrence configuration",
				"habit_id", habit.ID,
				"error", err,
			)
			continue
		}

		target := recurrence.DailyTarget(habit)
		completed := false
		satisfiedDays := make([]time.Time, 0, len(hc.Completions))
		for _, comp := range hc.Completions {
			satisfiedDays = append(satisfiedDays, comp.CompletedAt)
			if dates.SameDay(comp.CompletedAt, today) && comp.Count >= target {
				completed = true
			}
		}

		if due {
			section.TotalActive++
			if completed {
				section.CompletedToday++
			}
		}

		section.Items = append(section.Items, types.HabitItem{
			ID:               habit.ID,
			Name:             habit.Name,
			Color:            habit.Color,
			Icon:             habit.Icon,
			IsDue:            due,
			IsCompletedToday: completed,
			CurrentStreak:    streak.Count(today, streak.HabitLookback, streak.NewDaySet(satisfiedDays)),
			FrequencyLabel:   recurrence.Label(habit),
		})
	}
	return section
}

func buildJournal(week, year []types.JournalEntry, today time.Time) types.JournalSection {
	byDay := make(map[string]types.JournalEntry, len(week))
	for _, e := range week {
		byDay[dates.DayKey(e.Date)] = e
	}

	section := types.JournalSection{Last7Days: make([]types.JournalDay, 0, 7)}
	for i := 6; i >= 0; i-- {
		key := dates.DayKey(today.AddDate(0, 0, -i))
		day := types.JournalDay{Date: key}
		if e, ok := byDay[key]; ok {
			day.Mood = optionalRating(e.Mood)
			day.Energy = optionalRating(e.Energy)
		}
		section.Last7Days = append(section.Last7Days, day)
	}

	if e, ok := byDay[dates.DayKey(today)]; ok {
		section.HasEntryToday = true
		section.TodayMood = optionalRating(e.Mood)
		section.TodayEnergy = optionalRating(e.Energy)
	}

	satisfied := make([]time.Time, 0, len(year))
	for _, e := range year {
		satisfied = append(satisfied, e.Date)
	}
	section.CurrentStreak = streak.Count(today, streak.JournalLookback, streak.NewDaySet(satisfied))
	return section
}

// optionalRating maps the zero value (no rating) to nil.
func optionalRating(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

func buildGoals(goals []types.Goal) []types.GoalCard {
	cards := make([]types.GoalCard, 0, len(goals))
	for _, g := range goals {
		progress := 0
		switch {
		case g.ManualProgress != nil:
			progress = *g.ManualProgress
		case g.MilestonesTotal > 0:
			progress = int(math.Round(float64(g.MilestonesCompleted) / float64(g.MilestonesTotal) * 100))
		}

		card := types.GoalCard{
			ID:                  g.ID,
			Title:               g.Title,
			Color:               g.Color,
			Progress:            progress,
			MilestonesCompleted: g.MilestonesCompleted,
			MilestonesTotal:     g.MilestonesTotal,
		}
		if g.TargetDate != nil {
			card.TargetDate = g.TargetDate.UTC().Format(time.RFC3339)
		}
		cards = append(cards, card)
	}
	if len(cards) > maxGoals {
		cards = cards[:maxGoals]
	}
	return cards
}

func buildPeople(persons []types.Person, overdueFollowUps int, now time.Time) types.PeopleSection {
	section := types.PeopleSection{
		NeedsAttention:    []types.AttentionPerson{},
		UpcomingBirthdays: []types.UpcomingBirthday{},
		OverdueFollowUps:  overdueFollowUps,
	}

	for _, p := range persons {
		if health, ok := people.Score(p.LastContactedAt, p.ContactFrequency, now); ok && health.NeedsAttention() {
			section.NeedsAttention = append(section.NeedsAttention, types.AttentionPerson{
				ID:               p.ID,
				Name:             p.Name,
				AvatarColor:      p.AvatarColor,
				DaysSinceContact: people.DaysSince(p.LastContactedAt, now),
				Health:           string(health),
			})
		}

		if p.Birthday != nil {
			daysUntil := people.DaysUntilBirthday(*p.Birthday, now)
			if daysUntil <= people.BirthdayWindow {
				section.UpcomingBirthdays = append(section.UpcomingBirthdays, types.UpcomingBirthday{
					ID:          p.ID,
					Name:        p.Name,
					AvatarColor: p.AvatarColor,
					DaysUntil:   daysUntil,
					Date:        people.FormatBirthday(*p.Birthday),
				})
			}
		}
	}

	// Most overdue first; a person never contacted sorts as maximally overdue.
	sort.SliceStable(section.NeedsAttention, func(i, j int) bool {
		return attentionRank(section.NeedsAttention[i]) > attentionRank(section.NeedsAttention[j])
	})
	sort.SliceStable(section.UpcomingBirthdays, func(i, j int) bool {
		return section.UpcomingBirthdays[i].DaysUntil < section.UpcomingBirthdays[j].DaysUntil
	})

	if len(section.NeedsAttention) > maxAttention {
		section.NeedsAttention = section.NeedsAttention[:maxAttention]
	}
	if len(section.UpcomingBirthdays) > maxBirthdays {
		section.UpcomingBirthdays = section.UpcomingBirthdays[:maxBirthdays]
	}
	return section
}

func attentionRank(p types.AttentionPerson) int {
	if p.DaysSinceContact == nil {
		return math.MaxInt
	}
	return *p.DaysSinceContact
}

func buildFinance(
	accounts []types.Account,
	groups []types.CategoryGroup,
	assignments []types.BudgetAssignment,
	monthTx, cumulativeTx, throughMonthEndTx, allTx []types.Transaction,
	targets []types.CategoryTarget,
	monthKey string,
) types.FinanceSection {
	var categoryIDs []string
	for _, g := range groups {
		categoryIDs = append(categoryIDs, g.CategoryIDs...)
	}

	summary := budget.Summarize(categoryIDs, assignments, monthTx, cumulativeTx, targets, monthKey)

	return types.FinanceSection{
		ReadyToAssign: budget.ReadyToAssign(accounts, throughMonthEndTx, summary.TotalAvailable()),
		TotalBalance:  budget.TotalBalance(accounts, allTx),
		BudgetHealth:  summary.Health,
	}
}
