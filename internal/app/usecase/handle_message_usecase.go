package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

type TodayTasks interface {
	Execute(ctx context.Context) (map[string]domain.Task, error)
}

type TaskCompleter interface {
	SetCompleted(ctx context.Context, taskID string, completed bool) (domain.Task, error)
}

type CustomTasks interface {
	Add(ctx context.Context, title, hhmm string) (domain.Task, error)
	Delete(ctx context.Context, taskID string) error
}

type WaterResponder interface {
	Execute(ctx context.Context, action string) (WaterResponse, error)
	Status(ctx context.Context) WaterStatus
}

type Workouts interface {
	Today(ctx context.Context) (domain.Workout, error)
	ToggleExercise(ctx context.Context, exerciseID string) (domain.Workout, error)
}

type Journal interface {
	Toggle(ctx context.Context) (bool, error)
	Save(ctx context.Context, note string) error
}

type ProgressCalculator interface {
	Execute(ctx context.Context) (domain.Progress, error)
}

type Rescheduler interface {
	Execute(ctx context.Context, force bool) (ScheduleResult, error)
}

// MessageDeps holds everything the command router dispatches to.
type MessageDeps struct {
	Tasks     TodayTasks
	Completer TaskCompleter
	Custom    CustomTasks
	Water     WaterResponder
	Workouts  Workouts
	Journal   Journal
	Progress  ProgressCalculator
	Scheduler Rescheduler
	Coach     *CoachUsecase
	Clock     domain.Clock
}

type HandleMessageUsecase struct {
	deps MessageDeps
}

func NewHandleMessageUsecase(deps MessageDeps) *HandleMessageUsecase {
	return &HandleMessageUsecase{deps: deps}
}

// Execute routes a chat message to a command. Messages that are not a known
// command get an empty reply.
func (uc *HandleMessageUsecase) Execute(ctx context.Context, msg string) (string, error) {
	fields := strings.Fields(msg)
	if len(fields) == 0 {
		return "", nil
	}
	cmd := strings.ToLower(fields[0])
	args := fields[1:]
	rest := strings.TrimSpace(strings.Join(args, " "))

	switch cmd {
	case "#today", "#tasks":
		return uc.today(ctx)
	case "#done":
		return uc.setCompleted(ctx, args, true)
	case "#undo":
		return uc.setCompleted(ctx, args, false)
	case "#add":
		return uc.addCustom(ctx, args)
	case "#delete":
		return uc.deleteCustom(ctx, args)
	case "#drank":
		return uc.water(ctx, domain.ActionWaterYes)
	case "#later":
		return uc.water(ctx, domain.ActionWaterLater)
	case "#water":
		return uc.waterStatus(ctx), nil
	case "#workout":
		return uc.workout(ctx)
	case "#lift":
		return uc.lift(ctx, args)
	case "#journal":
		return uc.journal(ctx, rest)
	case "#progress":
		return uc.progress(ctx)
	case "#quote":
		return "💬 " + uc.deps.Coach.QuoteOfTheDay(uc.deps.Clock.Now()), nil
	case "#coach":
		return uc.deps.Coach.Reply(rest), nil
	case "#reschedule":
		return uc.reschedule(ctx)
	case "#help":
		return helpText, nil
	}
	return "", nil
}

const helpText = `Commands:
#today - today's checklist
#done <id> / #undo <id> - mark a task
#add HH:mm <title> - add a custom task for today
#delete <id> - delete a custom task
#drank / #later - answer a water reminder
#water - today's water stats
#workout - today's workout
#lift <exercise> - toggle an exercise
#journal [note] - toggle or write today's journal
#progress - streaks and stats
#quote - quote of the day
#coach <message> - talk to your coach
#reschedule - force reminders for today`

func (uc *HandleMessageUsecase) today(ctx context.Context) (string, error) {
	tasks, err := uc.deps.Tasks.Execute(ctx)
	if err != nil && len(tasks) == 0 {
		return "", err
	}

	now := uc.deps.Clock.Now()
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("📅 %s, %s\n", capitalize(dateutil.DayName(now)), now.Format("January 2, 2006")))
	sb.WriteString(fmt.Sprintf("Progress: %d%%\n\n", domain.CompletionRate(tasks)))
	for _, t := range domain.SortedTasks(tasks) {
		mark := "⬜"
		if t.Completed {
			mark = "✅"
		}
		star := ""
		if t.IsCustom {
			star = " ⭐"
		}
		sb.WriteString(fmt.Sprintf("%s %s %s%s (%s)\n", mark, t.Time, t.Title, star, t.ID))
	}
	sb.WriteString("\n💬 " + uc.deps.Coach.QuoteOfTheDay(now))
	return sb.String(), nil
}

func (uc *HandleMessageUsecase) setCompleted(ctx context.Context, args []string, completed bool) (string, error) {
	if len(args) == 0 {
		return "Usage: #done <task id>", nil
	}
	task, err := uc.deps.Completer.SetCompleted(ctx, args[0], completed)
	if errors.Is(err, domain.ErrTaskNotFound) {
		return fmt.Sprintf("Task %s not found today.", args[0]), nil
	}
	if err != nil {
		return "", err
	}
	if task.Completed {
		return fmt.Sprintf("✅ %s done. Keep going 🔥", task.Title), nil
	}
	return fmt.Sprintf("⬜ %s marked as not done.", task.Title), nil
}

func (uc *HandleMessageUsecase) addCustom(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "Usage: #add HH:mm <title>", nil
	}
	task, err := uc.deps.Custom.Add(ctx, strings.Join(args[1:], " "), args[0])
	switch {
	case errors.Is(err, domain.ErrInvalidTime):
		return "Error: time must be HH:mm", nil
	case errors.Is(err, domain.ErrEmptyTitle):
		return "Error: Please enter a task title", nil
	case err != nil:
		return "Error: Failed to add custom task", err
	}
	return fmt.Sprintf("⭐ Added %s at %s (%s)", task.Title, task.Time, task.ID), nil
}

func (uc *HandleMessageUsecase) deleteCustom(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "Usage: #delete <task id>", nil
	}
	err := uc.deps.Custom.Delete(ctx, args[0])
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		return fmt.Sprintf("Custom task %s not found today.", args[0]), nil
	case err != nil:
		return "Error: Failed to delete task", err
	}
	return "🗑️ Task deleted.", nil
}

func (uc *HandleMessageUsecase) water(ctx context.Context, action string) (string, error) {
	res, err := uc.deps.Water.Execute(ctx, action)
	if err != nil {
		return "", err
	}

	var msg string
	if action == domain.ActionWaterYes {
		msg = fmt.Sprintf("💧 Logged. %d glasses today.", res.Count)
	} else {
		msg = fmt.Sprintf("⏰ Skipped (%d today).", res.Count)
	}
	if res.Next != nil {
		msg += " Next reminder at " + res.Next.Format("15:04") + "."
	} else {
		msg += " No more reminders today."
	}
	return msg, nil
}

func (uc *HandleMessageUsecase) waterStatus(ctx context.Context) string {
	st := uc.deps.Water.Status(ctx)
	msg := fmt.Sprintf("💧 Today: %d drank, %d skipped", st.Drank, st.Skipped)
	if st.Last != nil {
		msg += "\nLast drink: " + dateutil.TimeSince(*st.Last, uc.deps.Clock.Now())
	}
	return msg
}

func (uc *HandleMessageUsecase) workout(ctx context.Context) (string, error) {
	w, err := uc.deps.Workouts.Today(ctx)
	if errors.Is(err, domain.ErrNoWorkoutToday) {
		return "No workout planned today. Rest and recover.", nil
	}
	if err != nil {
		return "", err
	}
	return formatWorkout(w), nil
}

func (uc *HandleMessageUsecase) lift(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return "Usage: #lift <exercise id>", nil
	}
	w, err := uc.deps.Workouts.ToggleExercise(ctx, args[0])
	switch {
	case errors.Is(err, domain.ErrNoWorkoutToday):
		return "No workout planned today. Rest and recover.", nil
	case errors.Is(err, domain.ErrUnknownExercise):
		return fmt.Sprintf("Exercise %s is not in today's workout.", args[0]), nil
	case err != nil:
		return "", err
	}
	return formatWorkout(w), nil
}

func formatWorkout(w domain.Workout) string {
	sb := strings.Builder{}
	total := len(w.Exercises)
	done := w.CompletedCount()
	pct := 0
	if total > 0 {
		pct = done * 100 / total
	}
	sb.WriteString(fmt.Sprintf("🏋️ %s\n%d / %d exercises (%d%%)\n\n", w.Name, done, total, pct))
	for _, ex := range w.Exercises {
		mark := "⬜"
		if ex.Completed {
			mark = "✅"
		}
		sb.WriteString(fmt.Sprintf("%s %s %dx%s [%s] (%s)\n", mark, ex.Name, ex.Sets, ex.Reps, ex.MuscleGroup, ex.ID))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (uc *HandleMessageUsecase) journal(ctx context.Context, note string) (string, error) {
	if note != "" {
		if err := uc.deps.Journal.Save(ctx, note); err != nil {
			return "", err
		}
		return "📓 Journal saved.", nil
	}
	done, err := uc.deps.Journal.Toggle(ctx)
	if err != nil {
		return "", err
	}
	if done {
		return "📓 Journal Entry Completed", nil
	}
	return "📓 Journal marked as not done.", nil
}

func (uc *HandleMessageUsecase) progress(ctx context.Context) (string, error) {
	p, err := uc.deps.Progress.Execute(ctx)
	if err != nil && p.StartDate == "" {
		return "", err
	}

	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("📈 Day %d (since %s)\n", p.CurrentDay, p.StartDate))
	sb.WriteString(fmt.Sprintf("Days tracked: %d\n", p.TotalDays))
	sb.WriteString(fmt.Sprintf("Today: %d%% done\n\n", p.CompletionRate))
	sb.WriteString(fmt.Sprintf("🔥 Gym streak: %d\n", p.Streaks.Gym))
	sb.WriteString(fmt.Sprintf("🏃 Cardio streak: %d\n", p.Streaks.Cardio))
	sb.WriteString(fmt.Sprintf("🧔 Grooming streak: %d\n", p.Streaks.Grooming))
	sb.WriteString(fmt.Sprintf("💧 Water streak: %d\n", p.Streaks.DetoxWater))
	sb.WriteString(fmt.Sprintf("Water today: %d drank, %d skipped", p.WaterDrank, p.WaterSkipped))
	return sb.String(), nil
}

func (uc *HandleMessageUsecase) reschedule(ctx context.Context) (string, error) {
	res, err := uc.deps.Scheduler.Execute(ctx, true)
	if err != nil {
		return "", err
	}
	msg := fmt.Sprintf("🔔 Rescheduled %d task reminders and %d water reminders.", res.TaskReminders, len(res.WaterReminders))
	if len(res.WaterReminders) > 0 {
		msg += fmt.Sprintf(" Next water at %s.", res.WaterReminders[0].Format("15:04"))
	}
	return msg, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
