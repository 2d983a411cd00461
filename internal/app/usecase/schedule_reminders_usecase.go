package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/catalog"
	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

const (
	reminderTitle = "🐺 Alpha Male Reminder"
	waterTitle    = "💧 Time to Drink Water!"
	waterBody     = "Stay hydrated, warrior. Did you drink water?"
)

type ScheduleResult struct {
	Date string
	// Skipped is set when reminders were already initialized for Date.
	Skipped        bool
	TaskReminders  int
	WaterReminders []time.Time
	Steps          []domain.StepResult
}

type ScheduleRemindersUsecase struct {
	center  domain.NotificationCenter
	store   domain.RecordStore
	catalog *catalog.Catalog
	clock   domain.Clock
	window  domain.WaterWindow
	log     walog.Logger
}

func NewScheduleRemindersUsecase(center domain.NotificationCenter, store domain.RecordStore, cat *catalog.Catalog, clock domain.Clock, window domain.WaterWindow, log walog.Logger) *ScheduleRemindersUsecase {
	return &ScheduleRemindersUsecase{center: center, store: store, catalog: cat, clock: clock, window: window, log: log}
}

// Execute registers today's task and water reminders unless the
// notifications_initialized marker already holds today's date. force skips
// the check. Scheduling failures are recorded as warnings and never abort.
func (uc *ScheduleRemindersUsecase) Execute(ctx context.Context, force bool) (ScheduleResult, error) {
	now := uc.clock.Now()
	date := dateutil.FormatDate(now)
	res := ScheduleResult{Date: date}

	if !force && loadString(ctx, uc.store, uc.log, domain.RecordNotificationsInitialized) == date {
		uc.log.Infof("Notifications already initialized for %s. Skipping.", date)
		res.Skipped = true
		res.Steps = append(res.Steps,
			domain.StepResult{Name: domain.StepTaskNotify, Status: domain.StepSkipped, Detail: "already initialized"},
			domain.StepResult{Name: domain.StepWaterNotify, Status: domain.StepSkipped, Detail: "already initialized"},
		)
		return res, nil
	}

	n, err := uc.ScheduleTaskReminders(ctx)
	res.TaskReminders = n
	res.Steps = append(res.Steps, stepFrom(domain.StepTaskNotify, fmt.Sprintf("%d scheduled", n), err))

	times, err := uc.ScheduleWaterReminders(ctx, now)
	res.WaterReminders = times
	res.Steps = append(res.Steps, stepFrom(domain.StepWaterNotify, fmt.Sprintf("%d scheduled", len(times)), err))

	if err := uc.store.Put(ctx, domain.RecordNotificationsInitialized, "", date); err != nil {
		res.Steps = append(res.Steps, domain.StepResult{Name: domain.StepMarker, Status: domain.StepFailed, Err: err})
		return res, fmt.Errorf("mark notifications initialized: %w", err)
	}
	res.Steps = append(res.Steps, domain.StepResult{Name: domain.StepMarker, Status: domain.StepOK, Detail: date})
	return res, nil
}

// ScheduleTaskReminders cancels every pending task reminder, including those
// of tasks no longer in the catalog, then registers one repeating daily
// reminder per catalog task. It returns how many were registered.
func (uc *ScheduleRemindersUsecase) ScheduleTaskReminders(ctx context.Context) (int, error) {
	uc.cancelPending(ctx, domain.IsTaskNotification)

	var errs []error
	scheduled := 0
	for _, task := range uc.catalog.DailyTasks {
		tod, err := domain.ParseTimeOfDay(task.Time)
		if err != nil {
			errs = append(errs, fmt.Errorf("task %s: %w", task.ID, err))
			continue
		}

		id := domain.TaskNotificationID(task.ID)
		n := domain.Notification{
			ID:      id,
			Kind:    domain.KindTask,
			Title:   reminderTitle,
			Body:    task.Title,
			Data:    map[string]string{"taskId": task.ID},
			Trigger: domain.DailyTrigger(tod.Hour, tod.Minute),
		}
		if err := uc.center.Schedule(ctx, n); err != nil {
			uc.log.Warnf("Failed to schedule %s: %v", id, err)
			errs = append(errs, fmt.Errorf("schedule %s: %w", id, err))
			continue
		}
		scheduled++
	}
	uc.log.Infof("Scheduled %d task notifications", scheduled)
	return scheduled, errors.Join(errs...)
}

// WaterReminderTimes lists the hourly one-shot times left in now's day:
// from FirstReminder when now is before Wake, otherwise from the next full
// hour, up to and including Sleep.
func WaterReminderTimes(now time.Time, w domain.WaterWindow) []time.Time {
	wake := dateutil.AtTime(now, w.Wake.Hour, w.Wake.Minute)
	sleep := dateutil.AtTime(now, w.Sleep.Hour, w.Sleep.Minute)

	var start time.Time
	if now.Before(wake) {
		start = dateutil.AtTime(now, w.FirstReminder.Hour, w.FirstReminder.Minute)
	} else {
		start = nextFullHour(now)
	}

	var times []time.Time
	for cur := start; !cur.After(sleep); cur = cur.Add(time.Hour) {
		if cur.After(now) {
			times = append(times, cur)
		}
	}
	return times
}

// ScheduleWaterReminders cancels pending water reminders and registers the
// remaining ones for now's day.
func (uc *ScheduleRemindersUsecase) ScheduleWaterReminders(ctx context.Context, now time.Time) ([]time.Time, error) {
	uc.cancelPending(ctx, domain.IsWaterReminder)

	var (
		errs      []error
		scheduled []time.Time
	)
	for _, at := range WaterReminderTimes(now, uc.window) {
		if err := scheduleWaterReminder(ctx, uc.center, at); err != nil {
			uc.log.Warnf("Failed to schedule water reminder at %s: %v", at.Format("15:04"), err)
			errs = append(errs, err)
			continue
		}
		scheduled = append(scheduled, at)
	}
	uc.log.Infof("Scheduled %d water reminders for today", len(scheduled))
	return scheduled, errors.Join(errs...)
}

// ScheduleMotivation registers a one-shot message for tomorrow's wake time.
func (uc *ScheduleRemindersUsecase) ScheduleMotivation(ctx context.Context, day int) (time.Time, error) {
	now := uc.clock.Now()
	at := dateutil.AtTime(now.AddDate(0, 0, 1), uc.window.Wake.Hour, uc.window.Wake.Minute)
	n := domain.Notification{
		ID:      domain.MotivationPrefix + dateutil.FormatDate(at),
		Kind:    domain.KindMotivation,
		Title:   "🐺 Alpha Male",
		Body:    catalog.MotivationMessage(day + 1),
		Trigger: domain.OneShotTrigger(at),
	}
	return at, uc.center.Schedule(ctx, n)
}

func (uc *ScheduleRemindersUsecase) cancelPending(ctx context.Context, match func(id string) bool) {
	pending, err := uc.center.Pending(ctx)
	if err != nil {
		uc.log.Warnf("Failed to list pending notifications: %v", err)
		return
	}
	for _, n := range pending {
		if !match(n.ID) {
			continue
		}
		if err := uc.center.Cancel(ctx, n.ID); err != nil {
			uc.log.Warnf("Failed to cancel %s: %v", n.ID, err)
		}
	}
}

func scheduleWaterReminder(ctx context.Context, center domain.NotificationCenter, at time.Time) error {
	id := domain.WaterReminderID(at)
	return center.Schedule(ctx, domain.Notification{
		ID:         id,
		Kind:       domain.KindWater,
		Title:      waterTitle,
		Body:       waterBody,
		CategoryID: domain.WaterReminderCategoryID,
		Data:       map[string]string{"type": domain.KindWater, "identifier": id},
		Trigger:    domain.OneShotTrigger(at),
	})
}

func nextFullHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour()+1, 0, 0, 0, t.Location())
}

func stepFrom(name, detail string, err error) domain.StepResult {
	if err != nil {
		return domain.StepResult{Name: name, Status: domain.StepWarning, Detail: detail, Err: err}
	}
	return domain.StepResult{Name: name, Status: domain.StepOK, Detail: detail}
}
