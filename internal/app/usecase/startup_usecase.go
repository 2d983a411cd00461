package usecase

import (
	"context"
	"fmt"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

// StartupUsecase runs the daily initialization sequence and reports every
// step. A failing step never stops the ones after it.
type StartupUsecase struct {
	center     domain.NotificationCenter
	store      domain.RecordStore
	scheduler  *ScheduleRemindersUsecase
	reconciler *ReconcileTasksUsecase
	clock      domain.Clock
	log        walog.Logger
}

func NewStartupUsecase(center domain.NotificationCenter, store domain.RecordStore, scheduler *ScheduleRemindersUsecase, reconciler *ReconcileTasksUsecase, clock domain.Clock, log walog.Logger) *StartupUsecase {
	return &StartupUsecase{center: center, store: store, scheduler: scheduler, reconciler: reconciler, clock: clock, log: log}
}

func (uc *StartupUsecase) Execute(ctx context.Context, force bool) *domain.StartupReport {
	now := uc.clock.Now()
	report := &domain.StartupReport{Date: dateutil.FormatDate(now)}

	granted, err := uc.center.RequestPermission(ctx)
	switch {
	case err != nil:
		uc.log.Warnf("Notification permission warning (continuing anyway): %v", err)
		report.Add(domain.StepPermission, domain.StepWarning, "", err)
	case !granted:
		uc.log.Warnf("Notification permission not granted (continuing anyway)")
		report.Add(domain.StepPermission, domain.StepWarning, "not granted", nil)
	default:
		report.Add(domain.StepPermission, domain.StepOK, "granted", nil)
	}

	if err := uc.center.SetCategory(ctx, domain.WaterReminderCategory()); err != nil {
		uc.log.Warnf("Notification category setup warning (continuing anyway): %v", err)
		report.Add(domain.StepCategories, domain.StepWarning, domain.WaterReminderCategoryID, err)
	} else {
		report.Add(domain.StepCategories, domain.StepOK, domain.WaterReminderCategoryID, nil)
	}

	startDate := loadString(ctx, uc.store, uc.log, domain.RecordStartDate)
	if startDate == "" {
		startDate = report.Date
		if err := uc.store.Put(ctx, domain.RecordStartDate, "", startDate); err != nil {
			report.Add(domain.StepStartDate, domain.StepWarning, "", err)
		} else {
			report.Add(domain.StepStartDate, domain.StepOK, "set to "+startDate, nil)
		}
	} else {
		report.Add(domain.StepStartDate, domain.StepSkipped, startDate, nil)
	}

	res, err := uc.scheduler.Execute(ctx, force)
	report.Steps = append(report.Steps, res.Steps...)
	if err != nil {
		uc.log.Warnf("Reminder scheduling: %v", err)
	}

	if res.Skipped {
		report.Add(domain.StepMotivation, domain.StepSkipped, "already initialized", nil)
	} else {
		day := 1
		if start, err := dateutil.ParseDate(startDate, now.Location()); err == nil {
			day = dateutil.DaysSinceStart(start, now)
		}
		if at, err := uc.scheduler.ScheduleMotivation(ctx, day); err != nil {
			uc.log.Warnf("Failed to schedule motivation: %v", err)
			report.Add(domain.StepMotivation, domain.StepWarning, "", err)
		} else {
			report.Add(domain.StepMotivation, domain.StepOK, at.Format("2006-01-02 15:04"), nil)
		}
	}

	tasks, err := uc.reconciler.ExecuteFor(ctx, now)
	if err != nil {
		report.Add(domain.StepTaskMerge, domain.StepFailed, "", err)
	} else {
		report.Add(domain.StepTaskMerge, domain.StepOK, fmt.Sprintf("%d tasks", len(tasks)), nil)
	}

	return report
}
