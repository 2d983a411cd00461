package usecase_test

import (
	"context"
	"testing"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/app/usecase"
	"github.com/fardannozami/habit-gateway/internal/catalog"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

func newStartup(center *memCenter, store *memStore, date, hhmm string) *usecase.StartupUsecase {
	clock := clockAt(date, hhmm)
	cat := catalog.Default()
	scheduler := usecase.NewScheduleRemindersUsecase(center, store, cat, clock, domain.DefaultWaterWindow(), walog.Noop)
	reconciler := usecase.NewReconcileTasksUsecase(store, cat, clock, walog.Noop)
	return usecase.NewStartupUsecase(center, store, scheduler, reconciler, clock, walog.Noop)
}

func expectStep(t *testing.T, report *domain.StartupReport, name string, status domain.StepStatus) {
	t.Helper()
	step, ok := report.Step(name)
	if !ok {
		t.Errorf("Missing step %s in report:\n%s", name, report)
		return
	}
	if step.Status != status {
		t.Errorf("Step %s: expected %s, got %s (%v)", name, status, step.Status, step.Err)
	}
}

func TestStartup_FirstRun(t *testing.T) {
	center, store := newMemCenter(), newMemStore()

	report := newStartup(center, store, "2026-10-19", "08:00").Execute(context.Background(), false)

	expectStep(t, report, domain.StepPermission, domain.StepOK)
	expectStep(t, report, domain.StepCategories, domain.StepOK)
	expectStep(t, report, domain.StepStartDate, domain.StepOK)
	expectStep(t, report, domain.StepTaskNotify, domain.StepOK)
	expectStep(t, report, domain.StepWaterNotify, domain.StepOK)
	expectStep(t, report, domain.StepMarker, domain.StepOK)
	expectStep(t, report, domain.StepMotivation, domain.StepOK)
	expectStep(t, report, domain.StepTaskMerge, domain.StepOK)
	if report.Failed() {
		t.Errorf("Unexpected failure:\n%s", report)
	}

	if _, ok := center.categories[domain.WaterReminderCategoryID]; !ok {
		t.Error("Expected WATER_REMINDER category to be registered")
	}
	if len(store.tasks("2026-10-19")) == 0 {
		t.Error("Expected today's tasks to be reconciled")
	}
}

func TestStartup_SecondRunSkipsScheduling(t *testing.T) {
	center, store := newMemCenter(), newMemStore()
	ctx := context.Background()

	_ = newStartup(center, store, "2026-10-19", "08:00").Execute(ctx, false)
	report := newStartup(center, store, "2026-10-19", "13:00").Execute(ctx, false)

	expectStep(t, report, domain.StepStartDate, domain.StepSkipped)
	expectStep(t, report, domain.StepTaskNotify, domain.StepSkipped)
	expectStep(t, report, domain.StepWaterNotify, domain.StepSkipped)
	expectStep(t, report, domain.StepMotivation, domain.StepSkipped)
	expectStep(t, report, domain.StepTaskMerge, domain.StepOK)
}

func TestStartup_PermissionDeniedContinues(t *testing.T) {
	center, store := newMemCenter(), newMemStore()
	center.permission = false

	report := newStartup(center, store, "2026-10-19", "08:00").Execute(context.Background(), false)

	expectStep(t, report, domain.StepPermission, domain.StepWarning)
	expectStep(t, report, domain.StepTaskNotify, domain.StepOK)
}

func TestStartup_TaskMergeFailureIsReported(t *testing.T) {
	center, store := newMemCenter(), newMemStore()
	store.failPut[domain.RecordDailyTasks] = true

	report := newStartup(center, store, "2026-10-19", "08:00").Execute(context.Background(), false)

	expectStep(t, report, domain.StepTaskMerge, domain.StepFailed)
	expectStep(t, report, domain.StepTaskNotify, domain.StepOK)
	if !report.Failed() {
		t.Error("Expected report to be marked failed")
	}
}
