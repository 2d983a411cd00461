package usecase

import (
	"context"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/catalog"
	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

// Reconcile merges the catalog, today's creative tasks and the day's custom
// tasks into the previously persisted map. Catalog definitions replace stored
// ones but completion state is kept; weekday-only tasks are dropped on
// weekends; custom tasks always win. existing is not modified.
func Reconcile(now time.Time, existing map[string]domain.Task, daily, creative, custom []domain.Task) map[string]domain.Task {
	tasks := make(map[string]domain.Task, len(existing)+len(daily)+len(creative)+len(custom))
	for id, t := range existing {
		tasks[id] = t
	}

	weekend := dateutil.IsWeekend(now)
	for _, def := range daily {
		if weekend && def.WeekdaysOnly {
			delete(tasks, def.ID)
			continue
		}
		mergeDefinition(tasks, def)
	}
	for _, def := range creative {
		mergeDefinition(tasks, def)
	}

	for _, t := range custom {
		t.IsCustom = true
		tasks[t.ID] = t
	}
	return tasks
}

func mergeDefinition(tasks map[string]domain.Task, def domain.Task) {
	for _, alias := range def.Aliases {
		old, ok := tasks[alias]
		if !ok || old.IsCustom {
			continue
		}
		if _, exists := tasks[def.ID]; !exists {
			tasks[def.ID] = old
		}
		delete(tasks, alias)
	}

	fresh := def
	fresh.Aliases = nil
	fresh.IsCustom = false
	fresh.Completed = false
	fresh.CompletedAt = ""
	if prev, ok := tasks[def.ID]; ok {
		fresh.Completed = prev.Completed
		fresh.CompletedAt = prev.CompletedAt
	}
	tasks[def.ID] = fresh
}

type ReconcileTasksUsecase struct {
	store   domain.RecordStore
	catalog *catalog.Catalog
	clock   domain.Clock
	log     walog.Logger
}

func NewReconcileTasksUsecase(store domain.RecordStore, cat *catalog.Catalog, clock domain.Clock, log walog.Logger) *ReconcileTasksUsecase {
	return &ReconcileTasksUsecase{store: store, catalog: cat, clock: clock, log: log}
}

// Execute reconciles today's task set and persists it.
func (uc *ReconcileTasksUsecase) Execute(ctx context.Context) (map[string]domain.Task, error) {
	return uc.ExecuteFor(ctx, uc.clock.Now())
}

// ExecuteFor reconciles the task set of now's calendar date. The merged map is
// returned even when saving it fails.
func (uc *ReconcileTasksUsecase) ExecuteFor(ctx context.Context, now time.Time) (map[string]domain.Task, error) {
	date := dateutil.FormatDate(now)

	existing := loadTaskMap(ctx, uc.store, uc.log, date)
	custom := loadCustomTasks(ctx, uc.store, uc.log, date)
	tasks := Reconcile(now, existing, uc.catalog.DailyTasks, uc.catalog.CreativeFor(now), custom)

	if err := saveTaskMap(ctx, uc.store, date, tasks); err != nil {
		uc.log.Warnf("Failed to save reconciled tasks for %s: %v", date, err)
		return tasks, err
	}
	return tasks, nil
}
