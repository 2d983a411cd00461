package usecase

import (
	"context"
	"fmt"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

type TaskReconciler interface {
	ExecuteFor(ctx context.Context, now time.Time) (map[string]domain.Task, error)
}

type TaskCompletionUsecase struct {
	store      domain.RecordStore
	reconciler TaskReconciler
	clock      domain.Clock
	log        walog.Logger
}

func NewTaskCompletionUsecase(store domain.RecordStore, reconciler TaskReconciler, clock domain.Clock, log walog.Logger) *TaskCompletionUsecase {
	return &TaskCompletionUsecase{store: store, reconciler: reconciler, clock: clock, log: log}
}

// Toggle flips the completion of a task in today's set.
func (uc *TaskCompletionUsecase) Toggle(ctx context.Context, taskID string) (domain.Task, error) {
	return uc.update(ctx, taskID, func(t domain.Task) bool { return !t.Completed })
}

// SetCompleted forces the completion state of a task in today's set.
func (uc *TaskCompletionUsecase) SetCompleted(ctx context.Context, taskID string, completed bool) (domain.Task, error) {
	return uc.update(ctx, taskID, func(domain.Task) bool { return completed })
}

func (uc *TaskCompletionUsecase) update(ctx context.Context, taskID string, next func(domain.Task) bool) (domain.Task, error) {
	now := uc.clock.Now()
	date := dateutil.FormatDate(now)

	tasks, err := uc.reconciler.ExecuteFor(ctx, now)
	if err != nil {
		return domain.Task{}, err
	}

	task, ok := tasks[taskID]
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}

	task.Completed = next(task)
	task.CompletedAt = ""
	if task.Completed {
		task.CompletedAt = now.Format(time.RFC3339)
	}
	tasks[taskID] = task

	if err := saveTaskMap(ctx, uc.store, date, tasks); err != nil {
		return domain.Task{}, err
	}

	// Custom tasks are overlaid from their own list on every reconciliation,
	// so the list must carry the completion too.
	if task.IsCustom {
		custom := loadCustomTasks(ctx, uc.store, uc.log, date)
		for i := range custom {
			if custom[i].ID == taskID {
				custom[i].Completed = task.Completed
				custom[i].CompletedAt = task.CompletedAt
			}
		}
		if err := uc.store.Put(ctx, domain.RecordCustomTasks, date, custom); err != nil {
			return domain.Task{}, err
		}
	}
	return task, nil
}
