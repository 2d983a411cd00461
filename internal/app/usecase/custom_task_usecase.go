package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

type CustomTaskUsecase struct {
	store      domain.RecordStore
	reconciler TaskReconciler
	clock      domain.Clock
	log        walog.Logger
	newID      func() string
}

func NewCustomTaskUsecase(store domain.RecordStore, reconciler TaskReconciler, clock domain.Clock, log walog.Logger) *CustomTaskUsecase {
	return &CustomTaskUsecase{
		store:      store,
		reconciler: reconciler,
		clock:      clock,
		log:        log,
		newID:      func() string { return "custom-" + uuid.NewString() },
	}
}

// Add creates a custom task for today. It is stored in the day's custom list
// and today's task set is reconciled to include it.
func (uc *CustomTaskUsecase) Add(ctx context.Context, title, hhmm string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, domain.ErrEmptyTitle
	}
	tod, err := domain.ParseTimeOfDay(hhmm)
	if err != nil {
		return domain.Task{}, err
	}

	now := uc.clock.Now()
	date := dateutil.FormatDate(now)
	task := domain.Task{
		ID:       uc.newID(),
		Title:    title,
		Time:     tod.String(),
		Category: domain.CategoryEvening,
		IsCustom: true,
	}

	custom := loadCustomTasks(ctx, uc.store, uc.log, date)
	custom = append(custom, task)
	if err := uc.store.Put(ctx, domain.RecordCustomTasks, date, custom); err != nil {
		return domain.Task{}, fmt.Errorf("save custom task: %w", err)
	}

	// The custom list is overlaid on the full catalog set, so the day's set
	// is rebuilt rather than written with only the new task in it.
	if _, err := uc.reconciler.ExecuteFor(ctx, now); err != nil {
		return domain.Task{}, fmt.Errorf("save daily tasks: %w", err)
	}
	return task, nil
}

// Delete removes a custom task of today from both the custom list and the
// day's task set.
func (uc *CustomTaskUsecase) Delete(ctx context.Context, taskID string) error {
	date := dateutil.FormatDate(uc.clock.Now())

	custom := loadCustomTasks(ctx, uc.store, uc.log, date)
	kept := custom[:0:0]
	for _, t := range custom {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(custom) {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, taskID)
	}
	if err := uc.store.Put(ctx, domain.RecordCustomTasks, date, kept); err != nil {
		return fmt.Errorf("delete custom task: %w", err)
	}

	tasks := loadTaskMap(ctx, uc.store, uc.log, date)
	if _, ok := tasks[taskID]; ok {
		delete(tasks, taskID)
		if err := saveTaskMap(ctx, uc.store, date, tasks); err != nil {
			return fmt.Errorf("save daily tasks: %w", err)
		}
	}
	return nil
}

func (uc *CustomTaskUsecase) List(ctx context.Context) []domain.Task {
	return loadCustomTasks(ctx, uc.store, uc.log, dateutil.FormatDate(uc.clock.Now()))
}
