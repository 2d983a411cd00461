package usecase

import (
	"context"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/domain"
)

// Reads in this file degrade to an empty value on storage errors so callers
// fall back to catalog-only state. Writes return their error.

func loadTaskMap(ctx context.Context, store domain.RecordStore, log walog.Logger, date string) map[string]domain.Task {
	var set domain.DailyTaskSet
	ok, err := store.Get(ctx, domain.RecordDailyTasks, date, &set)
	if err != nil {
		log.Warnf("Failed to read daily tasks for %s, starting empty: %v", date, err)
		return map[string]domain.Task{}
	}
	if !ok || set.Tasks == nil {
		return map[string]domain.Task{}
	}
	return set.Tasks
}

func saveTaskMap(ctx context.Context, store domain.RecordStore, date string, tasks map[string]domain.Task) error {
	return store.Put(ctx, domain.RecordDailyTasks, date, domain.DailyTaskSet{Date: date, Tasks: tasks})
}

func loadCustomTasks(ctx context.Context, store domain.RecordStore, log walog.Logger, date string) []domain.Task {
	var tasks []domain.Task
	if _, err := store.Get(ctx, domain.RecordCustomTasks, date, &tasks); err != nil {
		log.Warnf("Failed to read custom tasks for %s: %v", date, err)
		return nil
	}
	return tasks
}

func loadTimestamps(ctx context.Context, store domain.RecordStore, log walog.Logger, rt domain.RecordType, date string) []string {
	var list []string
	if _, err := store.Get(ctx, rt, date, &list); err != nil {
		log.Warnf("Failed to read %s for %s: %v", rt, date, err)
		return nil
	}
	return list
}

func appendTimestamp(ctx context.Context, store domain.RecordStore, log walog.Logger, rt domain.RecordType, date string, at time.Time) (int, error) {
	list := loadTimestamps(ctx, store, log, rt, date)
	list = append(list, at.Format(time.RFC3339))
	if err := store.Put(ctx, rt, date, list); err != nil {
		return 0, err
	}
	return len(list), nil
}

func loadString(ctx context.Context, store domain.RecordStore, log walog.Logger, rt domain.RecordType) string {
	var s string
	if _, err := store.Get(ctx, rt, "", &s); err != nil {
		log.Warnf("Failed to read %s: %v", rt, err)
		return ""
	}
	return s
}
