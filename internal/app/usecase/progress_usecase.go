package usecase

import (
	"context"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

// maxStreakLookback bounds how many days a streak walk reads.
const maxStreakLookback = 400

type ProgressUsecase struct {
	store domain.RecordStore
	clock domain.Clock
	log   walog.Logger
}

func NewProgressUsecase(store domain.RecordStore, clock domain.Clock, log walog.Logger) *ProgressUsecase {
	return &ProgressUsecase{store: store, clock: clock, log: log}
}

// Execute recomputes the progress record from daily data and saves it. The
// record is returned even when saving fails.
func (uc *ProgressUsecase) Execute(ctx context.Context) (domain.Progress, error) {
	now := uc.clock.Now()
	today := dateutil.FormatDate(now)

	p := domain.Progress{StartDate: loadString(ctx, uc.store, uc.log, domain.RecordStartDate)}
	if p.StartDate == "" {
		p.StartDate = today
	}
	if start, err := dateutil.ParseDate(p.StartDate, now.Location()); err == nil {
		p.CurrentDay = dateutil.DaysSinceStart(start, now)
	} else {
		uc.log.Warnf("Invalid start date %q: %v", p.StartDate, err)
		p.CurrentDay = 1
	}

	dates, err := uc.store.Dates(ctx, domain.RecordDailyTasks)
	if err != nil {
		uc.log.Warnf("Failed to list tracked days: %v", err)
	}
	p.TotalDays = len(dates)
	p.CompletionRate = domain.CompletionRate(loadTaskMap(ctx, uc.store, uc.log, today))

	p.Streaks = domain.Streaks{
		Gym:        streak(now, uc.tasksDone(ctx, "gym")),
		Cardio:     streak(now, uc.tasksDone(ctx, "cardio")),
		Grooming:   streak(now, uc.tasksDone(ctx, "morning-grooming", "night-grooming")),
		DetoxWater: streak(now, uc.drankOn(ctx)),
	}

	p.WaterDrank = len(loadTimestamps(ctx, uc.store, uc.log, domain.RecordWaterLogs, today))
	p.WaterSkipped = len(loadTimestamps(ctx, uc.store, uc.log, domain.RecordWaterSkipped, today))

	if err := uc.store.Put(ctx, domain.RecordProgress, "", p); err != nil {
		return p, err
	}
	return p, nil
}

// Saved returns the last stored progress record without recomputing it.
func (uc *ProgressUsecase) Saved(ctx context.Context) (*domain.Progress, error) {
	var p domain.Progress
	ok, err := uc.store.Get(ctx, domain.RecordProgress, "", &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (uc *ProgressUsecase) tasksDone(ctx context.Context, ids ...string) func(date string) bool {
	return func(date string) bool {
		tasks := loadTaskMap(ctx, uc.store, uc.log, date)
		for _, id := range ids {
			if !tasks[id].Completed {
				return false
			}
		}
		return true
	}
}

func (uc *ProgressUsecase) drankOn(ctx context.Context) func(date string) bool {
	return func(date string) bool {
		return len(loadTimestamps(ctx, uc.store, uc.log, domain.RecordWaterLogs, date)) > 0
	}
}

// streak counts consecutive done days ending today. A streak whose last day
// is yesterday is still alive, since today can still be completed.
func streak(now time.Time, done func(date string) bool) int {
	day := dateutil.StartOfDay(now)
	if !done(dateutil.FormatDate(day)) {
		day = day.AddDate(0, 0, -1)
	}

	count := 0
	for count < maxStreakLookback && done(dateutil.FormatDate(day)) {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}
