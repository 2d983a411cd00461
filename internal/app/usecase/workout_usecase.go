package usecase

import (
	"context"
	"fmt"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/catalog"
	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

type WorkoutUsecase struct {
	store   domain.RecordStore
	catalog *catalog.Catalog
	clock   domain.Clock
	log     walog.Logger
}

func NewWorkoutUsecase(store domain.RecordStore, cat *catalog.Catalog, clock domain.Clock, log walog.Logger) *WorkoutUsecase {
	return &WorkoutUsecase{store: store, catalog: cat, clock: clock, log: log}
}

// Today returns today's saved workout, or a fresh copy of the planned one.
func (uc *WorkoutUsecase) Today(ctx context.Context) (domain.Workout, error) {
	now := uc.clock.Now()
	planned, ok := uc.catalog.WorkoutFor(now)
	if !ok {
		return domain.Workout{}, domain.ErrNoWorkoutToday
	}

	var saved domain.DatedWorkout
	found, err := uc.store.Get(ctx, domain.RecordWorkouts, dateutil.FormatDate(now), &saved)
	if err != nil {
		uc.log.Warnf("Failed to read saved workout: %v", err)
		return planned, nil
	}
	if found {
		return saved.Workout, nil
	}
	return planned, nil
}

// ToggleExercise flips one exercise and saves the workout under today's date.
func (uc *WorkoutUsecase) ToggleExercise(ctx context.Context, exerciseID string) (domain.Workout, error) {
	w, err := uc.Today(ctx)
	if err != nil {
		return w, err
	}

	found := false
	for i := range w.Exercises {
		if w.Exercises[i].ID == exerciseID {
			w.Exercises[i].Completed = !w.Exercises[i].Completed
			found = true
			break
		}
	}
	if !found {
		return w, fmt.Errorf("%w: %s", domain.ErrUnknownExercise, exerciseID)
	}

	date := dateutil.FormatDate(uc.clock.Now())
	if err := uc.store.Put(ctx, domain.RecordWorkouts, date, domain.DatedWorkout{Date: date, Workout: w}); err != nil {
		return w, fmt.Errorf("save workout: %w", err)
	}
	return w, nil
}
