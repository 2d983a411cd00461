package usecase

import (
	"context"
	"fmt"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

type WaterResponse struct {
	Action string
	// Count is today's drank or skipped total after logging.
	Count int
	// Next is the rescheduled reminder, nil when past the sleep boundary.
	Next *time.Time
}

type WaterStatus struct {
	Drank   int
	Skipped int
	Last    *time.Time
}

type WaterResponseUsecase struct {
	store  domain.RecordStore
	center domain.NotificationCenter
	clock  domain.Clock
	window domain.WaterWindow
	log    walog.Logger
}

func NewWaterResponseUsecase(store domain.RecordStore, center domain.NotificationCenter, clock domain.Clock, window domain.WaterWindow, log walog.Logger) *WaterResponseUsecase {
	return &WaterResponseUsecase{store: store, center: center, clock: clock, window: window, log: log}
}

// Execute reacts to the answer on a water reminder. WATER_YES logs a drink
// and asks again at the next full hour; WATER_LATER and a plain dismissal log
// a skip and ask again in 30 minutes. Nothing is scheduled past Sleep.
func (uc *WaterResponseUsecase) Execute(ctx context.Context, action string) (WaterResponse, error) {
	now := uc.clock.Now()
	date := dateutil.FormatDate(now)
	sleep := dateutil.AtTime(now, uc.window.Sleep.Hour, uc.window.Sleep.Minute)

	var (
		res  = WaterResponse{Action: action}
		next time.Time
		err  error
	)
	switch action {
	case domain.ActionWaterYes:
		if res.Count, err = appendTimestamp(ctx, uc.store, uc.log, domain.RecordWaterLogs, date, now); err != nil {
			return res, fmt.Errorf("log water intake: %w", err)
		}
		if err := uc.store.Put(ctx, domain.RecordLastWaterTime, "", now.Format(time.RFC3339)); err != nil {
			return res, fmt.Errorf("save last water time: %w", err)
		}
		next = nextFullHour(now)
	case domain.ActionWaterLater, domain.ActionDefault:
		res.Action = domain.ActionWaterLater
		if res.Count, err = appendTimestamp(ctx, uc.store, uc.log, domain.RecordWaterSkipped, date, now); err != nil {
			return res, fmt.Errorf("log water skipped: %w", err)
		}
		next = now.Add(30 * time.Minute).Truncate(time.Minute)
	default:
		return res, fmt.Errorf("unknown water reminder action %q", action)
	}

	if next.After(sleep) {
		uc.log.Infof("Past sleep time, no more water reminders today")
		return res, nil
	}
	if err := scheduleWaterReminder(ctx, uc.center, next); err != nil {
		uc.log.Warnf("Failed to reschedule water reminder: %v", err)
		return res, nil
	}
	res.Next = &next
	return res, nil
}

// Status returns today's water counts and the last logged drink.
func (uc *WaterResponseUsecase) Status(ctx context.Context) WaterStatus {
	date := dateutil.FormatDate(uc.clock.Now())
	st := WaterStatus{
		Drank:   len(loadTimestamps(ctx, uc.store, uc.log, domain.RecordWaterLogs, date)),
		Skipped: len(loadTimestamps(ctx, uc.store, uc.log, domain.RecordWaterSkipped, date)),
	}
	if raw := loadString(ctx, uc.store, uc.log, domain.RecordLastWaterTime); raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			st.Last = &t
		}
	}
	return st
}
