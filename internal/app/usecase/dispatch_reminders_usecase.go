package usecase

import (
	"context"
	"strings"
	"time"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/catalog"
	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

// Reminders this far past their time are dropped instead of delivered.
const staleReminderAge = 2 * time.Hour

// DispatchRemindersUsecase delivers due notifications through a
// MessageSender. A failed send is retried on the next run until the
// reminder goes stale.
type DispatchRemindersUsecase struct {
	center  domain.NotificationCenter
	sender  domain.MessageSender
	catalog *catalog.Catalog
	clock   domain.Clock
	log     walog.Logger
}

func NewDispatchRemindersUsecase(center domain.NotificationCenter, sender domain.MessageSender, cat *catalog.Catalog, clock domain.Clock, log walog.Logger) *DispatchRemindersUsecase {
	return &DispatchRemindersUsecase{center: center, sender: sender, catalog: cat, clock: clock, log: log}
}

// Execute sends every due notification and returns how many were sent.
func (uc *DispatchRemindersUsecase) Execute(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	due, err := uc.center.Due(ctx, now)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, n := range due {
		if fireAt := firedFor(n, now); now.Sub(fireAt) > staleReminderAge {
			uc.log.Infof("Dropping stale reminder %s from %s", n.ID, fireAt.Format(time.RFC3339))
			uc.finish(ctx, n, now)
			continue
		}
		if uc.skipToday(n, now) {
			uc.finish(ctx, n, now)
			continue
		}

		if err := uc.sender.Send(ctx, uc.render(ctx, n)); err != nil {
			uc.log.Warnf("Failed to deliver %s: %v", n.ID, err)
			continue
		}
		uc.finish(ctx, n, now)
		sent++
	}
	return sent, nil
}

// firedFor returns the time n was meant to fire for the occurrence due at now.
func firedFor(n domain.Notification, now time.Time) time.Time {
	if n.Trigger.Daily {
		return dateutil.AtTime(now, n.Trigger.Hour, n.Trigger.Minute)
	}
	return n.Trigger.At
}

// skipToday holds back weekday-only task reminders on weekends. The daily
// trigger itself is not weekday aware.
func (uc *DispatchRemindersUsecase) skipToday(n domain.Notification, now time.Time) bool {
	if n.Kind != domain.KindTask || !dateutil.IsWeekend(now) {
		return false
	}
	task, ok := uc.catalog.TaskByID(n.Data["taskId"])
	return ok && task.WeekdaysOnly
}

func (uc *DispatchRemindersUsecase) finish(ctx context.Context, n domain.Notification, now time.Time) {
	var err error
	if n.Trigger.Daily {
		err = uc.center.MarkFired(ctx, n.ID, now)
	} else {
		err = uc.center.Cancel(ctx, n.ID)
	}
	if err != nil {
		uc.log.Warnf("Failed to settle %s: %v", n.ID, err)
	}
}

func (uc *DispatchRemindersUsecase) render(ctx context.Context, n domain.Notification) string {
	sb := strings.Builder{}
	sb.WriteString(n.Title)
	if n.Body != "" {
		sb.WriteString("\n" + n.Body)
	}
	if n.Kind == domain.KindTask {
		if task, ok := uc.catalog.TaskByID(n.Data["taskId"]); ok {
			sb.WriteString("\nReply #done " + task.ID + " when finished.")
		}
	}

	if n.CategoryID == "" {
		return sb.String()
	}
	category, err := uc.center.Category(ctx, n.CategoryID)
	if err != nil || category == nil {
		return sb.String()
	}
	sb.WriteString("\n")
	for _, a := range category.Actions {
		sb.WriteString("\n" + a.Command + "  " + a.ButtonTitle)
	}
	return sb.String()
}
