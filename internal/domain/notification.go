package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	TaskNotificationPrefix  = "task_"
	WaterReminderPrefix     = "water_reminder_"
	MotivationPrefix        = "motivation_"
	WaterReminderCategoryID = "WATER_REMINDER"

	ActionWaterYes   = "WATER_YES"
	ActionWaterLater = "WATER_LATER"
	// ActionDefault is a tap or dismissal without pressing an action button.
	ActionDefault = "DEFAULT"

	KindTask       = "task"
	KindWater      = "water_reminder"
	KindMotivation = "motivation"
)

// Trigger is either a one-shot at At, or a daily repeat at Hour:Minute.
type Trigger struct {
	At     time.Time `json:"at,omitempty"`
	Daily  bool      `json:"daily"`
	Hour   int       `json:"hour"`
	Minute int       `json:"minute"`
}

func DailyTrigger(hour, minute int) Trigger {
	return Trigger{Daily: true, Hour: hour, Minute: minute}
}

func OneShotTrigger(at time.Time) Trigger {
	return Trigger{At: at}
}

type Notification struct {
	ID         string            `json:"id"`
	Kind       string            `json:"kind"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	CategoryID string            `json:"categoryId,omitempty"`
	Data       map[string]string `json:"data,omitempty"`
	Trigger    Trigger           `json:"trigger"`
	LastFired  time.Time         `json:"lastFired,omitempty"`
}

type NotificationAction struct {
	ID          string `json:"id"`
	ButtonTitle string `json:"buttonTitle"`
	// Command is what the user types to pick this action from a chat.
	Command string `json:"command"`
}

type NotificationCategory struct {
	ID      string               `json:"id"`
	Actions []NotificationAction `json:"actions"`
}

// NotificationCenter is the local scheduling primitive: it stores pending
// notifications and knows which are due. Delivery is done elsewhere.
type NotificationCenter interface {
	RequestPermission(ctx context.Context) (bool, error)
	SetCategory(ctx context.Context, category NotificationCategory) error
	Category(ctx context.Context, id string) (*NotificationCategory, error)
	Schedule(ctx context.Context, n Notification) error
	Cancel(ctx context.Context, id string) error
	Pending(ctx context.Context) ([]Notification, error)
	Due(ctx context.Context, now time.Time) ([]Notification, error)
	MarkFired(ctx context.Context, id string, at time.Time) error
}

// MessageSender delivers a rendered reminder to the owner.
type MessageSender interface {
	Send(ctx context.Context, text string) error
}

func TaskNotificationID(taskID string) string {
	return TaskNotificationPrefix + taskID
}

func WaterReminderID(at time.Time) string {
	return fmt.Sprintf("%s%d", WaterReminderPrefix, at.UnixMilli())
}

func IsTaskNotification(id string) bool {
	return strings.HasPrefix(id, TaskNotificationPrefix)
}

func IsWaterReminder(id string) bool {
	return strings.HasPrefix(id, WaterReminderPrefix)
}

func WaterReminderCategory() NotificationCategory {
	return NotificationCategory{
		ID: WaterReminderCategoryID,
		Actions: []NotificationAction{
			{ID: ActionWaterYes, ButtonTitle: "✅ Yes, I drank", Command: "#drank"},
			{ID: ActionWaterLater, ButtonTitle: "⏰ Remind me later", Command: "#later"},
		},
	}
}
