package domain

import "context"

type RecordType string

const (
	RecordDailyTasks               RecordType = "daily_tasks"
	RecordWorkouts                 RecordType = "workouts"
	RecordJournal                  RecordType = "journal"
	RecordProgress                 RecordType = "progress"
	RecordStartDate                RecordType = "start_date"
	RecordWaterLogs                RecordType = "water_logs"
	RecordWaterSkipped             RecordType = "water_skipped"
	RecordLastWaterTime            RecordType = "last_water_time"
	RecordCustomTasks              RecordType = "custom_tasks"
	RecordNotificationsInitialized RecordType = "notifications_initialized"
)

// RecordStore persists JSON records by type and date. Singleton records
// (progress, start_date, ...) use an empty date.
type RecordStore interface {
	// Get decodes the record into dst and reports whether it existed.
	Get(ctx context.Context, rt RecordType, date string, dst any) (bool, error)
	Put(ctx context.Context, rt RecordType, date string, v any) error
	Remove(ctx context.Context, rt RecordType, date string) error
	// Dates lists the dates that hold a record of the given type, oldest first.
	Dates(ctx context.Context, rt RecordType) ([]string, error)
}
