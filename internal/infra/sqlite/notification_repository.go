package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

// NotificationRepository is the local notification center. It keeps pending
// notifications in SQLite and decides which of them are due.
type NotificationRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db, now: time.Now}
}

// WithClock makes registration times come from c instead of the wall clock.
func (r *NotificationRepository) WithClock(c domain.Clock) *NotificationRepository {
	r.now = c.Now
	return r
}

// RequestPermission always grants: the local center needs no OS consent.
func (r *NotificationRepository) RequestPermission(ctx context.Context) (bool, error) {
	return true, nil
}

func (r *NotificationRepository) SetCategory(ctx context.Context, category domain.NotificationCategory) error {
	actions, err := json.Marshal(category.Actions)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO notification_categories (id, actions)
		VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET actions = excluded.actions
	`
	_, err = r.db.ExecContext(ctx, query, category.ID, string(actions))
	return err
}

func (r *NotificationRepository) Category(ctx context.Context, id string) (*domain.NotificationCategory, error) {
	var actions string
	err := r.db.QueryRowContext(ctx, `SELECT actions FROM notification_categories WHERE id = ?`, id).Scan(&actions)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	category := &domain.NotificationCategory{ID: id}
	if err := json.Unmarshal([]byte(actions), &category.Actions); err != nil {
		return nil, err
	}
	return category, nil
}

// Schedule registers n, replacing any pending notification with the same id.
func (r *NotificationRepository) Schedule(ctx context.Context, n domain.Notification) error {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO scheduled_notifications
			(id, kind, title, body, category_id, data, fire_at, daily, hour, minute, created_at, last_fired)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, '')
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			title = excluded.title,
			body = excluded.body,
			category_id = excluded.category_id,
			data = excluded.data,
			fire_at = excluded.fire_at,
			daily = excluded.daily,
			hour = excluded.hour,
			minute = excluded.minute,
			created_at = excluded.created_at,
			last_fired = ''
	`
	_, err = r.db.ExecContext(ctx, query,
		n.ID, n.Kind, n.Title, n.Body, n.CategoryID, string(data),
		formatTime(n.Trigger.At), n.Trigger.Daily, n.Trigger.Hour, n.Trigger.Minute,
		formatTime(r.now()),
	)
	return err
}

func (r *NotificationRepository) Cancel(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_notifications WHERE id = ?`, id)
	return err
}

func (r *NotificationRepository) Pending(ctx context.Context) ([]domain.Notification, error) {
	pending, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Notification, 0, len(pending))
	for _, p := range pending {
		out = append(out, p.Notification)
	}
	return out, nil
}

// Due returns one-shot notifications whose time has come, and daily ones
// whose wall-clock time passed today, after they were registered, and that
// have not fired since.
func (r *NotificationRepository) Due(ctx context.Context, now time.Time) ([]domain.Notification, error) {
	pending, err := r.list(ctx)
	if err != nil {
		return nil, err
	}

	var due []domain.Notification
	for _, p := range pending {
		if !p.Trigger.Daily {
			if !p.Trigger.At.IsZero() && !p.Trigger.At.After(now) {
				due = append(due, p.Notification)
			}
			continue
		}

		fireAt := dateutil.AtTime(now, p.Trigger.Hour, p.Trigger.Minute)
		if fireAt.After(now) || fireAt.Before(p.createdAt) {
			continue
		}
		if !p.LastFired.IsZero() && !p.LastFired.Before(fireAt) {
			continue
		}
		due = append(due, p.Notification)
	}
	return due, nil
}

func (r *NotificationRepository) MarkFired(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE scheduled_notifications SET last_fired = ? WHERE id = ?`, formatTime(at), id)
	return err
}

type pendingRow struct {
	domain.Notification
	createdAt time.Time
}

func (r *NotificationRepository) list(ctx context.Context) ([]pendingRow, error) {
	query := `
		SELECT id, kind, title, body, category_id, data, fire_at, daily, hour, minute, created_at, last_fired
		FROM scheduled_notifications
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []pendingRow
	for rows.Next() {
		var (
			p                              pendingRow
			data, fireAt, created, lastRun string
		)
		if err := rows.Scan(&p.ID, &p.Kind, &p.Title, &p.Body, &p.CategoryID, &data,
			&fireAt, &p.Trigger.Daily, &p.Trigger.Hour, &p.Trigger.Minute, &created, &lastRun); err != nil {
			return nil, err
		}
		if data != "" && data != "null" {
			if err := json.Unmarshal([]byte(data), &p.Data); err != nil {
				return nil, err
			}
		}
		if p.Trigger.At, err = parseTime(fireAt); err != nil {
			return nil, err
		}
		if p.createdAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if p.LastFired, err = parseTime(lastRun); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *NotificationRepository) InitTable(ctx context.Context) error {
	queries := []string{`
		CREATE TABLE IF NOT EXISTS scheduled_notifications (
			id TEXT PRIMARY KEY,
			kind TEXT,
			title TEXT,
			body TEXT,
			category_id TEXT,
			data TEXT,
			fire_at TEXT,
			daily INTEGER DEFAULT 0,
			hour INTEGER DEFAULT 0,
			minute INTEGER DEFAULT 0,
			created_at TEXT,
			last_fired TEXT DEFAULT ''
		);`, `
		CREATE TABLE IF NOT EXISTS notification_categories (
			id TEXT PRIMARY KEY,
			actions TEXT
		);`,
	}
	for _, q := range queries {
		if _, err := r.db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}
