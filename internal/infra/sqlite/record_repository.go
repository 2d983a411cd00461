package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fardannozami/habit-gateway/internal/domain"
)

// RecordRepository stores JSON records in a single key-value table. Keys are
// "<type>_<date>" for dated records and "<type>" for singletons.
type RecordRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db, now: time.Now}
}

func Key(rt domain.RecordType, date string) string {
	if date == "" {
		return string(rt)
	}
	return string(rt) + "_" + date
}

func (r *RecordRepository) Get(ctx context.Context, rt domain.RecordType, date string, dst any) (bool, error) {
	raw, ok, err := r.GetRaw(ctx, Key(rt, date))
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", Key(rt, date), err)
	}
	return true, nil
}

func (r *RecordRepository) Put(ctx context.Context, rt domain.RecordType, date string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", Key(rt, date), err)
	}
	return r.SetRaw(ctx, Key(rt, date), string(b))
}

func (r *RecordRepository) Remove(ctx context.Context, rt domain.RecordType, date string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv_records WHERE key = ?`, Key(rt, date))
	return err
}

func (r *RecordRepository) Dates(ctx context.Context, rt domain.RecordType) ([]string, error) {
	prefix := string(rt) + "_"
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM kv_records WHERE substr(key, 1, ?) = ?`, len(prefix), prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		date := strings.TrimPrefix(key, prefix)
		// Skip keys of other record types that share this prefix.
		if _, err := time.Parse("2006-01-02", date); err != nil {
			continue
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	sort.Strings(dates)
	return dates, nil
}

func (r *RecordRepository) GetRaw(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_records WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RecordRepository) SetRaw(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_records (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, key, value, r.now().UTC().Format(time.RFC3339))
	return err
}

func (r *RecordRepository) InitTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_records (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT
		);
	`
	_, err := r.db.ExecContext(ctx, query)
	return err
}
