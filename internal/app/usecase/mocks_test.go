package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/fardannozami/habit-gateway/internal/domain"
)

var errStorage = errors.New("disk full")

// memStore keeps records as JSON so callers never share memory with it.
type memStore struct {
	records map[string][]byte
	failPut map[domain.RecordType]bool
	failGet map[domain.RecordType]bool
	puts    int
}

func newMemStore() *memStore {
	return &memStore{
		records: make(map[string][]byte),
		failPut: make(map[domain.RecordType]bool),
		failGet: make(map[domain.RecordType]bool),
	}
}

func storeKey(rt domain.RecordType, date string) string {
	if date == "" {
		return string(rt)
	}
	return string(rt) + "_" + date
}

func (m *memStore) Get(ctx context.Context, rt domain.RecordType, date string, dst any) (bool, error) {
	if m.failGet[rt] {
		return false, errStorage
	}
	raw, ok := m.records[storeKey(rt, date)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (m *memStore) Put(ctx context.Context, rt domain.RecordType, date string, v any) error {
	if m.failPut[rt] {
		return errStorage
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.puts++
	m.records[storeKey(rt, date)] = raw
	return nil
}

func (m *memStore) Remove(ctx context.Context, rt domain.RecordType, date string) error {
	delete(m.records, storeKey(rt, date))
	return nil
}

func (m *memStore) Dates(ctx context.Context, rt domain.RecordType) ([]string, error) {
	var dates []string
	prefix := string(rt) + "_"
	for k := range m.records {
		if len(k) == len(prefix)+10 && k[:len(prefix)] == prefix {
			dates = append(dates, k[len(prefix):])
		}
	}
	sort.Strings(dates)
	return dates, nil
}

func (m *memStore) tasks(date string) map[string]domain.Task {
	var set domain.DailyTaskSet
	if raw, ok := m.records[storeKey(domain.RecordDailyTasks, date)]; ok {
		_ = json.Unmarshal(raw, &set)
	}
	return set.Tasks
}

func (m *memStore) strings(rt domain.RecordType, date string) []string {
	var list []string
	if raw, ok := m.records[storeKey(rt, date)]; ok {
		_ = json.Unmarshal(raw, &list)
	}
	return list
}

func (m *memStore) putTasks(date string, tasks ...domain.Task) {
	set := domain.DailyTaskSet{Date: date, Tasks: map[string]domain.Task{}}
	for _, t := range tasks {
		set.Tasks[t.ID] = t
	}
	raw, _ := json.Marshal(set)
	m.records[storeKey(domain.RecordDailyTasks, date)] = raw
}

type memCenter struct {
	pending     map[string]domain.Notification
	categories  map[string]domain.NotificationCategory
	permission  bool
	permErr     error
	scheduleErr error
	cancelled   []string
	fired       map[string]time.Time
}

func newMemCenter() *memCenter {
	return &memCenter{
		pending:    make(map[string]domain.Notification),
		categories: make(map[string]domain.NotificationCategory),
		permission: true,
		fired:      make(map[string]time.Time),
	}
}

func (m *memCenter) RequestPermission(ctx context.Context) (bool, error) {
	return m.permission, m.permErr
}

func (m *memCenter) SetCategory(ctx context.Context, c domain.NotificationCategory) error {
	m.categories[c.ID] = c
	return nil
}

func (m *memCenter) Category(ctx context.Context, id string) (*domain.NotificationCategory, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memCenter) Schedule(ctx context.Context, n domain.Notification) error {
	if m.scheduleErr != nil {
		return m.scheduleErr
	}
	m.pending[n.ID] = n
	return nil
}

func (m *memCenter) Cancel(ctx context.Context, id string) error {
	m.cancelled = append(m.cancelled, id)
	delete(m.pending, id)
	return nil
}

func (m *memCenter) Pending(ctx context.Context) ([]domain.Notification, error) {
	var list []domain.Notification
	for _, n := range m.pending {
		list = append(list, n)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *memCenter) Due(ctx context.Context, now time.Time) ([]domain.Notification, error) {
	var due []domain.Notification
	for _, n := range m.pending {
		if n.Trigger.Daily {
			at := time.Date(now.Year(), now.Month(), now.Day(), n.Trigger.Hour, n.Trigger.Minute, 0, 0, now.Location())
			if !at.After(now) && m.fired[n.ID].Before(at) {
				due = append(due, n)
			}
			continue
		}
		if !n.Trigger.At.After(now) {
			due = append(due, n)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].ID < due[j].ID })
	return due, nil
}

func (m *memCenter) MarkFired(ctx context.Context, id string, at time.Time) error {
	m.fired[id] = at
	return nil
}

func (m *memCenter) count(prefix string) int {
	n := 0
	for id := range m.pending {
		if len(id) >= len(prefix) && id[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

type fakeSender struct {
	sent []string
	err  error
}

func (f *fakeSender) Send(ctx context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, text)
	return nil
}

// 2026-10-19 is a Monday.
func at(date, hhmm string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func clockAt(date, hhmm string) domain.FixedClock {
	return domain.FixedClock{T: at(date, hhmm)}
}
