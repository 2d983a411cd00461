package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fardannozami/habit-gateway/internal/domain"
	"github.com/fardannozami/habit-gateway/internal/infra/sqlite"
)

// =============================================================================
// SQLITE RECORD REPOSITORY TESTS
// =============================================================================
//
// Tests the key-value RecordStore using an in-memory database.
// Each test gets a fresh database to ensure isolation.
//
// =============================================================================

func setupTestDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	// A second pooled connection would see a different in-memory database.
	db.SetMaxOpenConns(1)

	cleanup := func() {
		db.Close()
	}
	return db, cleanup
}

func setupRecordRepo(t *testing.T) (*sql.DB, *sqlite.RecordRepository, func()) {
	t.Helper()

	db, cleanup := setupTestDB(t)
	repo := sqlite.NewRecordRepository(db)
	if err := repo.InitTable(context.Background()); err != nil {
		t.Fatalf("Failed to initialize table: %v", err)
	}
	return db, repo, cleanup
}

func TestKey(t *testing.T) {
	if got := sqlite.Key(domain.RecordDailyTasks, "2026-10-20"); got != "daily_tasks_2026-10-20" {
		t.Errorf("Expected daily_tasks_2026-10-20, got %s", got)
	}
	if got := sqlite.Key(domain.RecordNotificationsInitialized, ""); got != "notifications_initialized" {
		t.Errorf("Expected notifications_initialized, got %s", got)
	}
}

func TestRecordRepository_Get_NotFound(t *testing.T) {
	_, repo, cleanup := setupRecordRepo(t)
	defer cleanup()

	var set domain.DailyTaskSet
	ok, err := repo.Get(context.Background(), domain.RecordDailyTasks, "2026-10-20", &set)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ok {
		t.Error("Expected missing record")
	}
}

func TestRecordRepository_PutGet_RoundTrip(t *testing.T) {
	_, repo, cleanup := setupRecordRepo(t)
	defer cleanup()

	ctx := context.Background()
	in := domain.DailyTaskSet{
		Date: "2026-10-20",
		Tasks: map[string]domain.Task{
			"gym": {ID: "gym", Title: "Gym", Time: "07:00", Completed: true, CompletedAt: "2026-10-20T07:30:00Z"},
		},
	}
	if err := repo.Put(ctx, domain.RecordDailyTasks, in.Date, in); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	var out domain.DailyTaskSet
	ok, err := repo.Get(ctx, domain.RecordDailyTasks, in.Date, &out)
	if err != nil || !ok {
		t.Fatalf("Get failed: ok=%v err=%v", ok, err)
	}
	if !out.Tasks["gym"].Completed || out.Tasks["gym"].CompletedAt != "2026-10-20T07:30:00Z" {
		t.Errorf("Completion not preserved: %+v", out.Tasks["gym"])
	}

	// Overwrite
	in.Tasks["gym"] = domain.Task{ID: "gym", Title: "Gym"}
	if err := repo.Put(ctx, domain.RecordDailyTasks, in.Date, in); err != nil {
		t.Fatalf("Second put failed: %v", err)
	}
	out = domain.DailyTaskSet{}
	_, _ = repo.Get(ctx, domain.RecordDailyTasks, in.Date, &out)
	if out.Tasks["gym"].Completed {
		t.Error("Expected overwritten record")
	}
}

func TestRecordRepository_Remove(t *testing.T) {
	_, repo, cleanup := setupRecordRepo(t)
	defer cleanup()

	ctx := context.Background()
	entry := domain.JournalEntry{Date: "2026-10-20", WhatWentWell: "ok"}
	if err := repo.Put(ctx, domain.RecordJournal, entry.Date, entry); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := repo.Remove(ctx, domain.RecordJournal, entry.Date); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	var got domain.JournalEntry
	ok, _ := repo.Get(ctx, domain.RecordJournal, entry.Date, &got)
	if ok {
		t.Error("Record should be gone")
	}

	// Removing a missing key is not an error
	if err := repo.Remove(ctx, domain.RecordJournal, "1999-01-01"); err != nil {
		t.Errorf("Remove of missing key failed: %v", err)
	}
}

func TestRecordRepository_Dates(t *testing.T) {
	_, repo, cleanup := setupRecordRepo(t)
	defer cleanup()

	ctx := context.Background()
	for _, d := range []string{"2026-10-21", "2026-10-19", "2026-10-20"} {
		if err := repo.Put(ctx, domain.RecordWaterLogs, d, []string{"x"}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}
	_ = repo.Put(ctx, domain.RecordWaterSkipped, "2026-10-22", []string{"x"})
	_ = repo.Put(ctx, domain.RecordProgress, "", domain.Progress{})

	dates, err := repo.Dates(ctx, domain.RecordWaterLogs)
	if err != nil {
		t.Fatalf("Dates failed: %v", err)
	}
	want := []string{"2026-10-19", "2026-10-20", "2026-10-21"}
	if len(dates) != len(want) {
		t.Fatalf("Expected %v, got %v", want, dates)
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, dates)
		}
	}
}

func TestRecordRepository_Get_CorruptValue(t *testing.T) {
	_, repo, cleanup := setupRecordRepo(t)
	defer cleanup()

	ctx := context.Background()
	if err := repo.SetRaw(ctx, "progress", "{not json"); err != nil {
		t.Fatalf("SetRaw failed: %v", err)
	}

	var p domain.Progress
	if _, err := repo.Get(ctx, domain.RecordProgress, "", &p); err == nil {
		t.Error("Expected decode error")
	}
}

func TestRecordRepository_InitTable_Idempotent(t *testing.T) {
	_, repo, cleanup := setupRecordRepo(t)
	defer cleanup()

	if err := repo.InitTable(context.Background()); err != nil {
		t.Fatalf("Second InitTable should not fail: %v", err)
	}
}
