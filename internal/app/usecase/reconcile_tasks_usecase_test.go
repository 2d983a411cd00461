package usecase_test

import (
	"context"
	"reflect"
	"testing"

	walog "go.mau.fi/whatsmeow/util/log"

	"github.com/fardannozami/habit-gateway/internal/app/usecase"
	"github.com/fardannozami/habit-gateway/internal/catalog"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

// =============================================================================
// DAILY RECONCILIATION TESTS
// =============================================================================
//
// Rules:
// 1. Catalog definitions replace stored ones, completion state survives
// 2. Weekday-only tasks disappear on Saturday and Sunday
// 3. Creative tasks follow the weekday, stale creative ids are kept
// 4. Custom tasks of the same date always win
// 5. Running twice in a row changes nothing
//
// =============================================================================

func newReconciler(store *memStore, date, hhmm string) *usecase.ReconcileTasksUsecase {
	return usecase.NewReconcileTasksUsecase(store, catalog.Default(), clockAt(date, hhmm), walog.Noop)
}

func TestReconcile_FirstRunBuildsFromCatalog(t *testing.T) {
	store := newMemStore()
	uc := newReconciler(store, "2026-10-19", "06:00")

	tasks, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// 19 daily tasks + Monday's guitar and review-goals
	if len(tasks) != 21 {
		t.Errorf("Expected 21 tasks, got %d", len(tasks))
	}
	for _, id := range []string{"gym", "office", "guitar", "review-goals"} {
		if _, ok := tasks[id]; !ok {
			t.Errorf("Expected task %s on Monday", id)
		}
	}
	if len(store.tasks("2026-10-19")) != 21 {
		t.Errorf("Expected reconciled set to be persisted")
	}
}

func TestReconcile_PreservesCompletionAndRefreshesDefinition(t *testing.T) {
	store := newMemStore()
	store.putTasks("2026-10-19", domain.Task{
		ID: "gym", Title: "Old gym title", Time: "05:00", Completed: true, CompletedAt: "2026-10-19T07:40:00Z",
	})
	uc := newReconciler(store, "2026-10-19", "09:00")

	tasks, _ := uc.Execute(context.Background())
	gym := tasks["gym"]
	if !gym.Completed || gym.CompletedAt != "2026-10-19T07:40:00Z" {
		t.Errorf("Expected completion to survive, got %+v", gym)
	}
	if gym.Title != "Gym session" || gym.Time != "07:15" {
		t.Errorf("Expected catalog definition to win, got %q at %s", gym.Title, gym.Time)
	}
}

func TestReconcile_WeekendDropsWeekdayOnlyTasks(t *testing.T) {
	store := newMemStore()
	store.putTasks("2026-10-17", domain.Task{ID: "office", Title: "Office", Time: "10:00", Completed: true})
	uc := newReconciler(store, "2026-10-17", "09:00")

	tasks, _ := uc.Execute(context.Background())
	for _, id := range []string{"office", "morning-commute", "evening-commute"} {
		if _, ok := tasks[id]; ok {
			t.Errorf("Weekday-only task %s should not exist on Saturday", id)
		}
	}
	if _, ok := tasks["saturday-social"]; !ok {
		t.Errorf("Expected Saturday creative task")
	}
}

func TestReconcile_KeepsStaleCreativeTasks(t *testing.T) {
	store := newMemStore()
	store.putTasks("2026-10-19", domain.Task{ID: "photography", Title: "Photography", Time: "21:00"})
	uc := newReconciler(store, "2026-10-19", "09:00")

	tasks, _ := uc.Execute(context.Background())
	if _, ok := tasks["photography"]; !ok {
		t.Errorf("Entries outside the catalog must not be deleted")
	}
}

func TestReconcile_CustomTasksWin(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	custom := []domain.Task{{ID: "custom-1", Title: "Call mom", Time: "19:00", Category: domain.CategoryEvening, IsCustom: true}}
	_ = store.Put(ctx, domain.RecordCustomTasks, "2026-10-19", custom)
	store.putTasks("2026-10-19", domain.Task{ID: "custom-1", Title: "Stale title", Time: "08:00"})

	tasks, _ := newReconciler(store, "2026-10-19", "09:00").Execute(ctx)
	got := tasks["custom-1"]
	if got.Title != "Call mom" || !got.IsCustom {
		t.Errorf("Expected custom task to override, got %+v", got)
	}

	// Custom tasks are date scoped
	tomorrow, _ := newReconciler(store, "2026-10-20", "09:00").Execute(ctx)
	if _, ok := tomorrow["custom-1"]; ok {
		t.Errorf("Custom task leaked into another date")
	}
}

func TestReconcile_Idempotent(t *testing.T) {
	store := newMemStore()
	uc := newReconciler(store, "2026-10-19", "09:00")
	ctx := context.Background()

	first, _ := uc.Execute(ctx)
	second, _ := uc.Execute(ctx)
	if len(first) != len(second) {
		t.Fatalf("Expected same size, got %d and %d", len(first), len(second))
	}
	for id, task := range first {
		if !reflect.DeepEqual(second[id], task) {
			t.Errorf("Task %s changed on second run: %+v vs %+v", id, task, second[id])
		}
	}
}

func TestReconcile_SingleReadSingleWrite(t *testing.T) {
	store := newMemStore()
	uc := newReconciler(store, "2026-10-19", "09:00")

	_, _ = uc.Execute(context.Background())
	if store.puts != 1 {
		t.Errorf("Expected exactly one write, got %d", store.puts)
	}
}

func TestReconcile_CorruptStoreFallsBackToCatalog(t *testing.T) {
	store := newMemStore()
	store.failGet[domain.RecordDailyTasks] = true

	tasks, err := newReconciler(store, "2026-10-19", "09:00").Execute(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(tasks) != 21 {
		t.Errorf("Expected catalog-only set, got %d tasks", len(tasks))
	}
}

func TestReconcile_SaveFailureStillReturnsTasks(t *testing.T) {
	store := newMemStore()
	store.failPut[domain.RecordDailyTasks] = true

	tasks, err := newReconciler(store, "2026-10-19", "09:00").Execute(context.Background())
	if err == nil {
		t.Fatal("Expected save error")
	}
	if len(tasks) == 0 {
		t.Error("Expected merged tasks despite save failure")
	}
}

func TestReconcile_AliasMovesCompletion(t *testing.T) {
	existing := map[string]domain.Task{
		"lift": {ID: "lift", Title: "Lift", Time: "07:15", Completed: true, CompletedAt: "2026-10-19T07:30:00Z"},
	}
	daily := []domain.Task{{ID: "gym", Title: "Gym session", Time: "07:15", Aliases: []string{"lift"}}}

	tasks := usecase.Reconcile(at("2026-10-19", "09:00"), existing, daily, nil, nil)
	if _, ok := tasks["lift"]; ok {
		t.Error("Alias entry should be removed")
	}
	if !tasks["gym"].Completed {
		t.Error("Expected completion to move from alias to new id")
	}
	if !existing["lift"].Completed {
		t.Error("Input map must not be modified")
	}
}
