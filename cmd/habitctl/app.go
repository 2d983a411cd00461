package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	walog "go.mau.fi/whatsmeow/util/log"
	_ "modernc.org/sqlite"

	"github.com/fardannozami/habit-gateway/internal/app/usecase"
	"github.com/fardannozami/habit-gateway/internal/catalog"
	"github.com/fardannozami/habit-gateway/internal/config"
	"github.com/fardannozami/habit-gateway/internal/domain"
	"github.com/fardannozami/habit-gateway/internal/infra/sqlite"
)

// app is the wiring shared by every subcommand.
type app struct {
	db         *sql.DB
	clock      domain.Clock
	center     *sqlite.NotificationRepository
	completion *usecase.TaskCompletionUsecase
	startup    *usecase.StartupUsecase
	router     *usecase.HandleMessageUsecase
}

func openApp(cmd *cobra.Command) (*app, error) {
	cfg := config.Load()
	logger := walog.Stdout("habitctl", "WARN", true)
	ctx := cmd.Context()

	var clock domain.Clock = domain.SystemClock{Location: cfg.Location}
	if raw, _ := cmd.Flags().GetString("at"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02 15:04", raw, cfg.Location)
		if err != nil {
			return nil, fmt.Errorf("invalid --at value: %w", err)
		}
		clock = domain.FixedClock{T: t}
	}

	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.SQLitePath))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	records := sqlite.NewRecordRepository(db)
	center := sqlite.NewNotificationRepository(db).WithClock(clock)
	for _, initTable := range []func(context.Context) error{records.InitTable, center.InitTable} {
		if err := initTable(ctx); err != nil {
			db.Close()
			return nil, err
		}
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		if cat, err = catalog.Load(cfg.CatalogPath); err != nil {
			db.Close()
			return nil, err
		}
	}

	reconcile := usecase.NewReconcileTasksUsecase(records, cat, clock, logger)
	scheduler := usecase.NewScheduleRemindersUsecase(center, records, cat, clock, cfg.Water, logger)
	completion := usecase.NewTaskCompletionUsecase(records, reconcile, clock, logger)
	return &app{
		db:         db,
		clock:      clock,
		center:     center,
		completion: completion,
		startup:    usecase.NewStartupUsecase(center, records, scheduler, reconcile, clock, logger),
		router: usecase.NewHandleMessageUsecase(usecase.MessageDeps{
			Tasks:     reconcile,
			Completer: completion,
			Custom:    usecase.NewCustomTaskUsecase(records, reconcile, clock, logger),
			Water:     usecase.NewWaterResponseUsecase(records, center, clock, cfg.Water, logger),
			Workouts:  usecase.NewWorkoutUsecase(records, cat, clock, logger),
			Journal:   usecase.NewJournalUsecase(records, clock, logger),
			Progress:  usecase.NewProgressUsecase(records, clock, logger),
			Scheduler: scheduler,
			Coach:     usecase.NewCoachUsecase(cat),
			Clock:     clock,
		}),
	}, nil
}

// run opens the app, runs fn and closes the database.
func run(fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.db.Close()
		return fn(cmd, a, args)
	}
}

// chat sends a chat command through the same router the bot uses.
func (a *app) chat(cmd *cobra.Command, command string) error {
	reply, err := a.router.Execute(cmd.Context(), command)
	if reply != "" {
		fmt.Fprintln(cmd.OutOrStdout(), reply)
	}
	return err
}
