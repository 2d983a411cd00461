package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.mau.fi/whatsmeow/types/events"
	walog "go.mau.fi/whatsmeow/util/log"
	_ "modernc.org/sqlite"

	"github.com/fardannozami/habit-gateway/internal/app/usecase"
	"github.com/fardannozami/habit-gateway/internal/catalog"
	"github.com/fardannozami/habit-gateway/internal/config"
	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
	"github.com/fardannozami/habit-gateway/internal/infra/sqlite"
	"github.com/fardannozami/habit-gateway/internal/infra/wa"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Logger
	logger := walog.Stdout("Habits", cfg.LogLevel, true)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Database & Repositories
	if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
		log.Fatalf("Failed to create data dir: %v", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.SQLitePath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	records := sqlite.NewRecordRepository(db)
	if err := records.InitTable(ctx); err != nil {
		log.Fatalf("Failed to init records table: %v", err)
	}
	clock := domain.SystemClock{Location: cfg.Location}
	center := sqlite.NewNotificationRepository(db).WithClock(clock)
	if err := center.InitTable(ctx); err != nil {
		log.Fatalf("Failed to init notification tables: %v", err)
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		if cat, err = catalog.Load(cfg.CatalogPath); err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		logger.Infof("Loaded catalog from %s", cfg.CatalogPath)
	}

	// 4. WhatsApp Service
	waService := wa.NewService(cfg.SQLitePath, logger.Sub("WhatsApp"))

	var owner *wa.Sender
	if cfg.OwnerJID != "" {
		if owner, err = wa.NewSender(waService, cfg.OwnerJID); err != nil {
			log.Fatalf("Failed to configure owner: %v", err)
		}
	} else {
		logger.Warnf("OWNER_JID not set, reminders will not be delivered")
	}

	// 5. Use Cases
	reconcileUC := usecase.NewReconcileTasksUsecase(records, cat, clock, logger.Sub("Tasks"))
	schedulerUC := usecase.NewScheduleRemindersUsecase(center, records, cat, clock, cfg.Water, logger.Sub("Scheduler"))
	startupUC := usecase.NewStartupUsecase(center, records, schedulerUC, reconcileUC, clock, logger.Sub("Startup"))
	handleMessageUC := usecase.NewHandleMessageUsecase(usecase.MessageDeps{
		Tasks:     reconcileUC,
		Completer: usecase.NewTaskCompletionUsecase(records, reconcileUC, clock, logger.Sub("Tasks")),
		Custom:    usecase.NewCustomTaskUsecase(records, reconcileUC, clock, logger.Sub("Tasks")),
		Water:     usecase.NewWaterResponseUsecase(records, center, clock, cfg.Water, logger.Sub("Water")),
		Workouts:  usecase.NewWorkoutUsecase(records, cat, clock, logger.Sub("Workout")),
		Journal:   usecase.NewJournalUsecase(records, clock, logger.Sub("Journal")),
		Progress:  usecase.NewProgressUsecase(records, clock, logger.Sub("Progress")),
		Scheduler: schedulerUC,
		Coach:     usecase.NewCoachUsecase(cat),
		Clock:     clock,
	})

	// 6. Register Message Handler
	waService.OnMessage(ctx, func(ctx context.Context, evt *events.Message) {
		if !wa.Accept(evt, cfg.GroupID, owner) {
			return
		}
		msg := wa.MessageText(evt.Message)
		if msg == "" {
			return
		}

		response, err := handleMessageUC.Execute(ctx, msg)
		if err != nil {
			logger.Errorf("Error handling %q: %v", msg, err)
		}
		if response == "" {
			return
		}

		// Apply reply delay to appear more human-like
		delayMs := cfg.ReplyDelayMinMs
		if cfg.ReplyDelayMaxMs > cfg.ReplyDelayMinMs {
			delayMs = cfg.ReplyDelayMinMs + rand.Intn(cfg.ReplyDelayMaxMs-cfg.ReplyDelayMinMs+1)
		}
		if delayMs > 0 {
			if cfg.ShowTyping {
				waService.SetTyping(ctx, evt.Info.Chat, true)
			}
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
			if cfg.ShowTyping {
				waService.SetTyping(ctx, evt.Info.Chat, false)
			}
		}

		if err := waService.SendText(ctx, evt.Info.Chat, response); err != nil {
			logger.Errorf("Failed to send response: %v", err)
		}
	})

	// 7. Initialize Client (DB, Device, etc) - DO NOT CONNECT YET
	if err := waService.Initialize(ctx); err != nil {
		log.Fatalf("Failed to initialize WhatsApp service: %v", err)
	}

	// 8. Connect / Login Logic
	switch {
	case waService.IsLoggedIn():
		if err := waService.Connect(); err != nil {
			log.Fatalf("Failed to connect: %v", err)
		}
		logger.Infof("Client is already logged in.")
	case cfg.BotPhone != "":
		if err := waService.Connect(); err != nil {
			log.Fatalf("Failed to connect for pairing: %v", err)
		}
		code, err := waService.Pair(ctx, cfg.BotPhone)
		if err != nil {
			logger.Errorf("Failed to generate pair code: %v", err)
		} else {
			logger.Infof("PAIR CODE: %s (Linked Devices > Link with phone number)", code)
		}
	default:
		logger.Infof("Not logged in. BOT_PHONE not set. Printing QR...")
		go func() {
			if err := waService.PrintQR(ctx); err != nil {
				logger.Errorf("QR login failed: %v", err)
			}
		}()
	}

	// 9. Daily startup and reminder delivery
	report := startupUC.Execute(ctx, false)
	logger.Infof("%s", report)

	var dispatchUC *usecase.DispatchRemindersUsecase
	if owner != nil {
		dispatchUC = usecase.NewDispatchRemindersUsecase(center, owner, cat, clock, logger.Sub("Dispatch"))
	}
	go runLoop(ctx, cfg.DispatchInterval, clock, startupUC, dispatchUC, logger)

	logger.Infof("Bot is running... Press Ctrl+C to exit.")
	<-ctx.Done()

	logger.Infof("Shutting down...")
	waService.Disconnect()
}

// runLoop delivers due reminders every interval and reruns startup once the
// calendar date changes.
func runLoop(ctx context.Context, interval time.Duration, clock domain.Clock, startup *usecase.StartupUsecase, dispatch *usecase.DispatchRemindersUsecase, logger walog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	day := dateutil.FormatDate(clock.Now())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if today := dateutil.FormatDate(clock.Now()); today != day {
			day = today
			logger.Infof("%s", startup.Execute(ctx, false))
		}
		if dispatch == nil {
			continue
		}
		if sent, err := dispatch.Execute(ctx); err != nil {
			logger.Warnf("Dispatch failed: %v", err)
		} else if sent > 0 {
			logger.Infof("Delivered %d reminders", sent)
		}
	}
}
