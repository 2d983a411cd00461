package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/fardannozami/habit-gateway/internal/domain"
)

type Config struct {
	SQLitePath string
	OwnerJID   string // Chat that receives reminders, empty disables delivery
	GroupID    string
	BotPhone   string
	Location   *time.Location
	Water      domain.WaterWindow

	DispatchInterval time.Duration
	CatalogPath      string
	LogLevel         string

	ReplyDelayMinMs int  // Minimum delay before reply (milliseconds)
	ReplyDelayMaxMs int  // Maximum delay before reply (milliseconds), 0 = use min as fixed
	ShowTyping      bool // Show typing indicator during delay
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults/environment variables")
	}

	defaults := domain.DefaultWaterWindow()
	return Config{
		SQLitePath: getenv("SQLITE_PATH", "./data/habits.db"),
		OwnerJID:   getenv("OWNER_JID", ""),
		GroupID:    getenv("GROUP_ID", ""),
		BotPhone:   getenv("BOT_PHONE", ""),
		Location:   getenvLocation("TIMEZONE"),
		Water: domain.WaterWindow{
			Wake:          getenvTimeOfDay("WAKE_TIME", defaults.Wake),
			FirstReminder: getenvTimeOfDay("FIRST_WATER_TIME", defaults.FirstReminder),
			Sleep:         getenvTimeOfDay("SLEEP_TIME", defaults.Sleep),
		},
		DispatchInterval: getenvDuration("DISPATCH_INTERVAL", 30*time.Second),
		CatalogPath:      getenv("CATALOG_PATH", ""),
		LogLevel:         getenv("LOG_LEVEL", "INFO"),
		ReplyDelayMinMs:  getenvInt("REPLY_DELAY_MIN_MS", 0),
		ReplyDelayMaxMs:  getenvInt("REPLY_DELAY_MAX_MS", 0),
		ShowTyping:       getenvBool("SHOW_TYPING", false),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
	}
	return fallback
}

func getenvTimeOfDay(key string, fallback domain.TimeOfDay) domain.TimeOfDay {
	if v := os.Getenv(key); v != "" {
		tod, err := domain.ParseTimeOfDay(v)
		if err == nil {
			return tod
		}
		log.Printf("Invalid %s=%q, using %s", key, v, fallback)
	}
	return fallback
}

func getenvLocation(key string) *time.Location {
	v := os.Getenv(key)
	if v == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		log.Printf("Unknown %s=%q, using local time", key, v)
		return time.Local
	}
	return loc
}
