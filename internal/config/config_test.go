package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SQLITE_PATH", "TIMEZONE", "WAKE_TIME", "FIRST_WATER_TIME", "SLEEP_TIME", "DISPATCH_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.SQLitePath != "./data/habits.db" {
		t.Errorf("Expected default sqlite path, got %s", cfg.SQLitePath)
	}
	if cfg.Water.Wake.String() != "06:30" || cfg.Water.FirstReminder.String() != "07:30" || cfg.Water.Sleep.String() != "23:30" {
		t.Errorf("Unexpected water window %+v", cfg.Water)
	}
	if cfg.DispatchInterval != 30*time.Second {
		t.Errorf("Expected 30s dispatch interval, got %s", cfg.DispatchInterval)
	}
	if cfg.Location != time.Local {
		t.Errorf("Expected local time zone, got %s", cfg.Location)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("WAKE_TIME", "05:45")
	t.Setenv("SLEEP_TIME", "not-a-time")
	t.Setenv("DISPATCH_INTERVAL", "1m")
	t.Setenv("TIMEZONE", "Asia/Jakarta")
	t.Setenv("SHOW_TYPING", "true")

	cfg := Load()
	if cfg.Water.Wake.String() != "05:45" {
		t.Errorf("Expected wake 05:45, got %s", cfg.Water.Wake)
	}
	if cfg.Water.Sleep.String() != "23:30" {
		t.Errorf("Invalid sleep time should fall back, got %s", cfg.Water.Sleep)
	}
	if cfg.DispatchInterval != time.Minute {
		t.Errorf("Expected 1m, got %s", cfg.DispatchInterval)
	}
	if cfg.Location.String() != "Asia/Jakarta" {
		t.Errorf("Expected Asia/Jakarta, got %s", cfg.Location)
	}
	if !cfg.ShowTyping {
		t.Error("Expected ShowTyping")
	}
}
