package dateutil_test

import (
	"testing"
	"time"

	"github.com/fardannozami/habit-gateway/internal/dateutil"
)

func TestParseHHMM(t *testing.T) {
	h, m, err := dateutil.ParseHHMM("07:05")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if h != 7 || m != 5 {
		t.Errorf("Expected 7:5, got %d:%d", h, m)
	}

	for _, bad := range []string{"", "7", "24:00", "12:60", "ab:cd", "1:2:3"} {
		if _, _, err := dateutil.ParseHHMM(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestDayNameAndWeekend(t *testing.T) {
	// 2026-10-17 is a Saturday
	sat := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	if got := dateutil.DayName(sat); got != "saturday" {
		t.Errorf("Expected saturday, got %s", got)
	}
	if !dateutil.IsWeekend(sat) || !dateutil.IsWeekend(sat.AddDate(0, 0, 1)) {
		t.Error("Saturday and Sunday should be weekend")
	}
	if dateutil.IsWeekend(sat.AddDate(0, 0, 2)) {
		t.Error("Monday should not be weekend")
	}
}

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2026, 10, 20, 14, 10, 0, 0, time.UTC)

	later := dateutil.NextOccurrence(now, 15, 0)
	if !later.Equal(time.Date(2026, 10, 20, 15, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected today 15:00, got %v", later)
	}

	passed := dateutil.NextOccurrence(now, 7, 0)
	if !passed.Equal(time.Date(2026, 10, 21, 7, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected tomorrow 07:00, got %v", passed)
	}
}

func TestDaysSinceStart(t *testing.T) {
	start := time.Date(2026, 10, 1, 22, 0, 0, 0, time.UTC)
	now := time.Date(2026, 10, 3, 1, 0, 0, 0, time.UTC)
	if got := dateutil.DaysSinceStart(start, now); got != 3 {
		t.Errorf("Expected day 3, got %d", got)
	}
	if got := dateutil.DaysSinceStart(start, start); got != 1 {
		t.Errorf("Start day should be day 1, got %d", got)
	}
}

func TestTimeSince(t *testing.T) {
	now := time.Date(2026, 10, 20, 14, 10, 0, 0, time.UTC)
	cases := map[time.Duration]string{
		2*time.Hour + 5*time.Minute: "2h 5m ago",
		5 * time.Minute:             "5m ago",
		20 * time.Second:            "Just now",
	}
	for d, want := range cases {
		if got := dateutil.TimeSince(now.Add(-d), now); got != want {
			t.Errorf("TimeSince(%v): expected %q, got %q", d, want, got)
		}
	}
}
