// Package dateutil converts between calendar dates, weekdays and "HH:mm"
// wall-clock strings. All functions are pure and keep the location of their
// time arguments.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var dayNames = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses YYYY-MM-DD in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// ParseHHMM parses "HH:mm" into hour and minute.
func ParseHHMM(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h, m, nil
}

func FormatHHMM(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// DayName returns the lowercase English weekday name.
func DayName(t time.Time) string {
	return dayNames[t.Weekday()]
}

func DayNames() []string {
	return append([]string(nil), dayNames[:]...)
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AtTime returns t's calendar day at hour:minute.
func AtTime(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// NextOccurrence returns the next time the wall clock reads hour:minute,
// today if it has not passed yet.
func NextOccurrence(now time.Time, hour, minute int) time.Time {
	next := AtTime(now, hour, minute)
	if next.Before(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// DaysSinceStart counts calendar days from start to now, both inclusive.
func DaysSinceStart(start, now time.Time) int {
	s := StartOfDay(start)
	n := StartOfDay(now.In(start.Location()))
	days := 0
	for s.Before(n) {
		s = s.AddDate(0, 0, 1)
		days++
	}
	return days + 1
}

func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// TimeSince renders a short relative duration like "2h 5m ago".
func TimeSince(then, now time.Time) string {
	d := now.Sub(then)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm ago", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm ago", minutes)
	default:
		return "Just now"
	}
}
