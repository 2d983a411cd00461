// Package catalog holds the read-only task, workout and quote definitions the
// rest of the app reconciles against. A YAML file with the same shape can
// replace the built-in data.
package catalog

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/fardannozami/habit-gateway/internal/dateutil"
	"github.com/fardannozami/habit-gateway/internal/domain"
)

type Catalog struct {
	DailyTasks    []domain.Task            `yaml:"dailyTasks"`
	CreativeTasks map[string][]domain.Task `yaml:"creativeTasks"`
	Workouts      []domain.Workout         `yaml:"workouts"`
	Quotes        []string                 `yaml:"quotes"`
}

// CreativeFor returns the creative tasks for t's weekday.
func (c *Catalog) CreativeFor(t time.Time) []domain.Task {
	return c.CreativeTasks[dateutil.DayName(t)]
}

// WorkoutFor returns the workout planned for t's weekday, if any.
func (c *Catalog) WorkoutFor(t time.Time) (domain.Workout, bool) {
	day := int(t.Weekday())
	for _, w := range c.Workouts {
		if w.Day == day {
			return w.Copy(), true
		}
	}
	return domain.Workout{}, false
}

// TaskByID looks a task up in the daily list and every weekday's creative list.
func (c *Catalog) TaskByID(id string) (domain.Task, bool) {
	for _, t := range c.DailyTasks {
		if t.ID == id {
			return t, true
		}
	}
	for _, tasks := range c.CreativeTasks {
		for _, t := range tasks {
			if t.ID == id {
				return t, true
			}
		}
	}
	return domain.Task{}, false
}

// QuoteForDate rotates through the quotes by day of year.
func (c *Catalog) QuoteForDate(t time.Time) string {
	if len(c.Quotes) == 0 {
		return ""
	}
	return c.Quotes[dateutil.DayOfYear(t)%len(c.Quotes)]
}

func (c *Catalog) QuoteForDay(day int) string {
	if len(c.Quotes) == 0 || day < 0 {
		return ""
	}
	return c.Quotes[day%len(c.Quotes)]
}

// Load reads a YAML catalog from path. Sections missing from the file keep
// the built-in defaults.
func Load(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(content)
}

func Parse(content []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(content, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	def := Default()
	if c.DailyTasks == nil {
		c.DailyTasks = def.DailyTasks
	}
	if c.CreativeTasks == nil {
		c.CreativeTasks = def.CreativeTasks
	}
	if c.Workouts == nil {
		c.Workouts = def.Workouts
	}
	if c.Quotes == nil {
		c.Quotes = def.Quotes
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	seen := map[string]bool{}
	check := func(t domain.Task) error {
		if t.ID == "" {
			return fmt.Errorf("catalog task %q has no id", t.Title)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate catalog task id %q", t.ID)
		}
		seen[t.ID] = true
		if _, _, err := dateutil.ParseHHMM(t.Time); err != nil {
			return fmt.Errorf("catalog task %q: %w", t.ID, err)
		}
		return nil
	}

	for _, t := range c.DailyTasks {
		if err := check(t); err != nil {
			return err
		}
	}

	valid := map[string]bool{}
	for _, d := range dateutil.DayNames() {
		valid[d] = true
	}
	for day, tasks := range c.CreativeTasks {
		if !valid[day] {
			return fmt.Errorf("unknown weekday %q in creativeTasks", day)
		}
		// The same creative id may repeat on several weekdays.
		dayIDs := map[string]bool{}
		for _, t := range tasks {
			if t.ID == "" {
				return fmt.Errorf("creative task %q has no id", t.Title)
			}
			if dayIDs[t.ID] {
				return fmt.Errorf("duplicate creative task id %q on %s", t.ID, day)
			}
			dayIDs[t.ID] = true
			if _, _, err := dateutil.ParseHHMM(t.Time); err != nil {
				return fmt.Errorf("creative task %q: %w", t.ID, err)
			}
		}
	}

	for _, w := range c.Workouts {
		if w.Day < 0 || w.Day > 6 {
			return fmt.Errorf("workout %q has day %d, expected 0-6", w.ID, w.Day)
		}
	}
	return nil
}
