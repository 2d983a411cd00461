package domain

import (
	"errors"
	"sort"
)

type Category string

const (
	CategoryMorning  Category = "morning"
	CategoryCommute  Category = "commute"
	CategoryOffice   Category = "office"
	CategoryEvening  Category = "evening"
	CategoryGrooming Category = "grooming"
	CategoryFood     Category = "food"
	CategoryBehavior Category = "behavior"
)

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("task title is empty")
	ErrInvalidTime  = errors.New("invalid time, expected HH:mm")
)

type Task struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Time         string   `json:"time" yaml:"time"`
	Category     Category `json:"category" yaml:"category"`
	Completed    bool     `json:"completed" yaml:"-"`
	CompletedAt  string   `json:"completedAt,omitempty" yaml:"-"`
	Explanation  string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
	WeekdaysOnly bool     `json:"weekdaysOnly,omitempty" yaml:"weekdaysOnly,omitempty"`
	IsCustom     bool     `json:"isCustom,omitempty" yaml:"-"`
	// Former ids of a catalog task. Completion stored under an alias moves to ID.
	Aliases []string `json:"-" yaml:"aliases,omitempty"`
}

// DailyTaskSet is the stored shape of daily_tasks_<date>.
type DailyTaskSet struct {
	Date  string          `json:"date"`
	Tasks map[string]Task `json:"tasks"`
}

// CompletionRate returns the rounded percentage of completed tasks.
func CompletionRate(tasks map[string]Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return (done*100 + len(tasks)/2) / len(tasks)
}

// SortedTasks orders tasks by time of day, then id.
func SortedTasks(tasks map[string]Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].ID < out[j].ID
	})
	return out
}
