package domain

import (
	"fmt"
	"strings"
)

const (
	StepPermission  = "permission"
	StepCategories  = "categories"
	StepTaskNotify  = "task-notify"
	StepWaterNotify = "water-notify"
	StepMotivation  = "motivation"
	StepMarker      = "marker"
	StepTaskMerge   = "task-merge"
	StepStartDate   = "start-date"
)

type StepStatus string

const (
	StepOK      StepStatus = "ok"
	StepSkipped StepStatus = "skipped"
	StepWarning StepStatus = "warning"
	StepFailed  StepStatus = "failed"
)

type StepResult struct {
	Name   string
	Status StepStatus
	Detail string
	Err    error
}

// StartupReport aggregates the result of every initialization step.
type StartupReport struct {
	Date  string
	Steps []StepResult
}

func (r *StartupReport) Add(name string, status StepStatus, detail string, err error) {
	r.Steps = append(r.Steps, StepResult{Name: name, Status: status, Detail: detail, Err: err})
}

func (r *StartupReport) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepResult{}, false
}

// Failed reports whether any step ended in StepFailed. Warnings do not count.
func (r *StartupReport) Failed() bool {
	for _, s := range r.Steps {
		if s.Status == StepFailed {
			return true
		}
	}
	return false
}

func (r *StartupReport) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Startup %s:\n", r.Date))
	for _, s := range r.Steps {
		line := fmt.Sprintf("- %s: %s", s.Name, s.Status)
		if s.Detail != "" {
			line += " (" + s.Detail + ")"
		}
		if s.Err != nil {
			line += ": " + s.Err.Error()
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}
