package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fardannozami/habit-gateway/internal/domain"
)

func todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's checklist",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, a *app, args []string) error {
			return a.chat(cmd, "#today")
		}),
	}
}

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [task-id]",
		Short: "Flip the completion of a task",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, a *app, args []string) error {
			task, err := a.completion.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			mark := "⬜"
			if task.Completed {
				mark = "✅"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", mark, task.Time, task.Title)
			return nil
		}),
	}
}

func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [HH:mm] [title...]",
		Short: "Add a custom task for today",
		Args:  cobra.MinimumNArgs(2),
		RunE: run(func(cmd *cobra.Command, a *app, args []string) error {
			return a.chat(cmd, "#add "+strings.Join(args, " "))
		}),
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete one of today's custom tasks",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, a *app, args []string) error {
			return a.chat(cmd, "#delete "+args[0])
		}),
	}
}

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the daily startup sequence and register reminders",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, a *app, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			report := a.startup.Execute(cmd.Context(), force)
			fmt.Fprint(cmd.OutOrStdout(), report.String())
			if report.Failed() {
				return fmt.Errorf("startup finished with failures")
			}
			return nil
		}),
	}

	cmd.Flags().BoolP("force", "f", false, "Register reminders even if already done today")

	return cmd
}

func waterCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "water [drank|later|status]",
		Short:     "Answer a water reminder or show today's water stats",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"drank", "later", "status"},
		RunE: run(func(cmd *cobra.Command, a *app, args []string) error {
			switch args[0] {
			case "drank":
				return a.chat(cmd, "#drank")
			case "later":
				return a.chat(cmd, "#later")
			case "status":
				return a.chat(cmd, "#water")
			}
			return fmt.Errorf("unknown water action %q", args[0])
		}),
	}
}

func progressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show streaks and stats",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, a *app, args []string) error {
			return a.chat(cmd, "#progress")
		}),
	}
}

func pendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List registered reminders",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, a *app, args []string) error {
			pending, err := a.center.Pending(cmd.Context())
			if err != nil {
				return err
			}
			loc := a.clock.Now().Location()
			sort.Slice(pending, func(i, j int) bool { return nextFire(pending[i], loc) < nextFire(pending[j], loc) })

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d pending reminders\n", len(pending))
			for _, n := range pending {
				fmt.Fprintf(out, "  %-16s %-30s %s\n", nextFire(n, loc), n.ID, n.Body)
			}
			return nil
		}),
	}
}

func nextFire(n domain.Notification, loc *time.Location) string {
	if n.Trigger.Daily {
		return fmt.Sprintf("daily %02d:%02d", n.Trigger.Hour, n.Trigger.Minute)
	}
	return n.Trigger.At.In(loc).Format("2006-01-02 15:04")
}
