package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "habitctl",
		Short:         "Local control of the habit tracker, without WhatsApp",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("at", "", `Pretend the current time is "YYYY-MM-DD HH:mm" in the configured zone`)

	rootCmd.AddCommand(todayCmd())
	rootCmd.AddCommand(toggleCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(scheduleCmd())
	rootCmd.AddCommand(waterCmd())
	rootCmd.AddCommand(progressCmd())
	rootCmd.AddCommand(pendingCmd())

	return rootCmd
}
