package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "daystreak",
		Short:         "Exercise log service with day totals and streaks",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newTokenCommand(),
		newStreakCommand(),
	)
	return root
}
