package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/daystreak/internal/cli"
	"github.com/terraincognita07/daystreak/internal/security"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			database, closeDatabase, err := rt.openDatabase()
			if err != nil {
				return err
			}
			defer closeDatabase()

			return cli.RunMigrateCommand(cmd.OutOrStdout(), database)
		},
	}
}

func newTokenCommand() *cobra.Command {
	var ttl time.Duration

	command := &cobra.Command{
		Use:   "token <profile-id>",
		Short: "Print a signed bearer token for a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			return cli.RunTokenCommand(cmd.OutOrStdout(), rt.cfg.Auth.SecretKey, args[0], ttl, time.Now())
		},
	}
	command.Flags().DurationVar(&ttl, "ttl", security.DefaultTokenTTL, "token lifetime")
	return command
}

func newStreakCommand() *cobra.Command {
	var today string

	command := &cobra.Command{
		Use:   "streak <profile-id>",
		Short: "Print a profile's exercise day total and current streak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime()
			if err != nil {
				return err
			}
			database, closeDatabase, err := rt.openDatabase()
			if err != nil {
				return err
			}
			defer closeDatabase()

			return cli.RunStreakCommand(cmd.Context(), cmd.OutOrStdout(), database, rt.location, args[0], today, time.Now())
		},
	}
	command.Flags().StringVar(&today, "today", "", "evaluate as of this day (YYYY-MM-DD)")
	return command
}
