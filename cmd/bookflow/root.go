package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/bookflow-backend/internal/app"
)

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "bookflow",
		Short:         "Book digitization workflow service",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "PostgreSQL DSN (defaults to DATABASE_DSN)")

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newMigrateCommand(opts))
	rootCmd.AddCommand(newSeedCommand(opts))
	rootCmd.AddCommand(newHashPasswordCommand())
	rootCmd.AddCommand(newStatesCommand(opts))
	rootCmd.AddCommand(newHistoryCommand(opts))

	return rootCmd
}
