package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/bookflow-backend/internal/adapter/postgres"
	"github.com/heartmarshall/bookflow-backend/internal/app"
)

func newMigrateCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dsn, err := opts.resolveDSN()
			if err != nil {
				return err
			}
			logger := cliLogger(cmd)
			if err := app.MigrateUp(cmd.Context(), dsn, logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMigrator(opts)
			if err != nil {
				return err
			}
			defer m.Close() //nolint:errcheck

			res, err := m.Down(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %s (%s).\n", res.Source.Path, res.Duration.Round(time.Millisecond))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newMigrator(opts)
			if err != nil {
				return err
			}
			defer m.Close() //nolint:errcheck

			statuses, err := m.Status(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(statuses))
			for _, s := range statuses {
				applied := "-"
				if !s.AppliedAt.IsZero() {
					applied = s.AppliedAt.Local().Format(time.DateTime)
				}
				rows = append(rows, []string{
					strconv.FormatInt(s.Source.Version, 10),
					s.Source.Path,
					string(s.State),
					applied,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Version", "File", "State", "Applied at"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	})

	return cmd
}

func newMigrator(opts *globalOptions) (*postgres.Migrator, error) {
	dsn, err := opts.resolveDSN()
	if err != nil {
		return nil, err
	}
	return postgres.NewMigrator(dsn)
}
