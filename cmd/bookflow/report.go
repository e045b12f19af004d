package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	historyrepo "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres/history"
	lookuprepo "github.com/heartmarshall/bookflow-backend/internal/adapter/postgres/lookup"
	"github.com/heartmarshall/bookflow-backend/internal/domain"
)

func newStatesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List the workflow states in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := opts.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			states, err := lookuprepo.New(pool).States(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStates(states))
			return nil
		},
	}
}

func newHistoryCommand(opts *globalOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the most recent audit records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 || limit > 200 {
				return fmt.Errorf("--limit must be between 1 and 200, got %d", limit)
			}

			pool, err := opts.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			records, err := historyrepo.New(pool).Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistory(records))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of records (max 200)")

	return cmd
}

func renderStates(states []domain.BookState) string {
	rows := make([][]string, 0, len(states))
	for _, s := range states {
		rows = append(rows, []string{
			strconv.Itoa(s.Order),
			strconv.FormatInt(s.ID, 10),
			s.Name,
			deref(s.Description),
		})
	}
	return renderTable(
		[]string{"Order", "ID", "Name", "Description"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft},
	)
}

func renderHistory(records []domain.HistoryRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		target := deref(r.TargetTypeName)
		if r.TargetID != nil {
			target += " #" + strconv.FormatInt(*r.TargetID, 10)
		}
		if r.TargetName != nil {
			target += " (" + *r.TargetName + ")"
		}
		rows = append(rows, []string{
			r.OccurredAt.Local().Format(time.DateTime),
			deref(r.ActorName),
			deref(r.ActionName),
			target,
			summarizeDetails(r.Details),
		})
	}
	return renderTable(
		[]string{"When", "Actor", "Action", "Target", "Details"},
		rows,
		nil,
	)
}

const maxDetailsWidth = 60

func summarizeDetails(details map[string]any) string {
	if len(details) == 0 {
		return ""
	}
	b, err := json.Marshal(details)
	if err != nil {
		return "?"
	}
	r := []rune(string(b))
	if len(r) > maxDetailsWidth {
		return string(r[:maxDetailsWidth-3]) + "..."
	}
	return string(r)
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
