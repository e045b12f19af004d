package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/bookflow-backend/internal/app"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Long: "Run the HTTP API. Configuration comes from CONFIG_PATH (default ./config.yaml),\n" +
			"a .env file and the environment, in increasing priority.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context())
		},
	}
}
