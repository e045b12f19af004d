package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/bookflow-backend/internal/auth"
)

func newHashPasswordCommand() *cobra.Command {
	var (
		cost       int
		skipPolicy bool
	)

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print the bcrypt hash of a password read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret(cmd, "Password: ")
			if err != nil {
				return err
			}
			if !skipPolicy {
				if err := auth.ValidatePasswordPolicy("password", pw); err != nil {
					return err
				}
			}

			hash, err := auth.HashPassword(pw, cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	cmd.Flags().BoolVar(&skipPolicy, "skip-policy", false, "Do not enforce the password policy")

	return cmd
}
