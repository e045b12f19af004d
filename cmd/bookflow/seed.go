package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/bookflow-backend/internal/app"
)

func newSeedCommand(opts *globalOptions) *cobra.Command {
	var seed app.SeedOptions

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the first administrator and starter categories",
		Long: "Create the first administrator and starter categories. Existing rows are kept,\n" +
			"so the command can be rerun. The password is prompted for when --password is omitted.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed.AdminPassword == "" {
				pw, err := readSecret(cmd, "Admin password: ")
				if err != nil {
					return err
				}
				seed.AdminPassword = pw
			}

			pool, err := opts.openPool(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			res, err := app.Seed(cmd.Context(), pool, cliLogger(cmd), seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.AdminCreated {
				fmt.Fprintf(out, "Created administrator %s.\n", seed.AdminEmail)
			} else {
				fmt.Fprintf(out, "Administrator %s already exists.\n", seed.AdminEmail)
			}
			fmt.Fprintf(out, "Created %d categories.\n", res.CategoriesCreated)
			return nil
		},
	}

	cmd.Flags().StringVar(&seed.AdminEmail, "email", "", "Administrator email")
	cmd.Flags().StringVar(&seed.AdminPassword, "password", "", "Administrator password")
	cmd.Flags().StringVar(&seed.AdminFirstName, "first-name", "Admin", "Administrator first name")
	cmd.Flags().StringVar(&seed.AdminLastName, "last-name", "", "Administrator last name")
	cmd.Flags().StringSliceVar(&seed.Categories, "category", nil, "Category to create (repeatable, defaults to a starter set)")
	cmd.Flags().IntVar(&seed.BcryptCost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
