package main

import (
	"fmt"

	"github.com/MKhiriev/go-token-auth/internal/crypto"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// newHashCmd prints a bcrypt hash suitable for seeding a credential store.
// It works offline, so the root config is not required.
func newHashCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash [password]",
		Short: "Print the bcrypt hash of a password",
		Long: `Print the bcrypt hash of a password, for seeding user records.

Without an argument the password is read from the first line of standard input.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(cmd, args, cost)
		},
	}

	cmd.Flags().IntVar(&cost, "cost", crypto.DefaultPasswordCost, "bcrypt cost")

	return cmd
}

func runHash(cmd *cobra.Command, args []string, cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	var password string
	if len(args) == 1 {
		password = args[0]
	} else {
		var err error
		if password, err = readLine(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}
	if password == "" {
		return errEmptyPassword
	}

	hash, err := crypto.NewBcryptVerifier(cost).Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
