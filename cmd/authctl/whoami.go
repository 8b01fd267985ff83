package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNoToken = errors.New("no token: pass --token or set AUTHCTL_TOKEN")

func newWhoamiCmd(root *rootOptions) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity behind a bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("token") {
				token = root.cfg.Token.Reveal()
			}
			return runWhoami(cmd, root, token)
		},
	}

	cmd.Flags().StringVarP(&token, "token", "t", "", "bearer token (env AUTHCTL_TOKEN)")

	return cmd
}

func runWhoami(cmd *cobra.Command, root *rootOptions, token string) error {
	if token == "" {
		return errNoToken
	}

	server, err := root.adapter()
	if err != nil {
		return err
	}
	server.SetToken(token)

	user, err := server.Me(cmd.Context())
	if err != nil {
		return fmt.Errorf("whoami: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "id:       %d\nusername: %s\nemail:    %s\n", user.ID, user.Username, user.Email)
	return nil
}
