package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var errEmptyPassword = errors.New("empty password")

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type loginOptions struct {
	password      string
	passwordStdin bool
	copy          bool
}

func newLoginCmd(root *rootOptions) *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and print a bearer token",
		Long: `Log in with username and password and print the issued bearer token.

The password is taken from --password, or read from the first line of
standard input with --password-stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "account password")
	cmd.Flags().BoolVar(&opts.passwordStdin, "password-stdin", false, "read the password from stdin")
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "copy the token to the clipboard")
	cmd.MarkFlagsMutuallyExclusive("password", "password-stdin")

	return cmd
}

func runLogin(cmd *cobra.Command, root *rootOptions, opts *loginOptions, username string) error {
	password := opts.password
	if opts.passwordStdin {
		var err error
		if password, err = readLine(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("read password: %w", err)
		}
	}
	if password == "" {
		return errEmptyPassword
	}

	server, err := root.adapter()
	if err != nil {
		return err
	}

	token, err := server.Login(cmd.Context(), username, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if opts.copy {
		if err = copyToClipboard(token); err != nil {
			root.logger.Warn().Err(err).Msg("copy to clipboard failed")
		} else {
			cmd.PrintErrln("token copied to clipboard")
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
