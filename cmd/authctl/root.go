package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-token-auth/internal/adapter"
	"github.com/MKhiriev/go-token-auth/internal/config"
	"github.com/MKhiriev/go-token-auth/internal/logger"
	"github.com/spf13/cobra"
)

// rootOptions is shared by all subcommands. It is filled from the
// environment and the persistent flags before a subcommand runs.
type rootOptions struct {
	serverURL string
	timeout   time.Duration
	verbose   bool

	cfg    *config.ClientConfig
	logger *logger.Logger

	// newAdapter is replaced in tests.
	newAdapter func(config.ClientAdapter, *logger.Logger) (adapter.ServerAdapter, error)
}

// NewRootCmd creates the root command of authctl.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{newAdapter: adapter.NewHTTPServerAdapter})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "authctl",
		Short:        "Command-line client of the token auth server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.serverURL, "server", "", "auth server URL (env AUTHCTL_SERVER_URL)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "request timeout (env AUTHCTL_REQUEST_TIMEOUT)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose logging")

	cmd.AddCommand(newLoginCmd(opts))
	cmd.AddCommand(newWhoamiCmd(opts))
	cmd.AddCommand(newHashCmd())
	cmd.AddCommand(newVersionCmd(opts))

	return cmd
}

// load reads the client config and applies the flags explicitly set on cmd.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.Adapter.HTTPAddress = o.serverURL
	}
	if flags.Changed("timeout") {
		cfg.Adapter.RequestTimeout = o.timeout
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger.NewConsoleLogger("authctl", o.verbose)

	return nil
}

func (o *rootOptions) adapter() (adapter.ServerAdapter, error) {
	a, err := o.newAdapter(o.cfg.Adapter, o.logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}
	return a, nil
}
