package main

import (
	"fmt"

	"github.com/MKhiriev/go-token-auth/models"
	"github.com/spf13/cobra"
)

func newVersionCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

			server, err := root.adapter()
			if err != nil {
				return err
			}

			serverVersion, err := server.Version(cmd.Context())
			if err != nil {
				root.logger.Warn().Err(err).Msg("server version unavailable")
				serverVersion = "unreachable"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Server version: %s\n", serverVersion)

			return nil
		},
	}
}
