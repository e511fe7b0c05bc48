package cli

import (
	"time"

	"github.com/MKhiriev/altair-config/internal/adapter"
	"github.com/MKhiriev/altair-config/internal/config"
	"github.com/MKhiriev/altair-config/internal/logger"
	"github.com/spf13/cobra"
)

func fetchCmd() *cobra.Command {
	var from string
	var timeout time.Duration
	var initialDataOnly bool

	c := &cobra.Command{
		Use:   "fetch",
		Short: "Read the active configuration from a running inspection server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.NewLogger("cli", cmd.ErrOrStderr())

			client, err := adapter.NewHTTPConfigAdapter(from, timeout, log)
			if err != nil {
				return err
			}

			version, err := client.FetchVersion(cmd.Context())
			if err != nil {
				return err
			}
			log.Debug().Str("server_version", version).Msg("connected to inspection server")

			if initialDataOnly {
				data, err := client.FetchInitialData(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), data)
			}

			cfg, err := client.FetchConfig(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), cfg)
		},
	}

	c.Flags().StringVar(&from, "from", config.DefaultServerAddress, "Inspection server address")
	c.Flags().DurationVar(&timeout, "timeout", config.DefaultRequestTimeout, "Request timeout")
	c.Flags().BoolVar(&initialDataOnly, "initial-data", false, "Print only the resolved initial data")
	return c
}
