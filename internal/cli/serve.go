package cli

import (
	"time"

	"github.com/MKhiriev/altair-config/internal/config"
	myHTTP "github.com/MKhiriev/altair-config/internal/handler/http"
	"github.com/MKhiriev/altair-config/internal/logger"
	"github.com/MKhiriev/altair-config/internal/server"
	"github.com/spf13/cobra"
)

func serveCmd(info BuildInfo) *cobra.Command {
	var flags optionFlags
	var address config.NetAddress
	var timeout time.Duration

	c := &cobra.Command{
		Use:   "serve",
		Short: "Resolve the configuration and publish it over HTTP until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverCfg, err := config.GetServerConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("address") {
				serverCfg.HTTPAddress = address.String()
			}
			if cmd.Flags().Changed("timeout") {
				serverCfg.RequestTimeout = timeout
			}
			if err = serverCfg.Validate(); err != nil {
				return err
			}

			log := logger.NewLogger("inspection-server", cmd.ErrOrStderr())
			log.Info().
				Str("version", info.Version).
				Str("date", info.Date).
				Str("commit", info.Commit).
				Msg("build info")

			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			log.Debug().Any("config", cfg).Msg("active configuration set")

			handler := myHTTP.NewHandler(config.ActiveProvider{}, info.Version, log)
			srv, err := server.NewServer(handler.Init(), *serverCfg, log)
			if err != nil {
				return err
			}

			return srv.RunServer(cmd.Context())
		},
	}

	flags.bind(c.Flags())
	c.Flags().Var(&address, "address", "Listen address host:port (env ALTAIR_SERVER_ADDRESS)")
	c.Flags().DurationVar(&timeout, "timeout", config.DefaultRequestTimeout, "Request timeout (env ALTAIR_SERVER_REQUEST_TIMEOUT)")
	return c
}
