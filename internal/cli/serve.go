package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cadastro/pkg/formapi"
	"github.com/dmitrymomot/cadastro/pkg/httpserver"
)

func serveCmd(opts *options) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the masking and validation endpoints over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, f, err := setup(opts)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(ctx, formapi.Router(f, log))
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "listen address (default: HTTP_ADDR)")
	return c
}
