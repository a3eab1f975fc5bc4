package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/uadetect/internal/api"
	"github.com/dmitrymomot/uadetect/pkg/httpserver"
	"github.com/dmitrymomot/uadetect/pkg/logger"
)

func newServeCmd(load loadConfigFunc) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			tr, err := newTranslator(ctx, cfg, log)
			if err != nil {
				log.ErrorContext(ctx, "failed to load translations", logger.Error(err))
				return err
			}

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(ctx, api.NewRouter(tr, log, api.WithTrustedIPHeaders(cfg.TrustedIPHeaders...)))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}
