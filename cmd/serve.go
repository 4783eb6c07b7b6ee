package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matheuskafuri/grid7/internal/logging"
	"github.com/matheuskafuri/grid7/internal/news"
	"github.com/matheuskafuri/grid7/internal/server"
	"github.com/spf13/cobra"
)

var (
	flagServeAddr    string
	flagServeRefresh bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the feed, launches and newsletter over HTTP",
	Long: `Serve a JSON API over the same feed the TUI shows:

  GET  /api/articles?category=&limit=
  POST /api/refresh    GET /api/refresh
  GET  /api/launches
  POST /api/subscribe  {"email": "..."}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger := logging.New(os.Stderr, cfg.LogLevel)
		a := newApp(cfg, logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if flagServeRefresh {
			go func() {
				if _, err := a.refresher.AutoRefresh(context.WithoutCancel(ctx)); err != nil {
					logger.Warn("startup refresh", "err", err)
				}
			}()
		}

		srv := server.New(server.Deps{
			Store:     a.store,
			Refresher: a.refresher,
			Launches:  news.SeedLaunches(),
			NewFlow:   a.newFlow,
			PageSize:  cfg.GetPageSize(),
			Logger:    logger,
		})
		return srv.ListenAndServe(ctx, flagServeAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "127.0.0.1:8077", "listen address")
	serveCmd.Flags().BoolVar(&flagServeRefresh, "refresh", true, "refresh from live sources on startup")
}
