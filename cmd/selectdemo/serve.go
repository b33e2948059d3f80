package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vango-dev/selectdemo/internal/errors"
	"github.com/vango-dev/selectdemo/pkg/middleware"
	"github.com/vango-dev/selectdemo/pkg/server"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port   int
		host   string
		noLive bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the gallery",
		Long: `Serve the select gallery over HTTP.

Widget events travel over a WebSocket by default. With --no-live the page
posts each event as a form and reloads.

Examples:
  selectdemo serve
  selectdemo serve --port=9000
  selectdemo serve --host=0.0.0.0 --no-live`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			if noLive {
				cfg.Server.Live = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg.Log, cmd.ErrOrStderr())
			deps, err := galleryDeps(cfg, logger)
			if err != nil {
				return err
			}

			scfg := server.DefaultConfig()
			scfg.Addr = cfg.Address()
			scfg.Title = cfg.Server.Title
			scfg.Live = cfg.Server.Live
			scfg.Fingerprint = cfg.Server.Fingerprint
			scfg.SecureCookies = cfg.Server.SecureCookies
			scfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
			scfg.SessionCookie = cfg.Session.Cookie
			scfg.SessionIdleTimeout = cfg.Session.IdleTimeout

			srv := server.New(scfg, server.Deps{
				Departments: deps.Departments,
				Teams:       deps.Teams,
				Logger:      logger,
				Metrics:     middleware.NewMetrics(),
				Tracer:      middleware.NewTracer(),
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.Run(ctx); err != nil {
				return errors.New(errors.CodeServerListen).
					WithDetail("Address " + scfg.Addr + ".").
					WithSuggestion("Pick another port with --port.").
					Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().BoolVar(&noLive, "no-live", false, "Disable the WebSocket channel")
	return cmd
}
