package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	_ "timetracker/docs" // Swagger docs
	"timetracker/internal/httpserver"
	"timetracker/internal/middleware"
)

func (a *app) serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the journal over HTTP",
		Long:  "Starts the JSON API. The journal starts locked; unlock it with POST /api/v1/session/unlock.",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			a.verbose = true
			if err := a.open(); err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				a.cfg.HTTPServer.Port = port
			}

			srv, err := httpserver.New(a.logger, httpserver.Config{
				Logger:         a.logger,
				Host:           a.cfg.HTTPServer.Host,
				Port:           a.cfg.HTTPServer.Port,
				Mode:           a.cfg.HTTPServer.Mode,
				Environment:    a.cfg.Environment.Name,
				JournalUseCase: a.uc,
				Middleware:     middleware.Config{UnlockRatePerMin: a.cfg.Security.UnlockRatePerMin},
			})
			if err != nil {
				return fmt.Errorf("init http server: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		}),
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from config)")
	return cmd
}
