package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/scoreboard/internal/cli"
	apperrors "github.com/agbru/scoreboard/internal/errors"
	"github.com/agbru/scoreboard/internal/logging"
	"github.com/agbru/scoreboard/internal/metrics"
	"github.com/agbru/scoreboard/internal/server"
	"github.com/agbru/scoreboard/internal/tui"
)

// serverConfig derives the HTTP settings from the application config.
func (a *Application) serverConfig() server.Config {
	cfg := server.DefaultConfig()
	cfg.Addr = a.Config.Addr
	cfg.RateLimit = a.Config.RateLimit
	cfg.RateBurst = a.Config.RateBurst
	cfg.ShutdownTimeout = a.Config.ShutdownTimeout
	if len(a.Config.AllowedOrigins) > 0 {
		cfg.Security.AllowedOrigins = a.Config.AllowedOrigins
	}
	return cfg
}

// runServe runs the HTTP API and live feed until ctx is canceled, a signal
// arrives, or (with --tui) the dashboard is closed.
func (a *Application) runServe(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	logger := a.Logger
	if a.Config.TUI {
		logger = logging.NewNopLogger()
	}

	collector := metrics.NewCollector()
	hub := server.NewHub(logger)
	board := a.newBoard(logger, collector, hub)
	srv := server.New(board, a.serverConfig(),
		server.WithLogger(logger),
		server.WithCollector(collector),
		server.WithHub(hub),
	)

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)
	defer stop()

	g.Go(func() error {
		return srv.Run(runCtx)
	})
	if a.Config.TUI {
		g.Go(func() error {
			// Closing the dashboard stops the server.
			defer stop()
			select {
			case <-srv.Ready():
			case <-runCtx.Done():
				return nil
			}
			return tui.Run(runCtx, board, tui.Options{Version: Version, Clients: hub})
		})
	} else {
		g.Go(func() error {
			select {
			case <-srv.Ready():
				a.printListening(out, srv)
			case <-runCtx.Done():
			}
			return nil
		})
	}

	<-runCtx.Done()
	err := cli.RunWithSpinner(a.ErrWriter, "Shutting down...", g.Wait)
	if err != nil && !apperrors.IsContextError(err) {
		return a.fail(err)
	}
	logger.Info("scoreboard stopped")
	return apperrors.ExitSuccess
}

func (a *Application) printListening(out io.Writer, srv *server.Server) {
	if addr := srv.Addr(); addr != nil {
		cli.DisplayListening(out, addr.String())
	}
}
