package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/nbpstat/internal/app"
	"github.com/guttosm/nbpstat/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func (c *cli) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			router, cleanup, err := app.InitializeApp(ctx, c.cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			ln, err := net.Listen("tcp", ":"+c.cfg.Server.Port)
			if err != nil {
				return err
			}
			return serve(ctx, ln, router)
		},
	}
	cmd.Flags().String("port", "8080", "port for the HTTP server (SERVER_PORT)")
	_ = c.v.BindPFlag("SERVER_PORT", cmd.Flags().Lookup("port"))
	return cmd
}

// newServer wraps router with the server timeouts.
func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// serve runs the HTTP server on ln until ctx is cancelled or the process
// receives SIGINT/SIGTERM, then shuts it down gracefully.
func serve(ctx context.Context, ln net.Listener, router http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := newServer(router)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.L().Info().Str("addr", ln.Addr().String()).Msg("server starting")
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.L().Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.L().Info().Msg("server exited gracefully")
		return nil
	})

	return g.Wait()
}
