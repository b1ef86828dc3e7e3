package commands

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahmethakanbesel/crypto-price-api/internal/config"
	"github.com/ahmethakanbesel/crypto-price-api/internal/server"
	"github.com/ahmethakanbesel/crypto-price-api/internal/telemetry"
)

func newServeCommand(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serves quotes over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetString("port")

			// Cancelled on SIGINT/SIGTERM so in-flight scrapes stop promptly.
			rootCtx, rootCancel := context.WithCancel(cmd.Context())
			defer rootCancel()

			tp, err := telemetry.InitTracer(rootCtx, cfg.TracingEnabled, cfg.OTLPEndpoint)
			if err != nil {
				return err
			}
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tp.Shutdown(ctx); err != nil {
					slog.Error("tracer shutdown error", "error", err)
				}
			}()

			srv := server.New(rootCtx, port, newService(cfg))

			done := make(chan os.Signal, 1)
			signal.Notify(done, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(done)

			errCh := make(chan error, 1)
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			slog.Info("server started", "port", port)
			select {
			case <-done:
			case <-rootCtx.Done():
			case err := <-errCh:
				return err
			}

			rootCancel()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				slog.Error("shutdown error", "error", err)
			}
			slog.Info("server stopped")
			return nil
		},
	}

	cmd.Flags().String("port", cfg.Port, "Port to listen on.")
	return cmd
}
