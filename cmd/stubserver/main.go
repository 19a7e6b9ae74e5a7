package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"storefront/config"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"
	"storefront/internal/stubserver"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			newServer,
		),
		fx.Invoke(startServer),
	).Run()
}

func newServer(cfg *config.Config, logger *slog.Logger) *stubserver.Server {
	return stubserver.NewServer(cfg.Stub, logger)
}

func startServer(lc fx.Lifecycle, server *stubserver.Server, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("Stub server stopped", slog.Any("error", err))
					os.Exit(1)
				}
			}()

			return nil
		},
		OnStop: server.Shutdown,
	})
}
