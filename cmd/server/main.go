package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/as1coder/portfolioBuilder/internal/app"
	"github.com/as1coder/portfolioBuilder/internal/config"
	"github.com/as1coder/portfolioBuilder/internal/email"
	"github.com/as1coder/portfolioBuilder/internal/logging"
	"github.com/as1coder/portfolioBuilder/internal/pubsub"
	"github.com/as1coder/portfolioBuilder/internal/server"
)

func main() {
	cfg := config.New()
	logging.New()

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()
	if err := cfg.Validate(); err != nil {
		return err
	}

	tracer, shutdownTracing, err := pubsub.SetupOTel(ctx, pubsub.LoadTracingConfigFromEnv())
	if err != nil {
		return err
	}

	backend, err := app.OpenBackend(ctx, cfg)
	if err != nil {
		_ = shutdownTracing(ctx)
		return err
	}

	emailer, err := email.NewEmailService(cfg)
	if err != nil {
		_ = backend.Close()
		_ = shutdownTracing(ctx)
		return err
	}

	bus := pubsub.NewWatermillBridgeWithTracer(tracer)
	s, err := server.New(server.Dependencies{
		Config:      cfg,
		Store:       backend.Store,
		Identity:    backend.Identity,
		EmailSender: emailer,
		Bus:         bus,
	})
	if err != nil {
		_ = bus.Close()
		_ = backend.Close()
		_ = shutdownTracing(ctx)
		return err
	}
	s.OnShutdown(shutdownTracing)
	s.OnShutdown(func(context.Context) error { return backend.Close() })

	modules := app.NewModules(app.Dependencies{
		Store:       backend.Store,
		Bus:         bus,
		EmailSender: emailer,
		Portfolios:  s.Portfolios,
	})
	if err := s.InitModules(ctx, modules, nil); err != nil {
		_ = s.Shutdown(ctx)
		return err
	}
	s.RegisterRoutes()

	return s.Start(cfg.GetAppAddr())
}
