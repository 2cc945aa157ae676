package server

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// waitForShutdown is closed when an interrupt or terminate signal is received.
func waitForShutdown() <-chan struct{} {
	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		signal.Stop(quit)
		close(done)
	}()
	return done
}

// Shutdown stops accepting requests, then stops modules in reverse boot
// order, closes the event bus and runs the shutdown hooks.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.InfoContext(ctx, "Shutting down server", "event", "server_shutdown")

	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.ErrorContext(ctx, "Module shutdown failed", "module", m.Name(), "error", err)
			errs = append(errs, err)
		}
	}
	if err := s.Bus.Close(); err != nil {
		errs = append(errs, err)
	}
	for i := len(s.shutdownHooks) - 1; i >= 0; i-- {
		if err := s.shutdownHooks[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
