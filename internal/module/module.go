package module

import (
	"context"

	"github.com/as1coder/portfolioBuilder/internal/registry"
	"github.com/labstack/echo/v4"
)

// Module is a self-contained feature plugged into the server at startup.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register publishes the module's services to the registry. Every module
	// registers before any module boots.
	Register(reg *registry.Registry) error

	// Boot mounts routes and starts background work.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown stops background work during graceful shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op defaults for modules to embed.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}
