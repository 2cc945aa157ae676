package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/as1coder/portfolioBuilder/internal/config"
	"github.com/as1coder/portfolioBuilder/internal/dashboard"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/handlers"
	appmiddleware "github.com/as1coder/portfolioBuilder/internal/middleware"
	"github.com/as1coder/portfolioBuilder/internal/module"
	"github.com/as1coder/portfolioBuilder/internal/portfolio"
	"github.com/as1coder/portfolioBuilder/internal/pubsub"
	"github.com/as1coder/portfolioBuilder/internal/registry"
	"github.com/as1coder/portfolioBuilder/internal/rendering"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Dependencies holds the core services the server is built from.
type Dependencies struct {
	Config      config.Provider
	Store       domain.Store
	Identity    domain.IdentityProvider
	EmailSender domain.EmailSender
	Bus         pubsub.Bus
	// Echo is optional; a new instance is created when nil.
	Echo *echo.Echo
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      config.Provider
	Store    domain.Store
	Identity domain.IdentityProvider
	Emailer  domain.EmailSender
	Bus      pubsub.Bus
	Registry *registry.Registry

	Dashboard  *dashboard.Controller
	Portfolios *portfolio.Service

	modules       []module.Module
	shutdownHooks []func(context.Context) error
}

// New creates a new Server instance with its middleware chain. Routes are
// added by RegisterRoutes and modules by InitModules.
func New(deps Dependencies) (*Server, error) {
	switch {
	case deps.Config == nil:
		return nil, errors.New("server: config is required")
	case deps.Store == nil || deps.Identity == nil:
		return nil, errors.New("server: store and identity provider are required")
	case deps.Bus == nil:
		return nil, errors.New("server: event bus is required")
	case deps.EmailSender == nil:
		return nil, errors.New("server: email sender is required")
	case deps.Config.GetSessionSecret() == "":
		return nil, errors.New("server: SESSION_SECRET is required")
	}

	e := deps.Echo
	if e == nil {
		e = echo.New()
	}
	e.HideBanner = true
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			appmiddleware.FromContext(c.Request().Context()).LogAttrs(c.Request().Context(), slog.LevelInfo, "request",
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(appmiddleware.Session(deps.Identity, deps.Store))

	reg := registry.New(deps.Config)
	registry.Set(reg, registry.StoreKey, deps.Store)
	registry.Set(reg, registry.IdentityKey, deps.Identity)
	registry.Set(reg, registry.EventBusKey, deps.Bus)
	registry.Set(reg, registry.EmailSenderKey, deps.EmailSender)

	baseURL := deps.Config.GetAppBaseURL()
	return &Server{
		E:          e,
		Cfg:        deps.Config,
		Store:      deps.Store,
		Identity:   deps.Identity,
		Emailer:    deps.EmailSender,
		Bus:        deps.Bus,
		Registry:   reg,
		Dashboard:  dashboard.New(deps.Store, dashboard.WithPublisher(deps.Bus), dashboard.WithBaseURL(baseURL)),
		Portfolios: portfolio.NewService(deps.Store, baseURL),
	}, nil
}

// OnShutdown registers fn to run after the HTTP server and modules stop.
// Hooks run in reverse registration order.
func (s *Server) OnShutdown(fn func(context.Context) error) {
	s.shutdownHooks = append(s.shutdownHooks, fn)
}
