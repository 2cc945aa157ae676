// Package publicapi exposes published portfolios as JSON.
package publicapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/module"
	"github.com/as1coder/portfolioBuilder/internal/portfolio"
	"github.com/as1coder/portfolioBuilder/internal/registry"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// ErrorBody is the JSON error shape of the API.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PublicAPIModule mounts the read-only portfolio API.
type PublicAPIModule struct {
	module.BaseModule
	service *portfolio.Service
}

// New creates the module. A nil service is built from the registry at boot.
func New(service *portfolio.Service) *PublicAPIModule {
	return &PublicAPIModule{service: service}
}

// Name returns the module name.
func (m *PublicAPIModule) Name() string {
	return "publicapi"
}

// Boot mounts GET /portfolios/:userid on the API group.
func (m *PublicAPIModule) Boot(_ context.Context, g *echo.Group, reg *registry.Registry) error {
	if m.service == nil {
		store := registry.MustGet(reg, registry.StoreKey)
		m.service = portfolio.NewService(store, reg.Config().GetAppBaseURL())
	}

	api := g.Group("/portfolios", echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet},
	}))
	api.GET("/:userid", m.getPortfolio)
	return nil
}

func (m *PublicAPIModule) getPortfolio(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("userid")

	p, err := m.service.Get(ctx, userID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorBody{Code: "not_found", Message: "Portfolio not found"})
	case err != nil:
		slog.ErrorContext(ctx, "Failed to load portfolio", "event", "api_portfolio_failure", "portfolio_id", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorBody{Code: "internal", Message: domain.Flatten(err)})
	}
	return c.JSON(http.StatusOK, p)
}
