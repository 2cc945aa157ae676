package handlers

import (
	"errors"
	"net/http"

	"github.com/as1coder/portfolioBuilder/internal/authsession"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/middleware"
	"github.com/as1coder/portfolioBuilder/internal/portfolio"
	"github.com/as1coder/portfolioBuilder/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// PortfolioHandler serves public portfolios.
type PortfolioHandler struct {
	service *portfolio.Service
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(service *portfolio.Service) *PortfolioHandler {
	return &PortfolioHandler{service: service}
}

// PortfolioGet renders /:userid with the owner's template. Every request
// reads the store; nothing is cached.
func (h *PortfolioHandler) PortfolioGet(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("userid")
	dark := authsession.FromContext(c).State().Theme.Dark()

	node, err := h.service.Render(ctx, userID, dark)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return renderPage(c, http.StatusNotFound, pages.PortfolioNotFound, pages.NotFound(pages.PortfolioNotFound))
	case err != nil:
		middleware.FromContext(ctx).Error("Failed to load portfolio", "portfolio_id", userID, "error", err)
		return renderPage(c, http.StatusInternalServerError, "Error", pages.ErrorPage(http.StatusInternalServerError, domain.Flatten(err)))
	}
	return c.Render(http.StatusOK, "", node)
}
