package handlers

import (
	"net/http"

	"github.com/as1coder/portfolioBuilder/internal/authsession"
	"github.com/as1coder/portfolioBuilder/internal/middleware"
	"github.com/as1coder/portfolioBuilder/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// HomeHandler serves the landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet handles GET /.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	state := authsession.FromContext(c).State()
	return renderPage(c, http.StatusOK, "", pages.Home(state.SignedIn(), middleware.HomeFor(state)))
}
