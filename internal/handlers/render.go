package handlers

import (
	"net/http"

	"github.com/as1coder/portfolioBuilder/internal/authsession"
	"github.com/as1coder/portfolioBuilder/internal/view"
	"github.com/as1coder/portfolioBuilder/web/src/templates/layouts"
	"github.com/as1coder/portfolioBuilder/web/src/templates/pages"
	"github.com/labstack/echo/v4"
	cmp "maragu.dev/gomponents"
)

// renderPage wraps content in the base layout, consuming pending flashes.
func renderPage(c echo.Context, status int, title string, content cmp.Node) error {
	state := authsession.FromContext(c).State()
	flash := view.GetFlashData(c)
	props := layouts.Props{
		Title:    title,
		Dark:     state.Theme.Dark(),
		SignedIn: state.SignedIn(),
		Path:     c.Request().URL.RequestURI(),
		Success:  flash.Success,
		Errors:   flash.Error,
	}
	return c.Render(status, "", layouts.Base(props, view.Component(content)))
}

// isHTMX reports whether the request was issued by htmx.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// RenderError renders the error page inside the layout.
func RenderError(c echo.Context, status int, message string) error {
	if status == http.StatusNotFound {
		return renderPage(c, status, "Not found", pages.NotFound(message))
	}
	return renderPage(c, status, http.StatusText(status), pages.ErrorPage(status, message))
}
