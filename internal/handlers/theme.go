package handlers

import (
	"net/http"
	"strings"

	"github.com/as1coder/portfolioBuilder/internal/authsession"
	"github.com/as1coder/portfolioBuilder/internal/view"
	"github.com/labstack/echo/v4"
)

// ThemeHandler switches the device theme.
type ThemeHandler struct{}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

// ThemePost stores the requested theme and returns to the page it came from.
// Without a valid theme value the current one is flipped.
func (h *ThemeHandler) ThemePost(c echo.Context) error {
	holder := authsession.FromContext(c)
	theme, ok := authsession.ParseTheme(c.FormValue("theme"))
	if !ok {
		theme = authsession.ThemeDark
		if holder.State().Theme.Dark() {
			theme = authsession.ThemeLight
		}
	}
	if holder != nil {
		holder.SetTheme(theme)
	}
	view.SetThemeCookie(c, theme)
	return c.Redirect(http.StatusSeeOther, localRedirect(c.FormValue("redirect")))
}

// localRedirect only allows same-site absolute paths.
func localRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
