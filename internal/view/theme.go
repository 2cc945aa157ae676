package view

import (
	"net/http"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/authsession"
	"github.com/labstack/echo/v4"
)

// ThemeCookie stores the device theme, "dark" or "light".
const ThemeCookie = "theme"

// themeHint is the client hint browsers send when asked via Accept-CH.
const themeHint = "Sec-CH-Prefers-Color-Scheme"

// ThemeFromRequest reads the theme cookie and falls back to the colour scheme
// client hint. Unrecognised cookie values count as missing.
func ThemeFromRequest(c echo.Context) authsession.Theme {
	if cookie, err := c.Cookie(ThemeCookie); err == nil {
		if t, ok := authsession.ParseTheme(cookie.Value); ok {
			return t
		}
	}
	if t, ok := authsession.ParseTheme(c.Request().Header.Get(themeHint)); ok {
		return t
	}
	return authsession.ThemeLight
}

// SetThemeCookie persists the theme for a year.
func SetThemeCookie(c echo.Context, t authsession.Theme) {
	c.SetCookie(&http.Cookie{
		Name:     ThemeCookie,
		Value:    string(t),
		Path:     "/",
		Expires:  time.Now().UTC().Add(365 * 24 * time.Hour),
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
