package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/as1coder/portfolioBuilder/internal/authsession"
	"github.com/as1coder/portfolioBuilder/internal/view"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		hint   string
		want   authsession.Theme
	}{
		{name: "nothing set", want: authsession.ThemeLight},
		{name: "dark cookie", cookie: "dark", want: authsession.ThemeDark},
		{name: "light cookie beats dark hint", cookie: "light", hint: "dark", want: authsession.ThemeLight},
		{name: "hint only", hint: "dark", want: authsession.ThemeDark},
		{name: "legacy literal is ignored", cookie: "darkMode", want: authsession.ThemeLight},
		{name: "bad cookie falls back to hint", cookie: "false", hint: "dark", want: authsession.ThemeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: view.ThemeCookie, Value: tt.cookie})
			}
			if tt.hint != "" {
				req.Header.Set("Sec-CH-Prefers-Color-Scheme", tt.hint)
			}
			c := echo.New().NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.want, view.ThemeFromRequest(c))
		})
	}
}

func TestSetThemeCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/theme", nil), rec)

	view.SetThemeCookie(c, authsession.ThemeDark)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, view.ThemeCookie, cookies[0].Name)
	assert.Equal(t, "dark", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
}
