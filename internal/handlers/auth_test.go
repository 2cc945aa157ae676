package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/events"
	"github.com/as1coder/portfolioBuilder/internal/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_CreatesAccountAndProfile(t *testing.T) {
	app := newTestApp(t)
	c := app.client(t)

	uid := c.signUp("Ada", "ada@example.com")

	p, err := app.store.GetProfile(context.Background(), uid)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Ada", p.Name)
	assert.Equal(t, "ada@example.com", p.Email)
	assert.False(t, p.Onboarded)
	assert.NotNil(t, p.CreatedAt)

	assert.Equal(t, []string{events.IdentitySignedUp.Name()}, app.pub.topics())

	rec := c.get("/select-template")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account created successfully!")
}

func TestSignup_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want string
	}{
		{
			name: "password mismatch",
			form: url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "password": {"secret1"}, "password_confirm": {"secret2"}},
			want: MsgPasswordMismatch,
		},
		{
			name: "weak password",
			form: url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "password": {"123"}, "password_confirm": {"123"}},
			want: domain.MsgWeakPassword,
		},
		{
			name: "bad email",
			form: url.Values{"name": {"Ada"}, "email": {"nope"}, "password": {"secret1"}, "password_confirm": {"secret1"}},
			want: domain.MsgInvalidEmail,
		},
		{
			name: "missing name",
			form: url.Values{"name": {"  "}, "email": {"ada@example.com"}, "password": {"secret1"}, "password_confirm": {"secret1"}},
			want: MsgNameRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)
			c := app.client(t)

			rec := c.post("/signup", tt.form)
			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/signup", rec.Header().Get(echo.HeaderLocation))
			assert.NotContains(t, c.cookies, middleware.AuthCookie)

			page := c.get("/signup").Body.String()
			assert.Contains(t, page, tt.want)
			assert.Empty(t, app.pub.topics())
		})
	}
}

func TestSignup_RefillsForm(t *testing.T) {
	app := newTestApp(t)
	c := app.client(t)

	c.post("/signup", url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "password": {"secret1"}, "password_confirm": {"other"}})
	page := c.get("/signup").Body.String()
	assert.Contains(t, page, `value="Ada"`)
	assert.Contains(t, page, `value="ada@example.com"`)
}

func TestSignup_EmailInUse(t *testing.T) {
	app := newTestApp(t)
	app.client(t).signUp("Ada", "ada@example.com")

	c := app.client(t)
	rec := c.post("/signup", url.Values{"name": {"Other"}, "email": {"ada@example.com"}, "password": {"secret1"}, "password_confirm": {"secret1"}})
	assert.Equal(t, "/signup", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, c.get("/signup").Body.String(), "Email already exists! Please login instead.")
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	app.client(t).signUp("Ada", "ada@example.com")

	t.Run("wrong password", func(t *testing.T) {
		c := app.client(t)
		rec := c.post("/login", url.Values{"email": {"ada@example.com"}, "password": {"wrong-one"}})
		assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
		page := c.get("/login").Body.String()
		assert.Contains(t, page, domain.MsgInvalidCredential)
		assert.Contains(t, page, `value="ada@example.com"`)
	})

	t.Run("not onboarded goes to the picker", func(t *testing.T) {
		c := app.client(t)
		rec := c.post("/login", url.Values{"email": {"ada@example.com"}, "password": {"secret1"}})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/select-template", rec.Header().Get(echo.HeaderLocation))
		assert.Contains(t, c.cookies, middleware.AuthCookie)
	})

	t.Run("onboarded goes to the dashboard", func(t *testing.T) {
		c := app.client(t)
		c.post("/login", url.Values{"email": {"ada@example.com"}, "password": {"secret1"}})
		c.onboard("minimal")

		c2 := app.client(t)
		rec := c2.post("/login", url.Values{"email": {"ada@example.com"}, "password": {"secret1"}})
		assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestSignedInUsersSkipAuthPages(t *testing.T) {
	app := newTestApp(t)
	c := app.client(t)
	c.signUp("Ada", "ada@example.com")

	rec := c.get("/login")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/select-template", rec.Header().Get(echo.HeaderLocation))
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	c := app.client(t)
	c.signUp("Ada", "ada@example.com")
	token := c.cookies[middleware.AuthCookie].Value

	rec := c.post("/logout", nil)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.NotContains(t, c.cookies, middleware.AuthCookie)

	_, err := app.identity.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, domain.ErrInvalidCredential)

	assert.Contains(t, c.get("/login").Body.String(), "You have been logged out.")
}
