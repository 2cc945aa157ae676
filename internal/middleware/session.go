package middleware

import (
	"net/http"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/authsession"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/view"
	"github.com/labstack/echo/v4"
)

// AuthCookie holds the identity provider's session token.
const AuthCookie = "auth_token"

// AuthCookieTTL matches the lifetime of provider sessions.
const AuthCookieTTL = 24 * time.Hour

// Session resolves the auth cookie into an authsession.Holder and attaches it
// to the request. It never rejects a request; the guards below do that.
func Session(identity domain.IdentityProvider, profiles domain.ProfileReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			holder := authsession.New(profiles)
			holder.SetTheme(view.ThemeFromRequest(c))
			authsession.Attach(c, holder)

			cookie, err := c.Cookie(AuthCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			who, err := identity.Authenticate(ctx, cookie.Value)
			if err != nil && domain.IdentityCodeOf(err) == domain.CodeUnknown {
				// The provider could not answer. The token may still be good,
				// so keep it and serve this request anonymously.
				FromContext(ctx).Error("Failed to resolve session cookie", "event", "session_lookup_failed", "error", err)
				return next(c)
			}
			if err != nil || who == nil {
				FromContext(ctx).Info("Discarding invalid session cookie", "error", err)
				ClearAuthCookie(c)
				return next(c)
			}

			holder.SetIdentity(ctx, who)
			c.SetRequest(c.Request().WithContext(WithLogger(ctx, FromContext(ctx).With("user_id", who.ID))))
			return next(c)
		}
	}
}

// RequireAuth sends anonymous visitors to the login page.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !authsession.FromContext(c).State().SignedIn() {
			return c.Redirect(http.StatusSeeOther, "/login")
		}
		return next(c)
	}
}

// RequireOnboarded sends signed-in users without a template to the picker.
// It assumes RequireAuth ran first.
func RequireOnboarded(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !authsession.FromContext(c).State().Onboarded {
			return c.Redirect(http.StatusSeeOther, "/select-template")
		}
		return next(c)
	}
}

// RedirectIfAuthenticated keeps signed-in users off the login and signup pages.
func RedirectIfAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		state := authsession.FromContext(c).State()
		if !state.SignedIn() {
			return next(c)
		}
		return c.Redirect(http.StatusSeeOther, HomeFor(state))
	}
}

// HomeFor is where a signed-in user belongs.
func HomeFor(state authsession.State) string {
	if state.Onboarded {
		return "/dashboard"
	}
	return "/select-template"
}

// SetAuthCookie stores the session token.
func SetAuthCookie(c echo.Context, token string) {
	c.SetCookie(authCookie(c, token, int(AuthCookieTTL/time.Second)))
}

// ClearAuthCookie expires the session token.
func ClearAuthCookie(c echo.Context) {
	c.SetCookie(authCookie(c, "", -1))
}

func authCookie(c echo.Context, token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:   AuthCookie,
		Value:  token,
		Path:   "/",
		MaxAge: maxAge,
		// HttpOnly keeps the token away from scripts.
		HttpOnly: true,
		Secure:   c.Request().TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}
