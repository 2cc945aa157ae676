package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/authsession"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/as1coder/portfolioBuilder/internal/events"
	"github.com/as1coder/portfolioBuilder/internal/middleware"
	"github.com/as1coder/portfolioBuilder/internal/pubsub"
	"github.com/as1coder/portfolioBuilder/internal/view"
	"github.com/as1coder/portfolioBuilder/internal/view/dto/auth"
	"github.com/as1coder/portfolioBuilder/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	identity  domain.IdentityProvider
	profiles  domain.ProfileRepository
	publisher pubsub.Publisher
	now       func() time.Time
}

// NewAuthHandler creates a new AuthHandler. publisher may be nil.
func NewAuthHandler(identity domain.IdentityProvider, profiles domain.ProfileRepository, publisher pubsub.Publisher) *AuthHandler {
	return &AuthHandler{
		identity:  identity,
		profiles:  profiles,
		publisher: publisher,
		now:       time.Now,
	}
}

// SignupGet renders the signup form, refilled after a failed attempt.
func (h *AuthHandler) SignupGet(c echo.Context) error {
	data := auth.SignupData{
		Name:  view.FormValue(c, "name"),
		Email: view.FormValue(c, "email"),
	}
	return renderPage(c, http.StatusOK, "Sign up", pages.Signup(data))
}

// SignupPost creates the account and its profile stub.
func (h *AuthHandler) SignupPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	req.normalize()

	fail := func(msg string) error {
		view.SetFlashError(c, msg)
		view.SetFormValue(c, "name", req.Name)
		view.SetFormValue(c, "email", req.Email)
		return c.Redirect(http.StatusSeeOther, "/signup")
	}

	if err := c.Validate(&req); err != nil {
		return fail(authFormMessage(err))
	}

	session, err := h.identity.SignUp(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		logger.Warn("Signup failed", "code", domain.IdentityCodeOf(err), "error", err)
		return fail(domain.IdentityMessage(err))
	}

	id := session.Identity
	now := h.now()
	err = h.profiles.UpsertProfile(ctx, id.ID, domain.ProfileFields{
		Name:      &req.Name,
		Email:     &id.Email,
		CreatedAt: &now,
	})
	if err != nil {
		// The account exists; onboarding writes the profile again.
		logger.Error("Failed to create profile stub", "user_id", id.ID, "error", err)
	}

	middleware.SetAuthCookie(c, session.Token)
	authsession.FromContext(c).SetIdentity(ctx, &id)

	if h.publisher != nil {
		if err := pubsub.Publish(ctx, h.publisher, events.IdentitySignedUp, id.ID, events.SignedUp{Email: id.Email, Name: req.Name}); err != nil {
			logger.Warn("Failed to publish signup event", "error", err)
		}
	}

	logger.Info("Account created", "user_id", id.ID)
	view.SetFlashSuccess(c, "Account created successfully!")
	return c.Redirect(http.StatusSeeOther, "/select-template")
}

// LoginGet renders the login form.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Login", pages.Login(auth.LoginData{Email: view.FormValue(c, "email")}))
}

// LoginPost signs in and sends the user to the dashboard or the template
// picker, depending on onboarding.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	fail := func(msg string) error {
		view.SetFlashError(c, msg)
		view.SetFormValue(c, "email", req.Email)
		return c.Redirect(http.StatusSeeOther, "/login")
	}

	if err := c.Validate(&req); err != nil {
		return fail(authFormMessage(err))
	}

	session, err := h.identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		middleware.FromContext(ctx).Warn("Failed login attempt", "code", domain.IdentityCodeOf(err), "error", err)
		return fail(domain.IdentityMessage(err))
	}

	middleware.SetAuthCookie(c, session.Token)
	state := authsession.FromContext(c).SetIdentity(ctx, &session.Identity)
	view.SetFlashSuccess(c, "Logged in successfully!")
	return c.Redirect(http.StatusSeeOther, middleware.HomeFor(state))
}

// Logout revokes the session, clears the holder and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	if cookie, err := c.Cookie(middleware.AuthCookie); err == nil && cookie.Value != "" {
		if err := h.identity.SignOut(ctx, cookie.Value); err != nil {
			slog.WarnContext(ctx, "Sign-out at identity provider failed", "error", err)
		}
	}
	authsession.FromContext(c).Clear()
	middleware.ClearAuthCookie(c)

	view.SetFlashSuccess(c, "You have been logged out.")
	return c.Redirect(http.StatusSeeOther, "/login")
}
