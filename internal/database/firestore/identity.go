package firestore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// SessionCookieTTL is the lifetime of Firebase session cookies. Firebase
// accepts between five minutes and two weeks.
const SessionCookieTTL = 24 * time.Hour

// passwordVerifier checks an email and password and returns an ID token.
// The Admin SDK cannot verify passwords, so this goes through the Identity
// Toolkit REST API with the project's web API key.
type passwordVerifier interface {
	VerifyPassword(ctx context.Context, email, password string) (*identitytoolkit.VerifyPasswordResponse, error)
}

type toolkitVerifier struct {
	svc *identitytoolkit.Service
}

func (v *toolkitVerifier) VerifyPassword(ctx context.Context, email, password string) (*identitytoolkit.VerifyPasswordResponse, error) {
	req := &identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}
	return v.svc.Relyingparty.VerifyPassword(req).Context(ctx).Do()
}

// IdentityProvider implements domain.IdentityProvider on Firebase
// Authentication. Session tokens are Firebase session cookies.
type IdentityProvider struct {
	auth     *auth.Client
	verifier passwordVerifier
	ttl      time.Duration
}

var _ domain.IdentityProvider = (*IdentityProvider)(nil)

// NewIdentityProvider builds the provider from the app and the web API key.
func NewIdentityProvider(ctx context.Context, app *firebase.App, apiKey string) (*IdentityProvider, error) {
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}
	svc, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create identity toolkit client: %w", err)
	}
	return &IdentityProvider{auth: authClient, verifier: &toolkitVerifier{svc: svc}, ttl: SessionCookieTTL}, nil
}

// SignUp creates the user with the Admin SDK and signs them in.
func (p *IdentityProvider) SignUp(ctx context.Context, email, password, displayName string) (*domain.Session, error) {
	if err := domain.CheckCredentials(email, password); err != nil {
		return nil, err
	}

	params := (&auth.UserToCreate{}).Email(email).Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}
	if _, err := p.auth.CreateUser(ctx, params); err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, domain.NewIdentityError(domain.CodeEmailInUse, err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return p.SignIn(ctx, email, password)
}

// SignIn verifies the password and exchanges the ID token for a session
// cookie.
func (p *IdentityProvider) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	resp, err := p.verifier.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, classifyToolkitError(err)
	}

	cookie, err := p.auth.SessionCookie(ctx, resp.IdToken, p.ttl)
	if err != nil {
		return nil, fmt.Errorf("create session cookie: %w", err)
	}

	return &domain.Session{
		Token: cookie,
		Identity: domain.Identity{
			ID:          resp.LocalId,
			Email:       resp.Email,
			DisplayName: resp.DisplayName,
		},
	}, nil
}

// Authenticate verifies a session cookie, including revocation.
func (p *IdentityProvider) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrInvalidCredential
	}
	tok, err := p.auth.VerifySessionCookieAndCheckRevoked(ctx, token)
	if err != nil {
		return nil, domain.NewIdentityError(domain.CodeInvalidCredential, err)
	}

	identity := &domain.Identity{ID: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := tok.Claims["name"].(string); ok {
		identity.DisplayName = name
	}
	return identity, nil
}

// SignOut revokes the user's refresh tokens so every session cookie issued
// before now stops verifying.
func (p *IdentityProvider) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	tok, err := p.auth.VerifySessionCookie(ctx, token)
	if err != nil {
		return nil
	}
	if err := p.auth.RevokeRefreshTokens(ctx, tok.UID); err != nil {
		return fmt.Errorf("revoke tokens: %w", err)
	}
	return nil
}

// classifyToolkitError maps Identity Toolkit error messages onto codes.
func classifyToolkitError(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("verify password: %w", err)
	}

	msg := strings.ToUpper(gerr.Message)
	switch {
	case strings.HasPrefix(msg, "EMAIL_NOT_FOUND"),
		strings.HasPrefix(msg, "INVALID_PASSWORD"),
		strings.HasPrefix(msg, "INVALID_LOGIN_CREDENTIALS"),
		strings.HasPrefix(msg, "USER_DISABLED"):
		return domain.NewIdentityError(domain.CodeInvalidCredential, err)
	case strings.HasPrefix(msg, "INVALID_EMAIL"):
		return domain.NewIdentityError(domain.CodeInvalidEmail, err)
	case strings.HasPrefix(msg, "WEAK_PASSWORD"):
		return domain.NewIdentityError(domain.CodeWeakPassword, err)
	case strings.HasPrefix(msg, "EMAIL_EXISTS"):
		return domain.NewIdentityError(domain.CodeEmailInUse, err)
	default:
		return domain.NewIdentityError(domain.CodeUnknown, err)
	}
}
