package redisstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionTTL matches the lifetime of the auth cookie.
const DefaultSessionTTL = 24 * time.Hour

// IdentityStore implements domain.IdentityProvider with bcrypt password
// hashes and opaque session tokens.
type IdentityStore struct {
	client     *redis.Client
	sessionTTL time.Duration
	cost       int
}

var _ domain.IdentityProvider = (*IdentityStore)(nil)

// IdentityOption configures an IdentityStore.
type IdentityOption func(*IdentityStore)

// WithSessionTTL sets how long a session token stays valid.
func WithSessionTTL(ttl time.Duration) IdentityOption {
	return func(s *IdentityStore) { s.sessionTTL = ttl }
}

// WithBcryptCost sets the hashing cost. Tests use bcrypt.MinCost.
func WithBcryptCost(cost int) IdentityOption {
	return func(s *IdentityStore) { s.cost = cost }
}

// NewIdentityStore returns an identity provider on client.
func NewIdentityStore(client *redis.Client, opts ...IdentityOption) *IdentityStore {
	s := &IdentityStore{client: client, sessionTTL: DefaultSessionTTL, cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignUp reserves the email with SETNX before writing the account, so two
// concurrent sign-ups for one address cannot both succeed.
func (s *IdentityStore) SignUp(ctx context.Context, email, password, displayName string) (*domain.Session, error) {
	if err := domain.CheckCredentials(email, password); err != nil {
		return nil, err
	}
	email = normalizeEmail(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id := uuid.NewString()
	ok, err := s.client.SetNX(ctx, emailKey(email), id, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to reserve email: %w", err)
	}
	if !ok {
		return nil, domain.NewIdentityError(domain.CodeEmailInUse, errors.New(email))
	}

	err = s.client.HSet(ctx, accountKey(id), map[string]any{
		"email":    email,
		"name":     displayName,
		"password": string(hash),
	}).Err()
	if err != nil {
		_ = s.client.Del(ctx, emailKey(email)).Err()
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	identity := domain.Identity{ID: id, Email: email, DisplayName: displayName}
	slog.InfoContext(ctx, "Account created", "event", "identity_signed_up", "user_id", id)
	return s.newSession(ctx, identity)
}

// SignIn checks the password against the stored hash.
func (s *IdentityStore) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if password == "" {
		return nil, domain.ErrInvalidCredential
	}
	email = normalizeEmail(email)

	id, err := s.client.Get(ctx, emailKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.NewIdentityError(domain.CodeInvalidCredential, errors.New("unknown email"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	acct, err := s.client.HGetAll(ctx, accountKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct["password"]), []byte(password)); err != nil {
		return nil, domain.NewIdentityError(domain.CodeInvalidCredential, err)
	}

	return s.newSession(ctx, domain.Identity{ID: id, Email: acct["email"], DisplayName: acct["name"]})
}

// Authenticate resolves a live session token.
func (s *IdentityStore) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrInvalidCredential
	}
	id, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.NewIdentityError(domain.CodeInvalidCredential, errors.New("session expired or unknown"))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	acct, err := s.client.HGetAll(ctx, accountKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if len(acct) == 0 {
		return nil, domain.NewIdentityError(domain.CodeInvalidCredential, errors.New("account removed"))
	}
	return &domain.Identity{ID: id, Email: acct["email"], DisplayName: acct["name"]}, nil
}

// SignOut deletes the session. Unknown tokens are ignored.
func (s *IdentityStore) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *IdentityStore) newSession(ctx context.Context, identity domain.Identity) (*domain.Session, error) {
	token, err := generateSecureToken(32)
	if err != nil {
		return nil, err
	}
	if err := s.client.Set(ctx, sessionKey(token), identity.ID, s.sessionTTL).Err(); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return &domain.Session{Token: token, Identity: identity}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateSecureToken(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate secure token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
