package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// IdentityStore implements domain.IdentityProvider with SurrealDB record
// access. Signing in changes the authentication of the connection it runs on,
// so every call checks out a dedicated connection from a small pool and holds
// it exclusively until it returns.
type IdentityStore struct {
	conns []DBConnection
	pool  chan DBConnection
}

var _ domain.IdentityProvider = (*IdentityStore)(nil)

// NewIdentityStore returns an identity provider over one or more dedicated
// connections. They must not be shared with Store.
func NewIdentityStore(conn DBConnection, more ...DBConnection) *IdentityStore {
	conns := append([]DBConnection{conn}, more...)
	pool := make(chan DBConnection, len(conns))
	for _, c := range conns {
		pool <- c
	}
	return &IdentityStore{conns: conns, pool: pool}
}

// with runs fn on an idle pooled connection, waiting for one if all are busy.
func (s *IdentityStore) with(ctx context.Context, fn func(*surrealdb.DB) error) error {
	var conn DBConnection
	select {
	case conn = <-s.pool:
	case <-ctx.Done():
		return fmt.Errorf("waiting for identity connection: %w", ctx.Err())
	}
	defer func() { s.pool <- conn }()
	return conn.WithConnection(ctx, fn)
}

func (s *IdentityStore) accessParams(email, password string) map[string]any {
	return map[string]any{
		"ns":       s.conns[0].GetDBNs(),
		"db":       s.conns[0].GetDBDb(),
		"ac":       accessMethod,
		"email":    email,
		"password": password,
	}
}

// SignUp creates an account through the access method's SIGNUP clause.
func (s *IdentityStore) SignUp(ctx context.Context, email, password, displayName string) (*domain.Session, error) {
	if err := domain.CheckCredentials(email, password); err != nil {
		return nil, err
	}

	var (
		token   string
		account *accountRecord
	)
	err := s.with(ctx, func(db *surrealdb.DB) error {
		params := s.accessParams(email, password)
		params["name"] = displayName

		var err error
		token, err = db.SignUp(ctx, params)
		if err != nil {
			return classifySignUpError(err)
		}
		account, err = currentAccount(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Account created", "event", "identity_signed_up", "user_id", recordKey(account.ID))
	return &domain.Session{Token: token, Identity: account.identity()}, nil
}

// SignIn verifies the credentials through the access method's SIGNIN clause.
func (s *IdentityStore) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if err := domain.CheckCredentials(email, password); err != nil {
		if domain.IdentityCodeOf(err) == domain.CodeWeakPassword {
			// a short password can never match a stored one
			return nil, domain.NewIdentityError(domain.CodeInvalidCredential, err)
		}
		return nil, err
	}

	var (
		token   string
		account *accountRecord
	)
	err := s.with(ctx, func(db *surrealdb.DB) error {
		var err error
		token, err = db.SignIn(ctx, s.accessParams(email, password))
		if err != nil {
			if isConnectionError(err) {
				return err
			}
			return domain.NewIdentityError(domain.CodeInvalidCredential, err)
		}
		account, err = currentAccount(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &domain.Session{Token: token, Identity: account.identity()}, nil
}

// Authenticate resolves a token issued by SignUp or SignIn.
func (s *IdentityStore) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.ErrInvalidCredential
	}

	var account *accountRecord
	err := s.with(ctx, func(db *surrealdb.DB) error {
		if err := db.Authenticate(ctx, token); err != nil {
			if isConnectionError(err) {
				return err
			}
			return domain.NewIdentityError(domain.CodeInvalidCredential, err)
		}
		var err error
		account, err = currentAccount(ctx, db)
		return err
	})
	if err != nil {
		return nil, err
	}

	id := account.identity()
	return &id, nil
}

// SignOut is a no-op: record access tokens are stateless and expire on their
// own. The caller drops the cookie.
func (s *IdentityStore) SignOut(ctx context.Context, token string) error {
	return nil
}

// Close closes every pooled connection.
func (s *IdentityStore) Close() error {
	var errs []error
	for _, c := range s.conns {
		errs = append(errs, c.Close(context.Background()))
	}
	return errors.Join(errs...)
}

func currentAccount(ctx context.Context, db *surrealdb.DB) (*accountRecord, error) {
	account, err := QueryOne[accountRecord](ctx, db, "SELECT * FROM $auth", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated account: %w", err)
	}
	if account == nil || account.ID == nil {
		return nil, domain.NewIdentityError(domain.CodeInvalidCredential, NewDBError(ErrNotFound, "no authenticated account"))
	}
	return account, nil
}

func (a *accountRecord) identity() domain.Identity {
	return domain.Identity{ID: recordKey(a.ID), Email: a.Email, DisplayName: a.Name}
}

// classifySignUpError maps driver messages onto identity codes. The SIGNUP
// clause fails as a whole, so a unique index violation surfaces as
// "signup query failed".
func classifySignUpError(err error) error {
	if isConnectionError(err) {
		return err
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already exists"),
		strings.Contains(msg, "already contains"),
		strings.Contains(msg, "signup query failed"):
		return domain.NewIdentityError(domain.CodeEmailInUse, err)
	case strings.Contains(msg, "string::is::email"):
		return domain.NewIdentityError(domain.CodeInvalidEmail, err)
	default:
		return domain.NewIdentityError(domain.CodeUnknown, err)
	}
}
