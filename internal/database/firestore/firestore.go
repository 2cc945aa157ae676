// Package firestore implements the profile and project store on Cloud
// Firestore and an identity provider on Firebase Authentication.
package firestore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	gfs "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/as1coder/portfolioBuilder/internal/config"
	"github.com/as1coder/portfolioBuilder/internal/domain"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewApp initializes the Firebase Admin SDK from configuration. Without a
// credentials file it falls back to application default credentials, which
// is also what the emulators expect.
func NewApp(ctx context.Context, cfg config.Provider) (*firebase.App, error) {
	var opts []option.ClientOption
	if path := cfg.GetFirebaseCredentialsFile(); path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.GetFirebaseProjectID()}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}
	slog.InfoContext(ctx, "Firebase app initialized", "event", "firebase_init_success", "project_id", cfg.GetFirebaseProjectID())
	return app, nil
}

// Store implements domain.Store on the users and projects collections.
type Store struct {
	client *gfs.Client
}

var _ domain.Store = (*Store)(nil)

// NewStore wraps a Firestore client. Close closes the client.
func NewStore(client *gfs.Client) *Store {
	return &Store{client: client}
}

// Open creates the Firestore client of app.
func Open(ctx context.Context, app *firebase.App) (*Store, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Firestore client: %w", err)
	}
	return NewStore(client), nil
}

func (s *Store) users() *gfs.CollectionRef    { return s.client.Collection(domain.CollectionUsers) }
func (s *Store) projects() *gfs.CollectionRef { return s.client.Collection(domain.CollectionProjects) }

// Ping reads at most one profile document.
func (s *Store) Ping(ctx context.Context) error {
	iter := s.users().Limit(1).Documents(ctx)
	defer iter.Stop()
	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("firestore ping: %w", err)
	}
	return nil
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// mapError turns gRPC NotFound into domain.ErrNotFound.
func mapError(err error, op string) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
