package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// Store implements domain.Store on SurrealDB.
type Store struct {
	conn DBConnection
}

var _ domain.Store = (*Store)(nil)

// NewStore returns a store that runs every operation through conn.
func NewStore(conn DBConnection) *Store {
	return &Store{conn: conn}
}

// withClient runs fn with a typed client bound to the live connection.
func withClient[T any](ctx context.Context, conn DBConnection, fn func(Client[T]) error) error {
	return conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		c, err := NewClient[T](db, conn)
		if err != nil {
			return err
		}
		return fn(c)
	})
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close(context.Background())
}

// notFound converts the layer's ErrNotFound into the domain sentinel.
func notFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	return err
}

func logFailure(ctx context.Context, op string, err error, args ...any) {
	args = append([]any{"event", "db_operation_failure", "op", op, "error", err}, args...)
	slog.ErrorContext(ctx, "SurrealDB operation failed", args...)
}
