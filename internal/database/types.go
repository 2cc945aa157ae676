package database

import (
	"context"
	"time"

	"github.com/surrealdb/surrealdb.go"
)

// DBConnection is a managed SurrealDB connection that reconnects on failure.
type DBConnection interface {
	DB() (*surrealdb.DB, error)
	WithConnection(ctx context.Context, fn func(*surrealdb.DB) error) error
	Close(ctx context.Context) error
	IsHealthy() bool
	Ping(ctx context.Context) error
	StartMonitoring()
	Connect(ctx context.Context) error
	GetDBNs() string
	GetDBDb() string
	GetDBQueryTimeout() time.Duration
	GetDBExecuteTimeout() time.Duration
}

// TimeoutProvider supplies the default per-call timeouts. Both
// config.Provider and *Connection satisfy it.
type TimeoutProvider interface {
	GetDBQueryTimeout() time.Duration
	GetDBExecuteTimeout() time.Duration
}

// Client is a typed view over a connection for records of type T.
type Client[T any] interface {
	// Create inserts data into table and returns the stored record.
	Create(ctx context.Context, table string, data any) (*T, error)

	// Query returns every row of the first statement.
	Query(ctx context.Context, query string, params map[string]any) ([]T, error)

	// QueryOne returns (nil, nil) if there are no rows.
	QueryOne(ctx context.Context, query string, params map[string]any) (*T, error)

	// Execute runs a statement whose rows are not needed.
	Execute(ctx context.Context, query string, params map[string]any) error
}

// QueryExecutor runs statements for a Client. Tests swap it out with
// WithExecutor.
type QueryExecutor[T any] interface {
	Query(ctx context.Context, query string, params map[string]any) ([]T, error)
	QueryOne(ctx context.Context, query string, params map[string]any) (*T, error)
	Execute(ctx context.Context, query string, params map[string]any) error
}

// ClientOption configures a Client.
type ClientOption[T any] func(*client[T])

// WithExecutor replaces the executor used by the client.
func WithExecutor[T any](executor QueryExecutor[T]) ClientOption[T] {
	return func(c *client[T]) {
		c.executor = executor
	}
}
