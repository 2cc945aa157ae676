package database

import (
	"context"
	"time"

	"github.com/surrealdb/surrealdb.go"
)

type client[T any] struct {
	executor       QueryExecutor[T]
	queryTimeout   time.Duration
	executeTimeout time.Duration
}

// NewClient creates a typed client over db. A nil db is allowed only when an
// executor is supplied through WithExecutor.
func NewClient[T any](db *surrealdb.DB, cfg TimeoutProvider, opts ...ClientOption[T]) (Client[T], error) {
	if cfg == nil {
		return nil, NewDBError(ErrInvalidInput, "timeout provider cannot be nil")
	}

	queryTimeout := cfg.GetDBQueryTimeout()
	if queryTimeout <= 0 {
		return nil, NewDBError(ErrInvalidInput, "DB_QUERY_TIMEOUT must be a positive duration")
	}
	executeTimeout := cfg.GetDBExecuteTimeout()
	if executeTimeout <= 0 {
		return nil, NewDBError(ErrInvalidInput, "DB_EXECUTE_TIMEOUT must be a positive duration")
	}

	c := &client[T]{
		queryTimeout:   queryTimeout,
		executeTimeout: executeTimeout,
	}
	if db != nil {
		c.executor = NewSurrealExecutor[T](db)
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.executor == nil {
		return nil, NewDBError(ErrInvalidInput, "db cannot be nil")
	}
	return c, nil
}

func (c *client[T]) Query(ctx context.Context, query string, params map[string]any) ([]T, error) {
	ctx, cancel := getTimeoutFromContext(ctx, c.queryTimeout, ContextKeyQueryTimeout)
	defer cancel()
	return c.executor.Query(ctx, query, params)
}

func (c *client[T]) QueryOne(ctx context.Context, query string, params map[string]any) (*T, error) {
	ctx, cancel := getTimeoutFromContext(ctx, c.queryTimeout, ContextKeyQueryTimeout)
	defer cancel()
	return c.executor.QueryOne(ctx, query, params)
}

func (c *client[T]) Execute(ctx context.Context, query string, params map[string]any) error {
	ctx, cancel := getTimeoutFromContext(ctx, c.executeTimeout, ContextKeyExecuteTimeout)
	defer cancel()
	return c.executor.Execute(ctx, query, params)
}

func (c *client[T]) Create(ctx context.Context, table string, data any) (*T, error) {
	if table == "" {
		return nil, NewDBError(ErrInvalidInput, "table cannot be empty")
	}
	if data == nil {
		return nil, NewDBError(ErrInvalidInput, "data cannot be nil")
	}

	ctx, cancel := getTimeoutFromContext(ctx, c.executeTimeout, ContextKeyExecuteTimeout)
	defer cancel()

	query := "CREATE type::table($table) CONTENT $data"
	result, err := c.executor.QueryOne(ctx, query, map[string]any{"table": table, "data": data})
	if err != nil {
		return nil, WrapError(err, "create operation failed")
	}
	if result == nil {
		return nil, NewDBError(ErrQueryFailed, "create returned no record").WithQuery(query)
	}
	return result, nil
}
