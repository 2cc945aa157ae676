package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go"
)

// Query runs a SurrealQL statement and decodes the first statement's rows
// into []T.
//
//	projects, err := Query[projectRecord](ctx, db, "SELECT * FROM projects WHERE userId = $userId", params)
func Query[T any](ctx context.Context, db *surrealdb.DB, query string, params map[string]any) ([]T, error) {
	queryResults, err := surrealdb.Query[[]T](ctx, db, query, params)
	if err != nil {
		return nil, NewDBError(fmt.Errorf("%w: %w", ErrQueryFailed, err), "query").WithQuery(query)
	}
	if queryResults == nil || len(*queryResults) == 0 {
		return nil, nil
	}
	return (*queryResults)[0].Result, nil
}

// QueryOne runs a statement expected to yield at most one row. SELECT
// statements without a LIMIT get LIMIT 1 appended. It returns (nil, nil)
// when there are no rows.
func QueryOne[T any](ctx context.Context, db *surrealdb.DB, query string, params map[string]any) (*T, error) {
	// CREATE/UPDATE/DELETE do not accept LIMIT.
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "SELECT") && !hasLimitClause(query) {
		query += " LIMIT 1"
	}

	results, err := Query[T](ctx, db, query, params)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// Execute runs a statement and discards its rows.
func Execute(ctx context.Context, db *surrealdb.DB, query string, params map[string]any) error {
	if _, err := surrealdb.Query[any](ctx, db, query, params); err != nil {
		return NewDBError(fmt.Errorf("%w: %w", ErrQueryFailed, err), "execute").WithQuery(query)
	}
	return nil
}

func hasLimitClause(query string) bool {
	query = " " + strings.ToUpper(query) + " "
	return strings.Contains(query, " LIMIT ")
}

// surrealExecutor is the QueryExecutor backed by a live connection.
type surrealExecutor[T any] struct {
	db *surrealdb.DB
}

// NewSurrealExecutor returns a QueryExecutor that runs against db.
func NewSurrealExecutor[T any](db *surrealdb.DB) QueryExecutor[T] {
	return &surrealExecutor[T]{db: db}
}

func (e *surrealExecutor[T]) Query(ctx context.Context, query string, params map[string]any) ([]T, error) {
	return Query[T](ctx, e.db, query, params)
}

func (e *surrealExecutor[T]) QueryOne(ctx context.Context, query string, params map[string]any) (*T, error) {
	return QueryOne[T](ctx, e.db, query, params)
}

func (e *surrealExecutor[T]) Execute(ctx context.Context, query string, params map[string]any) error {
	return Execute(ctx, e.db, query, params)
}
