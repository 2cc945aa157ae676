package database

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/as1coder/portfolioBuilder/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// Table names of the two logical collections and the account table behind
// the record access method.
const (
	TableUsers    = domain.CollectionUsers
	TableProjects = domain.CollectionProjects
	TableAccounts = "account"

	// accessMethod is the DEFINE ACCESS name in schema.surql.
	accessMethod = "account"
)

//go:embed schema.surql
var schema string

// ApplySchema defines the tables, indexes and access method. Every statement
// is IF NOT EXISTS so it is safe to run on every start.
func ApplySchema(ctx context.Context, conn DBConnection) error {
	err := conn.WithConnection(ctx, func(db *surrealdb.DB) error {
		return Execute(ctx, db, schema, nil)
	})
	if err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	slog.InfoContext(ctx, "SurrealDB schema applied", "event", "db_schema_applied",
		"namespace", conn.GetDBNs(), "database", conn.GetDBDb())
	return nil
}
