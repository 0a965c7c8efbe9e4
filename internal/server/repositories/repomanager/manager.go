// Package repomanager vends repository implementations and the schema
// migration hook behind a single interface, so the application can swap
// PostgreSQL for in-memory storage in tests.
package repomanager

import (
	"context"
	"database/sql"

	"moodflow/internal/dbx"
	"moodflow/internal/server/repositories/entries"
	"moodflow/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Entries(db dbx.DBTX) entries.Repository
}
