package app

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver for database/sql

	"github.com/guttosm/nbpstat/config"
	"github.com/guttosm/nbpstat/internal/storage"
)

// sqlOpener is an indirection for unit testing; defaults to sql.Open
var sqlOpener = sql.Open

// migrator applies the journal schema; overridden in tests since sqlmock
// cannot replay goose's bookkeeping queries.
var migrator = storage.Migrate

// InitPostgres opens the journal database, verifies connectivity and brings
// the schema up to date.
//
// Example usage:
//
//	db, err := app.InitPostgres(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
func InitPostgres(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := sqlOpener("postgres", cfg.Postgres.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if err := migrator(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate postgres: %w", err)
	}

	return db, nil
}

// postgresOpener is an indirection used by Build; overridden in tests to avoid real connections.
var postgresOpener = InitPostgres
