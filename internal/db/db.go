package db

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

// schema has no foreign key from exercises to users: deleting users leaves
// their exercises in place.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS exercises (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	username TEXT NOT NULL,
	description TEXT NOT NULL,
	duration INTEGER NOT NULL,
	date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_exercises_user_date ON exercises (user_id, date);
`

// OpenSQLite opens the SQLite database at path and makes sure the schema
// exists. An in-memory database is pinned to one connection, since every new
// connection would otherwise see its own empty database.
func OpenSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if path == MemoryPath {
		pool.SetMaxOpenConns(1)
	}

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	if err := InitializeSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	slog.Info("Connected to sqlite database", "path", path)
	return pool, nil
}

// InitializeSchema creates the users and exercises tables if they don't exist.
func InitializeSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
