package database

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"dotdo/internal/config"
	"dotdo/pkg/logger"
)

// Connect opens the Postgres pool and verifies the connection.
func Connect(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.DBPoolSize)
	db.SetMaxIdleConns(cfg.DBPoolSize / 2)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info(ctx, "Database pool initialized", "max_open", cfg.DBPoolSize)
	return db, nil
}

// Migrate creates the schema if it does not exist. Idempotent; run at startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS todos (
			id             TEXT PRIMARY KEY,
			text           TEXT NOT NULL,
			description    TEXT NOT NULL DEFAULT '',
			deadline       TIMESTAMPTZ,
			completed      BOOLEAN NOT NULL DEFAULT FALSE,
			user_id        TEXT NOT NULL REFERENCES users(id),
			created_by_bot BOOLEAN NOT NULL DEFAULT FALSE,
			created_at     TIMESTAMPTZ NOT NULL,
			updated_at     TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_todos_user_created ON todos(user_id, created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS memos (
			id         TEXT PRIMARY KEY,
			content    TEXT NOT NULL DEFAULT '',
			user_id    TEXT NOT NULL REFERENCES users(id),
			x          DOUBLE PRECISION NOT NULL DEFAULT 100,
			y          DOUBLE PRECISION NOT NULL DEFAULT 100,
			width      DOUBLE PRECISION NOT NULL DEFAULT 200,
			height     DOUBLE PRECISION NOT NULL DEFAULT 200,
			color      TEXT NOT NULL,
			completed  BOOLEAN NOT NULL DEFAULT FALSE,
			image      TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_memos_user_created ON memos(user_id, created_at DESC)`,
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
