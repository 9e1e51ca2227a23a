package database

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = map[string][]string{
	"sqlite3": {
		`CREATE TABLE IF NOT EXISTS verbs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			language TEXT NOT NULL,
			infinitive TEXT NOT NULL,
			translation TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			UNIQUE(language, infinitive)
		)`,
		`CREATE TABLE IF NOT EXISTS conjugations (
			verb_id INTEGER NOT NULL REFERENCES verbs(id) ON DELETE CASCADE,
			tense TEXT NOT NULL,
			person TEXT NOT NULL,
			form TEXT NOT NULL,
			UNIQUE(verb_id, tense, person)
		)`,
	},
	"postgres": {
		`CREATE TABLE IF NOT EXISTS verbs (
			id BIGSERIAL PRIMARY KEY,
			language TEXT NOT NULL,
			infinitive TEXT NOT NULL,
			translation TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL,
			UNIQUE(language, infinitive)
		)`,
		`CREATE TABLE IF NOT EXISTS conjugations (
			verb_id BIGINT NOT NULL REFERENCES verbs(id) ON DELETE CASCADE,
			tense TEXT NOT NULL,
			person TEXT NOT NULL,
			form TEXT NOT NULL,
			UNIQUE(verb_id, tense, person)
		)`,
	},
}

// Migrate creates the verbs and conjugations tables when missing.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	stmts, ok := schemaStatements[driver]
	if !ok {
		return fmt.Errorf("no schema for driver %q", driver)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// MigrateDSN opens a short-lived database/sql handle and applies the schema.
// The pgx driver is migrated through lib/pq.
func MigrateDSN(ctx context.Context, driver, dsn string) error {
	if driver == "pgx" {
		driver = "postgres"
	}
	db, cleanup, err := OpenSQL(driver, dsn)
	if err != nil {
		return err
	}
	defer cleanup()
	return Migrate(ctx, db, driver)
}
