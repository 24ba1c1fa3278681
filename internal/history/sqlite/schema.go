package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements are executed in order to create the database schema.
// All use IF NOT EXISTS for idempotent re-application.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS turns (
		seq        INTEGER PRIMARY KEY,
		speaker    TEXT NOT NULL,
		text       TEXT NOT NULL DEFAULT '',
		sentiment  TEXT NOT NULL DEFAULT 'neutral',
		created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
	)`,
}

func migrate(db *sql.DB) error {
	for i, stmt := range schemaStatements {
		if _, err := db.ExecContext(context.TODO(), stmt); err != nil {
			return fmt.Errorf("sqlite: schema statement %d: %w", i, err)
		}
	}
	return nil
}
