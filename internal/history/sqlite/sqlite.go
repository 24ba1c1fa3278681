// Package sqlite persists conversation history in a SQLite database
// using modernc.org/sqlite (pure Go, no CGO) with WAL mode. It is an
// alternate backend for installations that prefer a database over the
// default JSON file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/parley-chat/parley/internal/history"
	"github.com/parley-chat/parley/pkg/chat"

	_ "modernc.org/sqlite" // SQLite driver registration
)

const (
	// DefaultPath is used when no history path is configured.
	DefaultPath = "chat_history.db"

	busyTimeout = 5000
)

func init() {
	history.RegisterBackend("sqlite", func(opts history.Options) (history.Store, error) {
		return Open(opts)
	})
}

// Store is a SQLite-backed history.Store.
type Store struct {
	db *sql.DB
}

// Compile-time interface guard.
var _ history.Store = (*Store)(nil)

// Open opens (creating if necessary) the database at opts.Path and
// migrates the schema. SQLite serialises writes; the pool is limited to
// a single connection so PRAGMAs apply consistently.
func Open(opts history.Options) (*Store, error) {
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("sqlite: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	ctx := context.TODO()

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: enable WAL: %w", err)
	}
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout=%d", busyTimeout)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: set busy_timeout: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save replaces the persisted history with the given turns inside a
// single transaction, matching the wholesale-rewrite semantics of the
// JSON file backend.
func (s *Store) Save(turns []chat.Turn) error {
	ctx := context.TODO()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlite: begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM turns"); err != nil {
		return fmt.Errorf("sqlite: clear turns: %w", err)
	}
	for i, t := range turns {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO turns (seq, speaker, text, sentiment)
			VALUES (?, ?, ?, ?)`,
			i+1, string(t.Speaker), t.Text, string(t.Sentiment),
		)
		if err != nil {
			return fmt.Errorf("sqlite: insert turn %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlite: commit save: %w", err)
	}
	return nil
}

// Load returns all persisted turns in sequence order. Rows with an
// unknown sentiment are backfilled neutral.
func (s *Store) Load() ([]chat.Turn, error) {
	rows, err := s.db.QueryContext(context.TODO(), `
		SELECT speaker, text, sentiment
		FROM turns
		ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: load turns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var turns []chat.Turn
	for rows.Next() {
		var speaker, text, sentiment string
		if err := rows.Scan(&speaker, &text, &sentiment); err != nil {
			return nil, fmt.Errorf("sqlite: scan turn: %w", err)
		}
		t := chat.Turn{
			Speaker:   chat.Speaker(speaker),
			Text:      text,
			Sentiment: chat.Sentiment(sentiment),
		}
		if !t.Sentiment.Valid() {
			t.Sentiment = chat.SentimentNeutral
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: load rows: %w", err)
	}
	return turns, nil
}
